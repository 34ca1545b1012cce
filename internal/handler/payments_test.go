package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshop-platform/payment-service/internal/command"
	"github.com/eshop-platform/payment-service/internal/domain"
)

type checkoutStub struct {
	resp command.CreateCheckoutSessionResponse
	err  error
	got  *command.CreateCheckoutSessionCommand
}

func (s *checkoutStub) Handle(_ context.Context, cmd command.CreateCheckoutSessionCommand) (command.CreateCheckoutSessionResponse, error) {
	s.got = &cmd
	return s.resp, s.err
}

type pricingStub struct {
	err error
}

func (s *pricingStub) Handle(_ context.Context, _ command.CreateProductPricingCommand) (command.EmptyResponse, error) {
	return command.EmptyResponse{}, s.err
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestCreateCheckoutSession_Created(t *testing.T) {
	stub := &checkoutStub{
		resp: command.CreateCheckoutSessionResponse{
			PaymentID:          "11111111-2222-3333-4444-555555555555",
			CheckoutSessionID:  "cs_1",
			CheckoutSessionURL: "https://pay/cs_1",
		},
	}
	h := NewPaymentHandler(stub, &pricingStub{})

	rec := postJSON(t, h.CreateCheckoutSession,
		`{"line_items":[{"product_id":"p1","quantity":2,"price":9.99}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cs_1"`)
	assert.Contains(t, rec.Body.String(), `"https://pay/cs_1"`)

	require.NotNil(t, stub.got)
	require.Len(t, stub.got.LineItems, 1)
	assert.Equal(t, "p1", stub.got.LineItems[0].ProductID)
	assert.Equal(t, 2, stub.got.LineItems[0].Quantity)
}

func TestCreateCheckoutSession_BadJSON(t *testing.T) {
	h := NewPaymentHandler(&checkoutStub{}, &pricingStub{})

	rec := postJSON(t, h.CreateCheckoutSession, `{"line_items":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
}

func TestCreateCheckoutSession_Validation(t *testing.T) {
	h := NewPaymentHandler(&checkoutStub{}, &pricingStub{})

	rec := postJSON(t, h.CreateCheckoutSession, `{"line_items":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestCreateCheckoutSession_GatewayFailure(t *testing.T) {
	stub := &checkoutStub{err: domain.NewError(domain.KindNetworkFailure, "processor unreachable", nil)}
	h := NewPaymentHandler(stub, &pricingStub{})

	rec := postJSON(t, h.CreateCheckoutSession,
		`{"line_items":[{"product_id":"p1","quantity":1,"price":5}]}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYMENT_PROCESSOR_FAILURE")
	assert.Contains(t, rec.Body.String(), "processor unreachable")
}

func TestCreateProductPricing_Created(t *testing.T) {
	h := NewPaymentHandler(&checkoutStub{}, &pricingStub{})

	rec := postJSON(t, h.CreateProductPricing,
		`{"product_id":"prod-1","product_name":"Espresso Machine","product_price":350}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateProductPricing_Validation(t *testing.T) {
	h := NewPaymentHandler(&checkoutStub{}, &pricingStub{})

	rec := postJSON(t, h.CreateProductPricing, `{"product_name":"x","product_price":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "product_id")
	assert.Contains(t, rec.Body.String(), "product_price")
}
