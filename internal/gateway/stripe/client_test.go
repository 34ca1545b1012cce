package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshop-platform/payment-service/internal/domain"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	cType  string
	form   map[string][]string
}

func newStripeStub(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		rec.cType = r.Header.Get("Content-Type")
		rec.form = r.PostForm
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func formValue(t *testing.T, form map[string][]string, key string) string {
	t.Helper()
	require.Contains(t, form, key)
	require.NotEmpty(t, form[key])
	return form[key][0]
}

func TestCreateCheckoutSession_WireFormat(t *testing.T) {
	srv, rec := newStripeStub(t, http.StatusOK, `{"id":"cs_1","url":"https://pay/cs_1","status":"open"}`)
	c := NewClient(srv.URL, "sk_test_key", "https://shop.example")

	payment := domain.NewPayment([]domain.LineItem{
		{ProductID: "p1", Quantity: 2, Price: decimal.RequireFromString("9.99")},
		{ProductID: "p2", Quantity: 1, Price: decimal.NewFromInt(45)},
	})

	got, err := c.CreateCheckoutSession(context.Background(), payment)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/v1/checkout/sessions", rec.path)
	assert.Equal(t, "Bearer sk_test_key", rec.auth)
	assert.Equal(t, "application/x-www-form-urlencoded", rec.cType)

	assert.Equal(t, "custom", formValue(t, rec.form, "ui_mode"))
	assert.Equal(t, "payment", formValue(t, rec.form, "mode"))
	assert.Equal(t, "https://shop.example/return?session_id={CHECKOUT_SESSION_ID}", formValue(t, rec.form, "return_url"))
	assert.Equal(t, "999", formValue(t, rec.form, "line_items[0][price]"))
	assert.Equal(t, "2", formValue(t, rec.form, "line_items[0][quantity]"))
	assert.Equal(t, "4500", formValue(t, rec.form, "line_items[1][price]"))
	assert.Equal(t, "1", formValue(t, rec.form, "line_items[1][quantity]"))

	assert.Equal(t, payment.ID, got.ID)
	assert.Equal(t, ProcessorName, got.Processor)
	assert.Equal(t, "cs_1", got.ProcessorCheckoutSessionID)
	assert.Equal(t, "https://pay/cs_1", got.ProcessorCheckoutSessionURL)
	assert.Equal(t, "open", got.ProcessorStatus)
}

func TestCreateCheckoutSession_DecodeFailure(t *testing.T) {
	srv, _ := newStripeStub(t, http.StatusOK, `not json`)
	c := NewClient(srv.URL, "sk_test_key", "https://shop.example")

	_, err := c.CreateCheckoutSession(context.Background(), domain.NewPayment(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecodeFailure)
}

func TestCreateCheckoutSession_ProcessorRejected(t *testing.T) {
	srv, _ := newStripeStub(t, http.StatusPaymentRequired, `{"error":{"message":"no such price"}}`)
	c := NewClient(srv.URL, "sk_test_key", "https://shop.example")

	_, err := c.CreateCheckoutSession(context.Background(), domain.NewPayment(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProcessorRejected)
	assert.Contains(t, err.Error(), "402")
	assert.Contains(t, err.Error(), "no such price")
}

func TestCreateCheckoutSession_NetworkFailure(t *testing.T) {
	srv, _ := newStripeStub(t, http.StatusOK, `{}`)
	srv.Close()
	c := NewClient(srv.URL, "sk_test_key", "https://shop.example")

	_, err := c.CreateCheckoutSession(context.Background(), domain.NewPayment(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
}

func TestCreateProduct_WireFormat(t *testing.T) {
	srv, rec := newStripeStub(t, http.StatusOK, `{"id":"prod-1"}`)
	c := NewClient(srv.URL, "sk_test_key", "https://shop.example")

	require.NoError(t, c.CreateProduct(context.Background(), "prod-1", "Espresso Machine"))

	assert.Equal(t, "/v1/products", rec.path)
	assert.Equal(t, "Bearer sk_test_key", rec.auth)
	assert.Equal(t, "prod-1", formValue(t, rec.form, "id"))
	assert.Equal(t, "Espresso Machine", formValue(t, rec.form, "name"))
}

func TestCreateProductPricing_MinorUnitConversion(t *testing.T) {
	srv, rec := newStripeStub(t, http.StatusOK, `{"id":"price_1"}`)
	c := NewClient(srv.URL, "sk_test_key", "https://shop.example")

	require.NoError(t, c.CreateProductPricing(context.Background(), "prod-1", "usd", 350))

	assert.Equal(t, "/v1/prices", rec.path)
	assert.Equal(t, "prod-1", formValue(t, rec.form, "product"))
	assert.Equal(t, "usd", formValue(t, rec.form, "currency"))
	// major-unit price P must hit the wire as P * 100
	assert.Equal(t, "35000", formValue(t, rec.form, "unit_amount"))
}

func TestCreateProductPricing_ProcessorRejected(t *testing.T) {
	srv, _ := newStripeStub(t, http.StatusBadRequest, `{"error":{"message":"invalid currency"}}`)
	c := NewClient(srv.URL, "sk_test_key", "https://shop.example")

	err := c.CreateProductPricing(context.Background(), "prod-1", "usd", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProcessorRejected)
}
