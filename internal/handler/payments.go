package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/eshop-platform/payment-service/internal/command"
)

type checkoutSessions interface {
	Handle(ctx context.Context, cmd command.CreateCheckoutSessionCommand) (command.CreateCheckoutSessionResponse, error)
}

type productPricing interface {
	Handle(ctx context.Context, cmd command.CreateProductPricingCommand) (command.EmptyResponse, error)
}

// PaymentHandler adapts HTTP requests into commands and command results back
// into transport responses. No business logic lives here.
type PaymentHandler struct {
	checkout checkoutSessions
	pricing  productPricing
}

func NewPaymentHandler(checkout checkoutSessions, pricing productPricing) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, pricing: pricing}
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validateCheckout(cmd command.CreateCheckoutSessionCommand) []FieldError {
	var errs []FieldError
	if len(cmd.LineItems) == 0 {
		errs = append(errs, FieldError{Field: "line_items", Message: "required"})
	}
	for _, item := range cmd.LineItems {
		if item.ProductID == "" {
			errs = append(errs, FieldError{Field: "line_items.product_id", Message: "required"})
		}
		if item.Quantity < 0 {
			errs = append(errs, FieldError{Field: "line_items.quantity", Message: "must not be negative"})
		}
		if item.Price.IsNegative() {
			errs = append(errs, FieldError{Field: "line_items.price", Message: "must not be negative"})
		}
	}
	return errs
}

func (h *PaymentHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateCheckoutSessionCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if errs := validateCheckout(cmd); len(errs) > 0 {
		RespondAppError(w, ErrValidationFailed, errs)
		return
	}

	resp, err := h.checkout.Handle(r.Context(), cmd)
	if err != nil {
		RespondCommandError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, resp)
}

func (h *PaymentHandler) CreateProductPricing(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateProductPricingCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	var errs []FieldError
	if cmd.ProductID == "" {
		errs = append(errs, FieldError{Field: "product_id", Message: "required"})
	}
	if cmd.ProductName == "" {
		errs = append(errs, FieldError{Field: "product_name", Message: "required"})
	}
	if cmd.ProductPrice.IsNegative() {
		errs = append(errs, FieldError{Field: "product_price", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		RespondAppError(w, ErrValidationFailed, errs)
		return
	}

	resp, err := h.pricing.Handle(r.Context(), cmd)
	if err != nil {
		RespondCommandError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, resp)
}
