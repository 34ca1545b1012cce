// Package command holds the dispatch contract between the transport boundary
// and business logic: one handler per command, uniform Handle signature.
package command

import (
	"context"

	"github.com/shopspring/decimal"
)

// Command marks a request that intends to change state. A type is a Command
// purely by carrying the marker — there are no shared base fields.
type Command interface{ isCommand() }

// Response marks the reply shape paired with a Command.
type Response interface{ isResponse() }

// Query marks a read-only request. No queries are dispatched yet; the marker
// exists so read paths get the same treatment when they arrive.
type Query interface{ isQuery() }

// Handler is the uniform dispatch contract, parameterized per command/response
// pair rather than collapsed into one wide interface.
type Handler[C Command, R Response] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

type LineItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type CreateCheckoutSessionCommand struct {
	LineItems []LineItemInput `json:"line_items"`
}

func (CreateCheckoutSessionCommand) isCommand() {}

type CreateCheckoutSessionResponse struct {
	PaymentID          string `json:"payment_id"`
	CheckoutSessionID  string `json:"checkout_session_id"`
	CheckoutSessionURL string `json:"checkout_session_url"`
}

func (CreateCheckoutSessionResponse) isResponse() {}

type CreateProductPricingCommand struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
}

func (CreateProductPricingCommand) isCommand() {}

type EmptyResponse struct{}

func (EmptyResponse) isResponse() {}
