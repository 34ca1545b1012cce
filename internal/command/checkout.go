package command

import (
	"context"
	"fmt"

	"github.com/eshop-platform/payment-service/internal/domain"
	"github.com/eshop-platform/payment-service/internal/gateway"
	"github.com/eshop-platform/payment-service/internal/logging"
)

// CreateCheckoutSessionHandler starts a checkout with the payment processor
// for a fresh Payment built from the command's line items.
type CreateCheckoutSessionHandler struct {
	gateway gateway.PaymentGateway
}

var _ Handler[CreateCheckoutSessionCommand, CreateCheckoutSessionResponse] = (*CreateCheckoutSessionHandler)(nil)

func NewCreateCheckoutSessionHandler(gw gateway.PaymentGateway) *CreateCheckoutSessionHandler {
	return &CreateCheckoutSessionHandler{gateway: gw}
}

func (h *CreateCheckoutSessionHandler) Handle(ctx context.Context, cmd CreateCheckoutSessionCommand) (CreateCheckoutSessionResponse, error) {
	log := logging.FromContext(ctx)

	items := make([]domain.LineItem, 0, len(cmd.LineItems))
	for _, li := range cmd.LineItems {
		items = append(items, domain.LineItem{
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
			Price:     li.Price,
		})
	}
	payment := domain.NewPayment(items)

	created, err := h.gateway.CreateCheckoutSession(ctx, payment)
	if err != nil {
		log.Warn("checkout session creation failed", "payment_id", payment.ID, "error", err)
		return CreateCheckoutSessionResponse{}, fmt.Errorf("CreateCheckoutSession: %w", err)
	}

	log.Info("checkout session created",
		"payment_id", created.ID,
		"checkout_session_id", created.ProcessorCheckoutSessionID,
	)

	return CreateCheckoutSessionResponse{
		PaymentID:          created.ID,
		CheckoutSessionID:  created.ProcessorCheckoutSessionID,
		CheckoutSessionURL: created.ProcessorCheckoutSessionURL,
	}, nil
}
