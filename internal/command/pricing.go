package command

import (
	"context"
	"fmt"

	"github.com/eshop-platform/payment-service/internal/gateway"
	"github.com/eshop-platform/payment-service/internal/logging"
)

const pricingCurrency = "usd"

// CreateProductPricingHandler registers a product and its price with the
// payment processor, in that order. If product registration fails the price
// call is never attempted.
type CreateProductPricingHandler struct {
	gateway gateway.PaymentGateway
}

var _ Handler[CreateProductPricingCommand, EmptyResponse] = (*CreateProductPricingHandler)(nil)

func NewCreateProductPricingHandler(gw gateway.PaymentGateway) *CreateProductPricingHandler {
	return &CreateProductPricingHandler{gateway: gw}
}

func (h *CreateProductPricingHandler) Handle(ctx context.Context, cmd CreateProductPricingCommand) (EmptyResponse, error) {
	log := logging.FromContext(ctx)

	if err := h.gateway.CreateProduct(ctx, cmd.ProductID, cmd.ProductName); err != nil {
		log.Warn("product registration failed", "product_id", cmd.ProductID, "error", err)
		return EmptyResponse{}, fmt.Errorf("CreateProduct: %w", err)
	}

	if err := h.gateway.CreateProductPricing(ctx, cmd.ProductID, pricingCurrency, cmd.ProductPrice.IntPart()); err != nil {
		log.Warn("pricing registration failed", "product_id", cmd.ProductID, "error", err)
		return EmptyResponse{}, fmt.Errorf("CreateProductPricing: %w", err)
	}

	log.Info("product pricing registered", "product_id", cmd.ProductID)
	return EmptyResponse{}, nil
}
