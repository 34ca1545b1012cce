// Package gateway defines the port behind which a concrete payment processor
// hides. The orchestration layer only ever talks to this interface.
package gateway

import (
	"context"

	"github.com/eshop-platform/payment-service/internal/domain"
)

// PaymentGateway is implemented by processor adapters. Each operation makes
// exactly one outbound call; none of them retry. unitAmount is in major
// currency units — conversion to the processor's minor-unit convention is the
// adapter's job.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	CreateProduct(ctx context.Context, productID, name string) error
	CreateProductPricing(ctx context.Context, productID, currency string, unitAmount int64) error
}
