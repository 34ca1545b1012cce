// Package app holds the process-wide application state container.
package app

import (
	"github.com/eshop-platform/payment-service/internal/catalog"
	"github.com/eshop-platform/payment-service/internal/command"
)

// State is the registry of constructed handlers, shared services and static
// configuration the transport and consumer tasks need. It is built once in
// main from fully-resolved config and never written afterwards, so every
// concurrent task reads it without synchronization.
type State struct {
	CheckoutSessions *command.CreateCheckoutSessionHandler
	ProductPricing   *command.CreateProductPricingHandler
	Catalog          *catalog.Registry

	AuthDomain   string
	AuthAudience string
}
