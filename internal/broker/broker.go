// Package broker defines the message-broker port and the routing of consumed
// deliveries to in-process reactions.
package broker

import (
	"context"

	"github.com/eshop-platform/payment-service/internal/domain"
)

// ProductCreatedQueue is the one queue this service subscribes to today.
const ProductCreatedQueue = "product.created"

// ConsumerTag identifies this service to the broker.
const ConsumerTag = "eshop-payment-service"

// MessageBroker delivers domain events between services with the underlying
// broker's at-least-once semantics.
//
// Consume blocks until ctx is cancelled or the subscription dies; it returns
// a KindBrokerUnavailable error when exchange/queue setup or the subscription
// itself fails. Callers treat that as fatal — there is no automatic restart.
type MessageBroker interface {
	Publish(ctx context.Context, event domain.Event) error
	Consume(ctx context.Context, queueName string, dispatcher *Dispatcher) error
}

// QueueFor maps an event variant to the queue (and fanout exchange) it
// travels on. Returns "" for variants with no binding.
func QueueFor(event domain.Event) string {
	switch event.(type) {
	case domain.ProductCreated:
		return ProductCreatedQueue
	default:
		return ""
	}
}
