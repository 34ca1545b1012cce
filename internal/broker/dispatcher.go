package broker

import (
	"context"
	"errors"

	"github.com/eshop-platform/payment-service/internal/app"
	"github.com/eshop-platform/payment-service/internal/domain"
	"github.com/eshop-platform/payment-service/internal/logging"
	"github.com/eshop-platform/payment-service/internal/metrics"
)

// Dispatcher decodes consumed deliveries and routes them by event tag.
type Dispatcher struct {
	state   *app.State
	metrics *metrics.Metrics
}

func NewDispatcher(state *app.State, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{state: state, metrics: m}
}

// Dispatch handles one delivery. Unknown tags are logged and ignored (nil).
// A non-nil return means the payload could not be decoded; the consumer uses
// that to drop the message without requeue. Reactions never fail the
// delivery: by the time one runs, the message is already understood.
func (d *Dispatcher) Dispatch(ctx context.Context, queue string, body []byte) error {
	log := logging.FromContext(ctx)
	log.Debug("event received", "queue", queue, "payload", string(body))

	event, err := domain.DecodeEvent(body)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownEvent) {
			log.Info("event not supported", "queue", queue, "error", err)
			d.metrics.EventsConsumedTotal.WithLabelValues(queue, metrics.EventOutcomeUnknown).Inc()
			return nil
		}
		log.Warn("failed to deserialize event", "queue", queue, "payload", string(body), "error", err)
		d.metrics.EventsConsumedTotal.WithLabelValues(queue, metrics.EventOutcomeDecodeError).Inc()
		return err
	}

	switch ev := event.(type) {
	case domain.ProductCreated:
		d.handleProductCreated(ctx, ev)
	default:
		// a decoded variant without a reaction: ignore, same as unknown tags
		log.Info("no reaction registered", "queue", queue, "tag", event.Tag())
		d.metrics.EventsConsumedTotal.WithLabelValues(queue, metrics.EventOutcomeUnknown).Inc()
		return nil
	}

	d.metrics.EventsConsumedTotal.WithLabelValues(queue, metrics.EventOutcomeHandled).Inc()
	return nil
}

func (d *Dispatcher) handleProductCreated(ctx context.Context, event domain.ProductCreated) {
	d.state.Catalog.Record(event.ProductID)
	logging.FromContext(ctx).Info("product recorded in local catalog", "product_id", event.ProductID)
}
