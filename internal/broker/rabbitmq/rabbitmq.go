// Package rabbitmq implements the message-broker port on AMQP 0-9-1.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/eshop-platform/payment-service/internal/broker"
	"github.com/eshop-platform/payment-service/internal/domain"
	"github.com/eshop-platform/payment-service/internal/logging"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

type Broker struct {
	conn *amqp.Connection
	log  *slog.Logger
}

var _ broker.MessageBroker = (*Broker)(nil)

func Connect(cfg Config, log *slog.Logger) (*Broker, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, domain.NewError(domain.KindBrokerUnavailable,
			fmt.Sprintf("open connection to %s:%d", cfg.Host, cfg.Port), err)
	}
	return &Broker{conn: conn, log: log}, nil
}

func (b *Broker) Close() error {
	return b.conn.Close()
}

// channel opens a channel with the fanout exchange and durable queue for
// destination declared and bound. One exchange/queue pair per event topic,
// both named after it.
func (b *Broker) channel(destination string) (*amqp.Channel, error) {
	ch, err := b.conn.Channel()
	if err != nil {
		return nil, domain.NewError(domain.KindBrokerUnavailable, "open channel", err)
	}

	if err := ch.ExchangeDeclare(destination, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, domain.NewError(domain.KindBrokerUnavailable, "declare exchange "+destination, err)
	}
	queue, err := ch.QueueDeclare(destination, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		return nil, domain.NewError(domain.KindBrokerUnavailable, "declare queue "+destination, err)
	}
	if err := ch.QueueBind(queue.Name, "", destination, false, nil); err != nil {
		ch.Close()
		return nil, domain.NewError(domain.KindBrokerUnavailable, "bind queue "+destination, err)
	}
	return ch, nil
}

func (b *Broker) Publish(ctx context.Context, event domain.Event) error {
	destination := broker.QueueFor(event)
	if destination == "" {
		return fmt.Errorf("Publish: no queue bound for event %s", event.Tag())
	}

	ch, err := b.channel(destination)
	if err != nil {
		return fmt.Errorf("Publish: %w", err)
	}
	defer ch.Close()

	body, err := domain.EncodeEvent(event)
	if err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	err = ch.PublishWithContext(ctx, destination, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("Publish: %w",
			domain.NewError(domain.KindBrokerUnavailable, "publish "+event.Tag(), err))
	}

	b.log.Debug("event published", "tag", event.Tag(), "exchange", destination)
	return nil
}

// Consume blocks on queueName, handing each delivery to the dispatcher.
// Deliveries are acknowledged only after the dispatcher returns; payloads the
// dispatcher cannot decode are rejected without requeue so a poison message
// cannot loop. Setup failures return before any delivery is read.
func (b *Broker) Consume(ctx context.Context, queueName string, dispatcher *broker.Dispatcher) error {
	ch, err := b.channel(queueName)
	if err != nil {
		return fmt.Errorf("Consume %s: %w", queueName, err)
	}
	defer ch.Close()

	deliveries, err := ch.ConsumeWithContext(ctx, queueName, broker.ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("Consume %s: %w", queueName,
			domain.NewError(domain.KindBrokerUnavailable, "subscribe", err))
	}

	b.log.Info("consuming queue", "queue", queueName, "consumer_tag", broker.ConsumerTag)
	msgCtx := logging.WithLogger(ctx, b.log.With("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, open := <-deliveries:
			if !open {
				return domain.NewError(domain.KindBrokerUnavailable, "delivery stream closed for "+queueName, nil)
			}
			if err := dispatcher.Dispatch(msgCtx, queueName, delivery.Body); err != nil {
				if rejectErr := delivery.Reject(false); rejectErr != nil {
					b.log.Error("failed to reject delivery", "queue", queueName, "error", rejectErr)
				}
				continue
			}
			if ackErr := delivery.Ack(false); ackErr != nil {
				b.log.Error("failed to ack delivery", "queue", queueName, "error", ackErr)
			}
		}
	}
}

// IsShutdown reports whether err is the normal end of a consume loop after
// context cancellation.
func IsShutdown(err error) bool {
	return errors.Is(err, context.Canceled)
}
