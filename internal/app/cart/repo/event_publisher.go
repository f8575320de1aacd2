package repo

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
)

// LogPublisher emits committed cart events as structured log entries.
// It never fails the caller; encoding problems are logged and dropped.
type LogPublisher struct {
	log logrus.FieldLogger
}

func NewLogPublisher(log logrus.FieldLogger) *LogPublisher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogPublisher{log: log.WithField("component", "cart_events")}
}

func (p *LogPublisher) Publish(ctx context.Context, events []domain.DomainEvent) {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			p.log.WithError(err).WithField("event_type", ev.EventType()).Warn("drop unencodable cart event")
			continue
		}
		p.log.WithFields(logrus.Fields{
			"event_id":     uuid.New().String(),
			"event_type":   ev.EventType(),
			"aggregate_id": ev.AggregateID(),
			"occurred_at":  ev.OccurredAt(),
			"payload":      payload,
		}).Info("cart event")
	}
}

// MarshalDomainEventPayload converts a domain event into a JSON payload.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.LineAddedEvent:
		payload = map[string]interface{}{
			"user_id":    e.UserID,
			"product_id": e.ProductID,
			"quantity":   e.Quantity,
			"added_at":   e.AddedAt,
		}
	case *domain.QuantityChangedEvent:
		payload = map[string]interface{}{
			"user_id":      e.UserID,
			"product_id":   e.ProductID,
			"old_quantity": e.OldQuantity,
			"new_quantity": e.NewQuantity,
			"changed_at":   e.ChangedAt,
		}
	case *domain.LineRemovedEvent:
		payload = map[string]interface{}{
			"user_id":    e.UserID,
			"product_id": e.ProductID,
			"removed_at": e.RemovedAt,
		}
	case *domain.CartCheckedOutEvent:
		payload = map[string]interface{}{
			"user_id":        e.UserID,
			"order_id":       e.OrderID,
			"line_count":     e.LineCount,
			"item_count":     e.ItemCount,
			"checked_out_at": e.CheckedOutAt,
		}
	default:
		payload = map[string]interface{}{
			"event_type":   ev.EventType(),
			"aggregate_id": ev.AggregateID(),
			"occurred_at":  ev.OccurredAt(),
		}
	}

	b, err := json.Marshal(payload)
	return string(b), err
}
