package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	contracts "github.com/murkotick/storefront-cart-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/models/m_outbox"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-cart-service/internal/pkg/committer"
)

// Applier applies a mutation plan atomically.
type Applier interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}

// OutboxPublisher records committed cart events in the Spanner outbox table.
// All events of one transaction are inserted in a single commit. A failed
// commit is logged and the events are dropped.
type OutboxPublisher struct {
	committer Applier
	clock     clock.Clock
	log       logrus.FieldLogger
}

func NewOutboxPublisher(cm Applier, clk clock.Clock, log logrus.FieldLogger) *OutboxPublisher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &OutboxPublisher{committer: cm, clock: clk, log: log.WithField("component", "cart_outbox")}
}

func (p *OutboxPublisher) Publish(ctx context.Context, events []domain.DomainEvent) {
	plan, err := p.plan(events)
	if err != nil {
		p.log.WithError(err).Warn("drop cart events")
		return
	}
	if plan.IsEmpty() {
		return
	}
	if err := p.committer.Apply(ctx, plan); err != nil {
		p.log.WithError(err).WithField("events", plan.Len()).Warn("outbox insert failed")
	}
}

func (p *OutboxPublisher) plan(events []domain.DomainEvent) (*commitplan.Plan, error) {
	now := p.clock.Now()
	plan := commitplan.NewPlan()
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return nil, err
		}
		plan.Add(m_outbox.InsertMutation(m_outbox.BuildInsertMap(m_outbox.Row{
			EventID:    uuid.New().String(),
			EventType:  ev.EventType(),
			UserID:     ev.AggregateID(),
			Payload:    payload,
			OccurredAt: ev.OccurredAt(),
			CreatedAt:  now,
		})))
	}
	return plan, nil
}

// Publishers fans events out to several publishers in order.
type Publishers []contracts.EventPublisher

func (ps Publishers) Publish(ctx context.Context, events []domain.DomainEvent) {
	if len(events) == 0 {
		return
	}
	for _, p := range ps {
		p.Publish(ctx, events)
	}
}
