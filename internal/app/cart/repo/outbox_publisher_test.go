package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-cart-service/internal/pkg/committer"
)

type fakeApplier struct {
	plans []*commitplan.Plan
	err   error
}

func (f *fakeApplier) Apply(_ context.Context, plan *commitplan.Plan) error {
	f.plans = append(f.plans, plan)
	return f.err
}

type countingPublisher struct{ n int }

func (c *countingPublisher) Publish(_ context.Context, events []domain.DomainEvent) {
	c.n += len(events)
}

var eventTime = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func cartEvents() []domain.DomainEvent {
	return []domain.DomainEvent{
		&domain.LineAddedEvent{UserID: "u1", ProductID: "p1", Quantity: 1, AddedAt: eventTime},
		&domain.LineRemovedEvent{UserID: "u1", ProductID: "p1", RemovedAt: eventTime},
	}
}

func TestOutboxPublisher_OneCommitPerBatch(t *testing.T) {
	log, _ := test.NewNullLogger()
	cm := &fakeApplier{}
	p := NewOutboxPublisher(cm, clock.NewFake(eventTime), log)

	p.Publish(context.Background(), cartEvents())
	require.Len(t, cm.plans, 1)
	assert.Equal(t, 2, cm.plans[0].Len())

	p.Publish(context.Background(), nil)
	assert.Len(t, cm.plans, 1)
}

func TestOutboxPublisher_FailureIsLogged(t *testing.T) {
	log, hook := test.NewNullLogger()
	cm := &fakeApplier{err: errors.New("aborted")}
	p := NewOutboxPublisher(cm, clock.NewFake(eventTime), log)

	p.Publish(context.Background(), cartEvents())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "outbox insert failed", hook.LastEntry().Message)
}

func TestPublishers_FanOut(t *testing.T) {
	a, b := &countingPublisher{}, &countingPublisher{}
	Publishers{a, b}.Publish(context.Background(), cartEvents())
	assert.Equal(t, 2, a.n)
	assert.Equal(t, 2, b.n)
}
