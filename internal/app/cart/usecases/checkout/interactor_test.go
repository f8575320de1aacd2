package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/repo"
	"github.com/murkotick/storefront-cart-service/internal/pkg/blobstore"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
)

const seeded = `{"u1":[{"productId":"p1","quantity":2,"productSnapshot":{"product_id":"p1","name":"Mug","price":"9.99"}}],` +
	`"u2":[{"productId":"p2","quantity":1,"productSnapshot":{"product_id":"p2","name":"Pen","price":"1.25"}}]}`

type recordingPublisher struct {
	events []domain.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events []domain.DomainEvent) {
	p.events = append(p.events, events...)
}

var placedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(blob string) (*Interactor, *blobstore.Memory, *recordingPublisher, *repo.TableRepo) {
	log, _ := test.NewNullLogger()
	store := blobstore.NewMemoryWith([]byte(blob))
	pub := &recordingPublisher{}
	r := repo.NewTableRepo(store, log)
	return NewInteractor(r, pub, clock.NewFake(placedAt), log), store, pub, r
}

func TestCheckout_RemovesOnlyThatUser(t *testing.T) {
	ctx := context.Background()
	it, _, pub, r := setup(seeded)

	receipt, err := it.Execute(ctx, Request{UserID: "u1"})
	require.NoError(t, err)
	require.NotNil(t, receipt)

	_, err = uuid.Parse(receipt.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, domain.UserID("u1"), receipt.UserID)
	assert.Equal(t, 2, receipt.ItemCount)
	require.NotNil(t, receipt.Total)
	assert.Equal(t, "19.98", receipt.Total.String())
	assert.NoError(t, receipt.PricingError)
	assert.Equal(t, placedAt, receipt.PlacedAt)

	table := r.LoadTable(ctx)
	assert.False(t, table.Has("u1"))
	assert.True(t, table.Has("u2"))

	require.Len(t, pub.events, 1)
	ev, ok := pub.events[0].(*domain.CartCheckedOutEvent)
	require.True(t, ok)
	assert.Equal(t, receipt.OrderID, ev.OrderID)
}

func TestCheckout_AnonymousIsSilent(t *testing.T) {
	it, store, _, _ := setup(seeded)
	receipt, err := it.Execute(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Nil(t, receipt)
	assert.Equal(t, 0, store.Writes())
}

func TestCheckout_UnknownUserWritesNothing(t *testing.T) {
	it, store, pub, _ := setup(seeded)
	receipt, err := it.Execute(context.Background(), Request{UserID: "ghost"})
	assert.NoError(t, err)
	assert.Nil(t, receipt)
	assert.Equal(t, 0, store.Writes())
	assert.Empty(t, pub.events)
}

func TestCheckout_EmptyEntryIsRemoved(t *testing.T) {
	ctx := context.Background()
	it, store, _, _ := setup(`{"u1":[]}`)

	receipt, err := it.Execute(ctx, Request{UserID: "u1"})
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Empty(t, receipt.Lines)
	assert.Equal(t, "0.00", receipt.Total.String())

	data, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestCheckout_WriteFailureLeavesCart(t *testing.T) {
	ctx := context.Background()
	it, store, pub, r := setup(seeded)
	store.FailWrites(errors.New("quota"))

	receipt, err := it.Execute(ctx, Request{UserID: "u1"})
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, domain.ErrStorageWrite)
	assert.Empty(t, pub.events)

	lines := r.LoadTable(ctx).Lines("u1")
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCheckout_UnpriceableLinesStillOrder(t *testing.T) {
	it, _, _, _ := setup(`{"u1":[{"productId":"p1","quantity":1,"productSnapshot":{"product_id":"p1","price":"abc"}}]}`)

	receipt, err := it.Execute(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Nil(t, receipt.Total)
	assert.ErrorIs(t, receipt.PricingError, domain.ErrInvalidPrice)
}
