package shared

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/repo"
	"github.com/murkotick/storefront-cart-service/internal/pkg/blobstore"
)

type recordingPublisher struct {
	events []domain.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events []domain.DomainEvent) {
	p.events = append(p.events, events...)
}

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRepo(store *blobstore.Memory) *repo.TableRepo {
	log, _ := test.NewNullLogger()
	return repo.NewTableRepo(store, log)
}

func TestMutateCart_WritesAndPublishes(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemory()
	pub := &recordingPublisher{}

	res, err := MutateCart(ctx, newRepo(store), pub, "add", "u1", func(c *domain.Cart) error {
		return c.Add(domain.ProductSnapshot{ProductID: "p1", Price: "1.00"}, now)
	})
	require.NoError(t, err)
	assert.True(t, res.Written)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 1, store.Writes())
	require.Len(t, pub.events, 1)
	assert.Equal(t, "cart.line_added", pub.events[0].EventType())
}

func TestMutateCart_NoChangeSkipsWrite(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemory()
	store.FailWrites(errors.New("would fail"))
	pub := &recordingPublisher{}

	res, err := MutateCart(ctx, newRepo(store), pub, "remove", "u1", func(c *domain.Cart) error {
		return c.Remove("missing", now)
	})
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Empty(t, res.Lines)
	assert.Empty(t, pub.events)
}

func TestMutateCart_AnonymousRejectedBeforeLoad(t *testing.T) {
	called := false
	_, err := MutateCart(context.Background(), newRepo(blobstore.NewMemory()), nil, "add", "", func(*domain.Cart) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrNoUser)
	assert.False(t, called)
}

func TestMutateCart_SaveFailureKeepsStateAndDropsEvents(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryWith([]byte(`{}`))
	store.FailWrites(errors.New("quota"))
	pub := &recordingPublisher{}

	_, err := MutateCart(ctx, newRepo(store), pub, "add", "u1", func(c *domain.Cart) error {
		return c.Add(domain.ProductSnapshot{ProductID: "p1", Price: "1.00"}, now)
	})
	assert.ErrorIs(t, err, domain.ErrStorageWrite)
	assert.Empty(t, pub.events)

	data, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestMutateCart_MutationErrorWritesNothing(t *testing.T) {
	store := blobstore.NewMemory()
	boom := errors.New("boom")
	_, err := MutateCart(context.Background(), newRepo(store), nil, "x", "u1", func(*domain.Cart) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.Writes())
}
