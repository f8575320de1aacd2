package add_to_cart

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/repo"
	"github.com/murkotick/storefront-cart-service/internal/pkg/blobstore"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
)

func newInteractor() (*Interactor, *blobstore.Memory) {
	log, _ := test.NewNullLogger()
	store := blobstore.NewMemory()
	clk := clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return NewInteractor(repo.NewTableRepo(store, log), repo.NewLogPublisher(log), clk), store
}

func TestAddToCart_RepeatedAddsIncrement(t *testing.T) {
	ctx := context.Background()
	it, _ := newInteractor()

	a := domain.ProductSnapshot{ProductID: "p1", Name: "A", Price: "9.99"}
	b := domain.ProductSnapshot{ProductID: "p1", Name: "A (new)", Price: "10.99"}

	_, err := it.Execute(ctx, Request{UserID: "u1", Snapshot: a})
	require.NoError(t, err)
	_, err = it.Execute(ctx, Request{UserID: "u1", Snapshot: b})
	require.NoError(t, err)
	lines, err := it.Execute(ctx, Request{UserID: "u1", Snapshot: b})
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, a, lines[0].Snapshot)
}

func TestAddToCart_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	it, _ := newInteractor()

	_, err := it.Execute(ctx, Request{UserID: "u1", Snapshot: domain.ProductSnapshot{ProductID: "p1", Price: "1"}})
	require.NoError(t, err)
	lines, err := it.Execute(ctx, Request{UserID: "u2", Snapshot: domain.ProductSnapshot{ProductID: "p2", Price: "1"}})
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, domain.ProductID("p2"), lines[0].ProductID)
}

func TestAddToCart_Rejections(t *testing.T) {
	ctx := context.Background()
	it, store := newInteractor()

	_, err := it.Execute(ctx, Request{UserID: "", Snapshot: domain.ProductSnapshot{ProductID: "p1"}})
	assert.ErrorIs(t, err, domain.ErrNoUser)

	_, err = it.Execute(ctx, Request{UserID: "u1", Snapshot: domain.ProductSnapshot{ProductID: "  "}})
	assert.ErrorIs(t, err, domain.ErrEmptyProductID)

	assert.Equal(t, 0, store.Writes())
}
