package remove_from_cart

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

func TestRemoveFromCart_Idempotent(t *testing.T) {
	ctx := context.Background()
	log, _ := test.NewNullLogger()
	store := blobstore.NewMemoryWith([]byte(
		`{"u1":[{"productId":"p1","quantity":1,"productSnapshot":{"product_id":"p1","price":"2"}},` +
			`{"productId":"p2","quantity":1,"productSnapshot":{"product_id":"p2","price":"3"}}]}`))
	it := NewInteractor(repo.NewTableRepo(store, log), nil, clock.NewFake(time.Now().UTC()))

	once, err := it.Execute(ctx, Request{UserID: "u1", ProductID: "p1"})
	require.NoError(t, err)
	afterOnce, _ := store.Read(ctx)

	twice, err := it.Execute(ctx, Request{UserID: "u1", ProductID: "p1"})
	require.NoError(t, err)
	afterTwice, _ := store.Read(ctx)

	assert.Equal(t, once, twice)
	assert.Equal(t, string(afterOnce), string(afterTwice))
	assert.Equal(t, 1, store.Writes())
	require.Len(t, twice, 1)
	assert.Equal(t, domain.ProductID("p2"), twice[0].ProductID)
}

func TestRemoveFromCart_Anonymous(t *testing.T) {
	log, _ := test.NewNullLogger()
	it := NewInteractor(repo.NewTableRepo(blobstore.NewMemory(), log), nil, clock.RealClock{})
	_, err := it.Execute(context.Background(), Request{ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrNoUser)
}
