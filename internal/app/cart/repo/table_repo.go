package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/pkg/blobstore"
)

// DefaultStorageKey is the namespaced key the cart table is stored under.
const DefaultStorageKey = "ecommerce_carts"

// TableRepo reads and writes the whole cart table through a Store.
// It has no isolation: concurrent read-modify-write cycles are last-writer-wins.
type TableRepo struct {
	store contracts.Store
	log   logrus.FieldLogger
}

func NewTableRepo(store contracts.Store, log logrus.FieldLogger) *TableRepo {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &TableRepo{store: store, log: log.WithField("component", "cart_table_repo")}
}

// LoadTable returns the stored table or an empty one. It never fails.
func (r *TableRepo) LoadTable(ctx context.Context) *domain.CartTable {
	t, err := r.load(ctx)
	if err != nil {
		r.log.WithError(err).Warn("cart table unreadable, serving empty table")
		return domain.NewCartTable()
	}
	return t
}

// LoadTableForUpdate returns the stored table for a mutation. A read error
// from the store is returned so the caller does not overwrite a table it
// could not see.
func (r *TableRepo) LoadTableForUpdate(ctx context.Context) (*domain.CartTable, error) {
	return r.load(ctx)
}

// SaveTable serializes and writes the whole table.
func (r *TableRepo) SaveTable(ctx context.Context, t *domain.CartTable) error {
	if t == nil {
		t = domain.NewCartTable()
	}
	data, err := encodeTable(t)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrStorageWrite, err)
	}
	if err := r.store.Write(ctx, data); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}
	return nil
}

func (r *TableRepo) load(ctx context.Context) (*domain.CartTable, error) {
	data, err := r.store.Read(ctx)
	if errors.Is(err, blobstore.ErrNotFound) {
		return domain.NewCartTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageRead, err)
	}

	t, err := decodeTable(data)
	if err != nil {
		r.log.WithError(err).WithField("bytes", len(data)).Warn("discarding malformed cart table")
		return domain.NewCartTable(), nil
	}
	return t, nil
}
