package contracts

import (
	"context"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
)

// TableRepo owns the mapping from user identity to cart contents.
// Every read and write of the store passes through it.
type TableRepo interface {
	// LoadTable never fails: absent or corrupt state yields an empty table.
	LoadTable(ctx context.Context) *domain.CartTable

	// LoadTableForUpdate is the first half of a read-modify-write cycle.
	// Absent or corrupt state yields an empty table; an unreachable store
	// yields domain.ErrStorageRead.
	LoadTableForUpdate(ctx context.Context) (*domain.CartTable, error)

	// SaveTable rewrites the whole table. Failures wrap domain.ErrStorageWrite.
	SaveTable(ctx context.Context, table *domain.CartTable) error
}
