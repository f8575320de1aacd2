package dto

import (
	"time"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
)

// Receipt describes a placed order. Total is nil when the snapshot prices
// could not be summed.
type Receipt struct {
	OrderID      string
	UserID       domain.UserID
	Lines        []domain.CartLine
	ItemCount    int
	Total        *domain.Money
	PricingError error
	PlacedAt     time.Time
}
