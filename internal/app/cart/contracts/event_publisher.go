package contracts

import (
	"context"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
)

// EventPublisher receives domain events after a transaction has been saved.
// Publishing is fire-and-forget; implementations must not block or fail the caller.
type EventPublisher interface {
	Publish(ctx context.Context, events []domain.DomainEvent)
}
