package remove_from_cart

import (
	"context"

	contracts "github.com/murkotick/storefront-cart-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	shared "github.com/murkotick/storefront-cart-service/internal/app/cart/usecases/shared"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
)

// Request to drop a line from a cart
type Request struct {
	UserID    domain.UserID
	ProductID domain.ProductID
}

type Interactor struct {
	TableRepo contracts.TableRepo
	Publisher contracts.EventPublisher
	Clock     clock.Clock
}

func NewInteractor(repo contracts.TableRepo, publisher contracts.EventPublisher, clk clock.Clock) *Interactor {
	return &Interactor{
		TableRepo: repo,
		Publisher: publisher,
		Clock:     clk,
	}
}

// Execute is idempotent: removing a line that is not there writes nothing.
func (it *Interactor) Execute(ctx context.Context, req Request) ([]domain.CartLine, error) {
	res, err := shared.MutateCart(ctx, it.TableRepo, it.Publisher, "remove_from_cart", req.UserID, func(c *domain.Cart) error {
		return c.Remove(req.ProductID, it.Clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return res.Lines, nil
}
