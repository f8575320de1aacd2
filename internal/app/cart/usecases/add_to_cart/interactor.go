package add_to_cart

import (
	"context"

	contracts "github.com/murkotick/storefront-cart-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	shared "github.com/murkotick/storefront-cart-service/internal/app/cart/usecases/shared"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
)

// Request to put one unit of a product into a cart
type Request struct {
	UserID   domain.UserID
	Snapshot domain.ProductSnapshot
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

// Execute returns the user's lines after the add has been saved.
func (it *Interactor) Execute(ctx context.Context, req Request) ([]domain.CartLine, error) {
	res, err := shared.MutateCart(ctx, it.TableRepo, it.Publisher, "add_to_cart", req.UserID, func(c *domain.Cart) error {
		return c.Add(req.Snapshot, it.Clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return res.Lines, nil
}
