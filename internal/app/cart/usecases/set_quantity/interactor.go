package set_quantity

import (
	"context"

	contracts "github.com/murkotick/storefront-cart-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	shared "github.com/murkotick/storefront-cart-service/internal/app/cart/usecases/shared"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
)

// Request to overwrite a line quantity. Quantity <= 0 removes the line.
type Request struct {
	UserID    domain.UserID
	ProductID domain.ProductID
	Quantity  int
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

func (it *Interactor) Execute(ctx context.Context, req Request) ([]domain.CartLine, error) {
	res, err := shared.MutateCart(ctx, it.TableRepo, it.Publisher, "set_quantity", req.UserID, func(c *domain.Cart) error {
		return c.SetQuantity(req.ProductID, req.Quantity, it.Clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return res.Lines, nil
}
