package checkout

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	contracts "github.com/murkotick/storefront-cart-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain/services"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/dto"
	shared "github.com/murkotick/storefront-cart-service/internal/app/cart/usecases/shared"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
)

// Request to place the order for a user's cart
type Request struct {
	UserID domain.UserID
}

type Interactor struct {
	TableRepo contracts.TableRepo
	Publisher contracts.EventPublisher
	Clock     clock.Clock
	Pricing   *services.PricingCalculator
	Log       logrus.FieldLogger
}

func NewInteractor(repo contracts.TableRepo, publisher contracts.EventPublisher, clk clock.Clock, log logrus.FieldLogger) *Interactor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Interactor{
		TableRepo: repo,
		Publisher: publisher,
		Clock:     clk,
		Pricing:   services.NewPricingCalculator(),
		Log:       log.WithField("usecase", "checkout"),
	}
}

// Execute drops the user's cart entry and returns a receipt for what it held.
// An anonymous user, or one with no cart entry, has nothing to check out:
// the result is (nil, nil) and nothing is written.
// When the write fails the cart is left exactly as it was.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.Receipt, error) {
	if req.UserID.IsAnonymous() {
		return nil, nil
	}

	now := it.Clock.Now()
	orderID := uuid.New().String()

	var (
		placed  []domain.CartLine
		ordered bool
	)
	_, err := shared.MutateCart(ctx, it.TableRepo, it.Publisher, "checkout", req.UserID, func(c *domain.Cart) error {
		if !c.IsStored() {
			return nil
		}
		placed = c.Lines()
		ordered = true
		return c.Checkout(orderID, now)
	})
	if err != nil {
		return nil, err
	}
	if !ordered {
		return nil, nil
	}

	receipt := &dto.Receipt{
		OrderID:  orderID,
		UserID:   req.UserID,
		Lines:    placed,
		PlacedAt: now,
	}
	for _, l := range placed {
		receipt.ItemCount += l.Quantity
	}
	total, err := it.Pricing.CartTotal(placed)
	if err != nil {
		it.Log.WithError(err).WithField("order_id", orderID).Warn("order placed with unpriceable lines")
		receipt.PricingError = err
	} else {
		receipt.Total = total
	}
	return receipt, nil
}
