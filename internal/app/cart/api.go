// Package cart is the in-process entry point of the cart state engine.
// Every call names the user explicitly; the engine keeps no session state.
package cart

import (
	"context"

	"github.com/sirupsen/logrus"

	contracts "github.com/murkotick/storefront-cart-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain/services"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/dto"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/queries/get_cart"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/repo"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/usecases/add_to_cart"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/usecases/checkout"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/usecases/remove_from_cart"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/usecases/set_quantity"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
)

type API struct {
	getCart        *get_cart.Handler
	addToCart      *add_to_cart.Interactor
	setQuantity    *set_quantity.Interactor
	removeFromCart *remove_from_cart.Interactor
	checkout       *checkout.Interactor
	pricing        *services.PricingCalculator
}

func NewAPI(tableRepo contracts.TableRepo, publisher contracts.EventPublisher, clk clock.Clock, log logrus.FieldLogger) *API {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &API{
		getCart:        get_cart.NewHandler(tableRepo),
		addToCart:      add_to_cart.NewInteractor(tableRepo, publisher, clk),
		setQuantity:    set_quantity.NewInteractor(tableRepo, publisher, clk),
		removeFromCart: remove_from_cart.NewInteractor(tableRepo, publisher, clk),
		checkout:       checkout.NewInteractor(tableRepo, publisher, clk, log),
		pricing:        services.NewPricingCalculator(),
	}
}

// NewAPIForStore wires the default repository and log publisher over store.
func NewAPIForStore(store contracts.Store, clk clock.Clock, log logrus.FieldLogger) *API {
	return NewAPI(repo.NewTableRepo(store, log), repo.NewLogPublisher(log), clk, log)
}

// GetCart returns the user's lines, or an empty slice. It never fails.
func (a *API) GetCart(ctx context.Context, userID domain.UserID) []domain.CartLine {
	return a.getCart.Execute(ctx, userID)
}

func (a *API) AddToCart(ctx context.Context, userID domain.UserID, snapshot domain.ProductSnapshot) ([]domain.CartLine, error) {
	return a.addToCart.Execute(ctx, add_to_cart.Request{UserID: userID, Snapshot: snapshot})
}

func (a *API) SetQuantity(ctx context.Context, userID domain.UserID, productID domain.ProductID, quantity int) ([]domain.CartLine, error) {
	return a.setQuantity.Execute(ctx, set_quantity.Request{UserID: userID, ProductID: productID, Quantity: quantity})
}

func (a *API) RemoveFromCart(ctx context.Context, userID domain.UserID, productID domain.ProductID) ([]domain.CartLine, error) {
	return a.removeFromCart.Execute(ctx, remove_from_cart.Request{UserID: userID, ProductID: productID})
}

// Checkout places the order and drops the cart. Anonymous users get (nil, nil).
func (a *API) Checkout(ctx context.Context, userID domain.UserID) (*dto.Receipt, error) {
	return a.checkout.Execute(ctx, checkout.Request{UserID: userID})
}

// Quote prices a set of lines.
func (a *API) Quote(lines []domain.CartLine) (*services.Quote, error) {
	return a.pricing.Quote(lines)
}

func (a *API) LineSubtotal(line domain.CartLine) (*domain.Money, error) {
	return a.pricing.LineSubtotal(line)
}

func (a *API) CartTotal(lines []domain.CartLine) (*domain.Money, error) {
	return a.pricing.CartTotal(lines)
}
