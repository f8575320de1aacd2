package get_cart

import (
	"context"

	contracts "github.com/murkotick/storefront-cart-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
)

type Handler struct {
	tableRepo contracts.TableRepo
}

func NewHandler(r contracts.TableRepo) *Handler {
	return &Handler{tableRepo: r}
}

// Execute returns the user's lines. Anonymous and unknown users get an
// empty slice; it never fails.
func (h *Handler) Execute(ctx context.Context, userID domain.UserID) []domain.CartLine {
	if userID.IsAnonymous() {
		return []domain.CartLine{}
	}
	return h.tableRepo.LoadTable(ctx).Lines(userID)
}
