package services

import (
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
)

// PricingCalculator derives line subtotals and cart totals from a cart snapshot.
// It is pure: no I/O and no mutation of its inputs.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// LineQuote is a line together with its subtotal.
type LineQuote struct {
	Line     domain.CartLine
	Subtotal *domain.Money
}

// Quote is the priced view of a cart.
type Quote struct {
	Lines     []LineQuote
	ItemCount int
	Total     *domain.Money
}

// LineSubtotal returns quantity * unit price.
// A missing or unparsable price is returned as an error, never treated as zero.
func (pc *PricingCalculator) LineSubtotal(line domain.CartLine) (*domain.Money, error) {
	price, err := line.Snapshot.UnitPrice()
	if err != nil {
		return nil, err
	}
	return price.MultiplyByQuantity(line.Quantity), nil
}

// CartTotal returns the sum of all line subtotals; zero for an empty cart.
func (pc *PricingCalculator) CartTotal(lines []domain.CartLine) (*domain.Money, error) {
	total := domain.Zero()
	for _, l := range lines {
		sub, err := pc.LineSubtotal(l)
		if err != nil {
			return nil, err
		}
		total = total.Add(sub)
	}
	return total, nil
}

// Quote prices every line. It fails on the first line that cannot be priced.
func (pc *PricingCalculator) Quote(lines []domain.CartLine) (*Quote, error) {
	q := &Quote{
		Lines: make([]LineQuote, 0, len(lines)),
		Total: domain.Zero(),
	}
	for _, l := range lines {
		sub, err := pc.LineSubtotal(l)
		if err != nil {
			return nil, err
		}
		q.Lines = append(q.Lines, LineQuote{Line: l, Subtotal: sub})
		q.ItemCount += l.Quantity
		q.Total = q.Total.Add(sub)
	}
	return q, nil
}
