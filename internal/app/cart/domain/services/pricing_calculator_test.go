package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
)

func line(id string, qty int, price string) domain.CartLine {
	return domain.CartLine{
		ProductID: domain.ProductID(id),
		Quantity:  qty,
		Snapshot:  domain.ProductSnapshot{ProductID: domain.ProductID(id), Name: id, Price: price},
	}
}

func TestLineSubtotal(t *testing.T) {
	pc := NewPricingCalculator()

	sub, err := pc.LineSubtotal(line("p1", 2, "9.99"))
	require.NoError(t, err)
	assert.Equal(t, "19.98", sub.String())
}

func TestCartTotal_EmptyIsZero(t *testing.T) {
	pc := NewPricingCalculator()

	total, err := pc.CartTotal(nil)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.Equal(t, "0.00", total.String())
}

func TestCartTotal_IsSumOfSubtotals(t *testing.T) {
	pc := NewPricingCalculator()
	lines := []domain.CartLine{
		line("p1", 2, "9.99"),
		line("p2", 3, "0.10"),
		line("p3", 1, "120"),
	}

	total, err := pc.CartTotal(lines)
	require.NoError(t, err)

	sum := domain.Zero()
	for _, l := range lines {
		sub, err := pc.LineSubtotal(l)
		require.NoError(t, err)
		sum = sum.Add(sub)
	}
	assert.True(t, total.Equals(sum))
	assert.Equal(t, "140.28", total.String())
}

func TestCartTotal_BadPricesAreErrors(t *testing.T) {
	pc := NewPricingCalculator()

	cases := []struct {
		name  string
		price string
		want  error
	}{
		{"missing", "", domain.ErrMissingPrice},
		{"blank", "   ", domain.ErrMissingPrice},
		{"not a number", "nine ninety-nine", domain.ErrInvalidPrice},
		{"negative", "-1.00", domain.ErrNegativePrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pc.CartTotal([]domain.CartLine{line("ok", 1, "1.00"), line("bad", 1, tc.price)})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "bad")
		})
	}
}

func TestQuote(t *testing.T) {
	pc := NewPricingCalculator()

	q, err := pc.Quote([]domain.CartLine{line("p1", 2, "9.99"), line("p2", 1, "5")})
	require.NoError(t, err)

	require.Len(t, q.Lines, 2)
	assert.Equal(t, "19.98", q.Lines[0].Subtotal.String())
	assert.Equal(t, "5.00", q.Lines[1].Subtotal.String())
	assert.Equal(t, 3, q.ItemCount)
	assert.Equal(t, "24.98", q.Total.String())
}
