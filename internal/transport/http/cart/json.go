package cart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain/services"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/dto"
)

// looseString accepts a JSON string or number.
type looseString string

func (l *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*l = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = looseString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*l = looseString(n.String())
	return nil
}

type productJSON struct {
	ProductID   looseString `json:"product_id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       looseString `json:"price"`
	ImageURL    string      `json:"image_url,omitempty"`
	Category    string      `json:"category,omitempty"`
}

func (p productJSON) snapshot() domain.ProductSnapshot {
	return domain.ProductSnapshot{
		ProductID:   domain.ProductID(p.ProductID),
		Name:        p.Name,
		Description: p.Description,
		Price:       string(p.Price),
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
}

func newProductJSON(s domain.ProductSnapshot) productJSON {
	return productJSON{
		ProductID:   looseString(s.ProductID),
		Name:        s.Name,
		Description: s.Description,
		Price:       looseString(s.Price),
		ImageURL:    s.ImageURL,
		Category:    s.Category,
	}
}

type lineJSON struct {
	ProductID string      `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Product   productJSON `json:"product"`
	Subtotal  string      `json:"subtotal,omitempty"`
}

type cartJSON struct {
	UserID       string     `json:"user_id"`
	Lines        []lineJSON `json:"lines"`
	ItemCount    int        `json:"item_count"`
	Total        string     `json:"total,omitempty"`
	PricingError string     `json:"pricing_error,omitempty"`
}

type receiptJSON struct {
	Placed       bool       `json:"placed"`
	OrderID      string     `json:"order_id,omitempty"`
	UserID       string     `json:"user_id,omitempty"`
	Lines        []lineJSON `json:"lines,omitempty"`
	ItemCount    int        `json:"item_count,omitempty"`
	Total        string     `json:"total,omitempty"`
	PricingError string     `json:"pricing_error,omitempty"`
	PlacedAt     string     `json:"placed_at,omitempty"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func newLinesJSON(lines []domain.CartLine, quote *services.Quote) []lineJSON {
	out := make([]lineJSON, 0, len(lines))
	for i, l := range lines {
		lj := lineJSON{
			ProductID: string(l.ProductID),
			Quantity:  l.Quantity,
			Product:   newProductJSON(l.Snapshot),
		}
		if quote != nil && i < len(quote.Lines) {
			lj.Subtotal = quote.Lines[i].Subtotal.String()
		}
		out = append(out, lj)
	}
	return out
}

func newCartJSON(userID domain.UserID, lines []domain.CartLine, quote *services.Quote, quoteErr error) cartJSON {
	c := cartJSON{
		UserID: string(userID),
		Lines:  newLinesJSON(lines, quote),
	}
	for _, l := range lines {
		c.ItemCount += l.Quantity
	}
	if quoteErr != nil {
		c.PricingError = quoteErr.Error()
	} else if quote != nil {
		c.Total = quote.Total.String()
	}
	return c
}

func newReceiptJSON(r *dto.Receipt) receiptJSON {
	if r == nil {
		return receiptJSON{Placed: false}
	}
	out := receiptJSON{
		Placed:    true,
		OrderID:   r.OrderID,
		UserID:    string(r.UserID),
		Lines:     newLinesJSON(r.Lines, nil),
		ItemCount: r.ItemCount,
		PlacedAt:  r.PlacedAt.UTC().Format(time.RFC3339),
	}
	if r.Total != nil {
		out.Total = r.Total.String()
	}
	if r.PricingError != nil {
		out.PricingError = r.PricingError.Error()
	}
	return out
}
