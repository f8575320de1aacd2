package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// UserID identifies a visitor. The empty value means anonymous.
type UserID string

// IsAnonymous reports whether no identity was supplied.
func (u UserID) IsAnonymous() bool {
	return strings.TrimSpace(string(u)) == ""
}

// Validate returns ErrNoUser for an anonymous id and ErrInvalidID for one
// that is not valid UTF-8.
func (u UserID) Validate() error {
	if u.IsAnonymous() {
		return ErrNoUser
	}
	if !utf8.ValidString(string(u)) {
		return ErrInvalidID
	}
	return nil
}

// ProductID identifies a catalog item.
type ProductID string

// Normalize trims surrounding whitespace. Ids that are not valid UTF-8
// cannot be stored and yield ErrInvalidID.
func (p ProductID) Normalize() (ProductID, error) {
	if !utf8.ValidString(string(p)) {
		return "", ErrInvalidID
	}
	return ProductID(strings.TrimSpace(string(p))), nil
}

// ProductSnapshot is the copy of catalog fields captured when a product is
// first added to a cart. It is never refreshed from the live catalog.
type ProductSnapshot struct {
	ProductID   ProductID
	Name        string
	Description string
	// Price is the catalog's decimal string, e.g. "9.99".
	Price    string
	ImageURL string
	Category string
}

// UnitPrice parses the snapshot price.
func (s ProductSnapshot) UnitPrice() (*Money, error) {
	raw := strings.TrimSpace(s.Price)
	if raw == "" {
		return nil, fmt.Errorf("product %s: %w", s.ProductID, ErrMissingPrice)
	}
	price, err := NewMoneyFromDecimal(raw)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w: %q", s.ProductID, ErrInvalidPrice, s.Price)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("product %s: %w", s.ProductID, ErrNegativePrice)
	}
	return price, nil
}
