package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// CartLine is one product entry in a cart.
type CartLine struct {
	ProductID ProductID
	Quantity  int
	Snapshot  ProductSnapshot
}

// Cart is the aggregate root for one visitor's cart.
// It owns the ordered lines while a transaction is in progress.
type Cart struct {
	userID     UserID
	lines      []CartLine
	checkedOut bool
	stored     bool
	changes    *ChangeTracker
	events     []DomainEvent
}

// NewCart creates an empty cart for the given user.
func NewCart(userID UserID) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return ReconstructCart(userID, nil), nil
}

// ReconstructCart rebuilds a Cart from persisted lines.
// Used by the repository layer; the lines are copied.
func ReconstructCart(userID UserID, lines []CartLine) *Cart {
	cp := make([]CartLine, len(lines))
	copy(cp, lines)
	return &Cart{
		userID:  userID,
		lines:   cp,
		changes: NewChangeTracker(),
		events:  make([]DomainEvent, 0),
	}
}

// Getters

func (c *Cart) UserID() UserID {
	return c.userID
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// ItemCount returns the sum of all line quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Line returns the line for productID, if present.
func (c *Cart) Line(productID ProductID) (CartLine, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i], true
	}
	return CartLine{}, false
}

// IsStored reports whether the cart was loaded from an existing table entry.
func (c *Cart) IsStored() bool {
	return c.stored
}

func (c *Cart) IsCheckedOut() bool {
	return c.checkedOut
}

func (c *Cart) Changes() *ChangeTracker {
	return c.changes
}

// HasChanges reports whether the cart must be written back.
func (c *Cart) HasChanges() bool {
	return c.checkedOut || c.changes.HasChanges()
}

func (c *Cart) DomainEvents() []DomainEvent {
	return c.events
}

// Business Methods

// Add puts one unit of the product into the cart.
// An existing line keeps its first-seen snapshot and gains 1 in quantity.
func (c *Cart) Add(snapshot ProductSnapshot, now time.Time) error {
	if err := c.userID.Validate(); err != nil {
		return err
	}
	id, err := snapshot.ProductID.Normalize()
	if err != nil {
		return err
	}
	if id == "" {
		return ErrEmptyProductID
	}
	snapshot.ProductID = id

	quantity := 1
	if i := c.indexOf(id); i >= 0 {
		c.lines[i].Quantity++
		quantity = c.lines[i].Quantity
	} else {
		c.lines = append(c.lines, CartLine{ProductID: id, Quantity: 1, Snapshot: snapshot})
	}
	c.changes.MarkDirty(id)

	c.events = append(c.events, &LineAddedEvent{
		UserID:    c.userID,
		ProductID: id,
		Quantity:  quantity,
		AddedAt:   now,
	})
	return nil
}

// SetQuantity overwrites the quantity of an existing line.
// A quantity of zero or less removes the line; a missing line is left alone.
func (c *Cart) SetQuantity(productID ProductID, quantity int, now time.Time) error {
	if err := c.userID.Validate(); err != nil {
		return err
	}
	productID, err := productID.Normalize()
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return c.Remove(productID, now)
	}

	i := c.indexOf(productID)
	if i < 0 {
		return nil
	}
	old := c.lines[i].Quantity
	if old == quantity {
		return nil
	}
	c.lines[i].Quantity = quantity
	c.changes.MarkDirty(productID)

	c.events = append(c.events, &QuantityChangedEvent{
		UserID:      c.userID,
		ProductID:   productID,
		OldQuantity: old,
		NewQuantity: quantity,
		ChangedAt:   now,
	})
	return nil
}

// Remove deletes the line for productID. Removing a missing line is a no-op.
func (c *Cart) Remove(productID ProductID, now time.Time) error {
	if err := c.userID.Validate(); err != nil {
		return err
	}
	productID, err := productID.Normalize()
	if err != nil {
		return err
	}
	i := c.indexOf(productID)
	if i < 0 {
		return nil
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.changes.MarkDirty(productID)

	c.events = append(c.events, &LineRemovedEvent{
		UserID:    c.userID,
		ProductID: productID,
		RemovedAt: now,
	})
	return nil
}

// Checkout marks the cart as ordered. The repository then drops the entry.
func (c *Cart) Checkout(orderID string, now time.Time) error {
	if err := c.userID.Validate(); err != nil {
		return err
	}
	c.events = append(c.events, &CartCheckedOutEvent{
		UserID:       c.userID,
		OrderID:      orderID,
		LineCount:    len(c.lines),
		ItemCount:    c.ItemCount(),
		CheckedOutAt: now,
	})
	c.checkedOut = true
	return nil
}

// ClearEvents clears the accumulated domain events.
// Should be called after events have been published.
func (c *Cart) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}

func (c *Cart) indexOf(productID ProductID) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// ValidateLines checks the per-cart invariants: non-empty UTF-8 ids,
// quantity of at least one and no duplicate products.
func ValidateLines(lines []CartLine) error {
	seen := make(map[ProductID]struct{}, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(string(l.ProductID)) == "" {
			return ErrEmptyProductID
		}
		if !utf8.ValidString(string(l.ProductID)) {
			return ErrInvalidID
		}
		if l.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if _, dup := seen[l.ProductID]; dup {
			return ErrDuplicateLine
		}
		seen[l.ProductID] = struct{}{}
	}
	return nil
}
