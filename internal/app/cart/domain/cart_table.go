package domain

import "sort"

// CartTable maps every known user to their cart lines.
// It is the unit of durable storage: it is read and written as a whole.
type CartTable struct {
	carts map[UserID][]CartLine
}

// NewCartTable returns an empty table.
func NewCartTable() *CartTable {
	return &CartTable{carts: make(map[UserID][]CartLine)}
}

// Lines returns a copy of the user's lines, or an empty slice when the user
// has no entry.
func (t *CartTable) Lines(userID UserID) []CartLine {
	lines := t.carts[userID]
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}

// Has reports whether the table holds an entry for userID (possibly empty).
func (t *CartTable) Has(userID UserID) bool {
	_, ok := t.carts[userID]
	return ok
}

// Put replaces the user's entry after checking the line invariants.
func (t *CartTable) Put(userID UserID, lines []CartLine) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := ValidateLines(lines); err != nil {
		return err
	}
	cp := make([]CartLine, len(lines))
	copy(cp, lines)
	t.carts[userID] = cp
	return nil
}

// Delete drops the user's entry. It reports whether an entry existed.
func (t *CartTable) Delete(userID UserID) bool {
	if _, ok := t.carts[userID]; !ok {
		return false
	}
	delete(t.carts, userID)
	return true
}

// Users returns all user ids in ascending order.
func (t *CartTable) Users() []UserID {
	out := make([]UserID, 0, len(t.carts))
	for u := range t.carts {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t *CartTable) Len() int {
	return len(t.carts)
}

// Cart reconstructs the aggregate for userID from the table.
func (t *CartTable) Cart(userID UserID) *Cart {
	lines, ok := t.carts[userID]
	c := ReconstructCart(userID, lines)
	c.stored = ok
	return c
}

// Apply writes the aggregate's state back into the table.
// A checked-out cart removes the entry.
func (t *CartTable) Apply(c *Cart) error {
	if c.IsCheckedOut() {
		t.Delete(c.UserID())
		return nil
	}
	return t.Put(c.UserID(), c.lines)
}
