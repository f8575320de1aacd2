package domain

// ChangeTracker tracks which product lines have been touched in a cart.
// Repositories use it to skip writes for transactions that changed nothing.
type ChangeTracker struct {
	dirty map[ProductID]bool
	order []ProductID
}

// NewChangeTracker creates a new ChangeTracker instance.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirty: make(map[ProductID]bool),
	}
}

// MarkDirty marks a product line as modified.
func (ct *ChangeTracker) MarkDirty(id ProductID) {
	if ct.dirty[id] {
		return
	}
	ct.dirty[id] = true
	ct.order = append(ct.order, id)
}

// Dirty checks if a specific product line has been marked dirty.
func (ct *ChangeTracker) Dirty(id ProductID) bool {
	return ct.dirty[id]
}

// HasChanges returns true if any line has been marked dirty.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// DirtyLines returns the touched product ids in the order they were first marked.
func (ct *ChangeTracker) DirtyLines() []ProductID {
	out := make([]ProductID, len(ct.order))
	copy(out, ct.order)
	return out
}

// Clear removes all dirty markers.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[ProductID]bool)
	ct.order = nil
}
