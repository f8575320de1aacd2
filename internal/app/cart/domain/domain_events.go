package domain

import "time"

// DomainEvent is a marker interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// LineAddedEvent is raised when a product enters a cart or its quantity is bumped by an add.
type LineAddedEvent struct {
	UserID    UserID
	ProductID ProductID
	Quantity  int
	AddedAt   time.Time
}

func (e *LineAddedEvent) EventType() string {
	return "cart.line_added"
}

func (e *LineAddedEvent) AggregateID() string {
	return string(e.UserID)
}

func (e *LineAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// QuantityChangedEvent is raised when a line quantity is overwritten.
type QuantityChangedEvent struct {
	UserID      UserID
	ProductID   ProductID
	OldQuantity int
	NewQuantity int
	ChangedAt   time.Time
}

func (e *QuantityChangedEvent) EventType() string {
	return "cart.quantity_changed"
}

func (e *QuantityChangedEvent) AggregateID() string {
	return string(e.UserID)
}

func (e *QuantityChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// LineRemovedEvent is raised when a line leaves a cart.
type LineRemovedEvent struct {
	UserID    UserID
	ProductID ProductID
	RemovedAt time.Time
}

func (e *LineRemovedEvent) EventType() string {
	return "cart.line_removed"
}

func (e *LineRemovedEvent) AggregateID() string {
	return string(e.UserID)
}

func (e *LineRemovedEvent) OccurredAt() time.Time {
	return e.RemovedAt
}

// CartCheckedOutEvent is raised when an order is placed and the cart entry is dropped.
type CartCheckedOutEvent struct {
	UserID       UserID
	OrderID      string
	LineCount    int
	ItemCount    int
	CheckedOutAt time.Time
}

func (e *CartCheckedOutEvent) EventType() string {
	return "cart.checked_out"
}

func (e *CartCheckedOutEvent) AggregateID() string {
	return string(e.UserID)
}

func (e *CartCheckedOutEvent) OccurredAt() time.Time {
	return e.CheckedOutAt
}
