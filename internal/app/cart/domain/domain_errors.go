package domain

import "errors"

// Domain errors for identity and cart lines
var (
	// ErrNoUser indicates a cart mutation was attempted without a user identity.
	// Callers should prompt the visitor to log in.
	ErrNoUser = errors.New("no user identity: log in to use the cart")

	// ErrEmptyProductID indicates a product snapshot or line without a product id.
	ErrEmptyProductID = errors.New("product id cannot be empty")

	// ErrInvalidID indicates a user or product id that is not valid UTF-8.
	ErrInvalidID = errors.New("id must be valid UTF-8")

	// ErrInvalidQuantity indicates a stored line whose quantity is below one.
	ErrInvalidQuantity = errors.New("cart line quantity must be at least 1")

	// ErrDuplicateLine indicates two lines for the same product in one cart.
	ErrDuplicateLine = errors.New("cart contains more than one line for a product")
)

// Domain errors for persistence
var (
	// ErrStorageWrite indicates the cart table could not be written.
	// The previously stored table is left untouched.
	ErrStorageWrite = errors.New("cart changes were not saved")

	// ErrStorageRead indicates the backing store could not be reached while
	// preparing a mutation.
	ErrStorageRead = errors.New("cart storage is unavailable")

	// ErrDeserialization indicates the stored bytes are not a valid cart table.
	// It is always recovered locally by treating the table as empty.
	ErrDeserialization = errors.New("stored cart table is malformed")
)

// Domain errors for pricing
var (
	// ErrMissingPrice indicates a snapshot without a price.
	ErrMissingPrice = errors.New("product price is missing")

	// ErrInvalidPrice indicates a snapshot price that is not a decimal number.
	ErrInvalidPrice = errors.New("product price is not a number")

	// ErrNegativePrice indicates a snapshot price below zero.
	ErrNegativePrice = errors.New("price cannot be negative")
)
