package contracts

import "context"

// Store is the persistent store adapter the cart repository is built on.
// It holds one opaque byte string.
type Store interface {
	// Read returns the stored bytes, or an error wrapping blobstore.ErrNotFound
	// when nothing has been stored yet.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored bytes. It is all-or-nothing: on error the
	// previously stored bytes are still intact.
	Write(ctx context.Context, data []byte) error
}
