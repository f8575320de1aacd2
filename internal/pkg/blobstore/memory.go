package blobstore

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Memory keeps the blob in process memory. It is the default backend for
// local runs and the fake used by tests.
type Memory struct {
	mu       sync.Mutex
	data     []byte
	stored   bool
	writeErr error
	writes   int
}

func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith returns a Memory store pre-loaded with data.
func NewMemoryWith(data []byte) *Memory {
	m := &Memory{}
	m.data = append([]byte(nil), data...)
	m.stored = true
	return m
}

func (m *Memory) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.stored {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

func (m *Memory) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return errors.Wrap(m.writeErr, "blobstore: memory write")
	}
	m.data = append([]byte(nil), data...)
	m.stored = true
	m.writes++
	return nil
}

// FailWrites makes every following Write return err. Pass nil to recover.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// Writes returns the number of successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Clear drops the stored blob, like clearing browser storage.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	m.stored = false
}
