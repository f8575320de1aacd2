package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_ReadBeforeWrite(t *testing.T) {
	m := NewMemory()
	_, err := m.Read(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_RoundTripCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []byte(`{"u1":[]}`)
	require.NoError(t, m.Write(ctx, in))
	in[0] = 'X'

	out, err := m.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"u1":[]}`, string(out))

	out[0] = 'Y'
	again, _ := m.Read(ctx)
	assert.Equal(t, `{"u1":[]}`, string(again))
	assert.Equal(t, 1, m.Writes())
}

func TestMemory_FailedWriteKeepsPreviousBytes(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryWith([]byte("old"))

	quota := errors.New("quota exceeded")
	m.FailWrites(quota)
	err := m.Write(ctx, []byte("new"))
	require.Error(t, err)
	assert.ErrorIs(t, err, quota)

	got, err := m.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	m.FailWrites(nil)
	require.NoError(t, m.Write(ctx, []byte("new")))
	got, _ = m.Read(ctx)
	assert.Equal(t, "new", string(got))
}

func TestMemory_Clear(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryWith([]byte("x"))
	m.Clear()
	_, err := m.Read(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemory()
	assert.ErrorIs(t, m.Write(ctx, []byte("x")), context.Canceled)
	_, err := m.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
