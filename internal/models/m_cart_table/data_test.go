package m_cart_table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpsertMap(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	values := BuildUpsertMap("ecommerce_carts", []byte(`{}`), at)

	require.Len(t, values, 3)
	assert.Equal(t, "ecommerce_carts", values[ColStorageKey])
	assert.Equal(t, []byte(`{}`), values[ColPayload])
	assert.Equal(t, at.UTC(), values[ColUpdatedAt])
	assert.Equal(t, time.UTC, values[ColUpdatedAt].(time.Time).Location())
}

func TestMutations(t *testing.T) {
	values := BuildUpsertMap("k", []byte("x"), time.Now())
	require.NotNil(t, UpsertMutation(values))
	require.NotNil(t, DeleteMutation("k"))
}
