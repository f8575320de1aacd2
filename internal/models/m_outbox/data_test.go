package m_outbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertMap(t *testing.T) {
	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.FixedZone("CET", 3600))
	values := BuildInsertMap(Row{
		EventID:    "e1",
		EventType:  "cart.line_added",
		UserID:     "u1",
		Payload:    `{"user_id":"u1"}`,
		OccurredAt: at,
		CreatedAt:  at,
	})

	assert.Equal(t, StatusPending, values[ColStatus])
	assert.Equal(t, at.UTC(), values[ColOccurredAt])
	v, ok := values[ColProcessedAt]
	require.True(t, ok)
	assert.Nil(t, v)
	assert.Len(t, values, len(insertColumns))

	require.NotNil(t, InsertMutation(values))
}
