package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Row is one cart event waiting to be relayed.
type Row struct {
	EventID    string
	EventType  string
	UserID     string
	Payload    string
	OccurredAt time.Time
	CreatedAt  time.Time
}

// BuildInsertMap returns the column values for a pending outbox row.
func BuildInsertMap(r Row) map[string]interface{} {
	return map[string]interface{}{
		ColEventID:     r.EventID,
		ColEventType:   r.EventType,
		ColUserID:      r.UserID,
		ColPayload:     r.Payload,
		ColStatus:      StatusPending,
		ColOccurredAt:  r.OccurredAt.UTC(),
		ColCreatedAt:   r.CreatedAt.UTC(),
		ColProcessedAt: nil,
	}
}

// InsertMutation constructs a mutation for the outbox table.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	vals := make([]interface{}, 0, len(insertColumns))
	for _, c := range insertColumns {
		vals = append(vals, values[c])
	}
	return spanner.Insert(TableName, insertColumns, vals)
}
