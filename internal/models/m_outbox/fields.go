package m_outbox

const (
	TableName = "cart_outbox"

	ColEventID     = "event_id"
	ColEventType   = "event_type"
	ColUserID      = "user_id"
	ColPayload     = "payload"
	ColStatus      = "status"
	ColOccurredAt  = "occurred_at"
	ColCreatedAt   = "created_at"
	ColProcessedAt = "processed_at"
)

// StatusPending marks a row no relay has picked up yet.
const StatusPending = "pending"

// insertColumns fixes the column order of outbox inserts.
var insertColumns = []string{
	ColEventID,
	ColEventType,
	ColUserID,
	ColPayload,
	ColStatus,
	ColOccurredAt,
	ColCreatedAt,
	ColProcessedAt,
}
