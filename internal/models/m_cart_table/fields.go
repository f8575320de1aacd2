package m_cart_table

// Field constants for the cart_tables table.
const (
	TableName = "cart_tables"

	ColStorageKey = "storage_key"
	ColPayload    = "payload"
	ColUpdatedAt  = "updated_at"
)
