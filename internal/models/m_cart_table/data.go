package m_cart_table

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildUpsertMap prepares the row that holds one serialized cart table.
func BuildUpsertMap(storageKey string, payload []byte, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColStorageKey: storageKey,
		ColPayload:    payload,
		ColUpdatedAt:  updatedAt.UTC(),
	}
}

// UpsertMutation builds an InsertOrUpdate mutation from a values map with the
// storage key first.
func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColStorageKey}
	vals := []interface{}{values[ColStorageKey]}
	for col, v := range values {
		if col == ColStorageKey {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.InsertOrUpdate(TableName, cols, vals)
}

// DeleteMutation removes the row for storageKey.
func DeleteMutation(storageKey string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{storageKey})
}
