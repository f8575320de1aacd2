package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDDLDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_b.sql"), []byte("CREATE INDEX b ON t (x);\r\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_a.sql"), []byte("-- first\nCREATE TABLE t (x INT64) PRIMARY KEY (x);\n\n"), 0o644))

	stmts, err := readDDLDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"CREATE TABLE t (x INT64) PRIMARY KEY (x)",
		"CREATE INDEX b ON t (x)",
	}, stmts)
}

func TestReadDDLDir_ShippedSchema(t *testing.T) {
	stmts, err := readDDLDir(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], "CREATE TABLE cart_tables")
	assert.Contains(t, stmts[1], "CREATE TABLE cart_outbox")
	assert.Contains(t, stmts[2], "CREATE INDEX cart_outbox_by_status")
}
