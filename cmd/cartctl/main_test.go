package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestPrintReply(t *testing.T) {
	reply, err := structpb.NewStruct(map[string]interface{}{"total": "19.98", "item_count": 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printReply(&buf, reply))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "19.98", got["total"])
	assert.Equal(t, float64(2), got["item_count"])
}

func TestApp_Commands(t *testing.T) {
	app := newApp(&bytes.Buffer{})
	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"get", "add", "set", "remove", "checkout"}, names)
}

func TestApp_SetRequiresArgs(t *testing.T) {
	app := newApp(&bytes.Buffer{})
	err := app.Run([]string{"cartctl", "--addr", "passthrough:///127.0.0.1:1", "--user", "u1", "set", "p1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: set")
}
