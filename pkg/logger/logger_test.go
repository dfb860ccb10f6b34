package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_FormatsAndFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("skipped %d", 1)
	log.Warn("saved %d slots for %s", 3, "Monday")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "saved 3 slots for Monday", entry["message"])
}

func TestWith_AddsComponent(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "debug")
	require.NoError(t, err)

	log.With("planner").Debug("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "planner", entry["component"])
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)
	log.Error("boom")
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "boom")
}

func TestWith_ChildCloseKeepsParentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	parent, err := New(path, "info")
	require.NoError(t, err)

	child := parent.With("planner")
	child.Info("from child")
	child.Close()
	child.Close()

	parent.Info("from parent after child close")
	child.Info("from child after close")
	parent.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	tests := []struct {
		name string
		want string
	}{
		{name: "child before close", want: "from child"},
		{name: "parent after child close", want: "from parent after child close"},
		{name: "child after its close", want: "from child after close"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, string(data), tt.want)
		})
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}
