package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return line
}

func TestLogger_SingleTimestamp(t *testing.T) {
	var buf bytes.Buffer
	New("pos", slog.LevelInfo, &buf).Info("create_order", "req-1", "order created")

	line := decodeLine(t, &buf)
	assert.NotContains(t, line, "time")
	require.Contains(t, line, "timestamp")
	_, err := time.Parse(time.RFC3339, line["timestamp"].(string))
	assert.NoError(t, err)

	assert.Equal(t, "pos", line["service"])
	assert.Equal(t, "create_order", line["action"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "order created", line["msg"])
}

func TestLogger_ErrorGroup(t *testing.T) {
	var buf bytes.Buffer
	New("pos", slog.LevelInfo, &buf).Error("list_orders", "req-2", "list failed", errors.New("db closed"))

	line := decodeLine(t, &buf)
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, map[string]any{"msg": "db closed"}, line["error"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	New("pos", ParseLevel("warn"), &buf).Info("noop", "", "hidden")
	assert.Zero(t, buf.Len())
}
