package util

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerTo_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "production")

	logger.Debug("hidden")
	logger.Info("hello", "tenant_id", "t1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "t1", entry["tenant_id"])
	assert.Equal(t, "taskhub", entry["service"])
}

func TestNewLoggerTo_DevelopmentLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "development")

	logger.Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "level=DEBUG")
}
