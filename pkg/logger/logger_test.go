package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_JSONWithSystemField(t *testing.T) {
	var buf bytes.Buffer
	Init("debug", "JSON", &buf)
	t.Cleanup(func() { Init("info", "text", nil) })

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	For("room").Debug("player entered")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "room", entry["system"])
	assert.Equal(t, "player entered", entry["msg"])
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init("loud", "json", &buf)
	t.Cleanup(func() { Init("info", "text", nil) })

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.Contains(t, buf.String(), "unknown log level")
}
