package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProdIsJSONInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("prod", buf)

	log.Debug("hidden")
	log.Info("calculated", "total", 10.5)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "calculated", rec["msg"])
	assert.Equal(t, "churrasco-bot", rec["service"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestDevLogsDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	NewWithWriter("dev", buf).Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
}
