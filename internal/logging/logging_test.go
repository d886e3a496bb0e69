package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, "debug", true)

	logrus.WithField("pairings", 3).Debug("derived palette")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "derived palette", entry["msg"])
	assert.Equal(t, float64(3), entry["pairings"])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigureUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, "chatty", false)

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	logrus.Debug("hidden")
	assert.Empty(t, buf.String())

	logrus.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
