package logging

import (
  "bytes"
  "encoding/json"
  "testing"

  "github.com/sirupsen/logrus"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
  var buf bytes.Buffer
  logger, err := New(&buf, "debug", "json")
  require.NoError(t, err)
  assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

  logger.WithField("component", "test").Info("hello")

  var entry map[string]any
  require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
  assert.Equal(t, "hello", entry["msg"])
  assert.Equal(t, "test", entry["component"])
}

func TestNewText(t *testing.T) {
  var buf bytes.Buffer
  logger, err := New(&buf, "warn", "")
  require.NoError(t, err)

  logger.Info("dropped")
  assert.Empty(t, buf.String())

  logger.Warn("kept")
  assert.Contains(t, buf.String(), "kept")
}

func TestNewRejectsBadInput(t *testing.T) {
  _, err := New(&bytes.Buffer{}, "loud", "text")
  assert.Error(t, err)

  _, err = New(&bytes.Buffer{}, "info", "xml")
  assert.Error(t, err)
}
