package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Debugw("hidden", "row", 1)
	logger.Infow("Catalogue processed", "rules", 3)
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "Catalogue processed")
	assert.Contains(t, out, `"rules": 3`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := NewWithWriter("verbose", &bytes.Buffer{})
	assert.Error(t, err)
}
