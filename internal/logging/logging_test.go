package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestSetup_WritesToFile(t *testing.T) {
	restoreGlobals(t)
	path := filepath.Join(t.TempDir(), "logs", "radiofree.log")

	closer, err := Setup("info", path)
	require.NoError(t, err)

	l := Component("radio")
	l.Info().Str("channel", "abc").Msg("tuned")
	l.Debug().Msg("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"component":"radio"`)
	assert.Contains(t, out, `"channel":"abc"`)
	assert.Contains(t, out, `"time":`)
	assert.NotContains(t, out, "hidden")
}

func TestSetup_EmptyPathDiscards(t *testing.T) {
	restoreGlobals(t)

	closer, err := Setup("debug", "")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetup_BadLevel(t *testing.T) {
	restoreGlobals(t)

	_, err := Setup("loud", "")
	assert.Error(t, err)
}
