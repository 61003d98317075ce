package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggingCreatesDir(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	logDir := filepath.Join(t.TempDir(), "config", "logs")
	closer, err := InitLogging(logDir, false)
	require.NoError(t, err)

	log.Info().Msg("launcher started")
	log.Debug().Msg("hidden without console")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "launcher started")
	assert.NotContains(t, string(data), "hidden without console")
}

func TestInitLoggingBadDir(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := InitLogging(filepath.Join(file, "logs"), false)
	require.Error(t, err)
}
