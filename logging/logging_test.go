package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsSilentWithoutLogFile(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	debugMode.Store(false)

	Debugf("d %d", 1)
	Infof("i %d", 2)
	Warnf("w %d", 3)
	assert.Empty(t, buf.String())
}

func TestLevelsWrittenToLogFile(t *testing.T) {
	prev, prefix := log.Writer(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetPrefix(prefix)
	})

	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path)
	require.NoError(t, err)
	require.True(t, IsDebugMode())

	Infof("loaded %d lines", 8)
	Warnf("sort failed")
	cleanup()
	assert.False(t, IsDebugMode())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO loaded 8 lines")
	assert.Contains(t, string(data), "WARN sort failed")
}
