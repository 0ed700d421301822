package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/thronesquiz/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quiz.log")
	cfg := &config.Config{Log: config.Log{File: path, Level: "info"}}

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("hello from test")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestNew_Disabled(t *testing.T) {
	log, err := New(&config.Config{Log: config.Log{File: Disabled}})
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNew_BadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.log")
	_, err := New(&config.Config{Log: config.Log{File: path, Level: "loud"}})
	assert.Error(t, err)
}
