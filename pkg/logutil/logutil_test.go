package logutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"DEBUG", DEBUG},
		{"info", INFO},
		{" Warn ", WARN},
		{"error", ERROR},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestLevelFlagValue(t *testing.T) {
	level := WARN
	require.NoError(t, level.Set("debug"))
	assert.Equal(t, DEBUG, level)
	assert.Equal(t, "DEBUG", level.String())
	assert.Equal(t, "level", level.Type())

	// 非法值不修改原值
	assert.Error(t, level.Set("loud"))
	assert.Equal(t, DEBUG, level)
	assert.Equal(t, "Level(9)", Level(9).String())
}

// resetLogger 还原包级状态，让每个用例都能重新 InitLogger
func resetLogger(t *testing.T) {
	t.Helper()
	reset := func() {
		CloseLogger()
		logFile = nil
		once = sync.Once{}
		ready = false
		currentLevel = INFO
	}
	reset()
	t.Cleanup(reset)
}

func TestLogToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avl.log")
	resetLogger(t)
	InitLogger(path, INFO)

	Debug("hidden %d", 1)
	Info("insert %d", 20)
	SetLogLevel(DEBUG)
	Debug("rotate at %d", 10)
	Warn("duplicate %s", "20")
	SetLogLevel(INFO)
	assert.Equal(t, INFO, CurrentLevel())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.NotContains(t, text, "hidden 1")
	assert.Contains(t, text, "insert 20")
	assert.Contains(t, text, "rotate at 10")
	assert.Contains(t, text, "duplicate 20")
	assert.Contains(t, text, "logutil_test.go")
}

// InitLogger 之前打的日志不能让后面的 InitLogger 失效
func TestLogBeforeInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.log")
	resetLogger(t)
	Warn("before init %d", 1)
	Info("before init %d", 2)
	assert.False(t, ready)

	InitLogger(path, DEBUG)
	assert.Equal(t, DEBUG, CurrentLevel())

	Debug("after init %d", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "after init 3")
	assert.NotContains(t, text, "before init")
}
