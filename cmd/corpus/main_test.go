package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestModeFilter(t *testing.T) {
	for _, mode := range []string{"all", "", "int", "integer", "float"} {
		_, err := modeFilter(mode)
		assert.NoError(t, err, mode)
	}
	_, err := modeFilter("double")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug", "json")
	assert.NoError(t, err)
	_, err = newLogger("loud", "json")
	assert.Error(t, err)
	_, err = newLogger("info", "xml")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(zap.NewNop(), &out, "./", "int", true, ""))
	s := out.String()
	assert.Contains(t, s, "16 cases")
	assert.Contains(t, s, "fibonacci")
	assert.Contains(t, s, "disabled: requires v8muld support")
	assert.NotContains(t, s, "test_sqrt")
	assert.Len(t, strings.Split(strings.TrimSpace(s), "\n"), 17)
}

func TestDot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.dot")
	require.NoError(t, run(zap.NewNop(), &bytes.Buffer{}, "./", "float", false, path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "digraph corpus")
	assert.Contains(t, string(b), "test_sqrt")

	var out bytes.Buffer
	require.NoError(t, run(zap.NewNop(), &out, "./", "all", false, "-"))
	assert.Contains(t, out.String(), "fibonacci")

	assert.Error(t, run(zap.NewNop(), &out, "./", "bogus", true, ""))
}

func TestRealMain(t *testing.T) {
	t.Run("Usage", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, realMain(nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "Usage: corpus")
		assert.Empty(t, stdout.String())
	})
	t.Run("BadFlag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, realMain([]string{"-verbose"}, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "-verbose")
	})
	t.Run("BadLogFormat", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, realMain([]string{"-list", "-log-format", "xml"}, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "unknown log format")
	})
	t.Run("RunError", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		args := []string{"-list", "-mode", "double", "-log-level", "fatal"}
		assert.Equal(t, 1, realMain(args, &stdout, &stderr))
		assert.Empty(t, stdout.String())
	})
	t.Run("List", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		args := []string{"-root", "./", "-list", "-mode", "int", "-log-level", "error"}
		assert.Equal(t, 0, realMain(args, &stdout, &stderr))
		assert.Contains(t, stdout.String(), "fibonacci")
	})
}
