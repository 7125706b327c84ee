// Package logging provides unit tests for the multi handler.
package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultiHandler_FansOut tests that a record reaches every writer.
func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	logger := slog.New(NewMultiHandler(&a, &b))

	logger.Info("run started", "algorithm", "bubble")

	assert.Contains(t, a.String(), "run started")
	assert.Contains(t, a.String(), "algorithm=bubble")
	assert.Equal(t, a.String(), b.String())
}

// TestMultiHandler_WithAttrs tests attribute propagation.
func TestMultiHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(&buf).WithAttrs([]slog.Attr{slog.String("run_id", "abc")})
	logger := slog.New(h)

	logger.Info("step")

	assert.Contains(t, buf.String(), "run_id=abc")
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}

// TestSetup tests that a dated log file is created and written.
func TestSetup(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	file, err := Setup(dir, "sortviz-test", &console)
	require.NoError(t, err)
	defer file.Close()

	slog.Info("hello from setup")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "sortviz-test-"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from setup")
	assert.Contains(t, console.String(), "hello from setup")
}

// TestNop tests the discard logger does not panic.
func TestNop(t *testing.T) {
	Nop().Info("ignored")
}
