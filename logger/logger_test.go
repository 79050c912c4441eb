package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWriter struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func (w *memWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestLogger_WritesAllLevels(t *testing.T) {
	w := &memWriter{}
	l := newLogger(w, nil)

	ctx := context.Background()
	l.Info(ctx, "action=%s", "random")
	l.Warn(ctx, "history: %v", "unreachable")
	l.Error(ctx, "fatal kind=%s", "MissingInput")
	l.Close()

	out := w.buf.String()
	assert.Contains(t, out, "[INFO] action=random")
	assert.Contains(t, out, "[WARN] history: unreachable")
	assert.Contains(t, out, "[ERROR] fatal kind=MissingInput")
	assert.True(t, w.closed)
}

func TestLogger_InvocationID(t *testing.T) {
	w := &memWriter{}
	l := newLogger(w, nil)

	ctx := WithInvocation(context.Background(), "abc")
	l.Info(ctx, "hello")
	l.Close()

	assert.Contains(t, w.buf.String(), "[abc] hello")
	assert.Equal(t, "", InvocationID(context.Background()))
}

func TestLogger_JSONFormatter(t *testing.T) {
	w := &memWriter{}
	l := newLogger(w, nil)
	l.SetFormatter(JSONFormatter)
	l.SetFormatter(nil)

	l.Info(context.Background(), "bytes=%d", 6)
	l.Close()

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(w.buf.String())), &m))
	assert.Equal(t, "INFO", m["level"])
	assert.Equal(t, "bytes=6", m["msg"])
}

func TestLogger_CloseIsIdempotent(t *testing.T) {
	l := newLogger(&memWriter{}, nil)
	l.Close()
	l.Close()
}

func TestTextFormatter(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-01-02 03:04:05 [INFO] hi\n", TextFormatter("INFO", "hi", ts))
}

func TestNewLogger_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uuidgen.log")
	l := NewLogger(path, 1, 1, 1, false, nil)
	l.Info(context.Background(), "written to %s", "file")
	l.Close()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "written to file")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info(context.Background(), "ignored")
	l.SetFormatter(JSONFormatter)
	l.Close()
}
