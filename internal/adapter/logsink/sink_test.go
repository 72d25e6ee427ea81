package logsink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T, threshold int) *Sink {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "jaldh.log"), threshold)
	s.now = func() time.Time { return time.Date(2025, 6, 22, 9, 5, 7, 0, time.UTC) }
	return s
}

func readLog(t *testing.T, s *Sink) string {
	t.Helper()
	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	return string(b)
}

func TestLogFlushesEveryEntryByDefault(t *testing.T) {
	s := newTestSink(t, 0)

	s.Log("Starting jaldh")
	s.Log("done")

	assert.Equal(t, "2025-06-22 09:05:07  Starting jaldh\n2025-06-22 09:05:07  done\n", readLog(t, s))
}

func TestLogBuffersUpToThreshold(t *testing.T) {
	s := newTestSink(t, 3)

	s.Log("one")
	s.Log("two")
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "log written before threshold")

	s.Log("three")
	assert.Equal(t, 3, strings.Count(readLog(t, s), "\n"))

	s.Log("four")
	require.NoError(t, s.Flush())
	assert.Equal(t, 4, strings.Count(readLog(t, s), "\n"))
}

func TestLogAppendsAcrossSinks(t *testing.T) {
	s := newTestSink(t, 1)
	s.Log("first run")

	again := New(s.Path(), 1)
	again.now = s.now
	again.Log("second run")

	assert.Equal(t, "2025-06-22 09:05:07  first run\n2025-06-22 09:05:07  second run\n", readLog(t, s))
}

func TestFlushFailureKeepsBuffer(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, 5) // a directory cannot be opened for append
	s.Log("kept")

	assert.Error(t, s.Flush())
	assert.Len(t, s.buf, 1)
}

func TestRemove(t *testing.T) {
	s := newTestSink(t, 1)
	s.Log("x")

	require.NoError(t, s.Remove())
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Remove(), "removing a missing log is fine")
}
