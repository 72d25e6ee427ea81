// Package logsink implements the persistent run log: timestamped lines
// buffered in memory and appended to a log file.
package logsink

import (
	"errors"
	"os"
	"strings"
	"time"

	"jaldh/internal/logger"
	"jaldh/internal/port"
)

var _ port.LogSink = (*Sink)(nil)

const (
	DefaultPath      = "jaldh.log"
	DefaultThreshold = 1

	timestampLayout = "2006-01-02 15:04:05"
)

// Sink buffers log entries and appends them to a file once the buffer holds
// threshold entries. A Sink is not safe for concurrent use.
type Sink struct {
	path      string
	threshold int
	buf       []string
	now       func() time.Time
}

// New creates a sink writing to path. A threshold below 1 flushes every entry.
func New(path string, threshold int) *Sink {
	if path == "" {
		path = DefaultPath
	}
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	return &Sink{
		path:      path,
		threshold: threshold,
		now:       time.Now,
	}
}

// Path returns the log file location.
func (s *Sink) Path() string {
	return s.path
}

// Log records msg as "YYYY-MM-DD HH:MM:SS  msg". Write failures are reported
// on the diagnostic logger and never returned.
func (s *Sink) Log(msg string) {
	s.buf = append(s.buf, s.now().Format(timestampLayout)+"  "+msg+"\n")
	if len(s.buf) >= s.threshold {
		if err := s.Flush(); err != nil {
			logger.Warn("error while logging to file: %v", err)
		}
	}
}

// Flush appends the buffered entries to the log file and clears the buffer.
// On failure the entries stay buffered.
func (s *Sink) Flush() error {
	if len(s.buf) == 0 {
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(s.buf, "")); err != nil {
		return err
	}
	s.buf = s.buf[:0]
	return nil
}

// Remove deletes the log file. A missing file is not an error.
func (s *Sink) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
