package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook routes each entry by level:
//
//   - console: every level
//   - critical: ERROR, FATAL, PANIC
//   - verbose: DEBUG, TRACE (these never reach the main file when set)
//   - main: everything else, plus DEBUG/TRACE when no verbose writer exists
//
// A nil writer disables its output.
//
// Concurrency:
//   - Fire holds a read lock, so entries from many goroutines are written
//     concurrently; each lumberjack writer serializes its own writes.
//   - Close takes the write lock, so it returns only after in-flight Fire
//     calls have finished. Entries fired after Close are dropped.
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	// formatter renders each entry once; the bytes go to every output.
	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

// Levels subscribes the hook to every level; routing happens in Fire.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire formats entry and writes it to the outputs selected by its level.
//
// Write failures are reported on stderr. The first file failure is
// returned to logrus; console failures never are.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	var firstErr error
	write := func(w io.Writer, name string) {
		if _, err := w.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[log] %s write failed: %v\n", name, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	// Console failures are reported but never returned.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[log] console write failed: %v\n", err)
		}
	}

	if entry.Level <= ErrorLevel && h.criticalWriter != nil {
		write(h.criticalWriter, "critical")
	}

	if entry.Level >= DebugLevel && h.verboseWriter != nil {
		write(h.verboseWriter, "verbose")
		return firstErr
	}

	if h.mainWriter != nil {
		write(h.mainWriter, "main")
	}

	return firstErr
}

// Close stops the hook; it waits for in-flight Fire calls.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
