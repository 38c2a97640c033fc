package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer disables the hook, then syncs and closes every log file. It is
// idempotent and keeps closing after a failure.
type closer struct {
	closers []io.Closer
	hook    *hook
	closed  atomic.Bool
}

// Close releases the logging resources.
//
// Order:
//  1. close the hook, so no entry is written to a closed file
//  2. sync and close each file, collecting every failure with errors.Join
//
// Calls after the first return nil.
func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
