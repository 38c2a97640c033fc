package errors

import (
	"path/filepath"
	"runtime"
)

// defaultCallerSkip skips runtime.Callers, captureStack and the public
// constructor so that frame 0 is the caller of New/Wrap.
const defaultCallerSkip = 3

// maxStackFrames bounds the frames kept per error.
const maxStackFrames = 5

// StackFrame is one captured call site.
type StackFrame struct {
	File     string // base name of the source file
	Line     int
	Function string // fully qualified, e.g. github.com/x/pkg.(*T).Method
}

// captureStack returns at most maxStackFrames frames starting skip frames
// above runtime.Callers, or nil when none are available.
func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	callersFrames := runtime.CallersFrames(pc[:n])

	frames := make([]StackFrame, 0, n)
	for {
		frame, more := callersFrames.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
