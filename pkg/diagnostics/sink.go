package diagnostics

import (
	"fmt"
	"io"
	"log"
)

// Level distinguishes a recoverable warning from a document-degrading
// error (spec.md §7's taxonomy; fatal failures are never reported
// through a Sink — they are returned as an error from citygml.Load).
type Level int

const (
	LevelWarn Level = iota
	LevelError
)

// String renders the level for log output.
func (l Level) String() string {
	if l == LevelError {
		return "ERROR"
	}
	return "WARN"
}

// Sink receives parse-time diagnostics. Implementations must be safe to
// call from a single goroutine only — Load is synchronous and
// single-threaded (spec.md §5), so no internal locking is required.
type Sink interface {
	Diagnosef(level Level, format string, args ...any)
}

// Warnf reports a recoverable warning. It is a small convenience wired
// against the Sink interface so callers (and pkg/tessellate's narrower
// DiagnosticSink) don't need to spell out LevelWarn every time.
func Warnf(s Sink, format string, args ...any) {
	if s == nil {
		return
	}
	s.Diagnosef(LevelWarn, format, args...)
}

// Errorf reports a document-degrading error.
func Errorf(s Sink, format string, args ...any) {
	if s == nil {
		return
	}
	s.Diagnosef(LevelError, format, args...)
}

// logSink adapts the standard library's log.Logger to Sink — the default
// per spec.md §7 ("default: stderr-equivalent"), matching the teacher's
// own ambient use of plain fmt/log rather than a structured-logging
// dependency (no such dependency exists anywhere in the example corpus).
type logSink struct {
	logger *log.Logger
}

// NewLogSink wraps w in a Sink that writes one line per diagnostic.
func NewLogSink(w io.Writer) Sink {
	return &logSink{logger: log.New(w, "", log.LstdFlags)}
}

func (s *logSink) Diagnosef(level Level, format string, args ...any) {
	s.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

// warnfAdapter lets Sink satisfy pkg/tessellate.DiagnosticSink (a single
// Warnf method) without pkg/tessellate importing this package.
type warnfAdapter struct {
	sink Sink
}

// AsTessellatorSink adapts a Sink to pkg/tessellate.DiagnosticSink.
func AsTessellatorSink(s Sink) warnfAdapter {
	return warnfAdapter{sink: s}
}

func (a warnfAdapter) Warnf(format string, args ...any) {
	Warnf(a.sink, format, args...)
}
