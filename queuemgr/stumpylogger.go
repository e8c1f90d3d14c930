package queuemgr

import (
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// StumpyLogger adapts a github.com/joeycumines/stumpy JSON logger (built on
// github.com/joeycumines/logiface) to the Logger interface a Manager wants.
// This is the production logging path; cmd/queuesim wires it to stdout.
type StumpyLogger struct {
	logger *logiface.Logger[*stumpy.Event]
}

// NewStumpyLogger builds a StumpyLogger writing newline-delimited JSON to w.
// Events below minLevel are dropped by logiface before they ever reach the
// stumpy encoder.
func NewStumpyLogger(w io.Writer, minLevel logiface.Level) *StumpyLogger {
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		logiface.WithLevel[*stumpy.Event](minLevel),
	)
	return &StumpyLogger{logger: logger}
}

func (s *StumpyLogger) Debug(event string, fields ...Field) {
	emit(s.logger.Debug(), event, fields)
}

func (s *StumpyLogger) Warn(event string, fields ...Field) {
	emit(s.logger.Warning(), event, fields)
}

func emit(b *logiface.Builder[*stumpy.Event], event string, fields []Field) {
	for _, f := range fields {
		b = b.Field(f.Key, f.Value)
	}
	b.Log(event)
}
