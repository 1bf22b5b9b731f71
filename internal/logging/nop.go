package logging

import "github.com/javdevA/SmartDormCapstonePro/types"

// NewNop creates a no-op logger that discards all log output.
//
// Components default to it when no logger option is supplied.
func NewNop() types.Logger {
	return &nopLogger{}
}

type nopLogger struct{}

// Compile-time assertion that nopLogger implements Logger.
var _ types.Logger = (*nopLogger)(nil)

func (l *nopLogger) Debug(string, ...any) {}
func (l *nopLogger) Info(string, ...any)  {}
func (l *nopLogger) Warn(string, ...any)  {}
func (l *nopLogger) Error(string, ...any) {}

// Fatal discards the message and does NOT call os.Exit.
func (l *nopLogger) Fatal(string, ...any) {}
