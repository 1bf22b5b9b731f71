// Package logger provides logging helpers for tests.
package logger

import (
	"fmt"
	"strings"
	"testing"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

// TestLogger routes allocation log lines into the test output so skipped IDs
// and reallocation warnings show up next to the failing assertion.
type TestLogger struct {
	t testing.TB
}

var _ types.Logger = (*TestLogger)(nil)

// NewTest returns a logger bound to t.
//
// Example:
//
//	func TestGreedy(t *testing.T) {
//	    g := strategy.NewGreedy(strategy.WithLogger(logger.NewTest(t)))
//	}
func NewTest(t testing.TB) *TestLogger {
	return &TestLogger{t: t}
}

func (l *TestLogger) Debug(msg string, keysAndValues ...any) { l.logf("DEBUG", msg, keysAndValues) }
func (l *TestLogger) Info(msg string, keysAndValues ...any)  { l.logf("INFO", msg, keysAndValues) }
func (l *TestLogger) Warn(msg string, keysAndValues ...any)  { l.logf("WARN", msg, keysAndValues) }
func (l *TestLogger) Error(msg string, keysAndValues ...any) { l.logf("ERROR", msg, keysAndValues) }

// Fatal fails the test immediately.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Fatalf("FATAL: %s%s", msg, formatKeyValues(keysAndValues))
}

func (l *TestLogger) logf(level, msg string, keysAndValues []any) {
	l.t.Helper()
	l.t.Logf("%s: %s%s", level, msg, formatKeyValues(keysAndValues))
}

// formatKeyValues renders pairs as " k=v"; a dangling key is shown as k=<missing>.
func formatKeyValues(keysAndValues []any) string {
	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, " %v=<missing>", keysAndValues[i])
		}
	}

	return b.String()
}
