package logger

import (
	"sync"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

// Entry is a single captured log call.
type Entry struct {
	Level  string
	Msg    string
	Fields map[string]any
}

// Recorder is a types.Logger that captures entries in memory.
//
// Tests use it to assert how many events a component emitted and with which
// fields. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Compile-time assertion that Recorder implements Logger.
var _ types.Logger = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Entries returns a copy of all captured entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Entry(nil), r.entries...)
}

// ByLevel returns captured entries at the given level ("DEBUG", "INFO", "WARN", "ERROR", "FATAL").
func (r *Recorder) ByLevel(level string) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Entry
	for _, e := range r.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}

	return out
}

func (r *Recorder) Debug(msg string, keysAndValues ...any) { r.record("DEBUG", msg, keysAndValues) }
func (r *Recorder) Info(msg string, keysAndValues ...any)  { r.record("INFO", msg, keysAndValues) }
func (r *Recorder) Warn(msg string, keysAndValues ...any)  { r.record("WARN", msg, keysAndValues) }
func (r *Recorder) Error(msg string, keysAndValues ...any) { r.record("ERROR", msg, keysAndValues) }

// Fatal records the entry and does NOT call os.Exit.
func (r *Recorder) Fatal(msg string, keysAndValues ...any) { r.record("FATAL", msg, keysAndValues) }

func (r *Recorder) record(level, msg string, keysAndValues []any) {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}

	r.mu.Lock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: fields})
	r.mu.Unlock()
}
