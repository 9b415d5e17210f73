package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Fields is one structured log entry.
type Fields map[string]any

// Logger writes one JSON object per line. Every entry gets a "ts" in the configured
// location and a "level" derived from its "status" unless one is set explicitly.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	loc *time.Location
}

func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{w: w, loc: loc}
}

// Log emits the entry as is, after adding ts and level.
func (l *Logger) Log(data Fields) {
	entry := data.With(nil)
	entry["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := entry["level"]; !ok {
		if entry["status"] == "error" {
			entry["level"] = "error"
		} else {
			entry["level"] = "info"
		}
	}

	b, err := json.Marshal(entry)
	if err != nil {
		b = []byte(fmt.Sprintf(`{"level":"error","msg":"failed to marshal log entry","error":%q}`, err.Error()))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(append(b, '\n'))
}

func (l *Logger) Info(msg string, data Fields) {
	l.Log(data.With(Fields{"level": "info", "msg": msg}))
}

func (l *Logger) Error(msg string, err error, data Fields) {
	extra := Fields{"level": "error", "msg": msg}
	if err != nil {
		extra["error"] = err.Error()
	}
	l.Log(data.With(extra))
}

// With returns a copy of f extended by extra; extra wins on key collisions.
func (f Fields) With(extra Fields) Fields {
	out := make(Fields, len(f)+len(extra))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
