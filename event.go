package karl

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ProcessInfo identifies the owning process. Both fields are fixed at
// startup and identical across all events emitted by one process.
type ProcessInfo struct {
	Name string
	PID  int
}

// Event is a single log record. It is built fresh per call on the
// worker goroutine and must be treated as immutable once formatted;
// only an enrich callback may mutate it, via Add, before rendering.
type Event struct {
	Timestamp time.Time
	Level     Level
	HostName  string
	Process   ProcessInfo
	Message   string

	// Call-site fields. A zero LineNumber means location is absent:
	// FileName and FilePath render as null and FunctionName carries
	// the anonymous sentinel. The four are never partially populated.
	FileName     string
	FilePath     string
	LineNumber   int
	FunctionName string

	// Extra holds fields added by an enrich callback, rendered after
	// the fixed fields in emission order.
	Extra []Field
}

// Add appends extra fields to the event. Intended for enrich callbacks.
func (e *Event) Add(fs ...Field) {
	e.Extra = append(e.Extra, fs...)
}

// located reports whether the call-site fields carry a real location.
func (e *Event) located() bool { return e.LineNumber > 0 }

// hostName resolves the host name once per process. The value is
// cheap and stable; a rename mid-run is not tracked.
var hostName = sync.OnceValue(func() string {
	h, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return h
})

// processInfo derives the display name from the entry binary's file
// name with the extension stripped, and captures the pid, once.
var processInfo = sync.OnceValue(func() ProcessInfo {
	name := "unknown"
	if len(os.Args) > 0 && os.Args[0] != "" {
		base := filepath.Base(os.Args[0])
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return ProcessInfo{Name: name, PID: os.Getpid()}
})
