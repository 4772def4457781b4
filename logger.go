package karl

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

const defaultQueueDepth = 1024

// task carries everything captured synchronously in a logging call to
// the emission worker. opts pins the configuration active at call time.
type task struct {
	level Level
	at    time.Time
	site  callSite
	args  []any
	extra []Field
	opts  *Options

	// control tasks; a non-nil ack marks a flush, stop ends the worker
	ack  chan struct{}
	stop bool
}

// Logger is the log event pipeline. Severity methods capture call site
// and timestamp synchronously, then hand the rest of the work to a
// single worker goroutine over a FIFO queue, so lines reach the output
// stream in call order without the caller waiting on I/O.
type Logger struct {
	w   io.Writer
	wmu sync.Mutex

	opts    atomic.Pointer[Options]
	queue   chan task
	closed  atomic.Bool
	capture *consoleCapture

	// Observers: lock-free reads via atomic.Value; synchronized
	// updates via obsMu. Stored value is []Observer and MUST be
	// treated as immutable by readers.
	observers atomic.Value
	obsMu     sync.Mutex

	st         stats
	errHandler func(error)
}

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "karl: %v\n", err) }

// New creates a logger writing to standard output, applies the given
// options on top of the defaults and starts the emission worker.
func New(opts ...Option) *Logger {
	return NewWithWriter(os.Stdout, opts...)
}

// NewWithWriter is New with an explicit output stream. Intended for
// tests and for file sinks built with FileSink.
func NewWithWriter(w io.Writer, opts ...Option) *Logger {
	l := &Logger{
		w:          w,
		queue:      make(chan task, defaultQueueDepth),
		errHandler: defaultErrorHandler,
	}
	l.capture = newConsoleCapture(l)
	go l.run()
	l.Configure(opts...)
	return l
}

// SetErrorHandler replaces the handler invoked on write failures. The
// handler must not call back into the logger.
func (l *Logger) SetErrorHandler(f func(error)) {
	if f == nil {
		f = defaultErrorHandler
	}
	l.errHandler = f
}

// Severity entry points. Arguments follow the sprint contract: a
// leading string acts as a printf template, surplus arguments are
// appended space-separated.

func (l *Logger) Trace(args ...any) { l.log(LevelTrace, args) }
func (l *Logger) Debug(args ...any) { l.log(LevelDebug, args) }
func (l *Logger) Info(args ...any)  { l.log(LevelInfo, args) }
func (l *Logger) Warn(args ...any)  { l.log(LevelWarn, args) }
func (l *Logger) Error(args ...any) { l.log(LevelError, args) }
func (l *Logger) Fatal(args ...any) { l.log(LevelFatal, args) }

// log is the shared emission path. It must sit exactly one frame below
// every public entry point (methods above and the package facade) so
// the call-site skip lands on the user's frame.
func (l *Logger) log(level Level, args []any) {
	if l.closed.Load() {
		return
	}
	o := l.opts.Load()
	t := task{level: level, at: xclock.Now(), args: args, opts: o}
	if o.IncludeLocation {
		// 0 = this function, 1 = the severity wrapper, 2 = the caller
		t.site = resolveCallSite(2)
	}
	l.queue <- t
}

// logAt emits with a pre-resolved call site and optional pre-collected
// extra fields. Used by the console interceptor, where the location
// comes from an slog record's PC or is unavailable.
func (l *Logger) logAt(level Level, site callSite, extra []Field, args []any) {
	if l.closed.Load() {
		return
	}
	o := l.opts.Load()
	if !o.IncludeLocation {
		site = emptySite
	}
	l.queue <- task{level: level, at: xclock.Now(), site: site, args: args, extra: extra, opts: o}
}

// Flush blocks until every event enqueued before the call has been
// written to the output stream.
func (l *Logger) Flush() {
	if l.closed.Load() {
		return
	}
	ack := make(chan struct{})
	l.queue <- task{ack: ack}
	<-ack
}

// Close restores any captured console bindings, drains the queue and
// stops the worker. Further logging calls become no-ops.
func (l *Logger) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	l.capture.set(false)
	ack := make(chan struct{})
	l.queue <- task{ack: ack, stop: true}
	<-ack
	return nil
}

func (l *Logger) run() {
	for t := range l.queue {
		if t.ack != nil {
			close(t.ack)
			if t.stop {
				return
			}
			continue
		}
		l.emit(t)
	}
}

// emit runs on the worker goroutine: message assembly, event record
// construction, enrichment, observer fan-out, formatting, colorization
// and the single write.
func (l *Logger) emit(t task) {
	o := t.opts
	e := Event{
		Timestamp: t.at,
		Level:     t.level,
		HostName:  hostName(),
		Process:   processInfo(),
		Message:   sprint(t.args),
		Extra:     t.extra,
	}
	t.site.apply(&e)
	if o.Enrich != nil {
		o.Enrich(&e)
	}
	l.notifyObservers(&e)

	buf := getBuf()
	defer putBuf(buf)
	if o.Colorize {
		if c := t.level.color(); c != DefaultColor {
			buf.writeString(colorStart[c])
			l.appendLine(buf, o, &e)
			buf.writeString(colorReset)
		} else {
			l.appendLine(buf, o, &e)
		}
	} else {
		l.appendLine(buf, o, &e)
	}
	buf.writeByte('\n')

	l.wmu.Lock()
	n, err := l.w.Write(buf.b)
	l.wmu.Unlock()

	l.st.emitted.Add(1)
	l.st.bytes.Add(uint64(n))
	if err != nil {
		l.st.writeErrors.Add(1)
		l.errHandler(err)
	}
}

func (l *Logger) appendLine(buf *buffer, o *Options, e *Event) {
	if o.JSON {
		appendJSONEvent(buf, e)
	} else {
		appendTextEvent(buf, e)
	}
}
