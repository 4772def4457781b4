package karl

import (
	"context"
	"io"
	"log"
	"log/slog"
	"sync"
)

// Console interception: a process has one console, so the binding state
// is package-global. Two states, native and redirected, guarded by a
// mutex and an owner check so repeated enables never double-wrap and
// repeated disables never restore twice. The original bindings are
// sampled exactly once, before the first redirect, and never resampled.
var console struct {
	mu     sync.Mutex
	active bool
	owner  *Logger

	saved      bool
	prevWriter io.Writer
	prevFlags  int
	prevPrefix string
	prevSlog   *slog.Logger
}

// consoleCapture is a logger's handle on the global console state.
type consoleCapture struct {
	logger *Logger
}

func newConsoleCapture(l *Logger) *consoleCapture {
	return &consoleCapture{logger: l}
}

func (c *consoleCapture) set(on bool) {
	if on {
		c.enable()
	} else {
		c.disable()
	}
}

func (c *consoleCapture) enable() {
	console.mu.Lock()
	defer console.mu.Unlock()
	if console.active {
		if console.owner != c.logger {
			// retarget without resampling the originals
			bindConsole(c.logger)
			console.owner = c.logger
		}
		return
	}
	if !console.saved {
		console.prevWriter = log.Writer()
		console.prevFlags = log.Flags()
		console.prevPrefix = log.Prefix()
		console.prevSlog = slog.Default()
		console.saved = true
	}
	bindConsole(c.logger)
	console.active = true
	console.owner = c.logger
}

func (c *consoleCapture) disable() {
	console.mu.Lock()
	defer console.mu.Unlock()
	if !console.active || console.owner != c.logger {
		return
	}
	// slog first: SetDefault with a non-default handler rebinds the
	// stdlib log output underneath us, so log's bindings go last.
	slog.SetDefault(console.prevSlog)
	log.SetOutput(console.prevWriter)
	log.SetFlags(console.prevFlags)
	log.SetPrefix(console.prevPrefix)
	console.active = false
	console.owner = nil
}

func bindConsole(l *Logger) {
	// The generic print entry points alias to INFO. Flags and prefix
	// are cleared so the pipeline owns the whole line. slog first, log
	// second: slog.SetDefault rewires the stdlib log output as a side
	// effect and must not clobber the lineWriter.
	slog.SetDefault(slog.New(&captureHandler{logger: l}))
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(&lineWriter{logger: l, level: LevelInfo})
}

// lineWriter feeds stdlib log output into the pipeline, one line per
// Write call. The stdlib wrappers obscure the true caller frame, so
// captured lines carry no call site.
type lineWriter struct {
	logger *Logger
	level  Level
}

func (w *lineWriter) Write(p []byte) (int, error) {
	n := len(p)
	if n > 0 && p[n-1] == '\n' {
		p = p[:n-1]
	}
	w.logger.logAt(w.level, emptySite, nil, []any{string(p)})
	return n, nil
}

// captureHandler bridges slog records into the pipeline. The record's
// PC restores the caller's true call site; attrs become extra fields.
type captureHandler struct {
	logger *Logger
	attrs  []Field
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool {
	// the pipeline never suppresses by level
	return true
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	var site callSite
	if r.PC != 0 {
		site = siteFromPC(r.PC)
	}
	var extra []Field
	if n := len(h.attrs) + r.NumAttrs(); n > 0 {
		extra = make([]Field, 0, n)
		extra = append(extra, h.attrs...)
		r.Attrs(func(a slog.Attr) bool {
			extra = append(extra, fieldFromAttr(a))
			return true
		})
	}
	h.logger.logAt(levelFromSlog(r.Level), site, extra, []any{r.Message})
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	if len(attrs) > 0 {
		merged := make([]Field, 0, len(h.attrs)+len(attrs))
		merged = append(merged, h.attrs...)
		for _, a := range attrs {
			merged = append(merged, fieldFromAttr(a))
		}
		nh.attrs = merged
	}
	return &nh
}

// WithGroup returns the handler unchanged; the flat record format has
// no nesting to express groups in.
func (h *captureHandler) WithGroup(string) slog.Handler { return h }

func fieldFromAttr(a slog.Attr) Field {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return Str(a.Key, v.String())
	case slog.KindInt64:
		return Int64(a.Key, v.Int64())
	case slog.KindUint64:
		return Uint64(a.Key, v.Uint64())
	case slog.KindFloat64:
		return Float64(a.Key, v.Float64())
	case slog.KindBool:
		return Bool(a.Key, v.Bool())
	case slog.KindDuration:
		return Dur(a.Key, v.Duration())
	case slog.KindTime:
		return Time(a.Key, v.Time())
	default:
		return Any(a.Key, v.Any())
	}
}

func levelFromSlog(level slog.Level) Level {
	switch {
	case level < slog.LevelDebug:
		return LevelTrace
	case level < slog.LevelInfo:
		return LevelDebug
	case level < slog.LevelWarn:
		return LevelInfo
	case level < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}
