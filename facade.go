package karl

import (
	"sync"
	"sync/atomic"
)

// Global default logger: lazily built on first use with the default
// configuration, writing to standard output.

var (
	global     atomic.Pointer[Logger]
	globalMu   sync.Mutex
	globalOnce sync.Once
)

// Default returns the process-wide logger, creating it with the default
// options on first use.
func Default() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return defaultLogger()
}

// defaultLogger performs the lazy initialization. once.Do runs under
// the mutex so SetDefault cannot race the first construction.
func defaultLogger() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalOnce.Do(func() {
		global.Store(New())
	})
	return global.Load()
}

// SetDefault replaces the process-wide logger. The previous logger is
// not closed; callers owning it should Close it themselves. nil is
// ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	globalMu.Lock()
	globalOnce.Do(func() {})
	global.Store(l)
	globalMu.Unlock()
}

// Facade functions on the default logger. Each calls the shared
// emission path directly so call-site resolution lands on the caller's
// frame, exactly like the Logger methods.

func Trace(args ...any) { Default().log(LevelTrace, args) }
func Debug(args ...any) { Default().log(LevelDebug, args) }
func Info(args ...any)  { Default().log(LevelInfo, args) }
func Warn(args ...any)  { Default().log(LevelWarn, args) }
func Error(args ...any) { Default().log(LevelError, args) }
func Fatal(args ...any) { Default().log(LevelFatal, args) }

// Configure reconfigures the default logger (merge against defaults).
func Configure(opts ...Option) { Default().Configure(opts...) }

// Flush drains the default logger's queue.
func Flush() { Default().Flush() }
