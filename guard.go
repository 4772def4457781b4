package karl

import (
	"os"
	"runtime/debug"
)

// sendInterrupt signals the process itself; replaced in tests.
var sendInterrupt = func() error {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return err
	}
	return p.Signal(os.Interrupt)
}

// Guard is the last line of defense against unrecovered panics. Defer
// it at the top of main (and of goroutines that must not take the
// process down silently):
//
//	defer karl.Guard()
//
// When a panic reaches it, Guard logs a FATAL event carrying the panic
// value and the stack trace, flushes the queue so the line lands on the
// output stream, then interrupts the process (SIGINT) for a graceful
// shutdown. Best effort: Guard itself never panics, and if the process
// is too far gone to complete the write, delivery is not guaranteed.
func Guard() {
	handleCrash(Default(), recover())
}

// Guard is the per-logger form of the package-level Guard.
func (l *Logger) Guard() {
	handleCrash(l, recover())
}

func handleCrash(l *Logger, r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()
	l.log(LevelFatal, []any{"Uncaught exception: %v\n%s", r, stack})
	l.Flush()
	if err := sendInterrupt(); err != nil {
		os.Exit(1)
	}
}
