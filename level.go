package karl

import "fmt"

// Level is the severity of a log event, ordered from least to most
// important. No level is ever suppressed: every call produces output.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

// String returns the canonical uppercase name of the level.
func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// color is the fixed per-level line color applied when colorized output
// is enabled. DEBUG and INFO stay uncolored.
func (l Level) color() Color {
	switch l {
	case LevelTrace:
		return Green
	case LevelWarn:
		return Yellow
	case LevelError, LevelFatal:
		return Red
	default:
		return DefaultColor
	}
}
