package karl

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSinkConfig configures a rotating file sink. Rotation is handled
// entirely by lumberjack; the logger itself never rotates.
type FileSinkConfig struct {
	Path       string
	MaxSizeMB  int // rotate after this many megabytes; 0 means lumberjack's default
	MaxBackups int // rotated files to retain; 0 keeps all
	MaxAgeDays int // days to retain rotated files; 0 keeps forever
	Compress   bool
}

// FileSink returns a writer backed by a size-rotated log file, suitable
// for NewWithWriter. Close it when the logger is closed.
func FileSink(cfg FileSinkConfig) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}
