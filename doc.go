// Package karl is a process-local structured logger. It captures log
// events at six severity levels, stamps them with timestamp, host and
// process identity plus the call site, renders them as single-line JSON
// or human-readable text, and writes them to standard output from a
// dedicated worker so that logging never blocks the caller on I/O.
//
// Call-site and timestamp capture happen synchronously in the logging
// call; everything else runs on a FIFO queue, so output order always
// matches call order. karl can additionally capture the standard
// library's log and slog default loggers and route their output through
// the same pipeline, and provides a Guard that turns an unrecovered
// panic into a FATAL event followed by a graceful SIGINT shutdown.
package karl
