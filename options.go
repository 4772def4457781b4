package karl

// EnrichFunc is invoked with the event record after the fixed fields are
// populated and before formatting. It may add arbitrary extra fields in
// place via Event.Add.
type EnrichFunc func(*Event)

// Options is the logger configuration. It is replaced wholesale on each
// Configure call; emission tasks capture the active options pointer
// synchronously, so in-flight events are never affected by a later
// reconfiguration.
type Options struct {
	// IncludeLocation captures the call site of every logging call.
	// Disabling it trades the location fields for throughput.
	IncludeLocation bool

	// Colorize wraps each rendered line in the level's ANSI color.
	Colorize bool

	// CaptureConsole routes the standard library's log and slog
	// default loggers through this logger.
	CaptureConsole bool

	// JSON selects the structured single-line format; false selects
	// the human-readable text format.
	JSON bool

	// Enrich, when set, may add extra fields to every event.
	Enrich EnrichFunc
}

func defaultOptions() Options {
	return Options{
		IncludeLocation: true,
		Colorize:        false,
		CaptureConsole:  true,
		JSON:            true,
	}
}

// Option mutates an Options value during Configure.
type Option func(*Options)

// WithLocationInfo toggles call-site capture.
func WithLocationInfo(enabled bool) Option {
	return func(o *Options) { o.IncludeLocation = enabled }
}

// WithColorize toggles ANSI colorization of rendered lines.
func WithColorize(enabled bool) Option {
	return func(o *Options) { o.Colorize = enabled }
}

// WithConsoleCapture toggles interception of the stdlib log and slog
// default loggers.
func WithConsoleCapture(enabled bool) Option {
	return func(o *Options) { o.CaptureConsole = enabled }
}

// WithJSON selects between structured (true) and text (false) output.
func WithJSON(enabled bool) Option {
	return func(o *Options) { o.JSON = enabled }
}

// WithEnrich installs an enrich callback.
func WithEnrich(f EnrichFunc) Option {
	return func(o *Options) { o.Enrich = f }
}

// Configure replaces the logger configuration. The new configuration is
// built from the defaults with only the given options applied: an
// option omitted from a Configure call reverts to its default, not to
// its previously configured value. Console capture is re-driven from
// the resulting CaptureConsole flag.
func (l *Logger) Configure(opts ...Option) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l.opts.Store(&o)
	l.capture.set(o.CaptureConsole)
}
