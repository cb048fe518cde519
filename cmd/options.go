package cmd

// Options holds the shared command-line options for the tempo CLI.
type Options struct {
	Precision  string // finest unit to report (years..seconds)
	MaxUnits   int    // cap on unit phrases in humanized output
	Compact    bool   // single-unit compact ages (5m, 2h, 3d)
	From       string // explicit reference timestamp instead of now
	Signed     bool   // keep the duration's sign instead of absolute value
	NoDuration bool   // omit the parenthesized duration
	Plain      bool   // force non-TUI countdown output
	Verbosity  int
	NoColor    bool
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPrecision sets the finest unit to report.
func WithPrecision(precision string) Option {
	return func(o *Options) {
		o.Precision = precision
	}
}

// WithMaxUnits sets the maximum number of unit phrases.
func WithMaxUnits(maxUnits int) Option {
	return func(o *Options) {
		o.MaxUnits = maxUnits
	}
}

// WithFrom sets the reference timestamp.
func WithFrom(from string) Option {
	return func(o *Options) {
		o.From = from
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}
