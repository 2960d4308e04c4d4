package dynbitset

type options struct {
	zero   rune
	one    rune
	offset int
	length int
	logger *Logger
}

// Option configures Parse, Read and UnmarshalText-style decoding.
type Option func(*options)

// WithDigits sets the runes read as zero and one. Defaults are '0' and '1'.
func WithDigits(zero, one rune) Option {
	return func(o *options) {
		o.zero = zero
		o.one = one
	}
}

// WithOffset makes Parse start at the given rune index. Default 0.
func WithOffset(pos int) Option {
	return func(o *options) {
		o.offset = pos
	}
}

// WithLength limits Parse to at most n runes. A negative n, the default,
// means the rest of the input. Lengths past the end are clipped.
func WithLength(n int) Option {
	return func(o *options) {
		o.length = n
	}
}

// WithLogger sets the logger for parse and read events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noopLogger
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{
		zero:   '0',
		one:    '1',
		length: -1,
		logger: noopLogger,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
