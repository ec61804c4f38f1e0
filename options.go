package embedgo

const (
	// DefaultProgressInterval is the number of input lines between progress
	// log reports.
	DefaultProgressInterval = 50000

	// DefaultMaxLineBytes is the maximum length of a single table line.
	DefaultMaxLineBytes = 1 << 20
)

// Options configures Load behavior.
type Options struct {
	// Recoder maps keys to integer ids. Keys the Recoder resolves are
	// additionally registered in the id index, sharing the same vector.
	// If nil, the id index stays empty.
	Recoder Recoder

	// Logger receives progress reports and duplicate-key warnings.
	// If nil, a text logger at Info level is used; pass NoopLogger()
	// to silence loads entirely.
	Logger *Logger

	// ProgressInterval is the number of input lines between progress
	// reports. Values <= 0 disable progress logging.
	ProgressInterval int

	// MaxLineBytes bounds the length of a single table line. Values <= 0
	// fall back to DefaultMaxLineBytes.
	MaxLineBytes int
}

// DefaultOptions are the recommended defaults for Load.
var DefaultOptions = Options{
	ProgressInterval: DefaultProgressInterval,
	MaxLineBytes:     DefaultMaxLineBytes,
}

func applyOptions(optFns []func(*Options)) Options {
	o := DefaultOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.Logger == nil {
		o.Logger = NewLogger(nil)
	}

	if o.MaxLineBytes <= 0 {
		o.MaxLineBytes = DefaultMaxLineBytes
	}

	return o
}
