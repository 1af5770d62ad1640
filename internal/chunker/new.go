package chunker

// DefaultMaxTokens is the per-chunk budget, separators included.
const DefaultMaxTokens = 500

// Option customises an Accumulator.
type Option func(*Accumulator)

// WithMaxTokens sets the token budget per chunk. Non-positive values are ignored.
func WithMaxTokens(tokens int) Option {
	return func(a *Accumulator) {
		if tokens > 0 {
			a.maxTokens = tokens
		}
	}
}

// WithCounter replaces the default word-run counter.
func WithCounter(c Counter) Option {
	return func(a *Accumulator) {
		if c != nil {
			a.counter = c
		}
	}
}

// WithProgress registers fn to run after each line Split consumes, with the
// number of lines read so far. A chunk sealed by that line is yielded first.
func WithProgress(fn func(linesRead int)) Option {
	return func(a *Accumulator) {
		a.onLine = fn
	}
}

// NewAccumulator creates an empty accumulator with a 500-token budget and word-run counting.
func NewAccumulator(opts ...Option) *Accumulator {
	a := &Accumulator{
		maxTokens: DefaultMaxTokens,
		counter:   WordCounter{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
