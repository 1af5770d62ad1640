package chunker

import (
	"io"
	"iter"
	"strings"
)

// Accumulator folds lines into chunks bounded by a token budget.
// A line is never split: one that alone exceeds the budget becomes its own oversized chunk.
type Accumulator struct {
	maxTokens int
	counter   Counter

	buf    strings.Builder
	tokens int
	lines  int
	next   int

	onLine func(linesRead int)
}

// Add appends line to the current chunk. If the line would push the chunk over
// budget, the current chunk is sealed and returned first, and the line starts the next one.
func (a *Accumulator) Add(line string) (Chunk, bool) {
	lineTokens := a.counter.Count(line) + 1

	var sealed Chunk
	var ok bool
	if a.tokens+lineTokens > a.maxTokens {
		sealed, ok = a.seal()
	}

	a.buf.WriteString(line)
	a.buf.WriteByte('\n')
	a.tokens += lineTokens
	a.lines++

	return sealed, ok
}

// Flush seals whatever remains. It reports false when nothing is pending.
func (a *Accumulator) Flush() (Chunk, bool) {
	return a.seal()
}

// Pending reports the token count of the unsealed chunk.
func (a *Accumulator) Pending() int {
	return a.tokens
}

func (a *Accumulator) seal() (Chunk, bool) {
	if a.buf.Len() == 0 {
		return Chunk{}, false
	}

	c := Chunk{
		Index:  a.next,
		Text:   a.buf.String(),
		Tokens: a.tokens,
		Lines:  a.lines,
	}
	a.next++
	a.buf.Reset()
	a.tokens = 0
	a.lines = 0
	return c, true
}

// Split chunks r lazily. Chunks come out in input order; an empty input yields nothing.
func Split(r io.Reader, opts ...Option) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		acc := NewAccumulator(opts...)
		linesRead := 0

		for line, err := range Lines(r) {
			if err != nil {
				yield(Chunk{}, err)
				return
			}
			if c, ok := acc.Add(line); ok {
				if !yield(c, nil) {
					return
				}
			}

			linesRead++
			if acc.onLine != nil {
				acc.onLine(linesRead)
			}
		}

		if c, ok := acc.Flush(); ok {
			yield(c, nil)
		}
	}
}
