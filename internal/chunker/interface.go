package chunker

// Counter estimates the token size of a single transcript line.
type Counter interface {
	Count(text string) int
}

// Chunk is a sealed run of consecutive transcript lines.
type Chunk struct {
	Index  int    // position in the emitted sequence, starting at 0
	Text   string // every line followed by "\n"
	Tokens int    // counted tokens plus one separator per line
	Lines  int
}
