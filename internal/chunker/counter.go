package chunker

import (
	"fmt"
	"regexp"

	"github.com/pkoukk/tiktoken-go"
)

var wordRun = regexp.MustCompile(`\w+`)

// WordCounter counts maximal runs of ASCII word characters.
type WordCounter struct{}

func (WordCounter) Count(text string) int {
	return len(wordRun.FindAllStringIndex(text, -1))
}

// CountTokens counts the word runs in text.
func CountTokens(text string) int {
	return WordCounter{}.Count(text)
}

// TiktokenCounter counts tokens with a BPE encoding.
type TiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenCounter resolves name as a model name first, then as an encoding name.
func NewTiktokenCounter(name string) (*TiktokenCounter, error) {
	enc, err := tiktoken.EncodingForModel(name)
	if err != nil {
		enc, err = tiktoken.GetEncoding(name)
		if err != nil {
			return nil, fmt.Errorf("load tiktoken encoding %q: %w", name, err)
		}
	}
	return &TiktokenCounter{enc: enc}, nil
}

func (t *TiktokenCounter) Count(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}
