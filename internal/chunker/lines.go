package chunker

import (
	"bufio"
	"bytes"
	"io"
	"iter"
)

const maxLineSize = 16 << 20

// Lines yields r line by line. "\n", "\r\n" and a lone "\r" all end a line and are stripped.
// The sequence is single-use; a read error is yielded once and ends it.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		scanner.Split(scanLines)

		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}

// scanLines is bufio.ScanLines extended to classic Mac line endings.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// "\r" at the end of the buffer may be the first half of "\r\n"
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// CountLines counts the lines Lines would yield for r.
func CountLines(r io.Reader) (int, error) {
	n := 0
	for _, err := range Lines(r) {
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
