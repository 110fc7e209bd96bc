// Package formulas provides a streaming reader for line-oriented
// formula list files.
package formulas

import (
	"bufio"
	"io"
	"strings"
)

// Entry is one formula read from a list file.
type Entry struct {
	Formula string
	Line    int // 1-based line number in the input
}

// Reader provides streaming access to formula list files. Each
// non-empty line holds one formula; text after '#' is a comment.
type Reader struct {
	scanner *bufio.Scanner
	lineNum int
	current Entry
	err     error
}

// NewReader creates a new formula list reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
	}
}

// Next advances to the next formula. Returns false when no more
// formulas or error.
func (r *Reader) Next() bool {
	for r.scanner.Scan() {
		r.lineNum++
		line := r.scanner.Text()

		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.current = Entry{Formula: line, Line: r.lineNum}
		return true
	}

	r.err = r.scanner.Err()
	return false
}

// Entry returns the current formula entry.
func (r *Reader) Entry() Entry {
	return r.current
}

// Err returns any error encountered during reading.
func (r *Reader) Err() error {
	return r.err
}
