package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// IndexBase declares how feature ids are numbered in a sparse matrix file.
type IndexBase int

const (
	// ZeroBased feature ids start at 0.
	ZeroBased IndexBase = 0
	// OneBased feature ids start at 1 and are shifted down on read.
	OneBased IndexBase = 1
)

// ReadFile parses a sparse matrix file at path. See Read.
func ReadFile(path string, base IndexBase) (*Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, base)
}

// Read parses sparse rows from r. Each line is a whitespace-separated
// sequence of (feature_id value) pairs; a line with an odd token count is a
// fatal error reported with its 1-based row number. Blank lines are valid
// empty rows. Feature ids below the declared base are rejected.
func Read(r io.Reader, base IndexBase) (*Sparse, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var rows [][]Entry
	line := 0
	for scanner.Scan() {
		line++
		tokens := strings.Fields(scanner.Text())
		if len(tokens)%2 != 0 {
			return nil, fmt.Errorf("matrix: row %d: odd token count %d", line, len(tokens))
		}
		row := make([]Entry, 0, len(tokens)/2)
		for t := 0; t < len(tokens); t += 2 {
			feature, err := strconv.Atoi(tokens[t])
			if err != nil {
				return nil, fmt.Errorf("matrix: row %d: bad feature id %q: %w", line, tokens[t], err)
			}
			if feature < int(base) {
				return nil, fmt.Errorf("matrix: row %d: feature id %d below %d-based indexing", line, feature, base)
			}
			value, err := strconv.ParseFloat(tokens[t+1], 64)
			if err != nil {
				return nil, fmt.Errorf("matrix: row %d: bad value %q: %w", line, tokens[t+1], err)
			}
			row = append(row, Entry{Feature: feature - int(base), Value: value})
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("matrix: read: %w", err)
	}
	return FromRows(rows), nil
}
