// Package input reads distance matrices from files and from the line-based
// interactive client.
//
// Every reader returns rows in which +Inf marks a missing edge. Structural
// checks (square, non-negative) are left to tsp.ValidateRows.
package input

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for unknown file extensions and
	// TSPLIB layouts other than EXPLICIT FULL_MATRIX.
	ErrUnsupportedFormat = errors.New("input: unsupported format")

	// ErrParse is returned for malformed content.
	ErrParse = errors.New("input: parse error")
)

// Load reads a matrix file. The format follows the extension: .json, .yaml or
// .yml, .toml, .tsp (TSPLIB), or .txt/.csv (one comma-separated row per line).
func Load(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		rows, err = decodeJSON(data)
	case ".yaml", ".yml":
		rows, err = decodeYAML(data)
	case ".toml":
		rows, err = decodeTOML(data)
	case ".tsp":
		rows, err = decodeTSPLIB(data)
	case ".txt", ".csv":
		rows, err = ParseRows(string(data))
	default:
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// ParseCell parses one matrix entry. "inf", "∞", "-", "x" and "none"
// (case-insensitive) mean no edge.
func ParseCell(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	switch strings.ToLower(tok) {
	case "inf", "+inf", "∞", "-", "x", "none", "null":
		return math.Inf(1), nil
	case "":
		return 0, fmt.Errorf("%w: empty entry", ErrParse)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: bad entry %q", ErrParse, tok)
	}

	return v, nil
}

// ParseRow parses one comma-separated row. If n > 0 the row must have exactly
// n entries.
func ParseRow(line string, n int) ([]float64, error) {
	toks := strings.Split(line, ",")
	if n > 0 && len(toks) != n {
		return nil, fmt.Errorf("%w: expected %d entries, got %d", ErrParse, n, len(toks))
	}
	row := make([]float64, len(toks))
	for j, tok := range toks {
		v, err := ParseCell(tok)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}

	return row, nil
}

// ParseRows parses one comma-separated row per non-blank line. Lines starting
// with '#' are skipped.
func ParseRows(text string) ([][]float64, error) {
	var rows [][]float64
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := ParseRow(line, 0)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrParse)
	}

	return rows, nil
}

// ToNullable converts rows to the wire form, where nil stands for +Inf.
func ToNullable(rows [][]float64) [][]*float64 {
	out := make([][]*float64, len(rows))
	for i, row := range rows {
		out[i] = make([]*float64, len(row))
		for j, v := range row {
			if math.IsInf(v, 1) {
				continue
			}
			v := v
			out[i][j] = &v
		}
	}

	return out
}

// FromNullable is the inverse of ToNullable.
func FromNullable(rows [][]*float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, p := range row {
			if p == nil {
				out[i][j] = math.Inf(1)
				continue
			}
			out[i][j] = *p
		}
	}

	return out
}
