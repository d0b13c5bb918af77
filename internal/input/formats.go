package input

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// JSON accepts either {"matrix": [[...]]} or a bare [[...]]; null is no edge.
func decodeJSON(data []byte) ([][]float64, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var rows [][]*float64
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return FromNullable(rows), nil
	}

	var doc struct {
		Matrix [][]*float64 `json:"matrix"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Matrix == nil {
		return nil, fmt.Errorf("%w: missing \"matrix\"", ErrParse)
	}

	return FromNullable(doc.Matrix), nil
}

// YAML reads a top-level "matrix" key; entries may be numbers, .inf, null,
// or any token ParseCell accepts.
func decodeYAML(data []byte) ([][]float64, error) {
	var doc struct {
		Matrix [][]any `yaml:"matrix"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Matrix == nil {
		return nil, fmt.Errorf("%w: missing \"matrix\"", ErrParse)
	}

	return fromAny(doc.Matrix)
}

// TOML reads matrix = [[...], ...]; TOML's own inf literal and strings such
// as "x" mark missing edges.
func decodeTOML(data []byte) ([][]float64, error) {
	var doc struct {
		Matrix [][]any `toml:"matrix"`
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Matrix == nil {
		return nil, fmt.Errorf("%w: missing \"matrix\"", ErrParse)
	}

	return fromAny(doc.Matrix)
}

func fromAny(in [][]any) ([][]float64, error) {
	out := make([][]float64, len(in))
	for i, row := range in {
		out[i] = make([]float64, len(row))
		for j, cell := range row {
			v, err := anyCell(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

func anyCell(cell any) (float64, error) {
	switch v := cell.(type) {
	case nil:
		return math.Inf(1), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float64:
		if math.IsNaN(v) {
			return 0, fmt.Errorf("%w: NaN entry", ErrParse)
		}
		return v, nil
	case string:
		return ParseCell(v)
	default:
		return 0, fmt.Errorf("%w: unexpected %T", ErrParse, cell)
	}
}

// MaxDimension bounds the DIMENSION header of a TSPLIB file.
const MaxDimension = 4096

// TSPLIB reads explicit full-matrix instances:
//
//	NAME: br17
//	TYPE: ATSP
//	DIMENSION: 17
//	EDGE_WEIGHT_TYPE: EXPLICIT
//	EDGE_WEIGHT_FORMAT: FULL_MATRIX
//	EDGE_WEIGHT_SECTION
//	 9999 3 5 ...
//	EOF
//
// Weights may wrap across lines. Header keys accept "KEY: v" and "KEY : v".
func decodeTSPLIB(data []byte) ([][]float64, error) {
	var (
		n       int
		started bool
		vals    []float64
	)

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !started {
			key, val, _ := strings.Cut(line, ":")
			key = strings.ToUpper(strings.TrimSpace(key))
			val = strings.TrimSpace(val)
			switch key {
			case "DIMENSION":
				d, err := strconv.Atoi(val)
				if err != nil || d < 1 || d > MaxDimension {
					return nil, fmt.Errorf("%w: DIMENSION %q", ErrParse, val)
				}
				n = d
			case "EDGE_WEIGHT_TYPE":
				if !strings.EqualFold(val, "EXPLICIT") {
					return nil, fmt.Errorf("%w: EDGE_WEIGHT_TYPE %s", ErrUnsupportedFormat, val)
				}
			case "EDGE_WEIGHT_FORMAT":
				if !strings.EqualFold(val, "FULL_MATRIX") {
					return nil, fmt.Errorf("%w: EDGE_WEIGHT_FORMAT %s", ErrUnsupportedFormat, val)
				}
			case "EDGE_WEIGHT_SECTION":
				if n == 0 {
					return nil, fmt.Errorf("%w: EDGE_WEIGHT_SECTION before DIMENSION", ErrParse)
				}
				started = true
			}
			continue
		}
		if line == "EOF" || strings.HasSuffix(line, "_SECTION") {
			break
		}
		for _, f := range strings.Fields(line) {
			v, err := ParseCell(f)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
			if len(vals) > n*n {
				return nil, fmt.Errorf("%w: more than %d weights", ErrParse, n*n)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !started {
		return nil, fmt.Errorf("%w: no EDGE_WEIGHT_SECTION", ErrParse)
	}
	if len(vals) != n*n {
		return nil, fmt.Errorf("%w: expected %d weights, got %d", ErrParse, n*n, len(vals))
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = vals[i*n : (i+1)*n : (i+1)*n]
	}

	return rows, nil
}
