package input

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Formats accepted by Encode.
const (
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatTOML   = "toml"
	FormatTSPLIB = "tsp"
	FormatText   = "txt"
)

// Encode writes rows in format so that Load reads them back unchanged.
// TSPLIB has no notation for a missing edge; "inf" is written, which Load
// accepts but other TSPLIB readers will not.
func Encode(w io.Writer, rows [][]float64, format, name string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Matrix [][]*float64 `json:"matrix"`
		}{ToNullable(rows)})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string][][]float64{"matrix": rows}); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(map[string][][]float64{"matrix": rows})
	case FormatTSPLIB:
		return encodeTSPLIB(w, rows, name)
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, row := range rows {
			for j, v := range row {
				if j > 0 {
					bw.WriteString(", ")
				}
				bw.WriteString(formatCell(v))
			}
			bw.WriteByte('\n')
		}
		return bw.Flush()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func encodeTSPLIB(w io.Writer, rows [][]float64, name string) error {
	if name == "" {
		name = "tspbb"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NAME: %s\n", name)
	fmt.Fprintf(bw, "TYPE: ATSP\n")
	fmt.Fprintf(bw, "DIMENSION: %d\n", len(rows))
	fmt.Fprintf(bw, "EDGE_WEIGHT_TYPE: EXPLICIT\n")
	fmt.Fprintf(bw, "EDGE_WEIGHT_FORMAT: FULL_MATRIX\n")
	fmt.Fprintf(bw, "EDGE_WEIGHT_SECTION\n")
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(formatCell(v))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "EOF\n")

	return bw.Flush()
}

func formatCell(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
