// Package api defines the JSON wire types shared by the HTTP server and its
// Go client.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/katalvlaran/tspbb/tsp"
)

// NoSolution is the distance reported when no finite tour exists.
const NoSolution = "No solution"

// SolveRequest is the body of POST /solve. A null entry means no edge.
type SolveRequest struct {
	Matrix [][]*float64 `json:"matrix"`
}

// SolveResponse is the body of a /solve answer. Path is null when no tour
// was found. On 504 it carries the best tour found before the deadline.
type SolveResponse struct {
	Distance  Distance `json:"distance"`
	Path      []int    `json:"path"`
	Optimal   bool     `json:"optimal"`
	Nodes     int      `json:"nodes"`
	ElapsedMS float64  `json:"elapsed_ms"`
	Cached    bool     `json:"cached,omitempty"`
}

// FromResult converts a solver result to its wire form.
func FromResult(res tsp.Result) SolveResponse {
	resp := SolveResponse{
		Optimal:   res.Optimal,
		Nodes:     res.Stats.Expanded,
		ElapsedMS: float64(res.Stats.Elapsed.Microseconds()) / 1000,
	}
	if res.Found {
		resp.Distance = Distance{Value: res.Cost, Found: true}
		resp.Path = res.Tour
	}

	return resp
}

// ErrorResponse is the body of every 4xx/5xx answer except 504.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Distance encodes as a JSON number, or as the string "No solution" when
// Found is false.
type Distance struct {
	Value float64
	Found bool
}

func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.Found {
		return json.Marshal(NoSolution)
	}
	return strconv.AppendFloat(nil, d.Value, 'f', -1, 64), nil
}

func (d *Distance) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s != NoSolution {
			return fmt.Errorf("api: unexpected distance %q", s)
		}
		*d = Distance{}
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = Distance{Value: v, Found: true}

	return nil
}

func (d Distance) String() string {
	if !d.Found {
		return NoSolution
	}
	return strconv.FormatFloat(d.Value, 'f', -1, 64)
}
