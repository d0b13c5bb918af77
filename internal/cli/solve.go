package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbb/internal/api"
	"github.com/katalvlaran/tspbb/internal/input"
	"github.com/katalvlaran/tspbb/matrix"
	"github.com/katalvlaran/tspbb/tsp"
)

type solveOptions struct {
	frontier  string
	timeLimit time.Duration
	maxNodes  int
	jsonOut   bool
}

func newSolveCmd(_ *rootOptions) *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a distance matrix file locally",
		Long: `Solve reads a distance matrix and prints the optimal tour from city 0.

Supported files: .json ({"matrix": [[...]]}, null = no edge), .yaml/.yml,
.toml, .tsp (TSPLIB EXPLICIT FULL_MATRIX) and .txt/.csv (comma-separated rows).
Entries "inf", "x" or "-" mean there is no edge.`,
		Example: `  tspbb solve cities.json
  tspbb solve br17.tsp --time-limit 30s
  tspbb solve m.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.frontier, "frontier", "tree", "frontier: tree or scan")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "stop after this long and report the best tour (0 = no limit)")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", 0, "stop after this many expansions (0 = no limit)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")

	return cmd
}

func runSolve(cmd *cobra.Command, path string, opts *solveOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	kind, err := tsp.ParseFrontierKind(opts.frontier)
	if err != nil {
		return err
	}

	rows, err := input.Load(path)
	if err != nil {
		return err
	}
	if err := tsp.ValidateRows(rows); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return err
	}
	logger.Debug("loaded", "file", path, "cities", len(rows))

	solveOpts := tsp.DefaultOptions()
	solveOpts.Frontier = kind
	solveOpts.TimeLimit = opts.timeLimit
	solveOpts.MaxNodes = opts.maxNodes
	solveOpts.OnIncumbent = func(cost float64, tour []int) {
		logger.Debug("incumbent", "cost", cost, "tour", tsp.FormatTour(tour))
	}

	prog := newProgress(logger)
	res, err := tsp.SolveContext(ctx, m, solveOpts)
	switch {
	case err == nil:
		prog.done(fmt.Sprintf("Searched %d nodes", res.Stats.Expanded))
	case errors.Is(err, tsp.ErrTimeLimit), errors.Is(err, tsp.ErrNodeBudget), errors.Is(err, context.DeadlineExceeded):
		logger.Warn("search stopped early", "reason", err, "expanded", res.Stats.Expanded)
	default:
		return err
	}

	resp := api.FromResult(res)
	out := cmd.OutOrStdout()
	if opts.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	printResponse(out, &resp)

	return nil
}
