package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbb/builder"
	"github.com/katalvlaran/tspbb/internal/input"
	"github.com/katalvlaran/tspbb/matrix"
)

// Instance kinds for gen --kind.
const (
	KindRandom    = "random"
	KindEuclidean = "euclidean"
	KindComplete  = "complete"
	KindRing      = "ring"
)

type genOptions struct {
	kind      string
	weight    float64
	n         int
	seed      int64
	minW      int
	maxW      int
	missing   float64
	symmetric bool
	format    string
	output    string
}

func newGenCmd(_ *rootOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate an instance",
		Long: `Gen writes a distance matrix. The same flags always produce the same instance.

Kinds:
  random     seeded weights in [--min, --max]; honours --missing and --symmetric
  euclidean  seeded points in the [--min, --max) square, straight-line distances
  complete   every edge costs --weight, so every tour is optimal
  ring       only the cycle 0→1→…→n-1→0 exists, each edge costs --weight`,
		Example: `  tspbb gen -n 12 --seed 7 -o m.json
  tspbb gen -n 17 --missing 0.2 --format tsp > r17.tsp
  tspbb gen --kind euclidean -n 15 --max 50 -o pts.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", KindRandom, "random, euclidean, complete or ring")
	cmd.Flags().IntVarP(&opts.n, "cities", "n", 10, "number of cities")
	cmd.Flags().Float64Var(&opts.weight, "weight", 1, "edge weight for complete and ring")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.minW, "min", 1, "minimum edge weight")
	cmd.Flags().IntVar(&opts.maxW, "max", 100, "maximum edge weight")
	cmd.Flags().Float64Var(&opts.missing, "missing", 0, "probability that an edge is missing, in [0,1)")
	cmd.Flags().BoolVar(&opts.symmetric, "symmetric", false, "make (i,j) equal (j,i)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "json, yaml, toml, tsp or txt (default from -o extension, else json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runGen(cmd *cobra.Command, opts *genOptions) error {
	if opts.minW < 0 || opts.minW > opts.maxW {
		return fmt.Errorf("need 0 ≤ --min ≤ --max, got %d and %d", opts.minW, opts.maxW)
	}
	if !(opts.missing >= 0 && opts.missing < 1) {
		return fmt.Errorf("--missing must be in [0,1), got %v", opts.missing)
	}

	format := opts.format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(opts.output), ".")
		if format == "yml" {
			format = input.FormatYAML
		}
		if format == "" {
			format = input.FormatJSON
		}
	}

	m, err := genInstance(opts)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s%d-s%d", opts.kind, opts.n, opts.seed)
	if opts.output == "" {
		return input.Encode(cmd.OutOrStdout(), m.ToRows(), format, name)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := input.Encode(f, m.ToRows(), format, name); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("wrote instance", "file", opts.output, "kind", opts.kind, "cities", opts.n, "format", format)

	return nil
}

func genInstance(opts *genOptions) (*matrix.Dense, error) {
	switch opts.kind {
	case KindRandom:
		bopts := []builder.Option{
			builder.WithSeed(opts.seed),
			builder.WithWeightFn(builder.UniformInt(opts.minW, opts.maxW)),
			builder.WithMissing(opts.missing),
		}
		if opts.symmetric {
			bopts = append(bopts, builder.WithSymmetric())
		}
		return builder.Random(opts.n, bopts...)
	case KindEuclidean:
		return builder.RandomPoints(opts.n,
			builder.WithSeed(opts.seed),
			builder.WithWeightFn(builder.UniformFloat(float64(opts.minW), float64(opts.maxW))),
		)
	case KindComplete:
		return builder.Complete(opts.n, opts.weight)
	case KindRing:
		return builder.Ring(opts.n, opts.weight)
	default:
		return nil, fmt.Errorf("unknown --kind %q (want random, euclidean, complete or ring)", opts.kind)
	}
}
