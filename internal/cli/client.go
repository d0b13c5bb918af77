package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbb/internal/api"
	"github.com/katalvlaran/tspbb/internal/client"
	"github.com/katalvlaran/tspbb/internal/input"
)

// solveFunc is client.Client.Solve, swapped out in tests.
type solveFunc func(ctx context.Context, rows [][]float64) (*api.SolveResponse, error)

func newClientCmd(_ *rootOptions) *cobra.Command {
	var (
		serverURL string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Interactive client for a running tspbb server",
		Long: `Client reads a matrix from the terminal row by row and sends it to the
server's /solve endpoint.

Each row is N comma-separated distances; "x", "-" or "inf" mean no edge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serverURL, client.WithTimeout(timeout))
			return runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), c.Solve)
		},
	}

	cmd.Flags().StringVarP(&serverURL, "server", "s", client.DefaultURL, "server base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "HTTP request timeout")

	return cmd
}

// runInteractive loops over the menu until "0" or end of input.
func runInteractive(ctx context.Context, in io.Reader, out io.Writer, solve solveFunc) error {
	sc := bufio.NewScanner(in)
	prompt := func(msg string) (string, bool) {
		fmt.Fprint(out, msg)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, styleTitle.Render("tspbb"))
		fmt.Fprintln(out, "  1 - solve TSP")
		fmt.Fprintln(out, "  0 - exit")
		choice, ok := prompt("> ")
		if !ok {
			return sc.Err()
		}

		switch choice {
		case "0":
			return nil
		case "1":
		default:
			printWarning(out, "unknown option %q", choice)
			continue
		}

		n, ok, err := readSize(prompt)
		if !ok {
			return sc.Err()
		}
		if err != nil {
			printError(out, "%v", err)
			continue
		}

		rows, ok, err := readRows(prompt, n)
		if !ok {
			return sc.Err()
		}
		if err != nil {
			printError(out, "%v", err)
			continue
		}

		resp, err := solve(ctx, rows)
		switch {
		case err == nil:
			printResponse(out, resp)
		case errors.Is(err, client.ErrDeadline) && resp != nil:
			printWarning(out, "server deadline hit")
			printResponse(out, resp)
		case errors.Is(err, context.Canceled):
			return err
		default:
			printError(out, "%v", err)
		}
	}
}

func readSize(prompt func(string) (string, bool)) (int, bool, error) {
	line, ok := prompt("Number of cities: ")
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 2 {
		return 0, true, fmt.Errorf("number of cities must be an integer ≥ 2, got %q", line)
	}
	return n, true, nil
}

func readRows(prompt func(string) (string, bool), n int) ([][]float64, bool, error) {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		line, ok := prompt(fmt.Sprintf("Row %d (%d values): ", i+1, n))
		if !ok {
			return nil, false, nil
		}
		row, err := input.ParseRow(line, n)
		if err != nil {
			return nil, true, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows[i] = row
	}
	return rows, true, nil
}
