package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tspbb/internal/api"
	"github.com/katalvlaran/tspbb/tsp"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(10)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printResponse renders a solve answer, local or remote.
func printResponse(w io.Writer, resp *api.SolveResponse) {
	if !resp.Distance.Found {
		if resp.Optimal {
			printError(w, "No solution: the graph has no Hamiltonian cycle through city 0")
		} else {
			printWarning(w, "No tour found before the search was stopped")
		}
		return
	}

	if resp.Optimal {
		printSuccess(w, "Optimal tour")
	} else {
		printWarning(w, "Best tour found (search stopped early, may not be optimal)")
	}
	printKeyValue(w, "path", tsp.FormatTour(resp.Path))
	printKeyValue(w, "distance", styleNumber.Render(resp.Distance.String()))

	stats := fmt.Sprintf("%s nodes · %.3f ms", strconv.Itoa(resp.Nodes), resp.ElapsedMS)
	if resp.Cached {
		stats += " · cached"
	}
	fmt.Fprintln(w, "  "+styleDim.Render(stats))
}
