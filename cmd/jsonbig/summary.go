package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/jsonbig/process"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
)

var (
	styleCount = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleLabel = lipgloss.NewStyle().Foreground(colorDim)
	stylePath  = lipgloss.NewStyle().Bold(true)
)

// printSummary writes a one-line run report, styled when stdout is a
// terminal.
func printSummary(w io.Writer, stats *process.Stats) {
	fmt.Fprintln(w, summaryLine(stats, term.IsTerminal(os.Stdout.Fd())))
}

func summaryLine(stats *process.Stats, styled bool) string {
	record := "record"
	if stats.Mode == process.ModeDocument {
		record = "document"
	}
	fields := plural(stats.Fields, "field")
	records := plural(stats.Records, record)

	if !styled {
		return fmt.Sprintf("converted %d %s in %d %s -> %s",
			stats.Fields, fields, stats.Records, records, stats.OutputPath)
	}

	return fmt.Sprintf("%s %s %s %s %s %s %s %s",
		styleLabel.Render("converted"),
		styleCount.Render(fmt.Sprintf("%d", stats.Fields)),
		styleLabel.Render(fields),
		styleLabel.Render("in"),
		styleCount.Render(fmt.Sprintf("%d", stats.Records)),
		styleLabel.Render(records),
		styleLabel.Render("->"),
		stylePath.Render(stats.OutputPath))
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
