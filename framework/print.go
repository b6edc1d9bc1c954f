package framework

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintResults writes the end-of-run summary table followed by the list of failed tests.
// If colored is false, the table is drawn without ANSI colors.
func PrintResults(out io.Writer, results *Results, colored bool) {
	summary := results.Summary()

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("Test Execution Summary")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.AppendRow(table.Row{"Total Tests", summary.Total})
	t.AppendRow(table.Row{"Passed Tests", summary.Passed})
	t.AppendRow(table.Row{"Failed Tests", summary.Failed})
	t.AppendRow(table.Row{"Skipped", summary.Skipped})
	if summary.Total > 0 {
		t.AppendRow(table.Row{"Pass Rate", fmt.Sprintf("%.1f%%", summary.PassRate)})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"Duration", fmt.Sprintf("%.2f seconds", summary.Duration.Seconds())})

	switch {
	case !colored:
		t.SetStyle(table.StyleLight)
	case results.Aborted || !results.OK():
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}
	t.Render()

	if len(results.Failures) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Failed Tests:")
		for _, f := range results.Failures {
			fmt.Fprintf(out, "  - %s: %s\n", f.Name, f.Error)
		}
	}
}
