// Package reporting renders a post-run History as a terminal summary table
// and an optional YAML snapshot, grounded on the teacher's
// internal/formatting table renderer. This is not the HTML/JSON/JUnit report
// generation named out of scope in the specification's Non-goals; it is a
// plain stdout summary for the demo CLI.
package reporting

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/osmo-tool/gosmo/history"
	"github.com/osmo-tool/gosmo/step"
)

// Summary renders a coverage and step-frequency table for h against
// catalogueNames (the full set of step names the model declares, so steps
// that never ran still appear with a zero count).
func Summary(h *history.History, catalogueNames []string) string {
	var b strings.Builder
	writeOverview(&b, h)
	b.WriteString("\n")
	writeFrequencyTable(&b, h, catalogueNames)
	return b.String()
}

func writeOverview(w io.Writer, h *history.History) {
	t := newTable()
	t.AppendHeader(table.Row{text.FgHiCyan.Sprint("METRIC"), text.FgHiCyan.Sprint("VALUE")})
	t.AppendRow(table.Row{"tests", len(h.Tests())})
	t.AppendRow(table.Row{"total steps", h.TotalSteps()})
	t.AppendRow(table.Row{"total errors", h.TotalErrors()})
	t.SetOutputMirror(w)
	t.Render()
}

func writeFrequencyTable(w io.Writer, h *history.History, catalogueNames []string) {
	freq := h.StepFrequency()
	sorted := step.SortedNames(catalogueNames)

	t := newTable()
	t.AppendHeader(table.Row{text.FgHiCyan.Sprint("STEP"), text.FgHiCyan.Sprint("COUNT")})
	for _, name := range sorted {
		t.AppendRow(table.Row{name, freq[name]})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{
		text.FgHiBlue.Sprint("coverage"),
		text.FgHiWhite.Sprintf("%.1f%%", h.CoveragePercentage(catalogueNames)),
	})
	t.SetOutputMirror(w)
	t.Render()
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}
