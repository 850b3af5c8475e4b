package render

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"techlympics-stats/models"
)

const indent = "  "

// Table renders a report as an indented text table, one line per hierarchy node.
// MaxDepth limits how deep the tree is printed; 0 prints everything.
func Table(report *models.Report, maxDepth int) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s report %s", report.Kind, report.ID))
	t.AppendHeader(table.Row{"Group", "Level", "Contingents", "Teams", "Contestants", "Male", "Female", "Unknown"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	if report.Root != nil {
		for _, child := range report.Root.Children {
			appendNode(t, child, 0, maxDepth)
		}
		t.AppendFooter(summaryRow("Total", "", report.Root.Summary))
	}
	return t.Render()
}

func appendNode(t table.Writer, n *models.HierarchyNode, depth, maxDepth int) {
	t.AppendRow(summaryRow(strings.Repeat(indent, depth)+n.Name, n.Level, n.Summary))
	if maxDepth > 0 && depth+1 >= maxDepth {
		return
	}
	for _, child := range n.Children {
		appendNode(t, child, depth+1, maxDepth)
	}
}

func summaryRow(name, level string, s models.Summary) table.Row {
	return table.Row{
		name, level,
		s.ContingentCount, s.TeamCount, s.ContestantCount,
		s.Gender.Male, s.Gender.Female, s.Gender.Unknown,
	}
}
