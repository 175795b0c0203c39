package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Column is a report column. Width 0 fits the widest cell.
type Column struct {
	Title string
	Width int
}

// RenderTable renders rows as a static table for command output.
func RenderTable(cols []Column, rows [][]string) string {
	columns := make([]table.Column, len(cols))
	for i, c := range cols {
		w := c.Width
		if w == 0 {
			w = lipgloss.Width(c.Title)
			for _, r := range rows {
				if i < len(r) {
					w = max(w, lipgloss.Width(r[i]))
				}
			}
		}
		columns[i] = table.Column{Title: c.Title, Width: w}
	}

	trows := make([]table.Row, len(rows))
	for i, r := range rows {
		trows[i] = table.Row(r)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(trows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle() // no cursor in a printed report
	t.SetStyles(s)

	return t.View()
}
