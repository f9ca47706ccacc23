package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

func renderTitle(w io.Writer, s string) {
	fmt.Fprintln(w, titleStyle.Render(s))
}

func renderNotice(w io.Writer, s string) {
	fmt.Fprintln(w, noticeStyle.Render(s))
}

func renderError(w io.Writer, s string) {
	fmt.Fprintln(w, errorStyle.Render(s))
}

// renderTable prints a bordered table. Empty row sets still print the header
// so the user sees which columns the screen would show.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(w, t)
}
