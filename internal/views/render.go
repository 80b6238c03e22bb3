// Package views holds the rendering helpers shared by every screen.
package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Body       string
	Sidebar    string
	StatusLine string
	IsError    bool
	Footer     string
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	overdueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
)

func RenderApp(data AppData) string {
	body := panelStyle.Width(62).Render(data.Body)
	row := body
	if data.Sidebar != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, body, panelStyle.Width(34).Render(data.Sidebar))
	}

	status := statusStyle.Render(data.StatusLine)
	if data.IsError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders the notes preview; on failure the raw text is
// shown instead.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

func Selected(s string) string { return selectedStyle.Render(s) }
func Done(s string) string     { return doneStyle.Render(s) }
func OverdueTag(s string) string {
	return overdueStyle.Render(s)
}

// CursorLine renders one editor line with the cell at col reversed so
// the cursor is visible, including past end of line.
func CursorLine(line string, col int) string {
	runes := []rune(line)
	if col >= len(runes) {
		return string(runes) + cursorStyle.Render(" ")
	}
	return string(runes[:col]) + cursorStyle.Render(string(runes[col])) + string(runes[col+1:])
}

// Checkbox is the task completion marker.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
