package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	makeupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F"))

	contentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B8B8B8"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3C3C3C"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n")
	s.WriteString(m.bodyView())
	s.WriteString("\n")
	s.WriteString(m.footerView())

	return s.String()
}

func (m *Model) headerView() string {
	title := titleStyle.Render(
		fmt.Sprintf("Check-in Records (%d)", len(m.records)),
	)

	searchLine := helpStyle.Render("/ to search")

	switch {
	case m.searching:
		searchLine = m.search.View()
	case m.search.Value() != "":
		searchLine = fmt.Sprintf("filter: %q", m.search.Value())
	case m.editing:
		searchLine = "new content: " + m.editInput.View()
	case m.confirmDelete:
		searchLine = makeupStyle.Render("delete selected record? (y/n)")
	}

	return title + "\n" + searchLine
}

// bodyView assembles the scrollable area. Only the rows inside the
// materialized window exist as lines; the slice below cuts the window's
// lines down to the part intersecting the viewport.
func (m *Model) bodyView() string {
	vh := m.viewportHeight()
	if vh == 0 {
		return ""
	}

	if len(m.records) == 0 {
		lines := make([]string, vh)
		lines[0] = helpStyle.Render("No check-in records")

		return strings.Join(lines, "\n")
	}

	start, end := m.window.Bounds()

	lines := make([]string, 0, (end-start)*m.window.ItemHeight())

	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i)...)
	}

	// The window starts at or before the first visible row, so the
	// viewport offset always lands inside the materialized lines.
	skip := m.offset - m.window.Offset(start)
	if skip < 0 {
		skip = 0
	}

	if skip > len(lines) {
		skip = len(lines)
	}

	lines = lines[skip:]

	if len(lines) > vh {
		lines = lines[:vh]
	}

	for len(lines) < vh {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m *Model) footerView() string {
	pos := ""
	if len(m.records) > 0 {
		pos = fmt.Sprintf("%d/%d", m.cursor+1, len(m.records))
	}

	if m.status != "" {
		pos += "  " + statusStyle.Render(m.status)
	}

	help := helpStyle.Render(
		"↑/↓ move • pgup/pgdn scroll • e edit • d delete • q quit",
	)

	return pos + "\n" + help
}

// renderRow renders record i as exactly itemHeight terminal lines, so
// the windowing math stays exact.
func (m *Model) renderRow(i int) []string {
	r := m.records[i]

	clockFormat := "03:04 PM"
	if m.twentyFourHour {
		clockFormat = "15:04"
	}

	head := fmt.Sprintf(
		"%s  %s – %s  %s",
		r.StartTime.Format("Jan 02, 2006"),
		r.StartTime.Format(clockFormat),
		r.EndTime.Format(clockFormat),
		r.Duration,
	)

	head = truncate(head, m.width-2)

	if r.IsMakeup {
		head += "  " + makeupStyle.Render("make-up")
	}

	marker := "  "
	if i == m.cursor {
		marker = cursorStyle.Render("> ")
		head = cursorStyle.Render(head)
	}

	content := r.Content
	if content == "" {
		content = "—"
	}

	lines := []string{marker + head}

	bodyWidth := m.width - 4
	if bodyWidth < 1 {
		bodyWidth = 1
	}

	for j := 0; j < m.window.ItemHeight()-2; j++ {
		part := ""
		if content != "" {
			part, content = splitAt(content, bodyWidth)
		}

		lines = append(lines, "    "+contentStyle.Render(part))
	}

	sep := separatorStyle.Render(strings.Repeat("─", max(0, m.width-2)))

	return append(lines, sep)
}

// truncate cuts a string down to at most w runes.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= w {
		return s
	}

	if w == 1 {
		return "…"
	}

	return string(runes[:w-1]) + "…"
}

// splitAt returns the first w runes and the remainder.
func splitAt(s string, w int) (head, rest string) {
	runes := []rune(s)
	if len(runes) <= w {
		return s, ""
	}

	return string(runes[:w]), string(runes[w:])
}
