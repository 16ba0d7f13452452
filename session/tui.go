package session

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
)

var (
	elapsedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	startedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D7D7D"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F"))
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the live session view. It polls the controller's elapsed
// time once per second and drives checkout.
type Model struct {
	control        *Controller
	input          textinput.Model
	record         *record.Record
	err            error
	entering       bool
	autoEnded      bool
	abandoned      bool
	twentyFourHour bool
}

// NewModel returns the live view for an already running controller.
func NewModel(c *Controller, twentyFourHour bool) *Model {
	input := textinput.New()
	input.Placeholder = "What did you do? (optional)"
	input.CharLimit = 200
	input.Width = 40

	return &Model{
		control:        c,
		input:          input,
		twentyFourHour: twentyFourHour,
	}
}

// Record returns the checkout record, or nil when the session did not
// end through this view.
func (m *Model) Record() *record.Record {
	return m.record
}

// AutoEnded reports whether the session was checked out by the
// auto-checkout timer while the view was open.
func (m *Model) AutoEnded() bool {
	return m.autoEnded
}

// Abandoned reports whether the view was closed with the session still
// running.
func (m *Model) Abandoned() bool {
	return m.abandoned
}

// Err returns the checkout error, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// The auto-checkout timer may have ended the session while the
		// view was open.
		if !m.control.Running() {
			m.autoEnded = true
			return m, tea.Quit
		}

		return m, tickCmd()

	case tea.KeyMsg:
		if m.entering {
			return m.updateEntering(msg)
		}

		switch msg.String() {
		case "c", "enter":
			m.entering = true
			m.input.Focus()

			return m, textinput.Blink
		case "q", "esc", "ctrl+c":
			m.abandoned = m.control.Running()
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) updateEntering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.record, m.err = m.control.Stop(strings.TrimSpace(m.input.Value()))
		return m, tea.Quit
	case "esc":
		m.entering = false
		m.input.Blur()

		return m, nil
	case "ctrl+c":
		m.abandoned = m.control.Running()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) View() string {
	if m.record != nil || m.err != nil || m.autoEnded || m.abandoned {
		return ""
	}

	timeFormat := "03:04 PM"
	if m.twentyFourHour {
		timeFormat = "15:04"
	}

	var s strings.Builder

	s.WriteString(elapsedStyle.Render(m.control.Elapsed()))
	s.WriteString("\n")
	s.WriteString(
		startedStyle.Render(
			"checked in at " + m.control.StartTime().Format(timeFormat),
		),
	)
	s.WriteString("\n")

	if m.entering {
		s.WriteString(promptStyle.Render("Check out"))
		s.WriteString("\n" + m.input.View())
		s.WriteString(helpStyle.Render("enter: confirm • esc: back"))
	} else {
		s.WriteString(
			helpStyle.Render("c: check out • q: quit without checking out"),
		)
	}

	s.WriteString("\n")

	return s.String()
}
