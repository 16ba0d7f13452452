package list

import (
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

var debugMsgs = os.Getenv("CHECKIN_DEBUG") != ""

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if debugMsgs {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// An item-height change re-renders immediately at the current
		// window start; the offset is re-clamped for the new geometry.
		m.window.Resize(msg.Width, m.viewportHeight())

		if max := m.window.MaxOffset(); m.offset > max {
			m.offset = max
			m.window.Scroll(m.offset)
		}

		return m, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollBy(-m.window.ItemHeight())
		case tea.MouseButtonWheelDown:
			m.scrollBy(m.window.ItemHeight())
		}

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.searching:
		return m.updateSearching(msg)
	case m.editing:
		return m.updateEditing(msg)
	case m.confirmDelete:
		return m.updateConfirmDelete(msg)
	}

	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}

	case "down", "j":
		if m.cursor < len(m.records)-1 {
			m.cursor++
			m.ensureVisible()
		}

	case "pgup":
		m.scrollBy(-m.viewportHeight())

	case "pgdown":
		m.scrollBy(m.viewportHeight())

	case "home", "g":
		m.cursor = 0
		m.offset = 0
		m.window.Scroll(0)

	case "end", "G":
		if len(m.records) > 0 {
			m.cursor = len(m.records) - 1
			m.ensureVisible()
		}

	case "/":
		m.searching = true

		return m, m.search.Focus()

	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh(false)
		}

	case "e":
		if r := m.selected(); r != nil {
			m.editing = true
			m.editInput.SetValue(r.Content)
			m.editInput.CursorEnd()

			return m, m.editInput.Focus()
		}

	case "d":
		if m.selected() != nil {
			m.confirmDelete = true
		}
	}

	return m, nil
}

func (m *Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()

		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refresh(false)

		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd

	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != before {
		m.refresh(false)
	}

	return m, cmd
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.editInput.Blur()

		r := m.selected()
		if r == nil {
			return m, nil
		}

		if _, err := m.store.Edit(r.ID, strings.TrimSpace(m.editInput.Value())); err != nil {
			m.status = err.Error()
			return m, nil
		}

		m.status = "record updated"
		m.refresh(true)

		return m, nil
	case "esc":
		m.editing = false
		m.editInput.Blur()

		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)

	return m, cmd
}

func (m *Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmDelete = false

	switch msg.String() {
	case "y", "Y":
		r := m.selected()
		if r == nil {
			return m, nil
		}

		if err := m.store.Delete(r.ID); err != nil {
			m.status = err.Error()
			return m, nil
		}

		m.status = "record deleted"
		m.refresh(true)
	case "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}
