package list

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/store"
)

// narrowWidth is the viewport width below which rows take an extra line
// for wrapped content.
const narrowWidth = 60

// chromeHeight is the number of terminal lines reserved for the header
// and footer around the scrollable area.
const chromeHeight = 4

// rowHeight maps the viewport width to the per-record height in
// terminal lines.
func rowHeight(width int) int {
	if width > 0 && width < narrowWidth {
		return 4
	}

	return 3
}

// Model is the interactive record browser. It renders only the rows
// intersecting the viewport plus a buffer, recomputing the window on
// scroll and on resize.
type Model struct {
	store   *store.Store
	records []*record.Record
	window  *Window
	base    store.Query

	search    textinput.Model
	editInput textinput.Model

	offset int
	cursor int
	width  int
	height int

	searching     bool
	editing       bool
	confirmDelete bool
	status        string

	twentyFourHour bool
}

// New returns a browser over the records matching the base query. The
// keyword filter stays live: typing in the search box re-queries the
// store on every keystroke.
func New(
	s *store.Store,
	base store.Query,
	bufferRows int,
	twentyFourHour bool,
) *Model {
	search := textinput.New()
	search.Placeholder = "search content"
	search.CharLimit = 100
	search.Width = 30

	edit := textinput.New()
	edit.CharLimit = 200
	edit.Width = 40

	m := &Model{
		store:          s,
		base:           base,
		window:         NewWindow(bufferRows, rowHeight),
		search:         search,
		editInput:      edit,
		twentyFourHour: twentyFourHour,
	}

	m.refresh(false)

	return m
}

// query is the base query with the live keyword folded in.
func (m *Model) query() store.Query {
	q := m.base
	q.Keyword = strings.TrimSpace(m.search.Value())

	return q
}

// refresh re-reads the record sequence from the store. When keepPos is
// false the viewport returns to the top, as after a query change; when
// true the scroll position survives, as after an edit or delete.
func (m *Model) refresh(keepPos bool) {
	m.records = m.store.Search(m.query())
	m.window.SetCount(len(m.records))

	if !keepPos {
		m.offset = 0
		m.cursor = 0
	}

	if m.cursor > len(m.records)-1 {
		m.cursor = len(m.records) - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.offset > m.window.MaxOffset() {
		m.offset = m.window.MaxOffset()
	}

	m.window.Scroll(m.offset)
}

// selected returns the record under the cursor, or nil.
func (m *Model) selected() *record.Record {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return nil
	}

	return m.records[m.cursor]
}

// viewportHeight is the height of the scrollable area in terminal
// lines.
func (m *Model) viewportHeight() int {
	h := m.height - chromeHeight
	if h < 0 {
		return 0
	}

	return h
}

// ensureVisible scrolls just far enough to keep the cursor row fully
// inside the viewport.
func (m *Model) ensureVisible() {
	itemTop := m.window.Offset(m.cursor)
	itemBottom := itemTop + m.window.ItemHeight()

	if itemTop < m.offset {
		m.offset = itemTop
	} else if vh := m.viewportHeight(); itemBottom > m.offset+vh {
		m.offset = itemBottom - vh
	}

	if m.offset < 0 {
		m.offset = 0
	}

	m.window.Scroll(m.offset)
}

// scrollBy moves the viewport and drags the cursor along so it stays
// on a visible row.
func (m *Model) scrollBy(delta int) {
	m.offset += delta

	if m.offset < 0 {
		m.offset = 0
	}

	if max := m.window.MaxOffset(); m.offset > max {
		m.offset = max
	}

	m.window.Scroll(m.offset)

	first := m.offset / m.window.ItemHeight()
	last := (m.offset + m.viewportHeight() - 1) / m.window.ItemHeight()

	if m.cursor < first {
		m.cursor = first
	}

	if m.cursor > last {
		m.cursor = last
	}

	if m.cursor > len(m.records)-1 {
		m.cursor = len(m.records) - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}
