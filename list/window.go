// Package list renders long record sequences through a windowed
// viewport
package list

// DefaultBufferRows is the number of extra rows materialized on each
// side of the visible window. The buffer masks the latency of the next
// render pass during fast scrolling.
const DefaultBufferRows = 5

// Window computes which slice of a long sequence to materialize inside
// a fixed-height scrollable viewport. The virtual content height stays
// count × itemHeight, so scroll positions remain meaningful without
// rendering off-screen rows.
type Window struct {
	heightForWidth func(width int) int

	itemHeight    int
	bufferRows    int
	visibleCount  int
	windowStart   int
	count         int
	lastCandidate int

	viewportWidth  int
	viewportHeight int
}

// NewWindow returns a window with the given buffer size. heightForWidth
// maps a viewport width to the per-item height; narrower viewports use
// a taller item to absorb wrapped content. A nil function fixes the
// item height at 1.
func NewWindow(bufferRows int, heightForWidth func(int) int) *Window {
	if bufferRows < 0 {
		bufferRows = DefaultBufferRows
	}

	return &Window{
		heightForWidth: heightForWidth,
		itemHeight:     1,
		bufferRows:     bufferRows,
		lastCandidate:  -1,
	}
}

// SetCount resets the window over a sequence of the given length. The
// window start returns to the top.
func (w *Window) SetCount(count int) {
	if count < 0 {
		count = 0
	}

	w.count = count
	w.windowStart = 0
	w.lastCandidate = -1
}

// Resize recomputes the item height and visible count for the new
// viewport dimensions. It reports whether the item height changed,
// which requires an immediate re-render at the current window start.
func (w *Window) Resize(width, height int) bool {
	w.viewportWidth = width
	w.viewportHeight = height

	prev := w.itemHeight

	if w.heightForWidth != nil {
		w.itemHeight = w.heightForWidth(width)
	}

	if w.itemHeight < 1 {
		w.itemHeight = 1
	}

	if height < 0 {
		height = 0
	}

	w.visibleCount = (height + w.itemHeight - 1) / w.itemHeight

	w.clamp()

	return w.itemHeight != prev
}

// Scroll recomputes the window start for the given scroll offset and
// reports whether the materialized window moved. Offsets landing on the
// same row as the previous call are a no-op, so sub-row scroll deltas
// never trigger a redundant re-render.
func (w *Window) Scroll(offset int) bool {
	if offset < 0 {
		offset = 0
	}

	candidate := offset / w.itemHeight
	if candidate == w.lastCandidate {
		return false
	}

	w.lastCandidate = candidate

	start := candidate - w.bufferRows
	if start < 0 {
		start = 0
	}

	w.windowStart = start
	w.clamp()

	return true
}

// Bounds returns the half-open index range of materialized rows:
// [windowStart, windowStart+visibleCount+2×bufferRows) capped at the
// sequence length.
func (w *Window) Bounds() (start, end int) {
	end = w.windowStart + w.visibleCount + 2*w.bufferRows
	if end > w.count {
		end = w.count
	}

	return w.windowStart, end
}

// ContentHeight is the total virtual height of the sequence.
func (w *Window) ContentHeight() int {
	return w.count * w.itemHeight
}

// Offset returns the virtual position of row i.
func (w *Window) Offset(i int) int {
	return i * w.itemHeight
}

// Start returns the index of the first materialized row.
func (w *Window) Start() int {
	return w.windowStart
}

// ItemHeight returns the current per-item height.
func (w *Window) ItemHeight() int {
	return w.itemHeight
}

// VisibleCount returns how many rows fit the viewport.
func (w *Window) VisibleCount() int {
	return w.visibleCount
}

// MaxOffset is the largest useful scroll offset for the current content
// and viewport.
func (w *Window) MaxOffset() int {
	max := w.ContentHeight() - w.viewportHeight
	if max < 0 {
		return 0
	}

	return max
}

// clamp keeps the window start inside [0, max(0, count−visibleCount)],
// so the materialized window never points entirely past the end.
func (w *Window) clamp() {
	max := w.count - w.visibleCount
	if max < 0 {
		max = 0
	}

	if w.windowStart > max {
		w.windowStart = max
	}

	if w.windowStart < 0 {
		w.windowStart = 0
	}
}
