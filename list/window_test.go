package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zxrxiaoha/checkInRecord/list"
)

func fixedHeight(h int) func(int) int {
	return func(int) int { return h }
}

func TestWindowScroll(t *testing.T) {
	w := list.NewWindow(5, fixedHeight(120))
	w.SetCount(1000)

	// 8 rows of 120 fit a 960-line viewport.
	w.Resize(80, 960)

	assert.Equal(t, 8, w.VisibleCount())
	assert.Equal(t, 120*1000, w.ContentHeight())

	moved := w.Scroll(6000)

	assert.True(t, moved)
	assert.Equal(t, 45, w.Start())

	start, end := w.Bounds()

	assert.Equal(t, 45, start)
	assert.Equal(t, 63, end)
}

func TestWindowScrollSubRowDeltas(t *testing.T) {
	w := list.NewWindow(5, fixedHeight(120))
	w.SetCount(1000)
	w.Resize(80, 960)

	assert.True(t, w.Scroll(6000))

	// Anywhere inside the same row is a no-op.
	assert.False(t, w.Scroll(6060))
	assert.False(t, w.Scroll(6119))

	// The next row boundary moves the window again.
	assert.True(t, w.Scroll(6120))
	assert.Equal(t, 46, w.Start())
}

func TestWindowScrollNearTop(t *testing.T) {
	w := list.NewWindow(5, fixedHeight(120))
	w.SetCount(1000)
	w.Resize(80, 960)

	// The buffer cannot reach above the first row.
	w.Scroll(240)

	assert.Equal(t, 0, w.Start())

	w.Scroll(-50)

	assert.Equal(t, 0, w.Start())
}

func TestWindowScrollNearTail(t *testing.T) {
	w := list.NewWindow(5, fixedHeight(120))
	w.SetCount(1000)
	w.Resize(80, 960)

	w.Scroll(w.MaxOffset())

	// Start is clamped so a full viewport of rows remains.
	assert.Equal(t, 992, w.Start())

	start, end := w.Bounds()

	assert.Equal(t, 992, start)
	assert.Equal(t, 1000, end)
}

func TestWindowResize(t *testing.T) {
	w := list.NewWindow(2, func(width int) int {
		if width < 60 {
			return 4
		}

		return 3
	})
	w.SetCount(100)

	changed := w.Resize(80, 30)

	assert.True(t, changed)
	assert.Equal(t, 3, w.ItemHeight())
	assert.Equal(t, 10, w.VisibleCount())

	// Same width class keeps the item height.
	changed = w.Resize(100, 30)

	assert.False(t, changed)

	// A narrow viewport switches to the taller row.
	changed = w.Resize(40, 30)

	assert.True(t, changed)
	assert.Equal(t, 4, w.ItemHeight())
	assert.Equal(t, 8, w.VisibleCount())
}

func TestWindowEmpty(t *testing.T) {
	w := list.NewWindow(5, fixedHeight(3))
	w.SetCount(0)
	w.Resize(80, 24)

	start, end := w.Bounds()

	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.Equal(t, 0, w.ContentHeight())
	assert.Equal(t, 0, w.MaxOffset())

	w.Scroll(500)

	assert.Equal(t, 0, w.Start())
}

func TestWindowSetCountResets(t *testing.T) {
	w := list.NewWindow(5, fixedHeight(3))
	w.SetCount(200)
	w.Resize(80, 24)
	w.Scroll(300)

	assert.NotEqual(t, 0, w.Start())

	w.SetCount(50)

	assert.Equal(t, 0, w.Start())

	// The previous scroll row is forgotten, so the same offset is not
	// treated as a repeat.
	assert.True(t, w.Scroll(30))
}
