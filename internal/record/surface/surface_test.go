package surface

import (
	"testing"

	"github.com/micro-editor/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spanDrawable struct {
	id   string
	x, y int
	text string
}

func (d spanDrawable) ID() string { return d.id }
func (d spanDrawable) Draw(s *Surface, x, y int) {
	s.DrawSpan(x+d.x, y+d.y, d.text, tcell.StyleDefault)
}

func TestDrawComponentRecordsBoundingRect(t *testing.T) {
	s := New(40, 10)
	rect := s.DrawComponent(2, 3, spanDrawable{id: "greeting", text: "hello"})
	assert.Equal(t, Rect{X: 2, Y: 3, Width: 5, Height: 1}, rect)

	got, ok := s.DrawnRectFor("greeting")
	require.True(t, ok)
	assert.Equal(t, rect, got)
}

func TestDrawComponentOverwritesPriorEntryForSameID(t *testing.T) {
	s := New(40, 10)
	s.DrawComponent(0, 0, spanDrawable{id: "x", text: "short"})
	s.DrawComponent(0, 0, spanDrawable{id: "x", text: "much longer text"})

	rect, ok := s.DrawnRectFor("x")
	require.True(t, ok)
	assert.Equal(t, 16, rect.Width)
}

func TestWithMaskClipsWrites(t *testing.T) {
	s := New(10, 10)
	s.WithMask(Rect{X: 0, Y: 0, Width: 3, Height: 1}, func() {
		s.DrawSpan(0, 0, "abcdef", tcell.StyleDefault)
	})
	rendered := s.Render()
	assert.Equal(t, "abc       \n", rendered[:11])
}

func TestDrawnRectForMissingIDReturnsFalse(t *testing.T) {
	s := New(5, 5)
	_, ok := s.DrawnRectFor("nope")
	assert.False(t, ok)
}

func TestRenderPadsUnwrittenCellsWithSpaces(t *testing.T) {
	s := New(3, 2)
	s.DrawSpan(0, 0, "a", tcell.StyleDefault)
	assert.Equal(t, "a  \n   \n", s.Render())
}
