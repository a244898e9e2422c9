package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampScroll(t *testing.T) {
	assert.Equal(t, 0, ClampScroll(-5, 20))
	assert.Equal(t, 19, ClampScroll(100, 20))
	assert.Equal(t, 5, ClampScroll(5, 20))
	assert.Equal(t, 0, ClampScroll(0, 0))
}

func TestEnsureInViewportNoOpWhenRectNotFound(t *testing.T) {
	offset, ok := EnsureInViewport(3, 20, Rect{}, false, FileSelKey(FileKey{}))
	assert.False(t, ok)
	assert.Equal(t, 3, offset)
}

func TestEnsureInViewportLeavesOffsetWhenAlreadyVisible(t *testing.T) {
	rect := Rect{X: 0, Y: 5, Width: 10, Height: 1}
	offset, ok := EnsureInViewport(0, 20, rect, true, FileSelKey(FileKey{}))
	assert.True(t, ok)
	assert.Equal(t, 0, offset)
}

func TestEnsureInViewportScrollsDownWhenBelowViewport(t *testing.T) {
	rect := Rect{X: 0, Y: 25, Width: 10, Height: 1}
	offset, ok := EnsureInViewport(0, 20, rect, true, FileSelKey(FileKey{}))
	assert.True(t, ok)
	assert.Equal(t, 6, offset)
}

// TestEnsureInViewportScrollsUpWhenAboveViewport covers a selection above
// the viewport: scrollOffsetY is aligned with the selection's top row (a
// File key has no top margin). A selection below the viewport is
// bottom-aligned instead; see TestEnsureInViewportScrollsDownWhenBelowViewport.
func TestEnsureInViewportScrollsUpWhenAboveViewport(t *testing.T) {
	rect := Rect{X: 0, Y: 2, Width: 10, Height: 1}
	offset, ok := EnsureInViewport(10, 20, rect, true, FileSelKey(FileKey{}))
	assert.True(t, ok)
	assert.Equal(t, 2, offset)
}

func TestEnsureInViewportAppliesSectionTopMargin(t *testing.T) {
	sk := SectionSelKey(SectionKey{})
	rect := Rect{X: 0, Y: 1, Width: 10, Height: 1}
	offset, ok := EnsureInViewport(0, 20, rect, true, sk)
	assert.True(t, ok)
	assert.Equal(t, 0, offset)
}
