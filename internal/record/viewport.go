package record

// Rect is a drawn component's bounding box, as recorded by the Surface's
// drawn-rects ledger (§4.1).
type Rect struct {
	X, Y, Width, Height int
}

// ClampScroll bounds scroll_offset_y to [0, rootHeight-1] (§4.6).
func ClampScroll(offset, rootHeight int) int {
	max := rootHeight - 1
	if max < 0 {
		max = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

// EnsureInViewport computes the new scroll_offset_y required to bring the
// selection key's drawn rect fully into view, per §4.6. It returns
// (offset, true) when a change/confirmation was computed, or
// (_, false) when the rect is not yet known (the frame containing it
// hasn't rendered) — per §7, this is "do nothing", not an error.
func EnsureInViewport(scrollOffsetY, termHeight int, rect Rect, found bool, k SelectionKey) (int, bool) {
	if !found {
		return scrollOffsetY, false
	}
	topMargin := 0
	if k.Kind == SelSection || k.Kind == SelLine {
		topMargin = 1
	}
	viewportTop := scrollOffsetY + topMargin
	viewportHeight := termHeight - topMargin
	viewportBottom := viewportTop + viewportHeight

	selTop := rect.Y
	selHeight := rect.Height
	selBottom := selTop + selHeight

	if viewportTop <= selTop && selBottom < viewportBottom {
		return scrollOffsetY, true
	}
	if selHeight >= viewportHeight || selTop < viewportTop {
		return selTop - topMargin, true
	}
	return selBottom - topMargin - viewportHeight, true
}
