// Package surface implements the engine's abstract drawing model (§4.1):
// an offscreen grid of styled glyph cells, a stack of clipping masks, and
// a drawn-rects ledger keyed by component id, backed by a tcell.Screen the
// way the teacher's internal/terminal/panel.go and
// internal/sourcecontrol/render.go write directly to one.
package surface

import (
	"github.com/micro-editor/tcell/v2"
)

// Rect is a rectangular region in surface coordinates. Height/Width of -1
// means "unbounded" (resolved against the Surface's own bounds).
type Rect struct {
	X, Y, Width, Height int
}

func (r Rect) contains(x, y int) bool {
	if r.Width >= 0 && (x < r.X || x >= r.X+r.Width) {
		return false
	}
	if r.Height >= 0 && (y < r.Y || y >= r.Y+r.Height) {
		return false
	}
	return x >= r.X && y >= r.Y
}

// DrawnRect records the last-measured bounding box of a component draw,
// plus the monotonic timestamp of that draw (§4.1: "last draw for a given
// id wins; the timestamp disambiguates z-order and staleness").
type DrawnRect struct {
	Rect      Rect
	Timestamp int64
}

// Cell is one styled glyph.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Surface is the offscreen grid plus mask stack and drawn-rects ledger.
// It is single-threaded and drained completely once per frame (§4.1).
type Surface struct {
	width, height int
	cells         map[[2]int]Cell
	masks         []Rect
	ledger        map[string]DrawnRect
	clock         int64
	scrollY       int
}

// New creates a Surface of the given logical size.
func New(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		cells:  make(map[[2]int]Cell),
		ledger: make(map[string]DrawnRect),
	}
}

// Reset clears all cells for the next frame but keeps the ledger (the
// ledger is append/overwrite across the Surface's whole lifetime, not
// just one frame, so that stale ids can be distinguished by timestamp).
func (s *Surface) Reset() {
	s.cells = make(map[[2]int]Cell)
	s.masks = nil
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// SetScrollY sets the vertical scroll offset applied when reading cells
// back out for Render/Flush: screen row y shows the content drawn at
// logical row y+scrollY. Components keep drawing and recording ledger
// rects in unshifted, absolute content coordinates (§4.6); only the
// final readout is shifted, mirroring scm-record's render_top_level,
// which renders the component tree at its true position and translates
// to physical terminal cells by scroll_offset_y.
func (s *Surface) SetScrollY(y int) { s.scrollY = y }

// MaskRect returns the clip rectangle of the top-of-stack mask, resolving
// any unbounded dimension against the Surface's own bounds.
func (s *Surface) MaskRect() Rect {
	if len(s.masks) == 0 {
		return Rect{X: 0, Y: 0, Width: s.width, Height: s.height}
	}
	m := s.masks[len(s.masks)-1]
	r := m
	if r.Width < 0 {
		r.Width = s.width - r.X
	}
	if r.Height < 0 {
		r.Height = s.height - r.Y
	}
	return r
}

func (s *Surface) inMask(x, y int) bool {
	for _, m := range s.masks {
		if !m.contains(x, y) {
			return false
		}
	}
	return true
}

// WithMask pushes mask, runs f, and pops it, clipping every write inside
// f to the intersection of all masks currently on the stack.
func (s *Surface) WithMask(mask Rect, f func()) {
	s.masks = append(s.masks, mask)
	f()
	s.masks = s.masks[:len(s.masks)-1]
}

// setCell writes one cell, silently discarding writes outside the current
// mask (§4.1).
func (s *Surface) setCell(x, y int, r rune, style tcell.Style) {
	if !s.inMask(x, y) {
		return
	}
	s.cells[[2]int{x, y}] = Cell{Rune: r, Style: style}
}

// DrawBlank fills rect with blank cells in the given style.
func (s *Surface) DrawBlank(rect Rect, style tcell.Style) {
	for y := rect.Y; y < rect.Y+maxH(rect, s.height); y++ {
		for x := rect.X; x < rect.X+maxW(rect, s.width); x++ {
			s.setCell(x, y, ' ', style)
		}
	}
}

func maxW(r Rect, fallback int) int {
	if r.Width >= 0 {
		return r.Width
	}
	return fallback
}

func maxH(r Rect, fallback int) int {
	if r.Height >= 0 {
		return r.Height
	}
	return fallback
}

// DrawSpan draws a single styled run of text starting at (x,y).
func (s *Surface) DrawSpan(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.setCell(x, y, r, style)
		x++
	}
}

// DrawText is an alias of DrawSpan kept for readability at call sites
// that draw a whole line rather than a styled run.
func (s *Surface) DrawText(x, y int, line string, style tcell.Style) {
	s.DrawSpan(x, y, line, style)
}

// SetStyle overwrites the style of every already-written cell in rect,
// leaving its rune untouched. Cells not yet written are left alone.
func (s *Surface) SetStyle(rect Rect, style tcell.Style) {
	for y := rect.Y; y < rect.Y+maxH(rect, s.height); y++ {
		for x := rect.X; x < rect.X+maxW(rect, s.width); x++ {
			if c, ok := s.cells[[2]int{x, y}]; ok {
				s.setCell(x, y, c.Rune, style)
			}
		}
	}
}

// Drawable is anything with a stable id that knows how to paint itself.
type Drawable interface {
	ID() string
	Draw(s *Surface, x, y int)
}

// DrawComponent invokes component.Draw, measures the minimum bounding box
// of cells written during that call, records it in the drawn-rects
// ledger keyed by component.ID() with a monotonically increasing
// timestamp, and returns the measured rect (§4.1).
func (s *Surface) DrawComponent(x, y int, component Drawable) Rect {
	before := len(s.cells)
	_ = before
	minX, minY, maxX, maxY := x, y, x, y
	touched := make(map[[2]int]bool)
	// Wrap setCell bookkeeping via a snapshot diff: record keys present
	// before the draw so only newly-touched or restyled cells count.
	preexisting := make(map[[2]int]Cell, len(s.cells))
	for k, v := range s.cells {
		preexisting[k] = v
	}

	component.Draw(s, x, y)

	any := false
	for k, v := range s.cells {
		if old, ok := preexisting[k]; ok && old == v {
			continue
		}
		touched[k] = true
		if !any {
			minX, minY, maxX, maxY = k[0], k[1], k[0], k[1]
			any = true
		}
		if k[0] < minX {
			minX = k[0]
		}
		if k[1] < minY {
			minY = k[1]
		}
		if k[0] > maxX {
			maxX = k[0]
		}
		if k[1] > maxY {
			maxY = k[1]
		}
	}

	rect := Rect{X: x, Y: y, Width: 0, Height: 0}
	if any {
		rect = Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
	}
	s.clock++
	s.ledger[component.ID()] = DrawnRect{Rect: rect, Timestamp: s.clock}
	return rect
}

// DrawnRectFor returns the last recorded rect for id, if any.
func (s *Surface) DrawnRectFor(id string) (Rect, bool) {
	dr, ok := s.ledger[id]
	if !ok {
		return Rect{}, false
	}
	return dr.Rect, true
}

// DrawWidget paints w's cells at the exact cells it writes, clipped by
// the current masks, without going through DrawComponent's ledger: it
// records no drawn rect.
func (s *Surface) DrawWidget(rect Rect, w func(x, y int) (rune, tcell.Style, bool)) {
	for y := rect.Y; y < rect.Y+maxH(rect, s.height); y++ {
		for x := rect.X; x < rect.X+maxW(rect, s.width); x++ {
			if r, style, ok := w(x-rect.X, y-rect.Y); ok {
				s.setCell(x, y, r, style)
			}
		}
	}
}

// Flush paints every visible cell onto a real tcell.Screen at the given
// origin offset (used by the driver once per frame). Screen row y reads
// back logical row y+scrollY, so scrolled-past content never reaches the
// terminal.
func (s *Surface) Flush(screen tcell.Screen, originX, originY int) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if c, ok := s.cells[[2]int{x, y + s.scrollY}]; ok {
				screen.SetContent(originX+x, originY+y, c.Rune, nil, c.Style)
			}
		}
	}
}

// DrawDebugOverlay redraws every ledger entry's bounding box as a dim
// outline with its component id printed at the top-left corner,
// superimposed on whatever the frame already drew. The driver's debug
// pass renders the frame once normally, calls this, then flushes once
// (SUPPLEMENTED FEATURES, grounded on scm-record's debug overlay).
func (s *Surface) DrawDebugOverlay() {
	overlay := tcell.StyleDefault.Foreground(tcell.ColorYellow).Dim(true)
	for id, dr := range s.ledger {
		r := dr.Rect
		for x := r.X; x < r.X+r.Width; x++ {
			s.setCell(x, r.Y, '-', overlay)
		}
		for y := r.Y; y < r.Y+r.Height; y++ {
			s.setCell(r.X, y, '|', overlay)
		}
		s.DrawSpan(r.X, r.Y, id, overlay)
	}
}

// Render returns the surface's current contents as plain text, one line
// per row, for TakeScreenshot sinks. Row y reads back logical row
// y+scrollY, matching Flush.
func (s *Surface) Render() string {
	out := make([]byte, 0, s.width*s.height)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c, ok := s.cells[[2]int{x, y + s.scrollY}]
			if !ok || c.Rune == 0 {
				out = append(out, ' ')
				continue
			}
			out = append(out, []byte(string(c.Rune))...)
		}
		out = append(out, '\n')
	}
	return string(out)
}
