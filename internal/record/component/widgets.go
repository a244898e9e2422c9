package component

import (
	"github.com/ellery/record/internal/record"
	"github.com/ellery/record/internal/record/surface"
)

// TristateBox is the three-state checkbox/expand-arrow widget (§4.2).
type TristateBox struct {
	Id       ComponentId
	State    record.Tristate
	ReadOnly bool
	Expand   bool // Expand style (arrow) vs Check style (brackets)
	Expanded bool // only meaningful when Expand is set
	Glyphs   Glyphs
}

func (b TristateBox) ID() string { return string(b.Id) }

func (b TristateBox) Draw(s *surface.Surface, x, y int) {
	style := StyleDefault
	var text string
	switch {
	case b.ReadOnly:
		style = StyleDim
		text = b.Glyphs.ReadOnlyCheckBox(b.State)
	case b.Expand:
		text = b.Glyphs.ExpandArrow(b.Expanded, b.State == record.Partial)
	default:
		text = b.Glyphs.CheckBox(b.State)
	}
	s.DrawSpan(x, y, text, style)
}

// Button is a simple focusable button: unfocused "[label]", focused
// "(label)" with reverse video (§4.2).
type Button struct {
	Id       ComponentId
	Label    string
	Focused  bool
	Disabled bool
}

func (b Button) ID() string { return string(b.Id) }

func (b Button) Draw(s *surface.Surface, x, y int) {
	style := StyleDefault
	var text string
	if b.Focused {
		text = "(" + b.Label + ")"
		style = StyleReverse
	} else {
		text = "[" + b.Label + "]"
	}
	if b.Disabled {
		style = StyleDim
	}
	s.DrawSpan(x, y, text, style)
}
