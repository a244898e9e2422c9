package component

import (
	"github.com/ellery/record/internal/record"
	"github.com/micro-editor/tcell/v2"
)

// Styles mirrors the teacher's package-level style constants
// (internal/config/colorscheme.go's DefStyle/hot-pink accent pattern)
// scaled down to what this engine's components need.
var (
	StyleDefault   = tcell.StyleDefault
	StyleDim       = tcell.StyleDefault.Dim(true)
	StyleAdded     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleRemoved   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleAccent    = tcell.StyleDefault.Foreground(tcell.Color205) // hot pink, matches the teacher's focus accent
	StyleReverse   = tcell.StyleDefault.Reverse(true)
	StyleBold      = tcell.StyleDefault.Bold(true)
	StyleUnderline = tcell.StyleDefault.Underline(true)
)

// Glyphs toggles between unicode and ASCII renditions of tristate
// checkboxes/expand arrows, per §6 "unicode/ASCII toggle through an
// engine flag".
type Glyphs struct {
	UseUnicode bool
}

func (g Glyphs) CheckBox(t record.Tristate) string {
	if g.UseUnicode {
		switch t {
		case record.False:
			return "☐"
		case record.True:
			return "☑"
		default:
			return "▣"
		}
	}
	switch t {
	case record.False:
		return "[ ]"
	case record.True:
		return "[*]"
	default:
		return "[~]"
	}
}

func (g Glyphs) ExpandArrow(expanded bool, partial bool) string {
	if g.UseUnicode {
		if partial {
			return "~"
		}
		if expanded {
			return "▼"
		}
		return "▶"
	}
	if partial {
		return "~"
	}
	if expanded {
		return "-"
	}
	return "+"
}

func (g Glyphs) ReadOnlyCheckBox(t record.Tristate) string {
	switch t {
	case record.False:
		return "<  >"
	case record.True:
		return "<*>"
	default:
		return "<~>"
	}
}
