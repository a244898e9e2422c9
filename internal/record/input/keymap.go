package input

import (
	"github.com/ellery/record/internal/record"
	"github.com/micro-editor/tcell/v2"
)

// TranslateKey maps one tcell key event to an engine Event, following the
// reference keybinding table of §6. It returns (Event{}, false) for keys
// with no binding, which the caller should simply ignore (the teacher's
// HandleEvent convention of returning false/"unhandled" rather than
// erroring, see internal/sourcecontrol/events.go).
func TranslateKey(ev *tcell.EventKey) (record.Event, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return record.Event{Kind: record.EventQuitInterrupt}, true
	case tcell.KeyEsc:
		return record.Event{Kind: record.EventQuitEscape}, true
	case tcell.KeyUp:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return record.Event{Kind: record.EventScrollUp}, true
		}
		return record.Event{Kind: record.EventFocusPrev}, true
	case tcell.KeyDown:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return record.Event{Kind: record.EventScrollDown}, true
		}
		return record.Event{Kind: record.EventFocusNext}, true
	case tcell.KeyLeft:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return record.Event{Kind: record.EventFocusOuter, FoldSection: false}, true
		}
		return record.Event{Kind: record.EventFocusOuter, FoldSection: true}, true
	case tcell.KeyRight:
		return record.Event{Kind: record.EventFocusInner}, true
	case tcell.KeyPgUp:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return record.Event{Kind: record.EventPageUp}, true
		}
		return record.Event{Kind: record.EventFocusPrevSameKind}, true
	case tcell.KeyPgDn:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return record.Event{Kind: record.EventPageDown}, true
		}
		return record.Event{Kind: record.EventFocusNextSameKind}, true
	case tcell.KeyCtrlY:
		return record.Event{Kind: record.EventScrollUp}, true
	case tcell.KeyCtrlE:
		return record.Event{Kind: record.EventScrollDown}, true
	case tcell.KeyCtrlB:
		return record.Event{Kind: record.EventPageUp}, true
	case tcell.KeyCtrlF:
		return record.Event{Kind: record.EventPageDown}, true
	case tcell.KeyCtrlU:
		return record.Event{Kind: record.EventFocusPrevPage}, true
	case tcell.KeyCtrlD:
		return record.Event{Kind: record.EventFocusNextPage}, true
	case tcell.KeyEnter:
		return record.Event{Kind: record.EventToggleItemAndAdvance}, true
	case tcell.KeyTab:
		// Not in the documented reference bindings; Tab flips the
		// inline/adjacent commit layout since no other key claims it.
		return record.Event{Kind: record.EventToggleCommitViewMode}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return record.Event{Kind: record.EventToggleItem}, true
		case 'q':
			return record.Event{Kind: record.EventQuitCancel}, true
		case 'c':
			return record.Event{Kind: record.EventQuitAccept}, true
		case 'j':
			return record.Event{Kind: record.EventFocusNext}, true
		case 'k':
			return record.Event{Kind: record.EventFocusPrev}, true
		case 'h':
			return record.Event{Kind: record.EventFocusOuter, FoldSection: true}, true
		case 'H':
			return record.Event{Kind: record.EventFocusOuter, FoldSection: false}, true
		case 'l':
			return record.Event{Kind: record.EventFocusInner}, true
		case 'a':
			return record.Event{Kind: record.EventToggleAll}, true
		case 'A':
			return record.Event{Kind: record.EventToggleAllUniform}, true
		case 'f':
			return record.Event{Kind: record.EventExpandItem}, true
		case 'F':
			return record.Event{Kind: record.EventExpandAll}, true
		case 'e':
			return record.Event{Kind: record.EventEditCommitMessage}, true
		case '?':
			return record.Event{Kind: record.EventHelp}, true
		}
	}
	return record.Event{}, false
}
