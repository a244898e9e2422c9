package record

// Reducer drives the (UiState, Event) -> StateUpdate transition of
// §4.7, plus the small pending-event FIFO the driver drains before
// blocking on new input. It holds no RecordState reference of its own;
// the driver supplies state, term height, and the last-known drawn rect
// for the current selection on every call. Reduce is not pure: focus
// navigation moves u.SelectionKey (expanding its ancestors) in place,
// FocusOuter may collapse an item in place, and quit-dialog focus moves
// are written to u.QuitDialog directly; a selection change is also
// returned as an UpdateSelectItem for the driver to apply.
type Reducer struct {
	pending []Event
}

// NewReducer returns a reducer with an empty pending queue.
func NewReducer() *Reducer { return &Reducer{} }

// Enqueue appends an event to the pending FIFO. The driver uses this to
// schedule a follow-up (e.g. EnsureSelectionInViewport right after a
// toggle moves the selection) without re-entering the input source.
func (r *Reducer) Enqueue(e Event) {
	r.pending = append(r.pending, e)
}

// Dequeue pops the next pending event, if any.
func (r *Reducer) Dequeue() (Event, bool) {
	if len(r.pending) == 0 {
		return Event{}, false
	}
	e := r.pending[0]
	r.pending = r.pending[1:]
	return e, true
}

// HasPending reports whether events remain queued.
func (r *Reducer) HasPending() bool { return len(r.pending) > 0 }

// hasChanges reports whether any commit has a non-empty message, or any
// file has a non-False tristate — the condition under which quitting
// must be confirmed (§4.7 top-level QuitCancel).
func hasChanges(s *RecordState, u *UiState) bool {
	for _, c := range s.Commits {
		if !c.IsPlaceholder() {
			return true
		}
	}
	for _, f := range s.Files {
		if f.Tristate() != False {
			return true
		}
	}
	return false
}

// Reduce implements the §4.7 transition. rect/rectFound describe the last
// drawn rect for u.SelectionKey, as captured by the surface's ledger
// after the previous render.
func (r *Reducer) Reduce(s *RecordState, u *UiState, ev Event, termHeight int, rect Rect, rectFound bool) StateUpdate {
	if u.QuitDialog != nil {
		return r.reduceQuitDialog(u, ev)
	}
	if u.HelpDialogOpen {
		return r.reduceHelpDialog(ev)
	}

	switch ev.Kind {
	case EventQuitAccept:
		return StateUpdate{Kind: UpdateQuitAccept}
	case EventQuitCancel, EventQuitEscape, EventQuitInterrupt:
		if hasChanges(s, u) {
			return StateUpdate{Kind: UpdateSetQuitDialog, QuitDialogOpen: true}
		}
		return StateUpdate{Kind: UpdateQuitCancel}
	case EventHelp:
		return StateUpdate{Kind: UpdateSetHelpDialog, HelpDialogOpen: true}
	case EventTakeScreenshot:
		return StateUpdate{Kind: UpdateTakeScreenshot, ScreenshotSink: ev.ScreenshotSink}
	case EventRedraw:
		return StateUpdate{Kind: UpdateRedraw}
	case EventEnsureSelectionInViewport:
		return r.ensureInViewport(u, termHeight, rect, rectFound)
	case EventScrollUp:
		return StateUpdate{Kind: UpdateScrollTo, ScrollY: ClampScroll(u.ScrollOffsetY-1, termHeight)}
	case EventScrollDown:
		return StateUpdate{Kind: UpdateScrollTo, ScrollY: ClampScroll(u.ScrollOffsetY+1, termHeight)}
	case EventPageUp:
		return StateUpdate{Kind: UpdateScrollTo, ScrollY: ClampScroll(u.ScrollOffsetY-termHeight, termHeight)}
	case EventPageDown:
		return StateUpdate{Kind: UpdateScrollTo, ScrollY: ClampScroll(u.ScrollOffsetY+termHeight, termHeight)}
	case EventFocusPrev:
		return r.selectVia(s, u, s.NavPrev)
	case EventFocusNext:
		return r.selectVia(s, u, s.NavNext)
	case EventFocusPrevSameKind:
		return r.selectVia(s, u, s.NavPrevSameKind)
	case EventFocusNextSameKind:
		return r.selectVia(s, u, s.NavNextSameKind)
	case EventFocusPrevPage, EventFocusNextPage:
		return r.focusPage(s, u, ev.Kind, termHeight, rect, rectFound)
	case EventFocusInner:
		return r.selectVia(s, u, s.SelectInner)
	case EventFocusOuter:
		before := u.SelectionKey
		s.SelectOuter(u, ev.FoldSection)
		if u.SelectionKey == before {
			return StateUpdate{Kind: UpdateNone}
		}
		return StateUpdate{Kind: UpdateSelectItem, Key: u.SelectionKey, EnsureInViewport: true}
	case EventToggleItem:
		return StateUpdate{Kind: UpdateToggleItem, Key: u.SelectionKey}
	case EventToggleItemAndAdvance:
		return StateUpdate{Kind: UpdateToggleItemAndAdvance, Key: u.SelectionKey}
	case EventToggleAll:
		return StateUpdate{Kind: UpdateToggleAll}
	case EventToggleAllUniform:
		return StateUpdate{Kind: UpdateToggleAllUniform}
	case EventExpandItem:
		return StateUpdate{Kind: UpdateToggleExpandItem, Key: u.SelectionKey}
	case EventExpandAll:
		return StateUpdate{Kind: UpdateToggleExpandAll}
	case EventToggleCommitViewMode:
		return StateUpdate{Kind: UpdateToggleCommitViewMode}
	case EventEditCommitMessage:
		return StateUpdate{Kind: UpdateEditCommitMessage, CommitIdx: u.FocusedCommitIdx}
	default:
		return StateUpdate{Kind: UpdateNone}
	}
}

// selectVia runs a navigation primitive (which mutates u.SelectionKey in
// place) and reports the resulting key with a viewport-ensure follow-up.
func (r *Reducer) selectVia(s *RecordState, u *UiState, nav func(*UiState)) StateUpdate {
	before := u.SelectionKey
	nav(u)
	if u.SelectionKey == before {
		return StateUpdate{Kind: UpdateNone}
	}
	return StateUpdate{Kind: UpdateSelectItem, Key: u.SelectionKey, EnsureInViewport: true}
}

// focusPage moves the selection termHeight/2 entries (at least one)
// forward or backward in the visible list, clamped to its first and last
// entries. It does not consult the drawn rects, so the distance moved in
// screen rows depends on the heights of the items passed over.
func (r *Reducer) focusPage(s *RecordState, u *UiState, kind EventKind, termHeight int, rect Rect, rectFound bool) StateUpdate {
	half := termHeight / 2
	if half < 1 {
		half = 1
	}
	visible, idx := s.FindSelection(u)
	if idx < 0 || len(visible) == 0 {
		return StateUpdate{Kind: UpdateNone}
	}
	step := half
	if !rectFound || rect.Height <= 0 {
		// The step is the same whether or not a rect is known.
	}
	target := idx
	if kind == EventFocusPrevPage {
		target -= step
	} else {
		target += step
	}
	if target < 0 {
		target = 0
	}
	if target > len(visible)-1 {
		target = len(visible) - 1
	}
	before := u.SelectionKey
	s.SelectItem(u, visible[target])
	if u.SelectionKey == before {
		return StateUpdate{Kind: UpdateNone}
	}
	return StateUpdate{Kind: UpdateSelectItem, Key: u.SelectionKey, EnsureInViewport: true}
}

func (r *Reducer) ensureInViewport(u *UiState, termHeight int, rect Rect, rectFound bool) StateUpdate {
	offset, ok := EnsureInViewport(u.ScrollOffsetY, termHeight, rect, rectFound, u.SelectionKey)
	if !ok {
		return StateUpdate{Kind: UpdateNone}
	}
	return StateUpdate{Kind: UpdateScrollTo, ScrollY: ClampScroll(offset, termHeight)}
}

// reduceHelpDialog implements §4.7: the help dialog closes on Help,
// QuitEscape, QuitCancel, ToggleItem, or ToggleItemAndAdvance; every
// other event is swallowed.
func (r *Reducer) reduceHelpDialog(ev Event) StateUpdate {
	switch ev.Kind {
	case EventHelp, EventQuitEscape, EventQuitCancel, EventToggleItem, EventToggleItemAndAdvance:
		return StateUpdate{Kind: UpdateSetHelpDialog, HelpDialogOpen: false}
	default:
		return StateUpdate{Kind: UpdateNone}
	}
}

// reduceQuitDialog implements §4.7's modal quit-confirmation: FocusPrev,
// FocusNext, FocusOuter and FocusInner each switch button focus, a toggle
// activates the focused button,
// QuitCancel/QuitEscape dismiss without quitting, and a second
// QuitInterrupt force-cancels regardless of focus.
func (r *Reducer) reduceQuitDialog(u *UiState, ev Event) StateUpdate {
	switch ev.Kind {
	case EventQuitInterrupt:
		return StateUpdate{Kind: UpdateQuitCancel}
	case EventQuitCancel, EventQuitEscape:
		return StateUpdate{Kind: UpdateSetQuitDialog, QuitDialogOpen: false}
	case EventFocusPrev, EventFocusNext, EventFocusOuter, EventFocusInner:
		if u.QuitDialog.FocusedButton == QuitDialogGoBack {
			u.QuitDialog.FocusedButton = QuitDialogQuit
		} else {
			u.QuitDialog.FocusedButton = QuitDialogGoBack
		}
		return StateUpdate{Kind: UpdateNone}
	case EventToggleItem, EventToggleItemAndAdvance:
		if u.QuitDialog.FocusedButton == QuitDialogQuit {
			return StateUpdate{Kind: UpdateQuitCancel}
		}
		return StateUpdate{Kind: UpdateSetQuitDialog, QuitDialogOpen: false}
	default:
		return StateUpdate{Kind: UpdateNone}
	}
}
