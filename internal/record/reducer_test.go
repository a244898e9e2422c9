package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReducerPendingFIFO(t *testing.T) {
	r := NewReducer()
	assert.False(t, r.HasPending())

	r.Enqueue(Event{Kind: EventRedraw})
	r.Enqueue(Event{Kind: EventHelp})
	assert.True(t, r.HasPending())

	ev, ok := r.Dequeue()
	require.True(t, ok)
	assert.Equal(t, EventRedraw, ev.Kind)

	ev, ok = r.Dequeue()
	require.True(t, ok)
	assert.Equal(t, EventHelp, ev.Kind)

	_, ok = r.Dequeue()
	assert.False(t, ok)
}

func TestReduceQuitAcceptAlwaysExits(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	st, _ := NewRecordState(false, nil, nil)
	up := r.Reduce(st, u, Event{Kind: EventQuitAccept}, 20, Rect{}, false)
	assert.Equal(t, UpdateQuitAccept, up.Kind)
}

func TestReduceQuitCancelWithNoChangesExitsDirectly(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	st, _ := NewRecordState(false, nil, []File{
		{Path: "a", Sections: []Section{{Kind: KindChanged, Lines: []ChangedLine{{IsChecked: false}}}}},
	})
	up := r.Reduce(st, u, Event{Kind: EventQuitCancel}, 20, Rect{}, false)
	assert.Equal(t, UpdateQuitCancel, up.Kind)
}

func TestReduceQuitCancelWithChangesOpensDialog(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	st, _ := NewRecordState(false, nil, []File{
		{Path: "a", Sections: []Section{{Kind: KindChanged, Lines: []ChangedLine{{IsChecked: true}}}}},
	})
	up := r.Reduce(st, u, Event{Kind: EventQuitCancel}, 20, Rect{}, false)
	assert.Equal(t, UpdateSetQuitDialog, up.Kind)
	assert.True(t, up.QuitDialogOpen)
}

func TestReduceQuitCancelWithCommitMessageOpensDialog(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	msg := "fix: thing"
	st, _ := NewRecordState(false, []Commit{{Message: &msg}}, nil)
	up := r.Reduce(st, u, Event{Kind: EventQuitCancel}, 20, Rect{}, false)
	assert.Equal(t, UpdateSetQuitDialog, up.Kind)
}

func TestHelpDialogSwallowsUnrelatedEventsAndClosesOnToggle(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	u.HelpDialogOpen = true
	st, _ := NewRecordState(false, nil, nil)

	up := r.Reduce(st, u, Event{Kind: EventFocusNext}, 20, Rect{}, false)
	assert.Equal(t, UpdateNone, up.Kind)

	up = r.Reduce(st, u, Event{Kind: EventToggleItem}, 20, Rect{}, false)
	assert.Equal(t, UpdateSetHelpDialog, up.Kind)
	assert.False(t, up.HelpDialogOpen)
}

func TestQuitDialogFocusTogglesBetweenButtons(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	u.QuitDialog = &QuitDialog{FocusedButton: QuitDialogGoBack}
	st, _ := NewRecordState(false, nil, nil)

	r.Reduce(st, u, Event{Kind: EventFocusNext}, 20, Rect{}, false)
	assert.Equal(t, QuitDialogQuit, u.QuitDialog.FocusedButton)

	r.Reduce(st, u, Event{Kind: EventFocusNext}, 20, Rect{}, false)
	assert.Equal(t, QuitDialogGoBack, u.QuitDialog.FocusedButton)
}

func TestQuitDialogToggleOnQuitButtonExits(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	u.QuitDialog = &QuitDialog{FocusedButton: QuitDialogQuit}
	st, _ := NewRecordState(false, nil, nil)

	up := r.Reduce(st, u, Event{Kind: EventToggleItem}, 20, Rect{}, false)
	assert.Equal(t, UpdateQuitCancel, up.Kind)
}

func TestQuitDialogToggleOnGoBackDismisses(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	u.QuitDialog = &QuitDialog{FocusedButton: QuitDialogGoBack}
	st, _ := NewRecordState(false, nil, nil)

	up := r.Reduce(st, u, Event{Kind: EventToggleItem}, 20, Rect{}, false)
	assert.Equal(t, UpdateSetQuitDialog, up.Kind)
	assert.False(t, up.QuitDialogOpen)
}

func TestQuitDialogSecondInterruptForceCancels(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	u.QuitDialog = &QuitDialog{FocusedButton: QuitDialogGoBack}
	st, _ := NewRecordState(false, nil, nil)

	up := r.Reduce(st, u, Event{Kind: EventQuitInterrupt}, 20, Rect{}, false)
	assert.Equal(t, UpdateQuitCancel, up.Kind)
}

func TestToggleItemAndAdvanceYieldsToggleThenAdvanceUpdate(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	st, _ := NewRecordState(false, nil, []File{{Path: "a"}})
	u.SelectionKey = FileSelKey(FileKey{FileIdx: 0})

	up := r.Reduce(st, u, Event{Kind: EventToggleItemAndAdvance}, 20, Rect{}, false)
	assert.Equal(t, UpdateToggleItemAndAdvance, up.Kind)
	assert.Equal(t, u.SelectionKey, up.Key)
}

func TestEnsureSelectionInViewportReducesToScrollTo(t *testing.T) {
	r := NewReducer()
	u := NewUiState()
	st, _ := NewRecordState(false, nil, nil)
	rect := Rect{X: 0, Y: 25, Width: 5, Height: 1}

	up := r.Reduce(st, u, Event{Kind: EventEnsureSelectionInViewport}, 20, rect, true)
	assert.Equal(t, UpdateScrollTo, up.Kind)
	assert.Equal(t, 6, up.ScrollY)
}
