package record

// Event is the input alphabet the reducer consumes (§6). It is produced by
// an input.Source, decoupling keybinding policy from reducer semantics.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuitAccept
	EventQuitCancel
	EventQuitInterrupt
	EventQuitEscape
	EventTakeScreenshot
	EventRedraw
	EventEnsureSelectionInViewport
	EventScrollUp
	EventScrollDown
	EventPageUp
	EventPageDown
	EventFocusPrev
	EventFocusPrevSameKind
	EventFocusPrevPage
	EventFocusNext
	EventFocusNextSameKind
	EventFocusNextPage
	EventFocusInner
	EventFocusOuter
	EventToggleItem
	EventToggleItemAndAdvance
	EventToggleAll
	EventToggleAllUniform
	EventExpandItem
	EventExpandAll
	EventToggleCommitViewMode
	EventEditCommitMessage
	EventHelp
)

// Event wraps an EventKind with the few payloads some kinds carry.
type Event struct {
	Kind EventKind

	// FoldSection is the payload of EventFocusOuter (§4.3 SelectOuter).
	FoldSection bool

	// ScreenshotSink receives the rendered frame for EventTakeScreenshot,
	// mirroring the teacher's debug-overlay callback style.
	ScreenshotSink func(string)
}

// StateUpdateKind is the reducer's output alphabet (§4.7).
type StateUpdateKind int

const (
	UpdateNone StateUpdateKind = iota
	UpdateSetQuitDialog
	UpdateSetHelpDialog
	UpdateQuitAccept
	UpdateQuitCancel
	UpdateTakeScreenshot
	UpdateRedraw
	UpdateEnsureSelectionInViewport
	UpdateScrollTo
	UpdateSelectItem
	UpdateToggleItem
	UpdateToggleItemAndAdvance
	UpdateToggleAll
	UpdateToggleAllUniform
	UpdateSetExpandItem
	UpdateToggleExpandItem
	UpdateToggleExpandAll
	UpdateToggleCommitViewMode
	UpdateEditCommitMessage
)

// StateUpdate is the tagged variant the reducer returns; the driver applies
// it to the UiState/RecordState and may enqueue further pending events.
type StateUpdate struct {
	Kind StateUpdateKind

	QuitDialogOpen bool // UpdateSetQuitDialog
	HelpDialogOpen bool // UpdateSetHelpDialog

	ScrollY int // UpdateScrollTo

	Key              SelectionKey // UpdateSelectItem / UpdateToggleItem / UpdateSetExpandItem / UpdateToggleExpandItem
	EnsureInViewport bool         // UpdateSelectItem

	ExpandValue bool // UpdateSetExpandItem

	CommitIdx int // UpdateEditCommitMessage

	ScreenshotSink func(string) // UpdateTakeScreenshot
}
