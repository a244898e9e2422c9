package record

// CommitViewMode selects whether one or two commits are drawn side by side.
type CommitViewMode int

const (
	Inline CommitViewMode = iota
	Adjacent
)

// QuitDialog tracks the focused button of the open quit-confirmation dialog.
type QuitDialog struct {
	FocusedButton QuitDialogButton
}

type QuitDialogButton int

const (
	QuitDialogGoBack QuitDialogButton = iota
	QuitDialogQuit
)

// UiState is the engine's ephemeral state: focus, expansion, scroll, and
// modal dialogs. It owns nothing the caller needs back.
type UiState struct {
	CommitViewMode  CommitViewMode
	ExpandedItems   map[SelectionKey]struct{}
	SelectionKey    SelectionKey
	FocusedCommitIdx int
	HelpDialogOpen  bool
	QuitDialog      *QuitDialog
	ScrollOffsetY   int
}

// NewUiState builds the initial ephemeral state for a fresh engine
// invocation: nothing is selected (SelectionKey is None) and nothing is
// expanded.
func NewUiState() *UiState {
	return &UiState{
		ExpandedItems: make(map[SelectionKey]struct{}),
		SelectionKey:  NoneKey(),
	}
}

func (u *UiState) isExpanded(k SelectionKey) bool {
	_, ok := u.ExpandedItems[k]
	return ok
}

func (u *UiState) setExpanded(k SelectionKey, expanded bool) {
	if expanded {
		u.ExpandedItems[k] = struct{}{}
	} else {
		delete(u.ExpandedItems, k)
	}
}

func (u *UiState) toggleExpanded(k SelectionKey) {
	u.setExpanded(k, !u.isExpanded(k))
}

// SetExpanded is the exported form of setExpanded, for drivers applying
// an explicit UpdateSetExpandItem.
func (u *UiState) SetExpanded(k SelectionKey, expanded bool) {
	u.setExpanded(k, expanded)
}
