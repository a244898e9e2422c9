package driver

import "github.com/ellery/record/internal/record"

// apply carries out one StateUpdate against the driver's State/UI,
// reporting whether the engine invocation is finished and, if so, its
// result (§4.7 step 6: "On QuitAccept ... exit with the current
// RecordState. On QuitCancel, return a cancellation error.").
func (d *Driver) apply(u record.StateUpdate) (finished bool, result *record.RecordState, err error) {
	switch u.Kind {
	case record.UpdateNone:
		// no-op

	case record.UpdateQuitAccept:
		return true, d.State, nil

	case record.UpdateQuitCancel:
		return true, nil, record.ErrCancelledErr

	case record.UpdateSetQuitDialog:
		if u.QuitDialogOpen {
			d.UI.QuitDialog = &record.QuitDialog{}
		} else {
			d.UI.QuitDialog = nil
		}

	case record.UpdateSetHelpDialog:
		d.UI.HelpDialogOpen = u.HelpDialogOpen

	case record.UpdateTakeScreenshot:
		if u.ScreenshotSink != nil && d.lastSurface != nil {
			u.ScreenshotSink(d.lastSurface.Render())
		}

	case record.UpdateRedraw:
		// Next loop iteration re-renders unconditionally; nothing to do.

	case record.UpdateEnsureSelectionInViewport:
		d.Reducer.Enqueue(record.Event{Kind: record.EventEnsureSelectionInViewport})

	case record.UpdateScrollTo:
		d.UI.ScrollOffsetY = u.ScrollY

	case record.UpdateSelectItem:
		d.State.SelectItem(d.UI, u.Key)
		if u.EnsureInViewport {
			d.Reducer.Enqueue(record.Event{Kind: record.EventEnsureSelectionInViewport})
		}

	case record.UpdateToggleItem:
		d.State.ToggleItem(u.Key)

	case record.UpdateToggleItemAndAdvance:
		d.State.ToggleItem(u.Key)
		d.State.AdvanceToNextOfKind(d.UI)
		d.Reducer.Enqueue(record.Event{Kind: record.EventEnsureSelectionInViewport})

	case record.UpdateToggleAll:
		d.State.ToggleAll()

	case record.UpdateToggleAllUniform:
		d.State.ToggleAllUniform()

	case record.UpdateSetExpandItem:
		d.UI.SetExpanded(u.Key, u.ExpandValue)

	case record.UpdateToggleExpandItem:
		d.State.ExpandItem(d.UI)

	case record.UpdateToggleExpandAll:
		d.State.ExpandAll(d.UI)

	case record.UpdateToggleCommitViewMode:
		if d.UI.CommitViewMode == record.Inline {
			d.UI.CommitViewMode = record.Adjacent
		} else {
			d.UI.CommitViewMode = record.Inline
		}

	case record.UpdateEditCommitMessage:
		if werr := d.State.EditCommitMessageWith(u.CommitIdx, d.Input.EditCommitMessage); werr != nil {
			return true, nil, werr
		}
	}
	return false, nil, nil
}
