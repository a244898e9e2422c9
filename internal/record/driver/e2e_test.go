package driver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellery/record/internal/record"
	"github.com/ellery/record/internal/record/config"
	"github.com/ellery/record/internal/record/input"
)

// TestQuitEmptyCancels is §8 end-to-end scenario 1: an empty RecordState
// (two placeholder commits, zero files), sole event QuitCancel, expects
// Err(Cancelled).
func TestQuitEmptyCancels(t *testing.T) {
	st, err := record.NewRecordState(false, []record.Commit{{}, {}}, nil)
	require.NoError(t, err)

	src := input.NewTestingSource(80, 24, []record.Event{{Kind: record.EventQuitCancel}})
	d := New(st, src, config.EngineConfig{})

	result, runErr := d.Run()
	assert.Nil(t, result)

	var engErr *record.EngineError
	require.True(t, errors.As(runErr, &engErr))
	assert.Equal(t, record.ErrCancelled, engErr.Kind)
}

// TestAcceptUnchangedReturnsInputBitwiseEqual is §8 end-to-end scenario 2:
// one file with mode 0100644 and no sections, sole event QuitAccept, expects
// the returned state to equal the input exactly.
func TestAcceptUnchangedReturnsInputBitwiseEqual(t *testing.T) {
	st, err := record.NewRecordState(false, nil, []record.File{
		{Path: "foo/bar", FileMode: record.UnixMode(0100644)},
	})
	require.NoError(t, err)

	src := input.NewTestingSource(80, 24, []record.Event{{Kind: record.EventQuitAccept}})
	d := New(st, src, config.EngineConfig{})

	result, runErr := d.Run()
	require.NoError(t, runErr)
	assert.Equal(t, st, result)
}

// TestToggleLineYieldsPartialTristates is §8 end-to-end scenario 3: a file
// with one Changed section of two unchecked Added lines; select the first
// line, ToggleItem, QuitAccept -> lines[0].is_checked = true, section and
// file tristate both Partial.
func TestToggleLineYieldsPartialTristates(t *testing.T) {
	st, err := record.NewRecordState(false, nil, []record.File{
		{Path: "a.txt", Sections: []record.Section{
			{Kind: record.KindChanged, Lines: []record.ChangedLine{
				{IsChecked: false, ChangeType: record.Added, Content: "a"},
				{IsChecked: false, ChangeType: record.Added, Content: "b"},
			}},
		}},
	})
	require.NoError(t, err)

	src := input.NewTestingSource(80, 24, []record.Event{
		{Kind: record.EventToggleItem},
		{Kind: record.EventQuitAccept},
	})
	d := New(st, src, config.EngineConfig{})
	d.UI.SelectionKey = record.LineSelKey(record.LineKey{FileIdx: 0, SectionIdx: 0, LineIdx: 0})

	result, runErr := d.Run()
	require.NoError(t, runErr)

	sec := result.Files[0].Sections[0]
	assert.True(t, sec.Lines[0].IsChecked)
	assert.False(t, sec.Lines[1].IsChecked)
	assert.Equal(t, record.Partial, sec.Tristate())
	assert.Equal(t, record.Partial, result.Files[0].Tristate())
}

// TestHelpDialogSwallowsNavigationThenCloses exercises the driver wiring
// of the help-dialog modality end to end (open, a swallowed nav key, a
// closing toggle, then quit).
func TestHelpDialogSwallowsNavigationThenCloses(t *testing.T) {
	st, err := record.NewRecordState(false, nil, []record.File{{Path: "a.txt"}})
	require.NoError(t, err)

	src := input.NewTestingSource(80, 24, []record.Event{
		{Kind: record.EventHelp},
		{Kind: record.EventFocusNext},
		{Kind: record.EventToggleItem},
		{Kind: record.EventQuitAccept},
	})
	d := New(st, src, config.EngineConfig{})

	_, runErr := d.Run()
	require.NoError(t, runErr)
	assert.False(t, d.UI.HelpDialogOpen)
}

// TestQuitCancelWithChangesRequiresConfirmation exercises the quit-dialog
// wiring end to end: a pending change means QuitCancel opens a dialog
// rather than exiting, and activating "Quit" exits with Cancelled.
func TestQuitCancelWithChangesRequiresConfirmation(t *testing.T) {
	st, err := record.NewRecordState(false, nil, []record.File{
		{Path: "a.txt", Sections: []record.Section{
			{Kind: record.KindChanged, Lines: []record.ChangedLine{{IsChecked: true}}},
		}},
	})
	require.NoError(t, err)

	src := input.NewTestingSource(80, 24, []record.Event{
		{Kind: record.EventQuitCancel},
		{Kind: record.EventFocusNext},
		{Kind: record.EventToggleItem},
	})
	d := New(st, src, config.EngineConfig{})

	_, runErr := d.Run()
	var engErr *record.EngineError
	require.True(t, errors.As(runErr, &engErr))
	assert.Equal(t, record.ErrCancelled, engErr.Kind)
}
