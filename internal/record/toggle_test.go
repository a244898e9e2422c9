package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *RecordState {
	t.Helper()
	st, err := NewRecordState(false, nil, []File{
		{
			Path: "a.txt",
			Sections: []Section{
				{Kind: KindUnchanged, UnchangedLines: []string{"ctx"}},
				{Kind: KindChanged, Lines: []ChangedLine{
					{IsChecked: false, ChangeType: Added, Content: "one"},
					{IsChecked: false, ChangeType: Added, Content: "two"},
				}},
			},
		},
	})
	require.NoError(t, err)
	return st
}

func TestToggleLineFlipsSingleLine(t *testing.T) {
	st := newTestState(t)
	lk := LineKey{FileIdx: 0, SectionIdx: 1, LineIdx: 0}
	st.ToggleItem(LineSelKey(lk))
	assert.True(t, st.Files[0].Sections[1].Lines[0].IsChecked)
	assert.False(t, st.Files[0].Sections[1].Lines[1].IsChecked)
}

func TestToggleSectionFlipsAllLines(t *testing.T) {
	st := newTestState(t)
	sk := SectionKey{FileIdx: 0, SectionIdx: 1}
	st.ToggleItem(SectionSelKey(sk))
	for _, l := range st.Files[0].Sections[1].Lines {
		assert.True(t, l.IsChecked)
	}
	// toggling again drives every line back to False.
	st.ToggleItem(SectionSelKey(sk))
	for _, l := range st.Files[0].Sections[1].Lines {
		assert.False(t, l.IsChecked)
	}
}

func TestToggleFileFlipsEveryEditableSection(t *testing.T) {
	st := newTestState(t)
	fk := FileKey{FileIdx: 0}
	st.ToggleItem(FileSelKey(fk))
	assert.Equal(t, True, st.Files[0].Tristate())
}

func TestReadOnlyStateIgnoresToggles(t *testing.T) {
	st := newTestState(t)
	st.IsReadOnly = true
	lk := LineKey{FileIdx: 0, SectionIdx: 1, LineIdx: 0}
	st.ToggleItem(LineSelKey(lk))
	assert.False(t, st.Files[0].Sections[1].Lines[0].IsChecked)
}

// TestCheckingDeletionChecksAllChangedLines covers §4.5 rule 1: checking a
// FileMode section that deletes the file forces every Changed section's
// lines to checked (you can't delete a file while leaving unrecorded edits
// behind).
func TestCheckingDeletionChecksAllChangedLines(t *testing.T) {
	st, err := NewRecordState(false, nil, []File{
		{
			Path:     "gone.txt",
			FileMode: UnixMode(0644),
			Sections: []Section{
				{Kind: KindFileMode, Mode: AbsentMode},
				{Kind: KindChanged, Lines: []ChangedLine{
					{IsChecked: false, ChangeType: Removed, Content: "bye"},
				}},
			},
		},
	})
	require.NoError(t, err)

	st.ToggleItem(SectionSelKey(SectionKey{FileIdx: 0, SectionIdx: 0}))
	assert.True(t, st.Files[0].Sections[0].ModeIsChecked)
	assert.True(t, st.Files[0].Sections[1].Lines[0].IsChecked)
}

// TestUncheckingCreationUnchecksFile covers §4.5 rule 1's inverse: if the
// FileMode section that creates the file is unchecked again, every section
// in the file reverts to unchecked too (a file can't half-exist).
func TestUncheckingCreationUnchecksFile(t *testing.T) {
	st, err := NewRecordState(false, nil, []File{
		{
			Path:     "new.txt",
			FileMode: AbsentMode,
			Sections: []Section{
				{Kind: KindFileMode, Mode: UnixMode(0644), ModeIsChecked: true},
				{Kind: KindChanged, Lines: []ChangedLine{
					{IsChecked: true, ChangeType: Added, Content: "hi"},
				}},
			},
		},
	})
	require.NoError(t, err)

	st.ToggleItem(SectionSelKey(SectionKey{FileIdx: 0, SectionIdx: 0}))
	assert.False(t, st.Files[0].Sections[0].ModeIsChecked)
	assert.False(t, st.Files[0].Sections[1].Lines[0].IsChecked)
}

// TestCheckingLineInUncreatedFileChecksCreation covers §4.5 rule 3: if a
// Changed line is checked in a file that doesn't exist yet, its creating
// FileMode section must be checked too.
func TestCheckingLineInUncreatedFileChecksCreation(t *testing.T) {
	st, err := NewRecordState(false, nil, []File{
		{
			Path:     "new.txt",
			FileMode: AbsentMode,
			Sections: []Section{
				{Kind: KindFileMode, Mode: UnixMode(0644)},
				{Kind: KindChanged, Lines: []ChangedLine{
					{IsChecked: false, ChangeType: Added, Content: "hi"},
				}},
			},
		},
	})
	require.NoError(t, err)

	st.ToggleItem(LineSelKey(LineKey{FileIdx: 0, SectionIdx: 1, LineIdx: 0}))
	assert.True(t, st.Files[0].Sections[0].ModeIsChecked)
}

func TestToggleAllUniformDrivesToTrueWhenMixed(t *testing.T) {
	st, err := NewRecordState(false, nil, []File{
		{Path: "a", Sections: []Section{{Kind: KindChanged, Lines: []ChangedLine{{IsChecked: true}}}}},
		{Path: "b", Sections: []Section{{Kind: KindChanged, Lines: []ChangedLine{{IsChecked: false}}}}},
	})
	require.NoError(t, err)

	st.ToggleAllUniform()
	assert.Equal(t, True, st.Files[0].Tristate())
	assert.Equal(t, True, st.Files[1].Tristate())
}

func TestToggleAllUniformFlipsWhenUniform(t *testing.T) {
	st, err := NewRecordState(false, nil, []File{
		{Path: "a", Sections: []Section{{Kind: KindChanged, Lines: []ChangedLine{{IsChecked: true}}}}},
		{Path: "b", Sections: []Section{{Kind: KindChanged, Lines: []ChangedLine{{IsChecked: true}}}}},
	})
	require.NoError(t, err)

	st.ToggleAllUniform()
	assert.Equal(t, False, st.Files[0].Tristate())
	assert.Equal(t, False, st.Files[1].Tristate())
}

func TestToggleAllTreatsEachFileIndependently(t *testing.T) {
	st, err := NewRecordState(false, nil, []File{
		{Path: "a", Sections: []Section{{Kind: KindChanged, Lines: []ChangedLine{{IsChecked: true}}}}},
		{Path: "b", Sections: []Section{{Kind: KindChanged, Lines: []ChangedLine{{IsChecked: false}}}}},
	})
	require.NoError(t, err)

	st.ToggleAll()
	assert.Equal(t, False, st.Files[0].Tristate())
	assert.Equal(t, True, st.Files[1].Tristate())
}
