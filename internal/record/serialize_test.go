package record

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState(t *testing.T) *RecordState {
	t.Helper()
	msg := "fix: widget"
	oldPath := "old/path.go"
	oldDesc := "1024 bytes"
	st, err := NewRecordState(false, []Commit{{Message: &msg}}, []File{
		{
			OldPath:  &oldPath,
			Path:     "new/path.go",
			FileMode: UnixMode(0644),
			Sections: []Section{
				{Kind: KindUnchanged, UnchangedLines: []string{"ctx1", "ctx2"}},
				{Kind: KindChanged, Lines: []ChangedLine{
					{IsChecked: true, ChangeType: Added, Content: "new line"},
					{IsChecked: false, ChangeType: Removed, Content: "old line"},
				}},
				{Kind: KindFileMode, ModeIsChecked: true, Mode: UnixMode(0755)},
				{Kind: KindBinary, BinaryIsChecked: true, OldDescription: &oldDesc},
			},
		},
	})
	require.NoError(t, err)
	return st
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	st := sampleState(t)
	data, err := MarshalState(st)
	require.NoError(t, err)

	got, err := UnmarshalState(data)
	require.NoError(t, err)

	assert.Equal(t, st.IsReadOnly, got.IsReadOnly)
	require.Len(t, got.Commits, 1)
	assert.Equal(t, *st.Commits[0].Message, *got.Commits[0].Message)

	require.Len(t, got.Files, 1)
	gf := got.Files[0]
	sf := st.Files[0]
	assert.Equal(t, *sf.OldPath, *gf.OldPath)
	assert.Equal(t, sf.Path, gf.Path)
	assert.Equal(t, sf.FileMode, gf.FileMode)
	require.Len(t, gf.Sections, 4)

	assert.Equal(t, KindUnchanged, gf.Sections[0].Kind)
	assert.Equal(t, []string{"ctx1", "ctx2"}, gf.Sections[0].UnchangedLines)

	assert.Equal(t, KindChanged, gf.Sections[1].Kind)
	require.Len(t, gf.Sections[1].Lines, 2)
	assert.True(t, gf.Sections[1].Lines[0].IsChecked)
	assert.Equal(t, Added, gf.Sections[1].Lines[0].ChangeType)
	assert.Equal(t, Removed, gf.Sections[1].Lines[1].ChangeType)

	assert.Equal(t, KindFileMode, gf.Sections[2].Kind)
	assert.True(t, gf.Sections[2].ModeIsChecked)
	assert.Equal(t, UnixMode(0755), gf.Sections[2].Mode)

	assert.Equal(t, KindBinary, gf.Sections[3].Kind)
	assert.True(t, gf.Sections[3].BinaryIsChecked)
	require.NotNil(t, gf.Sections[3].OldDescription)
	assert.Equal(t, "1024 bytes", *gf.Sections[3].OldDescription)
}

func TestUnmarshalRefusesTooManyCommits(t *testing.T) {
	data := []byte(`{
		"is_read_only": false,
		"commits": [{"message":"a"},{"message":"b"},{"message":"c"}],
		"files": []
	}`)
	_, err := UnmarshalState(data)
	require.Error(t, err)

	var engErr *EngineError
	require.True(t, errors.As(err, &engErr))
	assert.Equal(t, ErrTooManyCommits, engErr.Kind)
}

func TestUnmarshalRejectsMalformedJSON(t *testing.T) {
	_, err := UnmarshalState([]byte("not json"))
	require.Error(t, err)

	var engErr *EngineError
	require.True(t, errors.As(err, &engErr))
	assert.Equal(t, ErrSerializeJson, engErr.Kind)
}
