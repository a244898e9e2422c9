package input

import (
	"os"

	"github.com/ellery/record/internal/record"
)

// TestingSource replays a fixed script of events, one NextEvents call per
// scripted batch, for the §8 end-to-end scenarios. Width/Height are
// reported through Size, the same way a real terminal reports its actual
// dimensions; TerminalKind always reports TerminalInteractive.
type TestingSource struct {
	Width, Height int
	Script        [][]record.Event
	pos           int

	EditedMessages []string
	NextEdit       string
}

// NewTestingSource builds a scripted source where each element of events
// is delivered as one NextEvents batch (typically a single-element
// batch per keypress).
func NewTestingSource(width, height int, events []record.Event) *TestingSource {
	script := make([][]record.Event, len(events))
	for i, e := range events {
		script[i] = []record.Event{e}
	}
	return &TestingSource{Width: width, Height: height, Script: script}
}

func (t *TestingSource) TerminalKind() TerminalKind { return TerminalInteractive }

// Size reports the scripted terminal dimensions.
func (t *TestingSource) Size() (int, int) { return t.Width, t.Height }

// NextEvents returns the next scripted batch, or a QuitInterrupt once the
// script is exhausted so a driver bug can't spin forever on a Testing
// source with a consumed script.
func (t *TestingSource) NextEvents() ([]record.Event, error) {
	if t.pos >= len(t.Script) {
		return []record.Event{{Kind: record.EventQuitInterrupt}}, nil
	}
	batch := t.Script[t.pos]
	t.pos++
	return batch, nil
}

// EditCommitMessage records the path it was asked to edit and writes
// NextEdit into it, mirroring the real implementation's contract
// without invoking a subprocess.
func (t *TestingSource) EditCommitMessage(path string) error {
	t.EditedMessages = append(t.EditedMessages, path)
	return os.WriteFile(path, []byte(t.NextEdit), 0644)
}
