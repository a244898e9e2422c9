package input

import (
	"os"

	isatty "github.com/mattn/go-isatty"
	"github.com/micro-editor/tcell/v2"

	"github.com/ellery/record/internal/record"
	"github.com/ellery/record/internal/record/surface"
)

// TerminalSource drives the engine from a live tcell.Screen, the same
// screen-lifecycle shape the teacher wraps in its internal/screen
// package and consumes from cmd/thicc/micro.go (screen.Init/screen.Screen).
type TerminalSource struct {
	Screen tcell.Screen
}

// NewTerminalSource allocates and initializes a tcell screen for
// interactive use.
func NewTerminalSource() (*TerminalSource, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, record.ErrSetUpTerminalWith(err)
	}
	if err := screen.Init(); err != nil {
		return nil, record.ErrSetUpTerminalWith(err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &TerminalSource{Screen: screen}, nil
}

// Close releases the alternate screen and raw mode. Safe to call more
// than once.
func (t *TerminalSource) Close() {
	if t.Screen != nil {
		t.Screen.Fini()
	}
}

// Size reports the current terminal dimensions in cells.
func (t *TerminalSource) Size() (int, int) {
	return t.Screen.Size()
}

// Flush paints a rendered frame onto the live screen and presents it.
func (t *TerminalSource) Flush(s *surface.Surface) {
	t.Screen.Clear()
	s.Flush(t.Screen, 0, 0)
	t.Screen.Show()
}

func (t *TerminalSource) TerminalKind() TerminalKind {
	if !isatty.IsTerminal(os.Stdout.Fd()) || !isatty.IsTerminal(os.Stdin.Fd()) {
		return TerminalNotATTY
	}
	return TerminalInteractive
}

// NextEvents blocks for exactly one tcell event and translates it; unlike
// its tcell source, it always returns a non-empty slice on success,
// substituting Redraw for resize events and None for anything with no
// keybinding (§6 next_events: "non-empty when it returns normally").
func (t *TerminalSource) NextEvents() ([]record.Event, error) {
	ev := t.Screen.PollEvent()
	switch e := ev.(type) {
	case *tcell.EventKey:
		if translated, ok := TranslateKey(e); ok {
			return []record.Event{translated}, nil
		}
		return []record.Event{{Kind: record.EventNone}}, nil
	case *tcell.EventResize:
		t.Screen.Sync()
		return []record.Event{{Kind: record.EventRedraw}}, nil
	default:
		return []record.Event{{Kind: record.EventNone}}, nil
	}
}

func (t *TerminalSource) EditCommitMessage(path string) error {
	// Editing shells out to a foreground process; release the alternate
	// screen for the duration so the editor gets a clean terminal, then
	// resume (mirrors how exec.Command-backed tools in the teacher
	// suspend Screen ownership around subprocess calls).
	t.Screen.Suspend()
	defer t.Screen.Resume()
	return record.EditCommitMessage(path)
}
