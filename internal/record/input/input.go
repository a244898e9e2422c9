// Package input adapts a keyboard/terminal event source to the engine's
// Event alphabet (§6), mirroring the teacher's HandleEvent(tcell.Event)
// convention (internal/sourcecontrol/events.go) but returning a value
// the reducer can switch on directly instead of mutating panel state.
package input

import (
	"github.com/ellery/record/internal/record"
)

// TerminalKind distinguishes a real interactive terminal from a
// redirected/non-tty stream, mirroring the teacher's
// isatty.IsTerminal(os.Stdout.Fd()) checks in cmd/thicc/micro.go.
type TerminalKind int

const (
	TerminalInteractive TerminalKind = iota
	TerminalNotATTY
)

// Source is the external collaborator the driver polls for engine events.
// A real implementation wraps a tcell.Screen; a scripted Testing
// implementation replays a fixed event list for the §8 end-to-end
// scenarios.
type Source interface {
	TerminalKind() TerminalKind
	NextEvents() ([]record.Event, error)
	EditCommitMessage(path string) error
}
