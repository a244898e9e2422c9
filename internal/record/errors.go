package record

import goerrors "github.com/go-errors/errors"

// ErrorKind closes the error taxonomy of §7 so the driver can branch on
// what went wrong without string-matching (grounded on the teacher's use
// of go-errors/errors for stack-traced wrapping in cmd/thicc/micro.go).
type ErrorKind int

const (
	ErrCancelled ErrorKind = iota
	ErrSetUpTerminal
	ErrCleanUpTerminal
	ErrRenderFrame
	ErrWriteFile
	ErrSerializeJson
	ErrEditCommitMessage
	ErrBug
	ErrTooManyCommits
)

// EngineError wraps a cause with a taxonomy tag and a stack trace.
type EngineError struct {
	Kind  ErrorKind
	Cause error
}

func (e *EngineError) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Cause.Error()
}

func (e *EngineError) Unwrap() error { return e.Cause }

func (k ErrorKind) String() string {
	switch k {
	case ErrCancelled:
		return "cancelled"
	case ErrSetUpTerminal:
		return "set up terminal"
	case ErrCleanUpTerminal:
		return "clean up terminal"
	case ErrRenderFrame:
		return "render frame"
	case ErrWriteFile:
		return "write file"
	case ErrSerializeJson:
		return "serialize json"
	case ErrEditCommitMessage:
		return "edit commit message"
	case ErrTooManyCommits:
		return "too many commits"
	default:
		return "bug"
	}
}

func newEngineError(kind ErrorKind, cause error) *EngineError {
	if cause != nil {
		cause = goerrors.Wrap(cause, 1)
	}
	return &EngineError{Kind: kind, Cause: cause}
}

func ErrSetUpTerminalWith(cause error) error   { return newEngineError(ErrSetUpTerminal, cause) }
func ErrCleanUpTerminalWith(cause error) error { return newEngineError(ErrCleanUpTerminal, cause) }
func ErrRenderFrameWith(cause error) error     { return newEngineError(ErrRenderFrame, cause) }
func ErrWriteFileWith(cause error) error       { return newEngineError(ErrWriteFile, cause) }
func ErrSerializeJsonWith(cause error) error   { return newEngineError(ErrSerializeJson, cause) }
func ErrEditCommitMessageWith(cause error) error {
	return newEngineError(ErrEditCommitMessage, cause)
}

// ErrCancelledErr is the sentinel returned when the user quits without
// accepting changes (§7).
var ErrCancelledErr = &EngineError{Kind: ErrCancelled}

// ErrTooManyCommitsErr answers Open Question (a): a RecordState with more
// than two commits is refused outright rather than silently truncated.
var ErrTooManyCommitsErr = &EngineError{Kind: ErrTooManyCommits}

// ErrBugWith reports an invariant violation the reducer/model detected in
// itself (e.g. a SelectionKey that resolves to nothing).
func ErrBugWith(msg string) error {
	return &EngineError{Kind: ErrBug, Cause: goerrors.Errorf("%s", msg)}
}
