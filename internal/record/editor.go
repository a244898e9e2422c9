package record

import (
	"os"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"
)

// EditCommitMessageWith writes the commit's current message to a temp
// file, invokes edit(path) (an input.Source's EditCommitMessage, so the
// driver controls screen suspension and a scripted source can fake it),
// and rewrites the commit's message from the edited contents. The temp
// file is always removed.
func (s *RecordState) EditCommitMessageWith(commitIdx int, edit func(path string) error) error {
	if commitIdx < 0 || commitIdx >= len(s.Commits) {
		return ErrBugWith("edit commit message: commit index out of range")
	}
	c := &s.Commits[commitIdx]

	f, err := os.CreateTemp("", "record-commit-msg-*.txt")
	if err != nil {
		return ErrEditCommitMessageWith(err)
	}
	path := f.Name()
	defer os.Remove(path)

	if c.Message != nil {
		if _, err := f.WriteString(*c.Message); err != nil {
			f.Close()
			return ErrEditCommitMessageWith(err)
		}
	}
	if err := f.Close(); err != nil {
		return ErrEditCommitMessageWith(err)
	}

	if err := edit(path); err != nil {
		return ErrEditCommitMessageWith(err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return ErrEditCommitMessageWith(err)
	}
	msg := string(edited)
	c.Message = &msg
	return nil
}

// editorCommand resolves the external editor to invoke for
// EditCommitMessage, mirroring git's own $GIT_EDITOR/$VISUAL/$EDITOR
// fallback chain (§6 external collaborators).
func editorCommand() string {
	for _, name := range []string{"GIT_EDITOR", "VISUAL", "EDITOR"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return "vi"
}

// EditCommitMessage shells out to the resolved editor against a
// caller-supplied scratch file, the same way the teacher's
// internal/sourcecontrol/git.go wraps every git invocation behind
// exec.Command and surfaces stderr verbatim on failure.
func EditCommitMessage(path string) error {
	fields, err := shellquote.Split(editorCommand())
	if err != nil || len(fields) == 0 {
		return ErrEditCommitMessageWith(err)
	}
	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return ErrEditCommitMessageWith(err)
	}
	return nil
}
