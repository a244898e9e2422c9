package component

import (
	"fmt"
	"strings"

	"github.com/ellery/record/internal/record"
	"github.com/ellery/record/internal/record/surface"
)

// Dialog is a centered box with a title, body text, and a row of buttons
// drawn right-to-left from the bottom-right corner (§4.2).
type Dialog struct {
	Id      ComponentId
	Title   string
	Body    []string
	Buttons []Button
	ScreenW int
	ScreenH int
}

func (d Dialog) ID() string { return string(d.Id) }

func (d Dialog) Draw(s *surface.Surface, originX, originY int) {
	width := d.contentWidth()
	height := len(d.Body) + 4 // top border + title + body + buttons + bottom border
	x := originX + (d.ScreenW-width)/2
	y := originY + (d.ScreenH-height)/2
	if x < originX {
		x = originX
	}
	if y < originY {
		y = originY
	}

	s.DrawBlank(surface.Rect{X: x, Y: y, Width: width, Height: height}, StyleDefault)
	border := "┌" + strings.Repeat("─", width-2) + "┐"
	s.DrawSpan(x, y, border, StyleAccent)
	titleLine := center(d.Title, width-2)
	s.DrawSpan(x+1, y+1, titleLine, StyleBold)

	for i, line := range d.Body {
		s.DrawSpan(x+1, y+2+i, center(line, width-2), StyleDefault)
	}

	bottom := "└" + strings.Repeat("─", width-2) + "┘"
	s.DrawSpan(x, y+height-1, bottom, StyleAccent)

	// Buttons drawn right-to-left from the bottom-right corner.
	cursor := x + width - 2
	for i := len(d.Buttons) - 1; i >= 0; i-- {
		btn := d.Buttons[i]
		label := btn.Label
		if btn.Focused {
			label = "(" + label + ")"
		} else {
			label = "[" + label + "]"
		}
		cursor -= len(label)
		s.DrawComponent(cursor, y+height-2, btn)
		cursor -= 1
	}
}

func (d Dialog) contentWidth() int {
	w := len(d.Title)
	for _, line := range d.Body {
		if len(line) > w {
			w = len(line)
		}
	}
	btnW := 0
	for _, b := range d.Buttons {
		btnW += len(b.Label) + 3
	}
	if btnW > w {
		w = btnW
	}
	return w + 4
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	pad := width - len(text)
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// HelpDialogView lists the keybinding reference (§6) in a single "Close"
// dialog, grounded on scm-record's help_dialog.rs.
type HelpDialogView struct {
	ScreenW int
	ScreenH int
}

func (h HelpDialogView) ID() string { return "help-dialog" }

func (h HelpDialogView) Draw(s *surface.Surface, x, y int) {
	dlg := Dialog{
		Id:    "help-dialog",
		Title: "Help",
		Body: []string{
			"Use these keyboard shortcuts:",
			"",
			"General               Navigation",
			"Quit/Cancel      q    Next/Prev               j/k or up/down",
			"Confirm changes  c    Next/Prev of same type   PgDn/PgUp",
			"Force quit       ^c   Move out & fold          h or left",
			"                      Move out & don't fold    H or Shift-left",
			"View controls         Move in & unfold         l or right",
			"Expand/Collapse  f",
			"Expand/Collapse  F    Scrolling",
			"all",
			"Edit commit      e    Scroll up/down           ^y/^e or ^up/^down",
			"message",
			"Selection             Page up/down             ^b/^f or ^PgUp/^PgDn",
			"Toggle current   Space",
			"Toggle & advance Enter Previous/Next page      ^u/^d",
			"Invert all       a",
			"Invert all unif. A",
		},
		Buttons: []Button{{Id: DialogButtonID("help_close"), Label: "Close", Focused: true}},
		ScreenW: h.ScreenW,
		ScreenH: h.ScreenH,
	}
	s.DrawComponent(x, y, dlg)
}

// QuitDialogView confirms quitting when there are unsaved commit messages
// or toggled files, grounded on scm-record's dialog.rs QuitDialog.
type QuitDialogView struct {
	State   *record.RecordState
	Dialog  *record.QuitDialog
	ScreenW int
	ScreenH int
}

func (q QuitDialogView) ID() string { return "quit-dialog" }

func (q QuitDialogView) Draw(s *surface.Surface, x, y int) {
	numMessages, numFiles := quitDialogCounts(q.State)
	var items []string
	if numMessages > 0 {
		items = append(items, pluralCount(numMessages, "message", "messages"))
	}
	if numFiles > 0 {
		items = append(items, pluralCount(numFiles, "file", "files"))
	}
	alert := ""
	if len(items) > 0 {
		alert = fmt.Sprintf("You have changes to %s. ", strings.Join(items, " and "))
	}

	quitFocused := q.Dialog.FocusedButton == record.QuitDialogQuit
	goBackFocused := q.Dialog.FocusedButton == record.QuitDialogGoBack
	dlg := Dialog{
		Id:    "quit-dialog",
		Title: "Quit",
		Body:  []string{alert + "Are you sure you want to quit?"},
		Buttons: []Button{
			{Id: DialogButtonID("quit"), Label: "Quit", Focused: quitFocused},
			{Id: DialogButtonID("go_back"), Label: "Go Back", Focused: goBackFocused},
		},
		ScreenW: q.ScreenW,
		ScreenH: q.ScreenH,
	}
	s.DrawComponent(x, y, dlg)
}

func quitDialogCounts(s *record.RecordState) (numMessages, numFiles int) {
	for _, c := range s.Commits {
		if !c.IsPlaceholder() {
			numMessages++
		}
	}
	for _, f := range s.Files {
		if f.Tristate() != record.False {
			numFiles++
		}
	}
	return numMessages, numFiles
}

func pluralCount(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
