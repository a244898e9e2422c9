package component

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ellery/record/internal/record"
	"github.com/ellery/record/internal/record/surface"
	"github.com/mattn/go-runewidth"
	"github.com/micro-editor/tcell/v2"
)

// NumContextLines bounds how many Unchanged lines are shown before/after
// an ellipsis (§4.2 SectionView).
const NumContextLines = 12

// AppView lays out one or two CommitViews side by side, subject to
// UI.CommitViewMode, capping Adjacent width at 120 columns with a
// 1-column margin (§4.2).
type AppView struct {
	State  *record.RecordState
	UI     *record.UiState
	Glyphs Glyphs
	Width  int
	Height int
}

func (a AppView) ID() string { return "app" }

func (a AppView) Draw(s *surface.Surface, x, y int) {
	if a.UI.CommitViewMode == record.Inline || len(a.State.Commits) < 2 {
		cv := CommitView{State: a.State, UI: a.UI, CommitIdx: 0, Glyphs: a.Glyphs, Width: a.Width, Height: a.Height}
		s.DrawComponent(x+1, y, cv)
	} else {
		colWidth := (a.Width - 3) / 2
		if colWidth > 120 {
			colWidth = 120
		}
		left := CommitView{State: a.State, UI: a.UI, CommitIdx: 0, Glyphs: a.Glyphs, Width: colWidth, Height: a.Height}
		right := CommitView{State: a.State, UI: a.UI, CommitIdx: 1, Glyphs: a.Glyphs, Width: colWidth, Height: a.Height}
		s.DrawComponent(x+1, y, left)
		s.DrawComponent(x+2+colWidth, y, right)
	}

	// Modal dialogs draw last, on top of whatever the commit views wrote.
	// They're pinned to the visible screen rather than scrolled content, so
	// they draw at the current scroll offset: the surface's uniform
	// scroll-shift readout (Surface.SetScrollY) then lands them at the
	// screen's true top row regardless of where the content has scrolled.
	dialogY := y + a.UI.ScrollOffsetY
	if a.UI.HelpDialogOpen {
		s.DrawComponent(x, dialogY, HelpDialogView{ScreenW: a.Width, ScreenH: a.Height})
		return
	}
	if a.UI.QuitDialog != nil {
		s.DrawComponent(x, dialogY, QuitDialogView{State: a.State, Dialog: a.UI.QuitDialog, ScreenW: a.Width, ScreenH: a.Height})
	}
}

// CommitView stacks a CommitMessageView and the list of FileViews for one
// commit; if there are no files, it centers a placeholder message (§4.2).
type CommitView struct {
	State     *record.RecordState
	UI        *record.UiState
	CommitIdx int
	Glyphs    Glyphs
	Width     int
	Height    int
}

func (c CommitView) ID() string { return fmt.Sprintf("commitview:%d", c.CommitIdx) }

func (c CommitView) Draw(s *surface.Surface, x, y int) {
	// Height is unbounded (not c.Height): file content must still be drawn,
	// and its rect recorded, below the visible window so scrolling and the
	// sticky-header check below have something to scroll to (grounded on
	// scm-record's commit.rs file_view_mask, which passes height: None).
	mask := surface.Rect{X: x, Y: y, Width: c.Width, Height: -1}
	s.WithMask(mask, func() {
		cursorY := y
		if c.CommitIdx < len(c.State.Commits) {
			commit := &c.State.Commits[c.CommitIdx]
			if !commit.IsPlaceholder() {
				cmv := CommitMessageView{Commit: commit, CommitIdx: c.CommitIdx, Width: c.Width}
				rect := s.DrawComponent(x, cursorY, cmv)
				cursorY += maxInt(rect.Height, 1)
			}
		}
		if c.CommitIdx != 0 || len(c.State.Files) == 0 {
			if c.CommitIdx == 0 {
				msg := "There are no changes to view."
				s.DrawSpan(x+centerOffset(msg, c.Width), cursorY, msg, StyleDim)
			}
			return
		}
		viewportTop := c.UI.ScrollOffsetY
		for fi := range c.State.Files {
			fk := record.FileKey{CommitIdx: 0, FileIdx: fi}
			fv := FileView{State: c.State, UI: c.UI, FileIdx: fi, Glyphs: c.Glyphs, Width: c.Width}
			rect := s.DrawComponent(x, cursorY, fv)

			// Sticky header: this file's own header scrolled above the
			// viewport's top row, but the rest of the file still spans it,
			// so repaint its header pinned at that row (§4.2, grounded on
			// scm-record's commit.rs "Render a sticky header if necessary").
			if rect.Y < viewportTop && viewportTop < rect.Y+maxInt(rect.Height, 1) {
				c.drawStickyHeader(s, x, viewportTop, fi, fk)
			}

			cursorY += maxInt(rect.Height, 1)
		}
	})
}

func (c CommitView) drawStickyHeader(s *surface.Surface, x, stickyY, fi int, fk record.FileKey) {
	file := &c.State.Files[fi]
	selKey := record.FileSelKey(fk)
	_, isExpanded := c.UI.ExpandedItems[selKey]
	header := FileViewHeader{
		File: file, Key: fk, Glyphs: c.Glyphs, Width: c.Width,
		Selected: c.UI.SelectionKey == selKey,
		Expanded: isExpanded,
		ReadOnly: c.State.IsReadOnly,
		Tristate: file.Tristate(),
		Sticky:   true,
	}
	stickyMask := surface.Rect{X: x, Y: stickyY, Width: c.Width, Height: 1}
	s.WithMask(stickyMask, func() {
		s.DrawComponent(x, stickyY, header)
	})
}

func centerOffset(text string, width int) int {
	w := runewidth.StringWidth(text)
	if w >= width {
		return 0
	}
	return (width - w) / 2
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// CommitMessageView only renders when the commit has a message: an "Edit
// message" button, a bullet separator, then the first non-empty line of
// the message (trimmed), falling back to "(no message)" (§4.2).
type CommitMessageView struct {
	Commit    *record.Commit
	CommitIdx int
	Width     int
}

func (c CommitMessageView) ID() string { return fmt.Sprintf("commitmsg:%d", c.CommitIdx) }

func (c CommitMessageView) Draw(s *surface.Surface, x, y int) {
	if c.Commit == nil || c.Commit.IsPlaceholder() {
		return
	}
	btn := Button{Id: EditMessageButtonID(c.CommitIdx), Label: "Edit message"}
	rect := s.DrawComponent(x, y, btn)
	cursor := x + rect.Width
	sep := " • "
	s.DrawSpan(cursor, y, sep, StyleDim)
	cursor += len(sep)

	first := firstNonEmptyLine(*c.Commit.Message)
	if first == "" {
		first = "(no message)"
	}
	s.DrawSpan(cursor, y, first, StyleDefault)
}

func firstNonEmptyLine(msg string) string {
	for _, line := range strings.Split(msg, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// FileView draws a FileViewHeader followed by its sections, if expanded.
type FileView struct {
	State   *record.RecordState
	UI      *record.UiState
	FileIdx int
	Glyphs  Glyphs
	Width   int
}

func (f FileView) key() record.FileKey { return record.FileKey{CommitIdx: 0, FileIdx: f.FileIdx} }

func (f FileView) ID() string { return fmt.Sprintf("fileview:%d", f.FileIdx) }

func (f FileView) Draw(s *surface.Surface, x, y int) {
	file := &f.State.Files[f.FileIdx]
	k := f.key()
	selKey := record.FileSelKey(k)
	selected := f.UI.SelectionKey == selKey
	expanded := f.UI.ExpandedItems != nil
	_, isExpanded := f.UI.ExpandedItems[selKey]
	_ = expanded

	header := FileViewHeader{File: file, Key: k, Glyphs: f.Glyphs, Width: f.Width,
		Selected: selected, Expanded: isExpanded, ReadOnly: f.State.IsReadOnly,
		Tristate: file.Tristate()}
	rect := s.DrawComponent(x, y, header)
	cursorY := y + maxInt(rect.Height, 1)

	if !isExpanded {
		return
	}
	for si := range file.Sections {
		sec := &file.Sections[si]
		sk := record.SectionKey{CommitIdx: 0, FileIdx: f.FileIdx, SectionIdx: si}
		sv := SectionView{State: f.State, UI: f.UI, Section: sec, Key: sk, SectionIdx: si,
			TotalSections: len(file.Sections), Glyphs: f.Glyphs, Width: f.Width}
		r := s.DrawComponent(x, cursorY, sv)
		cursorY += maxInt(r.Height, 1)
	}
}

// FileViewHeader displays expand-box, toggle-box, and the old->new path
// (arrow only when OldPath is present) (§4.2). It is also reused to paint
// the sticky header row when a file's real header has scrolled above the
// viewport's top row.
type FileViewHeader struct {
	File     *record.File
	Key      record.FileKey
	Glyphs   Glyphs
	Width    int
	Selected bool
	Expanded bool
	ReadOnly bool
	Tristate record.Tristate
	Sticky   bool
}

func (h FileViewHeader) ID() string {
	if h.Sticky {
		return string(StickyFileHeaderID(h.Key))
	}
	return string(SelectableItemID(record.FileSelKey(h.Key)))
}

func (h FileViewHeader) Draw(s *surface.Surface, x, y int) {
	style := StyleDefault
	if h.Selected {
		style = StyleReverse
	}
	expandBox := TristateBox{Id: ExpandBoxID(record.FileSelKey(h.Key)), State: h.Tristate,
		Expand: true, Expanded: h.Expanded, Glyphs: h.Glyphs, ReadOnly: h.ReadOnly}
	rect := s.DrawComponent(x, y, expandBox)
	cursor := x + maxInt(rect.Width, 1)
	s.DrawSpan(cursor, y, " ", style)
	cursor++

	toggleBox := TristateBox{Id: ToggleBoxID(record.FileSelKey(h.Key)), State: h.Tristate,
		Glyphs: h.Glyphs, ReadOnly: h.ReadOnly}
	rect = s.DrawComponent(cursor, y, toggleBox)
	cursor += maxInt(rect.Width, 1)
	s.DrawSpan(cursor, y, " ", style)
	cursor++

	label := h.File.Path
	if h.File.OldPath != nil {
		label = *h.File.OldPath + " → " + h.File.Path
	}
	s.DrawSpan(cursor, y, label, style)
}

// SectionView draws a Changed section's header (and, if expanded, its
// line views), or an Unchanged section's elided context window (§4.2).
type SectionView struct {
	State         *record.RecordState
	UI            *record.UiState
	Section       *record.Section
	Key           record.SectionKey
	SectionIdx    int
	TotalSections int
	Glyphs        Glyphs
	Width         int
}

func (v SectionView) ID() string {
	return string(SelectableItemID(record.SectionSelKey(v.Key)))
}

func (v SectionView) Draw(s *surface.Surface, x, y int) {
	if v.Section.Kind == record.KindUnchanged {
		v.drawUnchanged(s, x, y)
		return
	}

	selKey := record.SectionSelKey(v.Key)
	selected := v.UI.SelectionKey == selKey
	style := StyleDefault
	if selected {
		style = StyleReverse
	}

	if v.Section.Kind != record.KindChanged {
		v.drawPseudoSection(s, x, y, style)
		return
	}

	_, expanded := v.UI.ExpandedItems[selKey]
	// fallthrough to the Changed-section header + body below
	expandBox := TristateBox{Id: ExpandBoxID(selKey), State: v.Section.Tristate(), Expand: true,
		Expanded: expanded, Glyphs: v.Glyphs, ReadOnly: v.State.IsReadOnly}
	rect := s.DrawComponent(x, y, expandBox)
	cursor := x + maxInt(rect.Width, 1) + 1

	toggleBox := TristateBox{Id: ToggleBoxID(selKey), State: v.Section.Tristate(), Glyphs: v.Glyphs,
		ReadOnly: v.State.IsReadOnly}
	rect = s.DrawComponent(cursor, y, toggleBox)
	cursor += maxInt(rect.Width, 1) + 1

	label := fmt.Sprintf("Section %d/%d", v.SectionIdx+1, v.TotalSections)
	s.DrawSpan(cursor, y, label, style)

	if !expanded {
		return
	}
	cursorY := y + 1
	for li := range v.Section.Lines {
		lk := record.LineKey{CommitIdx: 0, FileIdx: v.Key.FileIdx, SectionIdx: v.SectionIdx, LineIdx: li}
		lv := SectionLineView{State: v.State, UI: v.UI, Line: &v.Section.Lines[li], Key: lk, Glyphs: v.Glyphs, Width: v.Width}
		r := s.DrawComponent(x, cursorY, lv)
		cursorY += maxInt(r.Height, 1)
	}
}

// drawPseudoSection renders a FileMode or Binary section: a single
// togglable row with no expand control (§4.2).
func (v SectionView) drawPseudoSection(s *surface.Surface, x, y int, rowStyle tcell.Style) {
	selKey := record.SectionSelKey(v.Key)
	toggleBox := TristateBox{Id: ToggleBoxID(selKey), State: v.Section.Tristate(), Glyphs: v.Glyphs,
		ReadOnly: v.State.IsReadOnly}
	rect := s.DrawComponent(x, y, toggleBox)
	cursor := x + maxInt(rect.Width, 1) + 1

	var label string
	switch v.Section.Kind {
	case record.KindFileMode:
		label = fileModeLabel(v.Section.Mode, v.State.Files[v.Key.FileIdx].FileMode)
	case record.KindBinary:
		label = binaryLabel(v.Section)
	}
	s.DrawSpan(cursor, y, label, rowStyle)
}

func fileModeLabel(mode, currentMode record.FileMode) string {
	if mode.Absent {
		return "Delete file"
	}
	if currentMode.Absent {
		return fmt.Sprintf("Create file, mode %s", mode)
	}
	return fmt.Sprintf("Change file mode to %s", mode)
}

func binaryLabel(sec *record.Section) string {
	old := binarySideLabel(sec.OldDescription, sec.OldSize)
	newd := binarySideLabel(sec.NewDescription, sec.NewSize)
	return fmt.Sprintf("Binary file: %s → %s", old, newd)
}

// binarySideLabel prefers an explicit description, falling back to a
// humanized byte count, then "(unknown)" when neither is available.
func binarySideLabel(desc *string, size *int64) string {
	if desc != nil {
		return *desc
	}
	if size != nil {
		return fmt.Sprintf("(%s binary file)", humanize.Bytes(uint64(*size)))
	}
	return "(unknown)"
}

// drawUnchanged renders at most NumContextLines lines before and after an
// ellipsis, omitting the leading block if this is the first section and
// the trailing block if it's the last; if the two windows overlap and
// it's neither first nor last, the full range is rendered unelided
// (§4.2 SectionView).
func (v SectionView) drawUnchanged(s *surface.Surface, x, y int) {
	lines := v.Section.UnchangedLines
	isFirst := v.SectionIdx == 0
	isLast := v.SectionIdx == v.TotalSections-1
	n := len(lines)

	cursorY := y
	draw := func(idx int) {
		s.DrawSpan(x, cursorY, fmt.Sprintf("%5d %s", idx+1, lines[idx]), StyleDim)
		cursorY++
	}

	if n <= NumContextLines {
		for i := 0; i < n; i++ {
			draw(i)
		}
		return
	}

	headEnd := NumContextLines
	tailStart := n - NumContextLines
	overlap := tailStart <= headEnd

	switch {
	case isFirst && !isLast:
		for i := tailStart; i < n; i++ {
			draw(i)
		}
	case isLast && !isFirst:
		for i := 0; i < headEnd; i++ {
			draw(i)
		}
	case overlap:
		for i := 0; i < n; i++ {
			draw(i)
		}
	default:
		for i := 0; i < headEnd; i++ {
			draw(i)
		}
		s.DrawSpan(x, cursorY, "    ⋮", StyleDim)
		cursorY++
		for i := tailStart; i < n; i++ {
			draw(i)
		}
	}
}

// SectionLineView renders one changed line: "[toggle] + {content}" or
// "[toggle] - {content}" in green/red, with control/zero-width characters
// made visible (§4.2). Unchanged context lines are not drawn here but by
// SectionView.drawUnchanged, as "{num:>5} {content}" dimmed.
type SectionLineView struct {
	State *record.RecordState
	UI    *record.UiState
	Line  *record.ChangedLine
	Key   record.LineKey
	Glyphs
	Width int
}

func (l SectionLineView) ID() string {
	return string(SelectableItemID(record.LineSelKey(l.Key)))
}

func (l SectionLineView) Draw(s *surface.Surface, x, y int) {
	selKey := record.LineSelKey(l.Key)
	rowStyle := StyleDefault
	if l.UI.SelectionKey == selKey {
		rowStyle = StyleReverse
	}
	toggleBox := TristateBox{Id: ToggleBoxID(selKey), State: boolToTristate(l.Line.IsChecked),
		Glyphs: l.Glyphs, ReadOnly: l.State.IsReadOnly}
	rect := s.DrawComponent(x, y, toggleBox)
	cursor := x + maxInt(rect.Width, 1) + 1

	sign := "+"
	lineStyle := StyleAdded
	if l.Line.ChangeType == record.Removed {
		sign = "-"
		lineStyle = StyleRemoved
	}
	if rowStyle == StyleReverse {
		lineStyle = lineStyle.Reverse(true)
	}
	content := record.ReplaceControlChars(l.Line.Content)
	s.DrawSpan(cursor, y, sign+" "+content, lineStyle)
}

func boolToTristate(b bool) record.Tristate {
	if b {
		return record.True
	}
	return record.False
}
