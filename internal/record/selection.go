package record

// AllSelectionKeys produces the canonical enumeration, in draw order, of
// every key the user could ever focus (§4.3). Only commit index 0
// contributes keys; commit 1 (Adjacent view) is reserved but does not
// expand the selection space (§9(b)).
func (s *RecordState) AllSelectionKeys() []SelectionKey {
	var keys []SelectionKey
	for fi, f := range s.Files {
		fk := FileKey{CommitIdx: 0, FileIdx: fi}
		keys = append(keys, FileSelKey(fk))
		for si, sec := range f.Sections {
			if sec.Kind == KindUnchanged {
				continue
			}
			sk := SectionKey{CommitIdx: 0, FileIdx: fi, SectionIdx: si}
			keys = append(keys, SectionSelKey(sk))
			if sec.Kind == KindChanged {
				for li := range sec.Lines {
					lk := LineKey{CommitIdx: 0, FileIdx: fi, SectionIdx: si, LineIdx: li}
					keys = append(keys, LineSelKey(lk))
				}
			}
		}
	}
	return keys
}

// visible reports whether a canonical key is currently visible given the
// expansion state (§4.3).
func (s *RecordState) visible(u *UiState, k SelectionKey) bool {
	switch k.Kind {
	case SelFile:
		return true
	case SelSection:
		t := s.FileExpanded(u, k.Section.FileKey())
		return t == Partial || t == True
	case SelLine:
		sk := k.Line.SectionKey()
		t := s.FileExpanded(u, sk.FileKey())
		return (t == Partial || t == True) && u.isExpanded(SectionSelKey(sk))
	default:
		return false
	}
}

// FindSelection filters the canonical list to the visible subset and
// returns it along with the index of the current selection, if visible
// (§4.3).
func (s *RecordState) FindSelection(u *UiState) ([]SelectionKey, int) {
	all := s.AllSelectionKeys()
	var visible []SelectionKey
	foundIdx := -1
	for _, k := range all {
		if !s.visible(u, k) {
			continue
		}
		if keysEqual(k, u.SelectionKey) {
			foundIdx = len(visible)
		}
		visible = append(visible, k)
	}
	return visible, foundIdx
}

func keysEqual(a, b SelectionKey) bool {
	return a == b
}

// ExpandAncestors expands whatever ancestors are needed so that k becomes
// visible (§4.3): Section -> expand its File; Line -> expand its File and
// Section.
func (s *RecordState) ExpandAncestors(u *UiState, k SelectionKey) {
	switch k.Kind {
	case SelSection:
		u.setExpanded(FileSelKey(k.Section.FileKey()), true)
	case SelLine:
		u.setExpanded(FileSelKey(k.Line.SectionKey().FileKey()), true)
		u.setExpanded(SectionSelKey(k.Line.SectionKey()), true)
	}
}

// SelectItem sets the focused key and expands its ancestors so it is
// visible.
func (s *RecordState) SelectItem(u *UiState, k SelectionKey) {
	s.ExpandAncestors(u, k)
	u.SelectionKey = k
}

// NavPrev moves focus one step back in the visible list; at the start, it
// stays put (§4.3 prev/next).
func (s *RecordState) NavPrev(u *UiState) {
	visible, idx := s.FindSelection(u)
	if len(visible) == 0 {
		return
	}
	if idx < 0 {
		s.SelectItem(u, visible[0])
		return
	}
	if idx > 0 {
		s.SelectItem(u, visible[idx-1])
	}
}

// NavNext moves focus one step forward in the visible list; at the end,
// it stays put.
func (s *RecordState) NavNext(u *UiState) {
	visible, idx := s.FindSelection(u)
	if len(visible) == 0 {
		return
	}
	if idx < 0 {
		s.SelectItem(u, visible[0])
		return
	}
	if idx < len(visible)-1 {
		s.SelectItem(u, visible[idx+1])
	}
}

// NavPrevSameKind scans backward for the first visible key whose variant
// matches the current selection; if none, stays put.
func (s *RecordState) NavPrevSameKind(u *UiState) {
	visible, idx := s.FindSelection(u)
	if idx < 0 || len(visible) == 0 {
		return
	}
	kind := visible[idx].Kind
	for i := idx - 1; i >= 0; i-- {
		if visible[i].Kind == kind {
			s.SelectItem(u, visible[i])
			return
		}
	}
}

// NavNextSameKind scans forward for the first visible key whose variant
// matches the current selection; if none, stays put.
func (s *RecordState) NavNextSameKind(u *UiState) {
	visible, idx := s.FindSelection(u)
	if idx < 0 || len(visible) == 0 {
		return
	}
	kind := visible[idx].Kind
	for i := idx + 1; i < len(visible); i++ {
		if visible[i].Kind == kind {
			s.SelectItem(u, visible[i])
			return
		}
	}
}

// SelectInner advances to the next visible key whose depth is strictly
// greater than the current selection's (File -> Section -> Line); no-op
// at Line (§4.3).
func (s *RecordState) SelectInner(u *UiState) {
	visible, idx := s.FindSelection(u)
	if idx < 0 || len(visible) == 0 {
		return
	}
	depth := visible[idx].Kind.Depth()
	for i := idx + 1; i < len(visible); i++ {
		if visible[i].Kind.Depth() > depth {
			s.SelectItem(u, visible[i])
			return
		}
		if visible[i].Kind.Depth() <= depth {
			break
		}
	}
}

// SelectOuter implements §4.3 select_outer: at File, collapse it; at
// Section, collapse it if foldSection and expanded, else move to the
// enclosing File; at Line, move to the enclosing Section.
func (s *RecordState) SelectOuter(u *UiState, foldSection bool) {
	switch u.SelectionKey.Kind {
	case SelFile:
		u.setExpanded(u.SelectionKey, false)
	case SelSection:
		sk := u.SelectionKey.Section
		if foldSection && u.isExpanded(u.SelectionKey) {
			u.setExpanded(u.SelectionKey, false)
			return
		}
		u.SelectionKey = FileSelKey(sk.FileKey())
	case SelLine:
		lk := u.SelectionKey.Line
		u.SelectionKey = SectionSelKey(lk.SectionKey())
	}
}

// ExpandItem toggles the expansion of the current selection (File or
// Section; a no-op at Line, which has nothing to expand).
func (s *RecordState) ExpandItem(u *UiState) {
	switch u.SelectionKey.Kind {
	case SelFile, SelSection:
		u.toggleExpanded(u.SelectionKey)
	}
}

// ExpandAll folds the expansion state of every file (and, transitively,
// every Changed section within it): if everything is already expanded,
// collapse everything; otherwise expand everything. Mirrors the
// uniform-fold shape of ToggleAllUniform (§4.4).
func (s *RecordState) ExpandAll(u *UiState) {
	allExpanded := true
	for fi, f := range s.Files {
		fk := FileSelKey(FileKey{CommitIdx: 0, FileIdx: fi})
		if !u.isExpanded(fk) {
			allExpanded = false
			break
		}
		for si, sec := range f.Sections {
			if sec.Kind != KindChanged {
				continue
			}
			sk := SectionSelKey(SectionKey{CommitIdx: 0, FileIdx: fi, SectionIdx: si})
			if !u.isExpanded(sk) {
				allExpanded = false
				break
			}
		}
		if !allExpanded {
			break
		}
	}
	target := !allExpanded
	for fi, f := range s.Files {
		fk := FileSelKey(FileKey{CommitIdx: 0, FileIdx: fi})
		u.setExpanded(fk, target)
		for si, sec := range f.Sections {
			if sec.Kind != KindChanged {
				continue
			}
			sk := SectionSelKey(SectionKey{CommitIdx: 0, FileIdx: fi, SectionIdx: si})
			u.setExpanded(sk, target)
		}
	}
}

// AdvanceToNextOfKind scans the *full* canonical list (not just visible
// keys) for the next key matching the current kind; used post-toggle
// (§4.3).
func (s *RecordState) AdvanceToNextOfKind(u *UiState) {
	all := s.AllSelectionKeys()
	idx := -1
	for i, k := range all {
		if keysEqual(k, u.SelectionKey) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	kind := all[idx].Kind
	for i := idx + 1; i < len(all); i++ {
		if all[i].Kind == kind {
			s.SelectItem(u, all[i])
			return
		}
	}
}
