package record

// FileTristate computes a file's aggregate state (§4.4).
func (s *RecordState) FileTristate(k FileKey) Tristate {
	f := s.file(k)
	if f == nil {
		return False
	}
	return f.Tristate()
}

// SectionTristate computes a section's aggregate state (§4.4).
func (s *RecordState) SectionTristate(k SectionKey) Tristate {
	sec := s.section(k)
	if sec == nil {
		return False
	}
	return sec.Tristate()
}

// FileExpanded returns a tristate describing whether a file's own key is
// expanded (True/False) and whether all of its Changed sections are
// themselves expanded (Partial when mixed), per §4.4.
func (s *RecordState) FileExpanded(u *UiState, k FileKey) Tristate {
	if !u.isExpanded(FileSelKey(k)) {
		return False
	}
	f := s.file(k)
	if f == nil {
		return True
	}
	anyCollapsed, anyChanged := false, false
	for i, sec := range f.Sections {
		if sec.Kind != KindChanged {
			continue
		}
		anyChanged = true
		sk := SectionKey{CommitIdx: k.CommitIdx, FileIdx: k.FileIdx, SectionIdx: i}
		if !u.isExpanded(SectionSelKey(sk)) {
			anyCollapsed = true
		}
	}
	if !anyChanged {
		return True
	}
	if anyCollapsed {
		return Partial
	}
	return True
}

func (s *RecordState) file(k FileKey) *File {
	if k.CommitIdx != 0 {
		// §4.3/§9(b): only commit 0 contributes File/Section/Line keys.
		return nil
	}
	if k.FileIdx < 0 || k.FileIdx >= len(s.Files) {
		return nil
	}
	return &s.Files[k.FileIdx]
}

func (s *RecordState) section(k SectionKey) *Section {
	f := s.file(k.FileKey())
	if f == nil || k.SectionIdx < 0 || k.SectionIdx >= len(f.Sections) {
		return nil
	}
	return &f.Sections[k.SectionIdx]
}

func (s *RecordState) line(k LineKey) *ChangedLine {
	sec := s.section(k.SectionKey())
	if sec == nil || sec.Kind != KindChanged || k.LineIdx < 0 || k.LineIdx >= len(sec.Lines) {
		return nil
	}
	return &sec.Lines[k.LineIdx]
}
