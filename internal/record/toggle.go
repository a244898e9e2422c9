package record

// ToggleItem applies the toggle rule at the given selection key, then
// fires the §4.5 coherence rule: once for a Section or Line toggle, and
// once per editable section for a File toggle. Read-only state makes this
// a no-op, per §4.4.
func (s *RecordState) ToggleItem(k SelectionKey) {
	if s.IsReadOnly {
		return
	}
	switch k.Kind {
	case SelFile:
		s.toggleFile(k.File)
	case SelSection:
		s.toggleSection(k.Section)
	case SelLine:
		s.toggleLine(k.Line)
	}
}

func (s *RecordState) toggleFile(k FileKey) {
	f := s.file(k)
	if f == nil {
		return
	}
	newValue := f.Tristate() == False
	for i := range f.Sections {
		s.setSectionChecked(&f.Sections[i], newValue)
	}
	// A whole-file toggle can flip every editable section; run coherence
	// once per section so FileMode/Changed stay in lockstep (§4.5).
	for i := range f.Sections {
		sec := &f.Sections[i]
		switch sec.Kind {
		case KindFileMode:
			s.applyModeChangeCoherence(k, sec, newValue)
		case KindChanged, KindBinary:
			s.applyChangedCoherence(k, newValue)
		}
	}
}

func (s *RecordState) setSectionChecked(sec *Section, value bool) {
	switch sec.Kind {
	case KindChanged:
		for i := range sec.Lines {
			sec.Lines[i].IsChecked = value
		}
	case KindFileMode:
		sec.ModeIsChecked = value
	case KindBinary:
		sec.BinaryIsChecked = value
	}
}

func (s *RecordState) toggleSection(k SectionKey) {
	sec := s.section(k)
	if sec == nil || !sec.Editable() {
		return
	}
	newValue := sec.Tristate() == False
	s.setSectionChecked(sec, newValue)

	switch sec.Kind {
	case KindFileMode:
		s.applyModeChangeCoherence(k.FileKey(), sec, newValue)
	case KindChanged, KindBinary:
		s.applyChangedCoherence(k.FileKey(), newValue)
	}
}

func (s *RecordState) toggleLine(k LineKey) {
	line := s.line(k)
	if line == nil {
		return
	}
	line.IsChecked = !line.IsChecked
	s.applyChangedCoherence(k.SectionKey().FileKey(), line.IsChecked)
}

// applyModeChangeCoherence implements §4.5 rule 1,
// ToggledModeChangeSection(section, old_mode, new_mode, toggled_to).
func (s *RecordState) applyModeChangeCoherence(fk FileKey, modeSection *Section, toggledTo bool) {
	f := s.file(fk)
	if f == nil {
		return
	}
	oldMode := f.FileMode
	newMode := modeSection.Mode
	if toggledTo && newMode.Absent {
		// Checked a deletion: every Changed section's lines must be checked.
		for i := range f.Sections {
			sec := &f.Sections[i]
			if sec.Kind == KindChanged {
				for j := range sec.Lines {
					sec.Lines[j].IsChecked = true
				}
			}
		}
	}
	if !toggledTo && oldMode.Absent {
		// Unchecked a creation: every section in the file is unchecked.
		for i := range f.Sections {
			s.setSectionChecked(&f.Sections[i], false)
		}
	}
}

// applyChangedCoherence implements §4.5 rules 2/3,
// ToggledChangedSection / ToggledChangedLine, scoped to the line's file.
func (s *RecordState) applyChangedCoherence(fk FileKey, toggledTo bool) {
	f := s.file(fk)
	if f == nil {
		return
	}
	for i := range f.Sections {
		sec := &f.Sections[i]
		if sec.Kind != KindFileMode {
			continue
		}
		if !toggledTo && sec.Mode.Absent {
			// Lines came out of a would-be-deleted file: can no longer delete.
			sec.ModeIsChecked = false
		}
		if toggledTo && f.FileMode.Absent {
			// Lines added to a not-yet-created file: must create it.
			sec.ModeIsChecked = true
		}
	}
}

// ToggleAll inverts each file's sections as an independent group (§4.4).
func (s *RecordState) ToggleAll() {
	if s.IsReadOnly {
		return
	}
	for i := range s.Files {
		s.toggleFile(FileKey{CommitIdx: 0, FileIdx: i})
	}
}

// ToggleAllUniform folds every file's tristate; if they agree, flips that
// value, otherwise drives everything to True (§4.4).
func (s *RecordState) ToggleAllUniform() {
	if s.IsReadOnly {
		return
	}
	if len(s.Files) == 0 {
		return
	}
	acc := s.Files[0].Tristate()
	for i := 1; i < len(s.Files); i++ {
		acc = Fold(acc, s.Files[i].Tristate())
	}
	var target bool
	if acc == Partial {
		target = true
	} else {
		target = acc == False
	}
	for i, f := range s.Files {
		if f.Tristate() == boolTristate(target) {
			continue
		}
		s.setAllFile(FileKey{CommitIdx: 0, FileIdx: i}, target)
	}
}

func (s *RecordState) setAllFile(k FileKey, value bool) {
	f := s.file(k)
	if f == nil {
		return
	}
	for i := range f.Sections {
		s.setSectionChecked(&f.Sections[i], value)
	}
	for i := range f.Sections {
		sec := &f.Sections[i]
		switch sec.Kind {
		case KindFileMode:
			s.applyModeChangeCoherence(k, sec, value)
		case KindChanged, KindBinary:
			s.applyChangedCoherence(k, value)
		}
	}
}
