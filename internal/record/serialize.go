package record

import "encoding/json"

// These JSON-facing shapes are the dump format (§6 "an optional dump
// flag writes the full input model ... as a serialized structure") and
// are reused by cmd/record as the on-disk representation it loads a
// RecordState from, since producing one from a live diff is explicitly
// out of scope (§1 Non-goals).

type jsonFileMode struct {
	Mode   uint32 `json:"mode"`
	Absent bool   `json:"absent"`
}

type jsonChangedLine struct {
	IsChecked  bool   `json:"is_checked"`
	ChangeType string `json:"change_type"`
	Content    string `json:"content"`
}

type jsonSection struct {
	Kind              string            `json:"kind"`
	Lines             []jsonChangedLine `json:"lines,omitempty"`
	Mode              *jsonFileMode     `json:"mode,omitempty"`
	ModeIsChecked     bool              `json:"mode_is_checked,omitempty"`
	BinaryIsChecked   bool              `json:"binary_is_checked,omitempty"`
	BinaryOldDesc     *string           `json:"binary_old_description,omitempty"`
	BinaryNewDesc     *string           `json:"binary_new_description,omitempty"`
	BinaryOldSize     *int64            `json:"binary_old_size,omitempty"`
	BinaryNewSize     *int64            `json:"binary_new_size,omitempty"`
	UnchangedLines    []string          `json:"unchanged_lines,omitempty"`
}

type jsonFile struct {
	OldPath  *string       `json:"old_path,omitempty"`
	Path     string        `json:"path"`
	FileMode jsonFileMode  `json:"file_mode"`
	Sections []jsonSection `json:"sections"`
}

type jsonCommit struct {
	Message *string `json:"message,omitempty"`
}

type jsonRecordState struct {
	IsReadOnly bool         `json:"is_read_only"`
	Commits    []jsonCommit `json:"commits"`
	Files      []jsonFile   `json:"files"`
}

func changeTypeName(c ChangeType) string {
	if c == Removed {
		return "removed"
	}
	return "added"
}

func parseChangeType(s string) ChangeType {
	if s == "removed" {
		return Removed
	}
	return Added
}

func sectionKindName(k SectionKind) string {
	switch k {
	case KindChanged:
		return "changed"
	case KindFileMode:
		return "file_mode"
	case KindBinary:
		return "binary"
	default:
		return "unchanged"
	}
}

func parseSectionKind(s string) SectionKind {
	switch s {
	case "changed":
		return KindChanged
	case "file_mode":
		return KindFileMode
	case "binary":
		return KindBinary
	default:
		return KindUnchanged
	}
}

// MarshalState renders a RecordState to its dump-file JSON form.
func MarshalState(s *RecordState) ([]byte, error) {
	out := jsonRecordState{IsReadOnly: s.IsReadOnly}
	for _, c := range s.Commits {
		out.Commits = append(out.Commits, jsonCommit{Message: c.Message})
	}
	for _, f := range s.Files {
		jf := jsonFile{
			OldPath:  f.OldPath,
			Path:     f.Path,
			FileMode: jsonFileMode{Mode: f.FileMode.Mode, Absent: f.FileMode.Absent},
		}
		for _, sec := range f.Sections {
			js := jsonSection{Kind: sectionKindName(sec.Kind)}
			switch sec.Kind {
			case KindChanged:
				for _, l := range sec.Lines {
					js.Lines = append(js.Lines, jsonChangedLine{
						IsChecked:  l.IsChecked,
						ChangeType: changeTypeName(l.ChangeType),
						Content:    l.Content,
					})
				}
			case KindFileMode:
				js.Mode = &jsonFileMode{Mode: sec.Mode.Mode, Absent: sec.Mode.Absent}
				js.ModeIsChecked = sec.ModeIsChecked
			case KindBinary:
				js.BinaryIsChecked = sec.BinaryIsChecked
				js.BinaryOldDesc = sec.OldDescription
				js.BinaryNewDesc = sec.NewDescription
				js.BinaryOldSize = sec.OldSize
				js.BinaryNewSize = sec.NewSize
			case KindUnchanged:
				js.UnchangedLines = sec.UnchangedLines
			}
			jf.Sections = append(jf.Sections, js)
		}
		out.Files = append(out.Files, jf)
	}
	return json.MarshalIndent(out, "", "  ")
}

// UnmarshalState parses the dump-file JSON form back into a RecordState,
// refusing (per §9(a)) more than MaxCommits commits.
func UnmarshalState(data []byte) (*RecordState, error) {
	var in jsonRecordState
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, ErrSerializeJsonWith(err)
	}
	var commits []Commit
	for _, c := range in.Commits {
		commits = append(commits, Commit{Message: c.Message})
	}
	var files []File
	for _, jf := range in.Files {
		f := File{
			OldPath:  jf.OldPath,
			Path:     jf.Path,
			FileMode: FileMode{Mode: jf.FileMode.Mode, Absent: jf.FileMode.Absent},
		}
		for _, js := range jf.Sections {
			sec := Section{Kind: parseSectionKind(js.Kind)}
			switch sec.Kind {
			case KindChanged:
				for _, jl := range js.Lines {
					sec.Lines = append(sec.Lines, ChangedLine{
						IsChecked:  jl.IsChecked,
						ChangeType: parseChangeType(jl.ChangeType),
						Content:    jl.Content,
					})
				}
			case KindFileMode:
				if js.Mode != nil {
					sec.Mode = FileMode{Mode: js.Mode.Mode, Absent: js.Mode.Absent}
				}
				sec.ModeIsChecked = js.ModeIsChecked
			case KindBinary:
				sec.BinaryIsChecked = js.BinaryIsChecked
				sec.OldDescription = js.BinaryOldDesc
				sec.NewDescription = js.BinaryNewDesc
				sec.OldSize = js.BinaryOldSize
				sec.NewSize = js.BinaryNewSize
			case KindUnchanged:
				sec.UnchangedLines = js.UnchangedLines
			}
			f.Sections = append(f.Sections, sec)
		}
		files = append(files, f)
	}
	return NewRecordState(in.IsReadOnly, commits, files)
}
