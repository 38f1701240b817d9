package core

// Entry is one file destined for the archive.
type Entry struct {
	// Name is the path inside the archive: slash-separated, relative to the
	// project root. Fixed top-level files use their bare file name.
	Name string

	// SourcePath is the absolute path of the file on disk.
	SourcePath string
}

// EntrySet is the ordered list of entries written by one build.
// Order is the archive write order.
type EntrySet struct {
	Entries []Entry
}

// Names returns the entry names in order.
func (s *EntrySet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Name
	}
	return out
}

// Add appends an entry.
func (s *EntrySet) Add(e Entry) {
	s.Entries = append(s.Entries, e)
}
