package manifest

// Manifest is the subset of a Scoop app manifest that search consumes.
type Manifest struct {
	Version     string
	Bin         *BinField // nil when the manifest has no bin field
	Description *string   // nil when the manifest has no description
}

// BinKind discriminates the two top-level shapes of the bin field.
type BinKind int

const (
	// BinSingle is a bare path string: "bin": "git.exe".
	BinSingle BinKind = iota
	// BinList is an array of paths and commands: "bin": ["a.exe", ["b.exe", "--arg"]].
	BinList
)

// EntryKind discriminates the two shapes of a bin list element.
type EntryKind int

const (
	// EntryPath is a bare path string.
	EntryPath EntryKind = iota
	// EntryCommand is an array whose first element is the executable path and
	// whose remaining elements are fixed arguments.
	EntryCommand
)

// BinField is the normalized bin field. Exactly one of Path (BinSingle) or
// Entries (BinList) is meaningful, as selected by Kind.
type BinField struct {
	Kind    BinKind
	Path    string
	Entries []BinEntry
}

// BinEntry is one element of a list-shaped bin field.
type BinEntry struct {
	Kind    EntryKind
	Path    string
	Command []string
}

// SinglePath builds a bin field holding one executable path.
func SinglePath(path string) *BinField {
	return &BinField{Kind: BinSingle, Path: path}
}

// List builds a list-shaped bin field.
func List(entries ...BinEntry) *BinField {
	return &BinField{Kind: BinList, Entries: entries}
}

// PathEntry builds a bare-path list element.
func PathEntry(path string) BinEntry {
	return BinEntry{Kind: EntryPath, Path: path}
}

// CommandEntry builds a command list element.
func CommandEntry(args ...string) BinEntry {
	return BinEntry{Kind: EntryCommand, Command: args}
}

// Executable returns the executable path of the entry. A command with no
// elements has none.
func (e BinEntry) Executable() (string, bool) {
	if e.Kind == EntryPath {
		return e.Path, true
	}
	if len(e.Command) == 0 {
		return "", false
	}
	return e.Command[0], true
}

// Executables flattens the bin field into the ordered list of candidate
// executable paths. Entries without an executable are dropped. A nil field
// yields nil.
func (b *BinField) Executables() []string {
	if b == nil {
		return nil
	}
	if b.Kind == BinSingle {
		return []string{b.Path}
	}

	paths := make([]string, 0, len(b.Entries))
	for _, e := range b.Entries {
		if p, ok := e.Executable(); ok {
			paths = append(paths, p)
		}
	}
	return paths
}
