package domain

// LibrarySubstitution derives a sibling library path by replacing From with To
// in the secondary path reported by the compiler.
type LibrarySubstitution struct {
	From string
	To   string
}

// Project is the resolved configuration of one melt project.
type Project struct {
	// Root is the absolute project root; build paths are relative to it.
	Root string
	// Tool names the directory under .cache holding artifacts.
	Tool string

	Compiler     string
	Analyzer     string
	Preprocessor string
	PPX          string

	// Extensions are tried in order when mapping a module name to a file.
	Extensions []string
	// Flags and Packages seed every new merlin record.
	Flags     []string
	Packages  []string
	Libraries []LibrarySubstitution
}

// DefaultProject returns the project configuration used when no melt.yaml is found.
func DefaultProject(root string) *Project {
	return &Project{
		Root:         root,
		Tool:         ToolName,
		Compiler:     "esy melc",
		Analyzer:     "esy ocamldep",
		Preprocessor: "refmt --print binary",
		PPX:          "melppx",
		Extensions:   []string{".re", ".ml"},
		Flags:        []string{"-ppx melppx"},
		Packages:     []string{"melange", "melange.js", "melange.dom", "melange.belt"},
		Libraries: []LibrarySubstitution{
			{From: "lib/melange/js/melange", To: "lib/melange/dom/melange"},
			{From: "lib/melange/js/melange", To: "lib/melange/belt/melange"},
		},
	}
}

// StarterRecord returns a fresh merlin record seeded from the project defaults.
func (p *Project) StarterRecord() *MerlinRecord {
	return NewMerlinRecord(p.Flags, p.Packages)
}
