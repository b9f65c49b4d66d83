// Package domain contains the core domain models of the melt build orchestrator.
package domain

import (
	"path/filepath"
	"strings"
)

// Syntax is the concrete syntax a source file is written in.
type Syntax uint8

const (
	// SyntaxOCaml is the primary OCaml syntax (.ml, .mli).
	SyntaxOCaml Syntax = iota
	// SyntaxReason is the alternate Reason syntax (.re, .rei), which needs a preprocessing pass.
	SyntaxReason
)

// SyntaxFromPath selects the syntax of a file from its extension.
func SyntaxFromPath(path string) Syntax {
	switch filepath.Ext(path) {
	case ".re", ".rei":
		return SyntaxReason
	default:
		return SyntaxOCaml
	}
}

// String returns a human-readable name of the syntax.
func (s Syntax) String() string {
	if s == SyntaxReason {
		return "reason"
	}
	return "ocaml"
}

// SourceFile is a single source module visited by the orchestrator.
type SourceFile struct {
	Path   string
	Syntax Syntax
}

// NewSourceFile identifies the source file at path.
// The path is made absolute; the syntax is fixed from its extension.
func NewSourceFile(path string) (SourceFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return SourceFile{}, err
	}
	return SourceFile{Path: abs, Syntax: SyntaxFromPath(abs)}, nil
}

// Base returns the file name of the source.
func (f SourceFile) Base() string {
	return filepath.Base(f.Path)
}

// Dir returns the directory containing the source.
func (f SourceFile) Dir() string {
	return filepath.Dir(f.Path)
}

// Module returns the module name the compiler derives from the file name.
func (f SourceFile) Module() string {
	base := f.Base()
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ArtifactName returns the base name with its extension replaced by targetExt.
func (f SourceFile) ArtifactName(targetExt string) string {
	base := f.Base()
	return strings.TrimSuffix(base, filepath.Ext(base)) + targetExt
}

// PathPair is one source/build directory pair of a merlin record.
type PathPair struct {
	Source string
	Build  string
}

// CompileRequest describes one compiler invocation.
type CompileRequest struct {
	Input           SourceFile
	Output          string
	Includes        []string
	HasDependencies bool
}
