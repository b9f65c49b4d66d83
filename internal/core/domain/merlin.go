package domain

import (
	"slices"
	"strings"
)

// MerlinRecord is the accumulated editor configuration of one source directory.
//
// Path pairs and packages are insertion-ordered sets. Flags only ever grow and keep
// duplicates.
type MerlinRecord struct {
	pairs []PathPair
	flags []string
	pkgs  []string
}

// NewMerlinRecord creates a record holding the given starter flags and packages.
func NewMerlinRecord(flags, pkgs []string) *MerlinRecord {
	r := &MerlinRecord{flags: slices.Clone(flags)}
	r.AddPackages(pkgs...)
	return r
}

// Clone returns a deep copy of the record.
func (r *MerlinRecord) Clone() *MerlinRecord {
	return &MerlinRecord{
		pairs: slices.Clone(r.pairs),
		flags: slices.Clone(r.flags),
		pkgs:  slices.Clone(r.pkgs),
	}
}

// AddPair adds a source/build pair unless an identical pair is already present.
func (r *MerlinRecord) AddPair(p PathPair) {
	if slices.Contains(r.pairs, p) {
		return
	}
	r.pairs = append(r.pairs, p)
}

// AppendFlags appends flags in order, duplicates included.
func (r *MerlinRecord) AppendFlags(flags ...string) {
	r.flags = append(r.flags, flags...)
}

// AddPackages adds package names that are not yet present, preserving first-seen order.
func (r *MerlinRecord) AddPackages(pkgs ...string) {
	for _, p := range pkgs {
		if p == "" || slices.Contains(r.pkgs, p) {
			continue
		}
		r.pkgs = append(r.pkgs, p)
	}
}

// Pairs returns the recorded source/build pairs.
func (r *MerlinRecord) Pairs() []PathPair {
	return slices.Clone(r.pairs)
}

// Flags returns the accumulated flags.
func (r *MerlinRecord) Flags() []string {
	return slices.Clone(r.flags)
}

// Packages returns the package names.
func (r *MerlinRecord) Packages() []string {
	return slices.Clone(r.pkgs)
}

// Render serializes the record in .merlin syntax.
func (r *MerlinRecord) Render() []byte {
	lines := make([]string, 0, 2*len(r.pairs)+len(r.flags)+1)
	for _, p := range r.pairs {
		lines = append(lines, "S "+p.Source, "B "+p.Build)
	}
	for _, f := range r.flags {
		lines = append(lines, "FLG "+f)
	}
	lines = append(lines, "PKG "+strings.Join(r.pkgs, " "))
	return []byte(strings.Join(lines, "\n"))
}
