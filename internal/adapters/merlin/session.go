// Package merlin accumulates per-directory .merlin files over one build session.
package merlin

import (
	"maps"
	"os"
	"slices"
	"sync"

	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/zerr"
)

// Session implements ports.ConfigAccumulator.
//
// Every directory starts from its own copy of the starter record. Records live
// for the duration of the session; after Close no further merges are accepted.
type Session struct {
	mu      sync.Mutex
	starter *domain.MerlinRecord
	records map[string]*domain.MerlinRecord
	closed  bool
}

// NewSession starts a session seeded with starter.
func NewSession(starter *domain.MerlinRecord) *Session {
	if starter == nil {
		starter = domain.NewMerlinRecord(nil, nil)
	}
	return &Session{
		starter: starter.Clone(),
		records: make(map[string]*domain.MerlinRecord),
	}
}

// Get returns a copy of the record registered for dir,
// or a fresh copy of the starter record if dir has none yet.
func (s *Session) Get(dir string) *domain.MerlinRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.records[dir]; ok {
		return r.Clone()
	}
	return s.starter.Clone()
}

// Merge folds pair, flags and pkgs into the record of dir and rewrites dir/.merlin.
// The record is registered only after the file was written.
func (s *Session) Merge(dir string, pair domain.PathPair, flags, pkgs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return zerr.With(domain.ErrSessionClosed, "dir", dir)
	}

	record, ok := s.records[dir]
	if ok {
		record = record.Clone()
	} else {
		record = s.starter.Clone()
	}

	record.AddPair(pair)
	record.AppendFlags(flags...)
	record.AddPackages(pkgs...)

	if err := write(dir, record); err != nil {
		return err
	}

	s.records[dir] = record
	return nil
}

// Dirs returns the registered directories in sorted order.
func (s *Session) Dirs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Sorted(maps.Keys(s.records))
}

// Flush rewrites every registered record.
func (s *Session) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.flushLocked()
}

// Close flushes the session and rejects later merges. Closing twice is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.flushLocked()
}

func (s *Session) flushLocked() error {
	for _, dir := range slices.Sorted(maps.Keys(s.records)) {
		if err := write(dir, s.records[dir]); err != nil {
			return err
		}
	}
	return nil
}

func write(dir string, record *domain.MerlinRecord) error {
	path := domain.MerlinPath(dir)
	if err := os.WriteFile(path, record.Render(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMerlinWriteFailed.Error()), "path", path)
	}
	return nil
}
