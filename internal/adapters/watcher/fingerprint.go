package watcher

import (
	"sync"

	"go.trai.ch/melt/internal/core/ports"
)

// Fingerprints remembers content hashes of watched files so that saves
// which leave a file byte-identical do not trigger a rebuild.
type Fingerprints struct {
	mu     sync.Mutex
	hasher ports.Hasher
	sums   map[string]uint64
}

// NewFingerprints creates an empty fingerprint set.
func NewFingerprints(hasher ports.Hasher) *Fingerprints {
	return &Fingerprints{
		hasher: hasher,
		sums:   make(map[string]uint64),
	}
}

// Changed reports whether path differs from its last recorded content and records
// the new hash. Unreadable files count as changed and are forgotten.
func (f *Fingerprints) Changed(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	sum, err := f.hasher.ComputeFileHash(path)
	if err != nil {
		delete(f.sums, path)
		return true
	}

	prev, ok := f.sums[path]
	f.sums[path] = sum
	return !ok || prev != sum
}

// Record stores the current hash of every readable path.
func (f *Fingerprints) Record(paths ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, path := range paths {
		if sum, err := f.hasher.ComputeFileHash(path); err == nil {
			f.sums[path] = sum
		}
	}
}
