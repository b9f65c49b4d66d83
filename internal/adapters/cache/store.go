// Package cache implements the on-disk artifact cache under <root>/.cache/<tool>.
package cache

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ArtifactCache for one tool directory.
type Store struct {
	tool string
}

// NewStore creates a Store rooted at the given tool directory name.
// An empty tool falls back to domain.ToolName.
func NewStore(tool string) *Store {
	if tool == "" {
		tool = domain.ToolName
	}
	return &Store{tool: tool}
}

// BuildPath mirrors sourceDir below the project cache and creates the directory.
// Calling it again for the same inputs returns the same path.
func (s *Store) BuildPath(root, sourceDir string) (string, error) {
	rel, err := filepath.Rel(root, sourceDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(domain.ErrSourceOutsideRoot, "root", root), "dir", sourceDir)
	}

	buildDir := domain.BuildPath(root, s.tool, rel)
	if err := os.MkdirAll(buildDir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBuildDirCreateFailed.Error()), "build_dir", buildDir)
	}

	return buildDir, nil
}

// ReadArtifact returns the contents of name inside buildDir.
func (s *Store) ReadArtifact(buildDir, name string) ([]byte, error) {
	path := filepath.Join(buildDir, name)

	//nolint:gosec // Path is built from the cache layout
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "artifact", path)
	}
	return data, nil
}

// Clean removes the tool directory of the project cache.
func (s *Store) Clean(root string) error {
	path := domain.CachePath(root, s.tool)
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCleanFailed.Error()), "path", path)
	}
	return nil
}
