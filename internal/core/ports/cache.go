package ports

// ArtifactCache manages the on-disk location of compiled artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ArtifactCache interface {
	// BuildPath returns the build directory for sourceDir and ensures it exists.
	BuildPath(root, sourceDir string) (string, error)

	// ReadArtifact reads a compiled artifact from a build directory.
	ReadArtifact(buildDir, name string) ([]byte, error)

	// Clean removes every artifact cached for the project at root.
	Clean(root string) error
}
