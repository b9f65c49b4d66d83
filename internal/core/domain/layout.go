package domain

import "path/filepath"

const (
	// CacheDirName is the name of the project-level cache directory.
	CacheDirName = ".cache"

	// ToolName is the default name of the tool-specific directory inside the cache.
	ToolName = "melt"

	// MerlinFileName is the name of the per-directory editor configuration file.
	MerlinFileName = ".merlin"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "melt.yaml"

	// EnvFileName is the name of the optional environment override file in the project root.
	EnvFileName = ".env"

	// TargetExt is the extension of compiled artifacts.
	TargetExt = ".js"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CachePath returns the tool cache directory for the given project root.
// It joins root, .cache and tool.
func CachePath(root, tool string) string {
	return filepath.Join(root, CacheDirName, tool)
}

// BuildPath returns the build directory for a source directory given relative to the project root.
// It joins root, .cache, tool and rel.
func BuildPath(root, tool, rel string) string {
	return filepath.Join(CachePath(root, tool), rel)
}

// MerlinPath returns the path of the .merlin file for a source directory.
func MerlinPath(dir string) string {
	return filepath.Join(dir, MerlinFileName)
}
