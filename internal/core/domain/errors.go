package domain

import "go.trai.ch/zerr"

var (
	// ErrInvocationFailed is returned when an external tool exits non-zero or cannot be started.
	ErrInvocationFailed = zerr.New("external tool invocation failed")

	// ErrUnexpectedToolOutput is returned when an external tool prints output that cannot be interpreted.
	ErrUnexpectedToolOutput = zerr.New("unexpected tool output")

	// ErrCycleDetected is returned when a module transitively depends on itself.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrDependencyResolutionFailed is returned when the dependency analyzer fails for a source file.
	ErrDependencyResolutionFailed = zerr.New("failed to resolve dependencies")

	// ErrCompilationFailed is returned when the compiler fails for a source file.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrToolchainQueryFailed is returned when the compiler cannot report its library paths.
	ErrToolchainQueryFailed = zerr.New("failed to query toolchain library paths")

	// ErrSourceOutsideDirectory is returned when a source file does not live under its containing directory.
	ErrSourceOutsideDirectory = zerr.New("source file is outside its directory")

	// ErrSourceOutsideRoot is returned when a source directory is outside the project root.
	ErrSourceOutsideRoot = zerr.New("source directory is outside project root")

	// ErrBuildDirCreateFailed is returned when the build directory cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrArtifactReadFailed is returned when a compiled artifact cannot be read back.
	ErrArtifactReadFailed = zerr.New("failed to read compiled artifact")

	// ErrCacheCleanFailed is returned when the artifact cache cannot be removed.
	ErrCacheCleanFailed = zerr.New("failed to clean artifact cache")

	// ErrMerlinWriteFailed is returned when a .merlin file cannot be written.
	ErrMerlinWriteFailed = zerr.New("failed to write merlin file")

	// ErrSessionClosed is returned when a configuration record is merged after its session ended.
	ErrSessionClosed = zerr.New("build session is closed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvFileLoadFailed is returned when the project .env file exists but cannot be loaded.
	ErrEnvFileLoadFailed = zerr.New("failed to load env file")

	// ErrNoSourcesSpecified is returned when the compile command is run without files.
	ErrNoSourcesSpecified = zerr.New("no source files specified")

	// ErrSourceNotFound is returned when a requested source file does not exist.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch source directory")
)
