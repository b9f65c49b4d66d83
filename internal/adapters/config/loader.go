// Package config provides the project configuration loader for melt.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/melt/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the toolchain commands.
const (
	EnvCompiler     = "MELT_COMPILER"
	EnvAnalyzer     = "MELT_ANALYZER"
	EnvPreprocessor = "MELT_PREPROCESSOR"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the project enclosing cwd.
//
// The nearest melt.yaml at or above cwd marks the project root. Without one, cwd
// is the root and the defaults apply. A .env file in the root is loaded into the
// process environment without replacing variables that are already set.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	root := cwd
	configPath, found := findConfiguration(cwd)
	if found {
		root = filepath.Dir(configPath)
	}

	project := domain.DefaultProject(root)

	if found {
		l.Logger.Debug("using config " + configPath)

		var configfile Configfile
		if err := readAndUnmarshalYAML(configPath, &configfile); err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
		applyConfigfile(project, &configfile)
	}

	if err := loadEnvFile(root); err != nil {
		return nil, err
	}
	applyEnvironment(project)

	return project, nil
}

// findConfiguration walks up from cwd and returns the first melt.yaml found.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func applyConfigfile(project *domain.Project, cfg *Configfile) {
	setIfNotEmpty(&project.Tool, cfg.Tool)
	setIfNotEmpty(&project.Compiler, cfg.Compiler)
	setIfNotEmpty(&project.Analyzer, cfg.Analyzer)
	setIfNotEmpty(&project.Preprocessor, cfg.Preprocessor)
	setIfNotEmpty(&project.PPX, cfg.PPX)

	if cfg.Extensions != nil {
		project.Extensions = cfg.Extensions
	}
	if cfg.Flags != nil {
		project.Flags = cfg.Flags
	}
	if cfg.Packages != nil {
		project.Packages = cfg.Packages
	}
	if cfg.Libraries != nil {
		libs := make([]domain.LibrarySubstitution, 0, len(cfg.Libraries))
		for _, lib := range cfg.Libraries {
			libs = append(libs, domain.LibrarySubstitution{From: lib.From, To: lib.To})
		}
		project.Libraries = libs
	}
}

func loadEnvFile(root string) error {
	path := filepath.Join(root, domain.EnvFileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvFileLoadFailed.Error()), "path", path)
	}
	return nil
}

func applyEnvironment(project *domain.Project) {
	setIfNotEmpty(&project.Compiler, os.Getenv(EnvCompiler))
	setIfNotEmpty(&project.Analyzer, os.Getenv(EnvAnalyzer))
	setIfNotEmpty(&project.Preprocessor, os.Getenv(EnvPreprocessor))
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
