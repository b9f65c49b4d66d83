package melange

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/melt/internal/core/ports"
	"go.trai.ch/zerr"
)

// objectSuffix is stripped from each module token of the analyzer output.
const objectSuffix = ".cmo"

// Resolver discovers intra-directory dependencies with the analyzer.
type Resolver struct {
	invoker    ports.ToolInvoker
	renderer   ports.CommandRenderer
	extensions []string
}

// NewResolver creates a Resolver that maps module names using extensions, in order.
func NewResolver(invoker ports.ToolInvoker, renderer ports.CommandRenderer, extensions []string) *Resolver {
	return &Resolver{
		invoker:    invoker,
		renderer:   renderer,
		extensions: extensions,
	}
}

// Resolve runs the analyzer on file inside dir and maps every listed module to a source file in dir.
func (r *Resolver) Resolve(ctx context.Context, file domain.SourceFile, dir string) ([]domain.SourceFile, error) {
	rel, err := filepath.Rel(dir, file.Path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, zerr.With(zerr.With(domain.ErrSourceOutsideDirectory, "file", file.Path), "dir", dir)
	}

	out, err := r.invoker.Run(ctx, r.renderer.Analyze(rel, file.Syntax), dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDependencyResolutionFailed.Error()), "file", rel)
	}

	modules := ParseDependencies(out)
	deps := make([]domain.SourceFile, 0, len(modules))
	for _, m := range modules {
		path := MapModule(dir, m, r.extensions)
		deps = append(deps, domain.SourceFile{Path: path, Syntax: domain.SyntaxFromPath(path)})
	}

	return deps, nil
}

// ParseDependencies extracts module names from the first line of one-line analyzer output.
// Everything after the first colon is split on whitespace and the object suffix is removed.
func ParseDependencies(output string) []string {
	line, _, _ := strings.Cut(output, "\n")

	_, list, found := strings.Cut(line, ":")
	if !found {
		return []string{}
	}

	fields := strings.Fields(list)
	modules := make([]string, 0, len(fields))
	for _, f := range fields {
		if m := strings.TrimSuffix(f, objectSuffix); m != "" {
			modules = append(modules, m)
		}
	}
	return modules
}

// MapModule returns the path of module in dir for the first extension that exists on disk.
// When none exists the last extension is used.
func MapModule(dir, module string, extensions []string) string {
	if len(extensions) == 0 {
		return filepath.Join(dir, module)
	}

	for _, ext := range extensions {
		candidate := filepath.Join(dir, module+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return filepath.Join(dir, module+extensions[len(extensions)-1])
}
