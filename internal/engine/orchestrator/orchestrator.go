// Package orchestrator compiles a source module after its intra-directory dependencies.
package orchestrator

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/melt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator drives dependency resolution, compilation and editor configuration
// for one project.
type Orchestrator struct {
	renderer  ports.CommandRenderer
	toolchain ports.Toolchain
	resolver  ports.DependencyResolver
	cache     ports.ArtifactCache
	invoker   ports.ToolInvoker
	tracer    ports.Tracer
	logger    ports.Logger
	packages  []string
}

// New creates an Orchestrator. packages are merged into every directory's record.
func New(
	renderer ports.CommandRenderer,
	toolchain ports.Toolchain,
	resolver ports.DependencyResolver,
	cache ports.ArtifactCache,
	invoker ports.ToolInvoker,
	tracer ports.Tracer,
	logger ports.Logger,
	packages []string,
) *Orchestrator {
	return &Orchestrator{
		renderer:  renderer,
		toolchain: toolchain,
		resolver:  resolver,
		cache:     cache,
		invoker:   invoker,
		tracer:    tracer,
		logger:    logger,
		packages:  slices.Clone(packages),
	}
}

// Compile builds file, which lives in dir, and returns the compiled artifact.
//
// Every dependency reported by the analyzer is compiled first, depth-first and in
// analyzer order, against the same dir and root. Dependencies reached through more
// than one path are compiled once per dependent. A module that depends on itself,
// directly or transitively, fails with domain.ErrCycleDetected.
func (o *Orchestrator) Compile(
	ctx context.Context,
	acc ports.ConfigAccumulator,
	file domain.SourceFile,
	dir, root string,
) ([]byte, error) {
	buildDir, err := o.cache.BuildPath(root, dir)
	if err != nil {
		return nil, err
	}

	u := &unit{
		Orchestrator: o,
		acc:          acc,
		dir:          dir,
		buildDir:     buildDir,
	}
	return u.compile(ctx, file, nil)
}

// unit holds the state shared by one top-level Compile call and its recursion.
type unit struct {
	*Orchestrator
	acc      ports.ConfigAccumulator
	dir      string
	buildDir string
}

func (u *unit) compile(ctx context.Context, file domain.SourceFile, stack []string) (result []byte, err error) {
	path := filepath.Clean(file.Path)
	if slices.Contains(stack, path) {
		return nil, zerr.With(zerr.With(domain.ErrCycleDetected, "cycle", cyclePath(stack, path)), "file", path)
	}
	stack = append(slices.Clip(stack), path)

	ctx, span := u.tracer.Start(ctx, "compile "+file.Base())
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("file", path)
	span.SetAttribute("build_dir", u.buildDir)

	// Library paths are queried for every module, dependencies included.
	includes, err := u.toolchain.LibraryPaths(ctx)
	if err != nil {
		return nil, err
	}

	u.logger.Debug("resolving dependencies of " + file.Base())
	deps, err := u.resolver.Resolve(ctx, file, u.dir)
	if err != nil {
		return nil, err
	}
	span.SetAttribute("dependencies", len(deps))

	for _, dep := range deps {
		if _, err := u.compile(ctx, dep, stack); err != nil {
			return nil, err
		}
	}

	artifact := file.ArtifactName(domain.TargetExt)
	command := u.renderer.Compile(domain.CompileRequest{
		Input:           file,
		Output:          artifact,
		Includes:        includes,
		HasDependencies: len(deps) > 0,
	})

	u.logger.Debug("compiling " + file.Base())
	if _, err := u.invoker.Run(ctx, command, u.buildDir); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCompilationFailed.Error()), "file", path)
	}

	pair := domain.PathPair{Source: u.dir, Build: u.buildDir}
	if err := u.acc.Merge(u.dir, pair, u.renderer.IncludeFlags(includes), u.packages); err != nil {
		return nil, err
	}

	return u.cache.ReadArtifact(u.buildDir, artifact)
}

// cyclePath renders the chain of file names from the first occurrence of path back to itself.
func cyclePath(stack []string, path string) string {
	start := slices.Index(stack, path)
	names := make([]string, 0, len(stack)-start+1)
	for _, p := range stack[start:] {
		names = append(names, filepath.Base(p))
	}
	names = append(names, filepath.Base(path))
	return strings.Join(names, " -> ")
}
