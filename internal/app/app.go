// Package app implements the application layer for melt.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/melt/internal/adapters/cache"
	"go.trai.ch/melt/internal/adapters/melange"
	"go.trai.ch/melt/internal/adapters/merlin"
	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/melt/internal/core/ports"
	"go.trai.ch/melt/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// WatcherFactory creates a fresh file system watcher.
type WatcherFactory func() (ports.Watcher, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	invoker      ports.ToolInvoker
	logger       ports.Logger
	tracer       ports.Tracer
	hasher       ports.Hasher
	newWatcher   WatcherFactory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	invoker ports.ToolInvoker,
	log ports.Logger,
	tracer ports.Tracer,
	hasher ports.Hasher,
	newWatcher WatcherFactory,
) *App {
	return &App{
		configLoader: loader,
		invoker:      invoker,
		logger:       log,
		tracer:       tracer,
		hasher:       hasher,
		newWatcher:   newWatcher,
	}
}

// logConfigurer is implemented by loggers that support output switches.
type logConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// ConfigureLogging switches the logger to JSON output and/or debug level.
func (a *App) ConfigureLogging(json, verbose bool) {
	if lc, ok := a.logger.(logConfigurer); ok {
		lc.SetJSON(json)
		lc.SetVerbose(verbose)
	}
}

// tracerShutdowner is implemented by tracers that buffer spans.
type tracerShutdowner interface {
	Shutdown(ctx context.Context) error
}

// Shutdown flushes and stops the tracer. It is safe to call with any tracer.
func (a *App) Shutdown(ctx context.Context) error {
	if ts, ok := a.tracer.(tracerShutdowner); ok {
		return ts.Shutdown(ctx)
	}
	return nil
}

// CompileOptions configuration for the Compile method.
type CompileOptions struct {
	// Quiet suppresses writing artifacts to Output.
	Quiet bool
	// Root is the directory the project lookup starts from. Defaults to ".".
	Root string
	// Output receives every compiled artifact. Defaults to os.Stdout.
	Output io.Writer
}

// Compile builds each file and its dependencies within one merlin session.
// Files are compiled in order; the first failure stops the run.
func (a *App) Compile(ctx context.Context, files []string, opts CompileOptions) (err error) {
	if len(files) == 0 {
		return domain.ErrNoSourcesSpecified
	}

	project, err := a.loadProject(opts.Root)
	if err != nil {
		return err
	}

	sources, err := resolveSources(files)
	if err != nil {
		return err
	}

	p := a.newPipeline(project)
	defer func() {
		if closeErr := p.session.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	for _, src := range sources {
		artifact, err := p.compile(ctx, src)
		if err != nil {
			return err
		}

		if opts.Quiet {
			continue
		}
		if _, err := out.Write(artifact); err != nil {
			return zerr.Wrap(err, "failed to write artifact")
		}
	}

	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Root is the directory the project lookup starts from. Defaults to ".".
	Root string
}

// Clean removes the artifact cache of the project.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	project, err := a.loadProject(opts.Root)
	if err != nil {
		return err
	}

	path := domain.CachePath(project.Root, project.Tool)
	a.logger.Info(fmt.Sprintf("removing %s...", path))
	if err := cache.NewStore(project.Tool).Clean(project.Root); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %s", path))

	return nil
}

func (a *App) loadProject(root string) (*domain.Project, error) {
	if root == "" {
		root = "."
	}

	project, err := a.configLoader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

// pipeline is the per-project component set of one compile or watch run.
type pipeline struct {
	project *domain.Project
	orch    *orchestrator.Orchestrator
	session *merlin.Session
	logger  ports.Logger
}

func (a *App) newPipeline(project *domain.Project) *pipeline {
	renderer := melange.NewRenderer(project)
	orch := orchestrator.New(
		renderer,
		melange.NewToolchain(a.invoker, project),
		melange.NewResolver(a.invoker, renderer, project.Extensions),
		cache.NewStore(project.Tool),
		a.invoker,
		a.tracer,
		a.logger,
		project.Packages,
	)

	return &pipeline{
		project: project,
		orch:    orch,
		session: merlin.NewSession(project.StarterRecord()),
		logger:  a.logger,
	}
}

func (p *pipeline) compile(ctx context.Context, src domain.SourceFile) ([]byte, error) {
	artifact, err := p.orch.Compile(ctx, p.session, src, src.Dir(), p.project.Root)
	if err != nil {
		return nil, err
	}

	name := src.Path
	if rel, relErr := filepath.Rel(p.project.Root, src.Path); relErr == nil {
		name = rel
	}
	p.logger.Info("compiled " + name)

	return artifact, nil
}

// resolveSources turns command line paths into source files and checks that they exist.
func resolveSources(files []string) ([]domain.SourceFile, error) {
	sources := make([]domain.SourceFile, 0, len(files))
	for _, f := range files {
		src, err := domain.NewSourceFile(f)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "file", f)
		}

		info, err := os.Stat(src.Path)
		if err != nil || info.IsDir() {
			return nil, zerr.With(domain.ErrSourceNotFound, "file", f)
		}
		sources = append(sources, src)
	}
	return sources, nil
}
