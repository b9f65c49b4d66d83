package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/melt/internal/adapters/watcher"
	"go.trai.ch/melt/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// watchedExtensions are the file types whose changes trigger a rebuild.
var watchedExtensions = []string{".re", ".rei", ".ml", ".mli"}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Quiet suppresses writing artifacts to Output.
	Quiet bool
	// Root is the directory the project lookup starts from. Defaults to ".".
	Root string
	// Output receives the artifact after every successful build. Defaults to os.Stdout.
	Output io.Writer
	// Debounce is the quiet period before a rebuild. Defaults to watcher.DefaultDebounceWindow.
	Debounce time.Duration
}

// Watch compiles file and recompiles it whenever a source file in its directory changes.
// Build failures are logged and watching continues. Watch returns when ctx is cancelled.
func (a *App) Watch(ctx context.Context, file string, opts WatchOptions) (err error) {
	project, err := a.loadProject(opts.Root)
	if err != nil {
		return err
	}

	sources, err := resolveSources([]string{file})
	if err != nil {
		return err
	}
	src := sources[0]

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	p := a.newPipeline(project)
	defer func() {
		if closeErr := p.session.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	if err := w.Start(ctx, src.Dir()); err != nil {
		_ = w.Stop()
		return err
	}

	fingerprints := watcher.NewFingerprints(a.hasher)
	fingerprints.Record(sourceFilesIn(src.Dir())...)

	build := func() {
		artifact, buildErr := p.compile(ctx, src)
		if buildErr != nil {
			a.logger.Error(buildErr)
			return
		}
		if !opts.Quiet {
			if _, writeErr := out.Write(artifact); writeErr != nil {
				a.logger.Error(zerr.Wrap(writeErr, "failed to write artifact"))
			}
		}
	}

	build()
	a.logger.Info("watching " + src.Dir())

	rebuild := make(chan []string, 1)
	window := watcher.DefaultDebounceWindow
	if opts.Debounce > 0 {
		window = opts.Debounce
	}
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		select {
		case rebuild <- paths:
		case <-ctx.Done():
		}
	})

	g, gctx := errgroup.WithContext(ctx)

	// Event pump: feeds source file events into the debouncer until the watcher ends.
	g.Go(func() error {
		for event := range w.Events() {
			if isWatchedSource(event) {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	// Build loop: one rebuild per debounced batch that contains a real content change.
	g.Go(func() error {
		defer func() { _ = w.Stop() }()
		for {
			select {
			case <-gctx.Done():
				return nil
			case paths := <-rebuild:
				changed := slices.DeleteFunc(paths, func(path string) bool {
					return !fingerprints.Changed(path)
				})
				if len(changed) == 0 {
					continue
				}
				a.logger.Debug("change detected: " + filepath.Base(changed[0]))
				build()
			}
		}
	})

	return g.Wait()
}

func isWatchedSource(event ports.WatchEvent) bool {
	return slices.Contains(watchedExtensions, filepath.Ext(event.Path))
}

// sourceFilesIn lists the watched source files directly inside dir.
func sourceFilesIn(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !slices.Contains(watchedExtensions, filepath.Ext(e.Name())) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files
}
