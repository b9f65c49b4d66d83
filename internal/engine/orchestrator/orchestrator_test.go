package orchestrator_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/melt/internal/core/ports"
	"go.trai.ch/melt/internal/core/ports/mocks"
	"go.trai.ch/melt/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

const (
	root     = "/project"
	dir      = "/project/src"
	buildDir = "/project/.cache/melt/src"
)

var includes = []string{"/lib/ocaml", "/lib/melange/js/melange"}

type fixture struct {
	renderer  *mocks.MockCommandRenderer
	toolchain *mocks.MockToolchain
	resolver  *mocks.MockDependencyResolver
	cache     *mocks.MockArtifactCache
	invoker   *mocks.MockToolInvoker
	acc       *mocks.MockConfigAccumulator
	orch      *orchestrator.Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		renderer:  mocks.NewMockCommandRenderer(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		resolver:  mocks.NewMockDependencyResolver(ctrl),
		cache:     mocks.NewMockArtifactCache(ctrl),
		invoker:   mocks.NewMockToolInvoker(ctrl),
		acc:       mocks.NewMockConfigAccumulator(ctrl),
	}

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().End().AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	f.renderer.EXPECT().Compile(gomock.Any()).
		DoAndReturn(func(req domain.CompileRequest) string {
			cmd := "melc " + filepath.Base(req.Input.Path)
			if req.HasDependencies {
				cmd += " -I ."
			}
			return cmd + " -o " + req.Output
		}).AnyTimes()
	f.renderer.EXPECT().IncludeFlags(includes).Return([]string{"-I /lib/ocaml", "-I /lib/melange/js/melange"}).AnyTimes()

	f.orch = orchestrator.New(f.renderer, f.toolchain, f.resolver, f.cache, f.invoker, tracer, logger,
		[]string{"melange", "melange.js"})
	return f
}

func source(name string) domain.SourceFile {
	path := filepath.Join(dir, name)
	return domain.SourceFile{Path: path, Syntax: domain.SyntaxFromPath(path)}
}

// expectSetup expects one build path lookup and one library path query per compiled module.
func (f *fixture) expectSetup(compiles int) {
	f.cache.EXPECT().BuildPath(root, dir).Return(buildDir, nil)
	f.toolchain.EXPECT().LibraryPaths(gomock.Any()).Return(includes, nil).Times(compiles)
}

func (f *fixture) expectMerge(times int) {
	f.acc.EXPECT().Merge(dir, domain.PathPair{Source: dir, Build: buildDir},
		[]string{"-I /lib/ocaml", "-I /lib/melange/js/melange"},
		[]string{"melange", "melange.js"}).Return(nil).Times(times)
}

func TestCompile_NoDependencies(t *testing.T) {
	f := newFixture(t)
	f.expectSetup(1)

	app := source("App.re")
	f.resolver.EXPECT().Resolve(gomock.Any(), app, dir).Return(nil, nil)
	f.invoker.EXPECT().Run(gomock.Any(), "melc App.re -o App.js", buildDir).Return("", nil).Times(1)
	f.expectMerge(1)
	f.cache.EXPECT().ReadArtifact(buildDir, "App.js").Return([]byte("// App"), nil)

	out, err := f.orch.Compile(context.Background(), f.acc, app, dir, root)
	require.NoError(t, err)
	assert.Equal(t, "// App", string(out))
}

func TestCompile_TransitiveChainInOrder(t *testing.T) {
	f := newFixture(t)
	f.expectSetup(3)

	a, b, c := source("A.re"), source("B.re"), source("C.ml")
	f.resolver.EXPECT().Resolve(gomock.Any(), a, dir).Return([]domain.SourceFile{b}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), b, dir).Return([]domain.SourceFile{c}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), c, dir).Return([]domain.SourceFile{}, nil)

	gomock.InOrder(
		f.invoker.EXPECT().Run(gomock.Any(), "melc C.ml -o C.js", buildDir).Return("", nil),
		f.invoker.EXPECT().Run(gomock.Any(), "melc B.re -I . -o B.js", buildDir).Return("", nil),
		f.invoker.EXPECT().Run(gomock.Any(), "melc A.re -I . -o A.js", buildDir).Return("", nil),
	)
	f.expectMerge(3)
	f.cache.EXPECT().ReadArtifact(buildDir, "C.js").Return([]byte("c"), nil)
	f.cache.EXPECT().ReadArtifact(buildDir, "B.js").Return([]byte("b"), nil)
	f.cache.EXPECT().ReadArtifact(buildDir, "A.js").Return([]byte("a"), nil)

	out, err := f.orch.Compile(context.Background(), f.acc, a, dir, root)
	require.NoError(t, err)
	assert.Equal(t, "a", string(out))
}

func TestCompile_DiamondCompilesSharedDependencyPerDependent(t *testing.T) {
	f := newFixture(t)
	f.expectSetup(5)

	main, left, right, shared := source("Main.re"), source("Left.re"), source("Right.re"), source("Shared.re")
	f.resolver.EXPECT().Resolve(gomock.Any(), main, dir).Return([]domain.SourceFile{left, right}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), left, dir).Return([]domain.SourceFile{shared}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), right, dir).Return([]domain.SourceFile{shared}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), shared, dir).Return(nil, nil).Times(2)

	f.invoker.EXPECT().Run(gomock.Any(), "melc Shared.re -o Shared.js", buildDir).Return("", nil).Times(2)
	f.invoker.EXPECT().Run(gomock.Any(), gomock.Any(), buildDir).Return("", nil).Times(3)
	f.expectMerge(5)
	f.cache.EXPECT().ReadArtifact(buildDir, gomock.Any()).Return([]byte("js"), nil).Times(5)

	_, err := f.orch.Compile(context.Background(), f.acc, main, dir, root)
	require.NoError(t, err)
}

func TestCompile_SelfCycle(t *testing.T) {
	f := newFixture(t)
	f.expectSetup(1)

	main := source("Main.re")
	f.resolver.EXPECT().Resolve(gomock.Any(), main, dir).Return([]domain.SourceFile{main}, nil)

	_, err := f.orch.Compile(context.Background(), f.acc, main, dir, root)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCycleDetected.Error())
}

func TestCompile_TransitiveCycle(t *testing.T) {
	f := newFixture(t)
	f.expectSetup(2)

	a, b := source("A.re"), source("B.re")
	f.resolver.EXPECT().Resolve(gomock.Any(), a, dir).Return([]domain.SourceFile{b}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), b, dir).Return([]domain.SourceFile{a}, nil)

	_, err := f.orch.Compile(context.Background(), f.acc, a, dir, root)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCycleDetected.Error())
}

func TestCompile_DependencyFailureAbortsTree(t *testing.T) {
	f := newFixture(t)
	f.expectSetup(2)

	main, dep := source("Main.re"), source("Dep.re")
	f.resolver.EXPECT().Resolve(gomock.Any(), main, dir).Return([]domain.SourceFile{dep}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), dep, dir).Return(nil, nil)

	f.invoker.EXPECT().Run(gomock.Any(), "melc Dep.re -o Dep.js", buildDir).
		Return("", errors.New("Error: Unbound value x"))

	_, err := f.orch.Compile(context.Background(), f.acc, main, dir, root)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCompilationFailed.Error())
}

func TestCompile_SetupFailures(t *testing.T) {
	t.Run("build path", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().BuildPath(root, dir).Return("", errors.New("read-only file system"))

		_, err := f.orch.Compile(context.Background(), f.acc, source("App.re"), dir, root)
		require.Error(t, err)
		assert.ErrorContains(t, err, "read-only file system")
	})

	t.Run("toolchain", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().BuildPath(root, dir).Return(buildDir, nil)
		f.toolchain.EXPECT().LibraryPaths(gomock.Any()).Return(nil, errors.New("unexpected tool output"))

		_, err := f.orch.Compile(context.Background(), f.acc, source("App.re"), dir, root)
		require.Error(t, err)
		assert.ErrorContains(t, err, "unexpected tool output")
	})

	t.Run("resolver", func(t *testing.T) {
		f := newFixture(t)
		f.expectSetup(1)
		f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), dir).Return(nil, errors.New("analyzer failed"))

		_, err := f.orch.Compile(context.Background(), f.acc, source("App.re"), dir, root)
		require.Error(t, err)
		assert.ErrorContains(t, err, "analyzer failed")
	})

	t.Run("merge", func(t *testing.T) {
		f := newFixture(t)
		f.expectSetup(1)
		f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), dir).Return(nil, nil)
		f.invoker.EXPECT().Run(gomock.Any(), gomock.Any(), buildDir).Return("", nil)
		f.acc.EXPECT().Merge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := f.orch.Compile(context.Background(), f.acc, source("App.re"), dir, root)
		require.Error(t, err)
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestCompile_QueriesLibraryPathsForEveryModule(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().BuildPath(root, dir).Return(buildDir, nil)

	main, dep := source("Main.re"), source("Dep.re")
	gomock.InOrder(
		f.toolchain.EXPECT().LibraryPaths(gomock.Any()).Return(includes, nil),
		f.resolver.EXPECT().Resolve(gomock.Any(), main, dir).Return([]domain.SourceFile{dep}, nil),
		f.toolchain.EXPECT().LibraryPaths(gomock.Any()).Return(nil, errors.New("melc -where failed")),
	)

	_, err := f.orch.Compile(context.Background(), f.acc, main, dir, root)
	require.Error(t, err)
	assert.ErrorContains(t, err, "melc -where failed")
}
