package melange_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/melt/internal/adapters/melange"
	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/melt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestParseDependencies(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []string
	}{
		{name: "two modules", output: "Main.cmo: Foo.cmo Bar.cmo", expected: []string{"Foo", "Bar"}},
		{name: "no dependencies", output: "Main.cmo:", expected: []string{}},
		{name: "no colon", output: "garbage", expected: []string{}},
		{name: "empty", output: "", expected: []string{}},
		{name: "extra whitespace", output: "Main.cmo:   Foo.cmo \t Bar.cmo  ", expected: []string{"Foo", "Bar"}},
		{name: "first line only", output: "Main.cmo: Foo.cmo\nMain.cmi: Other.cmi", expected: []string{"Foo"}},
		{name: "bare suffix dropped", output: "Main.cmo: .cmo Foo", expected: []string{"Foo"}},
		{name: "tokens without suffix", output: "Main.cmo: Js Belt.cmo", expected: []string{"Js", "Belt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, melange.ParseDependencies(tt.output))
		})
	}
}

func TestMapModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Foo.re"))
	writeFile(t, filepath.Join(dir, "Bar.ml"))
	writeFile(t, filepath.Join(dir, "Both.re"))
	writeFile(t, filepath.Join(dir, "Both.ml"))

	exts := []string{".re", ".ml"}

	assert.Equal(t, filepath.Join(dir, "Foo.re"), melange.MapModule(dir, "Foo", exts))
	assert.Equal(t, filepath.Join(dir, "Bar.ml"), melange.MapModule(dir, "Bar", exts))
	assert.Equal(t, filepath.Join(dir, "Both.re"), melange.MapModule(dir, "Both", exts))
	assert.Equal(t, filepath.Join(dir, "Missing.ml"), melange.MapModule(dir, "Missing", exts))
	assert.Equal(t, filepath.Join(dir, "Foo"), melange.MapModule(dir, "Foo", nil))
}

func TestResolver_Resolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Foo.re"))
	writeFile(t, filepath.Join(dir, "Bar.ml"))

	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockToolInvoker(ctrl)
	renderer := mocks.NewMockCommandRenderer(ctrl)

	renderer.EXPECT().Analyze("Main.re", domain.SyntaxReason).Return("analyze Main.re")
	invoker.EXPECT().Run(gomock.Any(), "analyze Main.re", dir).Return("Main.cmo: Foo.cmo Bar.cmo", nil)

	resolver := melange.NewResolver(invoker, renderer, []string{".re", ".ml"})
	main := domain.SourceFile{Path: filepath.Join(dir, "Main.re"), Syntax: domain.SyntaxReason}

	deps, err := resolver.Resolve(context.Background(), main, dir)
	require.NoError(t, err)
	assert.Equal(t, []domain.SourceFile{
		{Path: filepath.Join(dir, "Foo.re"), Syntax: domain.SyntaxReason},
		{Path: filepath.Join(dir, "Bar.ml"), Syntax: domain.SyntaxOCaml},
	}, deps)
}

func TestResolver_Resolve_NoDependencies(t *testing.T) {
	dir := t.TempDir()

	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockToolInvoker(ctrl)
	invoker.EXPECT().Run(gomock.Any(), gomock.Any(), dir).Return("Main.cmo:", nil)

	resolver := melange.NewResolver(invoker, newRenderer(), []string{".re", ".ml"})
	main := domain.SourceFile{Path: filepath.Join(dir, "Main.re"), Syntax: domain.SyntaxReason}

	deps, err := resolver.Resolve(context.Background(), main, dir)
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestResolver_Resolve_AnalyzerFailure(t *testing.T) {
	dir := t.TempDir()

	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockToolInvoker(ctrl)
	invoker.EXPECT().Run(gomock.Any(), gomock.Any(), dir).Return("", errors.New("syntax error"))

	resolver := melange.NewResolver(invoker, newRenderer(), []string{".re", ".ml"})
	main := domain.SourceFile{Path: filepath.Join(dir, "Main.re"), Syntax: domain.SyntaxReason}

	_, err := resolver.Resolve(context.Background(), main, dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to resolve dependencies")
}

func TestResolver_Resolve_OutsideDirectory(t *testing.T) {
	dir := t.TempDir()

	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockToolInvoker(ctrl)

	resolver := melange.NewResolver(invoker, newRenderer(), []string{".re"})
	other := domain.SourceFile{Path: filepath.Join(filepath.Dir(dir), "Other.re"), Syntax: domain.SyntaxReason}

	_, err := resolver.Resolve(context.Background(), other, dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "source file is outside its directory")
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("let x = 1;\n"), domain.FilePerm))
}
