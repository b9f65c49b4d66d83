package melange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/melt/internal/adapters/melange"
	"go.trai.ch/melt/internal/core/domain"
)

func newRenderer() *melange.Renderer {
	return melange.NewRenderer(domain.DefaultProject("/project"))
}

func TestRenderer_Analyze(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		syntax   domain.Syntax
		expected string
	}{
		{
			name:   "reason",
			input:  "App.re",
			syntax: domain.SyntaxReason,
			expected: `esy ocamldep -ppx melppx -bytecode -one-line -pp "refmt --print binary" ` +
				`-ml-synonym .re -mli-synonym .rei -impl App.re`,
		},
		{
			name:     "ocaml",
			input:    "Utils.ml",
			syntax:   domain.SyntaxOCaml,
			expected: `esy ocamldep -ppx melppx -bytecode -one-line -ml-synonym .re -mli-synonym .rei Utils.ml`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, newRenderer().Analyze(tt.input, tt.syntax))
		})
	}
}

func TestRenderer_Compile(t *testing.T) {
	includes := []string{"/lib/ocaml", " /lib/melange/js/melange ", ""}

	tests := []struct {
		name     string
		req      domain.CompileRequest
		expected string
	}{
		{
			name: "reason without dependencies",
			req: domain.CompileRequest{
				Input:    domain.SourceFile{Path: "/project/src/App.re", Syntax: domain.SyntaxReason},
				Output:   "App.js",
				Includes: includes,
			},
			expected: `esy melc -I /lib/ocaml -I /lib/melange/js/melange -ppx melppx ` +
				`-pp "refmt --print binary" -impl /project/src/App.re -o App.js`,
		},
		{
			name: "reason with dependencies",
			req: domain.CompileRequest{
				Input:           domain.SourceFile{Path: "/project/src/App.re", Syntax: domain.SyntaxReason},
				Output:          "App.js",
				Includes:        includes,
				HasDependencies: true,
			},
			expected: `esy melc -I /lib/ocaml -I /lib/melange/js/melange -ppx melppx ` +
				`-pp "refmt --print binary" -impl /project/src/App.re -I . -o App.js`,
		},
		{
			name: "ocaml with dependencies",
			req: domain.CompileRequest{
				Input:           domain.SourceFile{Path: "/project/src/Utils.ml", Syntax: domain.SyntaxOCaml},
				Output:          "Utils.js",
				HasDependencies: true,
			},
			expected: `esy melc -ppx melppx /project/src/Utils.ml -I . -o Utils.js`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, newRenderer().Compile(tt.req))
		})
	}
}

func TestRenderer_EmptySettings(t *testing.T) {
	r := &melange.Renderer{Compiler: "melc", Analyzer: "ocamldep"}

	assert.Equal(t, "ocamldep -bytecode -one-line -ml-synonym .re -mli-synonym .rei -impl A.re",
		r.Analyze("A.re", domain.SyntaxReason))
	assert.Equal(t, "melc -impl /A.re -o A.js",
		r.Compile(domain.CompileRequest{
			Input:  domain.SourceFile{Path: "/A.re", Syntax: domain.SyntaxReason},
			Output: "A.js",
		}))
}

func TestRenderer_IncludeFlags(t *testing.T) {
	r := newRenderer()

	assert.Equal(t, []string{"-I /a", "-I /b"}, r.IncludeFlags([]string{"/a", "", "  /b\n"}))
	assert.Empty(t, r.IncludeFlags(nil))
}
