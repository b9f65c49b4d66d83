// Package melange renders and runs the Melange toolchain commands.
package melange

import (
	"strings"

	"go.trai.ch/melt/internal/core/domain"
)

// Renderer builds analyzer and compiler command lines for a project.
type Renderer struct {
	Compiler     string
	Analyzer     string
	Preprocessor string
	PPX          string
}

// NewRenderer creates a Renderer from the project's toolchain settings.
func NewRenderer(project *domain.Project) *Renderer {
	return &Renderer{
		Compiler:     project.Compiler,
		Analyzer:     project.Analyzer,
		Preprocessor: project.Preprocessor,
		PPX:          project.PPX,
	}
}

// Analyze renders the one-line dependency listing invocation for input.
func (r *Renderer) Analyze(input string, syntax domain.Syntax) string {
	parts := []string{r.Analyzer}
	parts = append(parts, r.ppxFlag()...)
	parts = append(parts, "-bytecode", "-one-line")
	if syntax == domain.SyntaxReason {
		parts = append(parts, r.preprocessFlag()...)
	}
	parts = append(parts, "-ml-synonym", ".re", "-mli-synonym", ".rei")
	parts = append(parts, r.inputFlag(input, syntax)...)

	return join(parts)
}

// Compile renders the compiler invocation for req.
// Inputs with dependencies also get "-I ." to find their compiled interfaces in the build directory.
func (r *Renderer) Compile(req domain.CompileRequest) string {
	parts := []string{r.Compiler}
	parts = append(parts, r.IncludeFlags(req.Includes)...)
	parts = append(parts, r.ppxFlag()...)
	if req.Input.Syntax == domain.SyntaxReason {
		parts = append(parts, r.preprocessFlag()...)
	}
	parts = append(parts, r.inputFlag(req.Input.Path, req.Input.Syntax)...)
	if req.HasDependencies {
		parts = append(parts, "-I", ".")
	}
	parts = append(parts, "-o", req.Output)

	return join(parts)
}

// IncludeFlags renders one "-I <path>" flag per non-empty path.
func (r *Renderer) IncludeFlags(paths []string) []string {
	flags := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		flags = append(flags, "-I "+p)
	}
	return flags
}

func (r *Renderer) ppxFlag() []string {
	if r.PPX == "" {
		return nil
	}
	return []string{"-ppx", r.PPX}
}

func (r *Renderer) preprocessFlag() []string {
	if r.Preprocessor == "" {
		return nil
	}
	return []string{"-pp", `"` + r.Preprocessor + `"`}
}

func (r *Renderer) inputFlag(input string, syntax domain.Syntax) []string {
	if syntax == domain.SyntaxReason {
		return []string{"-impl", input}
	}
	return []string{input}
}

// join concatenates non-empty parts with single spaces.
func join(parts []string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
