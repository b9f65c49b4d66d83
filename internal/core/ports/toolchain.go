package ports

import (
	"context"

	"go.trai.ch/melt/internal/core/domain"
)

// Toolchain locates the compiler's libraries.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// LibraryPaths returns the ordered include directories for the compiler.
	LibraryPaths(ctx context.Context) ([]string, error)
}

// CommandRenderer builds the analyzer and compiler command lines.
type CommandRenderer interface {
	// Analyze renders the dependency-listing invocation for input.
	Analyze(input string, syntax domain.Syntax) string
	// Compile renders the compiler invocation for a request.
	Compile(req domain.CompileRequest) string
	// IncludeFlags renders one include flag per path.
	IncludeFlags(paths []string) []string
}
