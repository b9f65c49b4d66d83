package ports

import (
	"context"

	"go.trai.ch/melt/internal/core/domain"
)

// DependencyResolver discovers the direct dependencies of a source file.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// Resolve returns the source files of the modules file depends on, in analyzer order.
	// Dependencies are always looked up in dir.
	Resolve(ctx context.Context, file domain.SourceFile, dir string) ([]domain.SourceFile, error)
}
