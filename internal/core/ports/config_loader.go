package ports

import "go.trai.ch/melt/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the project enclosing cwd and returns its configuration.
	Load(cwd string) (*domain.Project, error)
}
