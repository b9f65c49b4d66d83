package ports

import "go.trai.ch/melt/internal/core/domain"

// ConfigAccumulator collects per-directory editor configuration during a build session.
//
//go:generate go run go.uber.org/mock/mockgen -source=accumulator.go -destination=mocks/mock_accumulator.go -package=mocks
type ConfigAccumulator interface {
	// Merge adds a path pair, flags and packages to the record of dir and persists it.
	Merge(dir string, pair domain.PathPair, flags, pkgs []string) error
}
