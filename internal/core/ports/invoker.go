// Package ports defines the core interfaces for the application.
package ports

import "context"

// ToolInvoker runs external tools on behalf of the orchestrator.
//
//go:generate go run go.uber.org/mock/mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type ToolInvoker interface {
	// Run executes a shell command string synchronously in dir.
	//
	// It returns the captured standard output with surrounding whitespace trimmed.
	// A non-zero exit status is returned as an error carrying the tool's diagnostics.
	Run(ctx context.Context, command, dir string) (string, error)
}
