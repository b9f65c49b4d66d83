package melange

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/melt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Toolchain queries the compiler for its library directories.
type Toolchain struct {
	invoker   ports.ToolInvoker
	compiler  string
	libraries []domain.LibrarySubstitution
}

// NewToolchain creates a Toolchain for the project's compiler.
func NewToolchain(invoker ports.ToolInvoker, project *domain.Project) *Toolchain {
	return &Toolchain{
		invoker:   invoker,
		compiler:  project.Compiler,
		libraries: project.Libraries,
	}
}

// LibraryPaths returns the stdlib and js library paths reported by `<compiler> -where`,
// followed by one derived sibling path per configured library substitution.
func (t *Toolchain) LibraryPaths(ctx context.Context) ([]string, error) {
	command := t.compiler + " -where"

	out, err := t.invoker.Run(ctx, command, "")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrToolchainQueryFailed.Error())
	}

	paths := splitPathList(out)
	if len(paths) < 2 {
		return nil, zerr.With(zerr.With(domain.ErrUnexpectedToolOutput, "command", command), "output", out)
	}

	stdlib, js := paths[0], paths[1]
	result := make([]string, 0, 2+len(t.libraries))
	result = append(result, stdlib, js)
	for _, lib := range t.libraries {
		result = append(result, strings.Replace(js, lib.From, lib.To, 1))
	}

	return result, nil
}

func splitPathList(out string) []string {
	var paths []string
	for _, p := range strings.Split(out, string(os.PathListSeparator)) {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
