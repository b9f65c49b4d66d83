package melange_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/melt/internal/adapters/melange"
	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/melt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestToolchain_LibraryPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockToolInvoker(ctrl)

	sep := string(os.PathListSeparator)
	where := strings.Join([]string{
		"/esy/i/melange/lib/ocaml",
		"/esy/i/melange/lib/melange/js/melange",
	}, sep)

	invoker.EXPECT().Run(gomock.Any(), "esy melc -where", "").Return(where, nil)

	tc := melange.NewToolchain(invoker, domain.DefaultProject("/project"))

	paths, err := tc.LibraryPaths(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/esy/i/melange/lib/ocaml",
		"/esy/i/melange/lib/melange/js/melange",
		"/esy/i/melange/lib/melange/dom/melange",
		"/esy/i/melange/lib/melange/belt/melange",
	}, paths)
}

func TestToolchain_LibraryPaths_CustomCompiler(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockToolInvoker(ctrl)

	project := domain.DefaultProject("/project")
	project.Compiler = "melc"
	project.Libraries = nil

	sep := string(os.PathListSeparator)
	invoker.EXPECT().Run(gomock.Any(), "melc -where", "").Return("/std"+sep+"/js"+sep+"/extra", nil)

	paths, err := melange.NewToolchain(invoker, project).LibraryPaths(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/std", "/js"}, paths)
}

func TestToolchain_LibraryPaths_Errors(t *testing.T) {
	tests := []struct {
		name        string
		out         string
		runErr      error
		errContains string
	}{
		{
			name:        "single entry",
			out:         "/esy/i/melange/lib/ocaml",
			errContains: "unexpected tool output",
		},
		{
			name:        "empty output",
			out:         "",
			errContains: "unexpected tool output",
		},
		{
			name:        "invocation failure",
			runErr:      errors.New("exit status 127"),
			errContains: "failed to query toolchain library paths",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			invoker := mocks.NewMockToolInvoker(ctrl)
			invoker.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.out, tt.runErr)

			paths, err := melange.NewToolchain(invoker, domain.DefaultProject("/p")).LibraryPaths(context.Background())
			require.Error(t, err)
			assert.Nil(t, paths)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}
