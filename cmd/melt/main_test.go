package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/melt/internal/adapters/telemetry"
	"go.trai.ch/melt/internal/app"
	"go.trai.ch/melt/internal/build"
	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/melt/internal/core/ports"
	"go.trai.ch/melt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestApp(ctrl *gomock.Controller, loader ports.ConfigLoader, log ports.Logger) *app.App {
	return app.New(
		loader,
		mocks.NewMockToolInvoker(ctrl),
		log,
		telemetry.NewNoOpTracer(),
		mocks.NewMockHasher(ctrl),
		func() (ports.Watcher, error) { return mocks.NewMockWatcher(ctrl), nil },
	)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	application := newTestApp(ctrl, mocks.NewMockConfigLoader(ctrl), mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "melt version "+build.Version)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(".").Return(nil, errors.New("load failed"))

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	application := newTestApp(ctrl, mockLoader, mockLogger)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"compile", "App.re"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Cancelled verifies that a cancelled context surfaces as a failure.
func TestRun_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockCh := make(chan struct{})
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Project, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	application := newTestApp(ctrl, mockLoader, mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	resultCh := make(chan int)

	go func() {
		resultCh <- run(ctx, []string{"compile", "App.re"}, new(bytes.Buffer), new(bytes.Buffer),
			func(context.Context) (*app.Components, func(), error) {
				return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
			})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	close(blockCh)

	select {
	case ret := <-resultCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("run() did not return after cancellation")
	}
}

// TestRun_CallsCleanup verifies that the provider's teardown runs once the command returns.
func TestRun_CallsCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	application := newTestApp(ctrl, mocks.NewMockConfigLoader(ctrl), mockLogger)

	cleaned := 0
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() { cleaned++ }, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, 1, cleaned)
}
