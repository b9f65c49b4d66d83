// Package shell provides the tool invoker adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/melt/internal/core/domain"
	"go.trai.ch/melt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invoker implements ports.ToolInvoker by running command strings through sh.
type Invoker struct {
	logger ports.Logger
	shell  string
}

// NewInvoker creates a new Invoker.
func NewInvoker(logger ports.Logger) *Invoker {
	return &Invoker{
		logger: logger,
		shell:  "sh",
	}
}

// Run executes command with `sh -c` in dir and returns its trimmed standard output.
// Standard error is forwarded to the logger line by line and kept for the error report.
func (i *Invoker) Run(ctx context.Context, command, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, i.shell, "-c", command) //nolint:gosec // command comes from project configuration
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	lw := &logWriter{logger: i.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(&stderr, lw)

	i.logger.Debug("exec: " + command)

	runErr := cmd.Run()
	lw.Flush()

	if runErr != nil {
		exitCode := -1 // unknown or signal
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		err := zerr.Wrap(runErr, domain.ErrInvocationFailed.Error())
		err = zerr.With(err, "command", command)
		err = zerr.With(err, "dir", dir)
		err = zerr.With(err, "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}

// logWriter forwards complete lines to the logger at warn level.
// Partial lines are buffered until a newline arrives or Flush is called.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexByte(w.buf, '\n')
		if idx < 0 {
			break
		}
		w.emit(string(w.buf[:idx]))
		w.buf = w.buf[idx+1:]
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return
	}
	w.logger.Warn(line)
}
