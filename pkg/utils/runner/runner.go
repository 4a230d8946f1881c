// Package runner provides synchronous execution of external command-line
// tools with captured output and typed failures.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrEmptyCommand is returned when Run is called without a program name.
var ErrEmptyCommand = errors.New("runner: empty command")

// Result captures the outcome of a completed process invocation.
type Result struct {
	// Stdout is the captured standard output, unmodified. Trailing
	// whitespace handling is left to the caller.
	Stdout string
	// Stderr is the captured standard error.
	Stderr string
	// ExitCode is the process exit code. Zero on success.
	ExitCode int
}

// CommandError reports a process that exited with a non-zero code.
// It carries the raw stderr text as the failure detail.
type CommandError struct {
	// Args is the full argument vector that was executed.
	Args []string
	// ExitCode is the non-zero exit code of the process.
	ExitCode int
	// Stderr is the captured standard error of the process.
	Stderr string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf(
		"command %v exited with code %d: %s",
		e.Args,
		e.ExitCode,
		e.Stderr,
	)
}

// CommandRunner executes an external process synchronously and maps its
// outcome to either a successful text result or a classified failure.
type CommandRunner interface {
	// Run executes the argument vector (program name + arguments) and blocks
	// until the process terminates. On exit code zero it returns the captured
	// output; on a non-zero exit it returns a *CommandError.
	Run(ctx context.Context, args []string) (Result, error)
}

// ExecCommandRunner is the default CommandRunner backed by os/exec.
// The working directory and timeout are explicit configuration, not
// ambient state.
type ExecCommandRunner struct {
	// WorkingDir is the directory the process is started in.
	// Empty means the current directory.
	WorkingDir string
	// Timeout bounds each invocation. Zero means no timeout; a hung
	// process then blocks the caller indefinitely.
	Timeout time.Duration

	logger logrus.FieldLogger
}

// NewExecCommandRunner constructs an ExecCommandRunner with the given
// working directory and timeout.
func NewExecCommandRunner(workingDir string, timeout time.Duration) *ExecCommandRunner {
	return &ExecCommandRunner{
		WorkingDir: workingDir,
		Timeout:    timeout,
		logger:     logrus.WithField("component", "runner"),
	}
}

// Run executes the argument vector and blocks until the process exits.
// Every invocation is logged with the full argument vector, captured
// stdout, exit code, and stderr, for both success and failure paths.
func (r *ExecCommandRunner) Run(ctx context.Context, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, ErrEmptyCommand
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.WorkingDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode(runErr),
	}

	r.log(args, result)

	if runErr == nil {
		return result, nil
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run %q: %w", args[0], ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return result, &CommandError{
			Args:     args,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}

	return result, fmt.Errorf("run %q: %w", args[0], runErr)
}

// log records the invocation before any failure is surfaced to the caller,
// preserving an audit trail for failed calls.
func (r *ExecCommandRunner) log(args []string, result Result) {
	logger := r.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	logger.WithFields(logrus.Fields{
		"command":   args,
		"stdout":    result.Stdout,
		"exit_code": result.ExitCode,
		"stderr":    result.Stderr,
	}).Debug("executed command")
}

// exitCode extracts the process exit code from a Run error.
func exitCode(runErr error) int {
	if runErr == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
