// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/matt-FFFFFF/grpr/internal/commandinpath"
	"github.com/matt-FFFFFF/grpr/internal/ctxlog"
)

// DefaultGracePeriod is how long a cancelled child may keep running after it has been
// sent an interrupt.
const DefaultGracePeriod = 5 * time.Second

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrNonZeroExit is returned when the process ran and exited with a non-zero code.
	ErrNonZeroExit = errors.New("non-zero exit")
	// ErrCancelled is returned when the context was cancelled while the process ran.
	ErrCancelled = errors.New("process cancelled")
	// ErrWaitFailed is returned when waiting on the process failed for another reason,
	// for example when copying its output broke.
	ErrWaitFailed = errors.New("failed waiting for process")
)

// ErrorKind classifies an ExecutionError.
type ErrorKind int

const (
	// SpawnFailed means the process never started.
	SpawnFailed ErrorKind = iota
	// NonZeroExit means the process ran and exited with a non-zero code.
	NonZeroExit
	// Cancelled means the process was interrupted because the context ended.
	Cancelled
	// WaitFailed means the process started but could not be waited on cleanly.
	WaitFailed
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case SpawnFailed:
		return "spawn failed"
	case NonZeroExit:
		return "non-zero exit"
	case Cancelled:
		return "cancelled"
	case WaitFailed:
		return "wait failed"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case SpawnFailed:
		return ErrCouldNotStartProcess
	case NonZeroExit:
		return ErrNonZeroExit
	case Cancelled:
		return ErrCancelled
	default:
		return ErrWaitFailed
	}
}

// ExecutionError describes a command that did not finish with exit code zero.
type ExecutionError struct {
	Kind     ErrorKind
	Binary   string   // executable that was run, "git" when empty
	Dir      string   // working directory of the process
	Args     []string // arguments after the binary
	ExitCode int      // -1 unless Kind is NonZeroExit
	Err      error    // underlying error from os/exec, if any
}

// Error implements the error interface. The command is shown with the base name of
// Binary.
func (e *ExecutionError) Error() string {
	name := "git"
	if e.Binary != "" {
		name = filepath.Base(e.Binary)
	}

	command := strings.Join(append([]string{name}, e.Args...), " ")

	switch e.Kind {
	case NonZeroExit:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", command, e.Err)
		}

		return fmt.Sprintf("%s: exit status %d", command, e.ExitCode)
	case SpawnFailed:
		return fmt.Sprintf("%v: %s: %v", ErrCouldNotStartProcess, command, e.Err)
	default:
		if e.Err == nil {
			return fmt.Sprintf("%s: %v", command, e.Kind.sentinel())
		}

		return fmt.Sprintf("%s: %v: %v", command, e.Kind.sentinel(), e.Err)
	}
}

// Unwrap gives errors.Is and errors.As access to both the kind sentinel and the
// underlying error.
func (e *ExecutionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}

	return []error{e.Kind.sentinel(), e.Err}
}

// Executor starts a single process with the given arguments in dir and waits for it.
// It returns nil only when the process exited with code zero.
type Executor interface {
	Execute(ctx context.Context, dir string, args []string) error
}

// OSExecutor runs Binary as a child process with its output connected to Stdout and
// Stderr. Stdin is not connected.
type OSExecutor struct {
	Binary      string
	Stdout      io.Writer // defaults to os.Stdout
	Stderr      io.Writer // defaults to os.Stderr
	GracePeriod time.Duration
}

var _ Executor = (*OSExecutor)(nil)

// NewOSExecutor returns an OSExecutor for binary, resolved against PATH. When the lookup
// fails the plain name is kept, so the failure shows up for every repository as a spawn
// failure rather than aborting the run.
func NewOSExecutor(ctx context.Context, binary string) *OSExecutor {
	resolved, err := commandinpath.Find(binary)
	if err != nil {
		ctxlog.Warn(ctx, "git binary not found in PATH", "binary", binary, "error", err)

		resolved = binary
	}

	ctxlog.Debug(ctx, "using git binary", "binary", resolved)

	return &OSExecutor{
		Binary:      resolved,
		GracePeriod: DefaultGracePeriod,
	}
}

// Execute implements Executor.
func (e *OSExecutor) Execute(ctx context.Context, dir string, args []string) error {
	cmd := exec.CommandContext(ctx, e.Binary, args...)
	cmd.Dir = dir
	cmd.Stdin = nil
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}

	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	cmd.Cancel = func() error {
		if runtime.GOOS == "windows" {
			return cmd.Process.Kill()
		}

		ctxlog.Debug(ctx, "interrupting process", "dir", dir, "pid", cmd.Process.Pid)

		return cmd.Process.Signal(os.Interrupt)
	}

	cmd.WaitDelay = e.GracePeriod
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = DefaultGracePeriod
	}

	newErr := func(kind ErrorKind, err error) *ExecutionError {
		return &ExecutionError{
			Kind:     kind,
			Binary:   e.Binary,
			Dir:      dir,
			Args:     append([]string(nil), args...),
			ExitCode: -1,
			Err:      err,
		}
	}

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return newErr(Cancelled, err)
		}

		return newErr(SpawnFailed, err)
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return newErr(Cancelled, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res := newErr(NonZeroExit, err)
		res.ExitCode = exitErr.ExitCode()

		return res
	}

	return newErr(WaitFailed, err)
}
