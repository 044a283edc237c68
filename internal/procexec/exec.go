package procexec

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"cdr.dev/slog/v3"
	"golang.org/x/xerrors"
)

// DefaultPath is where the environment listing command lives on the
// platforms this tool targets.
const DefaultPath = "/usr/bin/env"

// Command describes the child process to run
type Command struct {
	Path string
	Args []string
	// Env is the child environment. Nil inherits the current process environment.
	Env []string
}

// DefaultCommand returns the environment listing command with no arguments
func DefaultCommand() Command {
	return Command{Path: DefaultPath}
}

// Result is the captured output of a finished child process
type Result struct {
	Stdout   string
	ExitCode int
}

// Capturer runs a command to completion and returns its standard output
type Capturer interface {
	Capture(cmd Command) (*Result, error)
}

// LaunchError reports that the child process could not be started at all
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return "start " + e.Path + ": " + e.Err.Error()
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Runner captures commands with os/exec
type Runner struct {
	Logger slog.Logger
	// Stderr receives the child's standard error. Nil discards it.
	Stderr io.Writer
}

// Capture starts cmd, blocks until it exits and returns everything it
// wrote to stdout. A non-zero exit status is not an error: the captured
// output is returned with ExitCode set.
func (r *Runner) Capture(cmd Command) (*Result, error) {
	ctx := context.Background()
	if cmd.Path == "" {
		return nil, &LaunchError{Path: cmd.Path, Err: xerrors.New("empty command path")}
	}

	c := exec.Command(cmd.Path, cmd.Args...)
	c.Env = cmd.Env
	var stdout bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = r.Stderr

	r.Logger.Debug(ctx, "starting child process",
		slog.F("path", cmd.Path),
		slog.F("args", cmd.Args),
		slog.F("env_overridden", cmd.Env != nil),
	)

	err := c.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !xerrors.As(err, &exitErr) {
			return nil, &LaunchError{Path: cmd.Path, Err: err}
		}
		r.Logger.Debug(ctx, "child exited with non-zero status",
			slog.F("path", cmd.Path),
			slog.F("exit_code", exitErr.ExitCode()),
		)
		return &Result{Stdout: stdout.String(), ExitCode: exitErr.ExitCode()}, nil
	}

	r.Logger.Debug(ctx, "child exited", slog.F("path", cmd.Path), slog.F("stdout_bytes", stdout.Len()))
	return &Result{Stdout: stdout.String()}, nil
}
