// internal/executil/executil.go
package executil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrCommandFailed marks any external tool that could not run or exited non-zero.
var ErrCommandFailed = errors.New("external command failed")

// CommandError carries the printable command line and exit status of a failed run.
type CommandError struct {
	Command  string
	Dir      string
	ExitCode int // -1 when the process never produced an exit status
	Err      error
}

func (e *CommandError) Error() string {
	where := ""
	if e.Dir != "" {
		where = " (in " + e.Dir + ")"
	}
	if e.ExitCode >= 0 {
		return fmt.Sprintf("command failed (exit=%d)%s: %s: %v", e.ExitCode, where, e.Command, e.Err)
	}
	return fmt.Sprintf("failed to run command%s: %s: %v", where, e.Command, e.Err)
}

func (e *CommandError) Unwrap() []error { return []error{ErrCommandFailed, e.Err} }

// Runner runs one external command to completion. RunInput feeds stdin,
// which keeps secrets such as registry passwords off the argv.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
	RunInput(ctx context.Context, dir string, stdin io.Reader, name string, args ...string) error
}

// Exec runs commands with os/exec, inheriting stdout/stderr unless overridden.
type Exec struct {
	DryRun bool
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = (*Exec)(nil)

// Run executes name with args in dir ("" keeps the current directory).
func (e *Exec) Run(ctx context.Context, dir, name string, args ...string) error {
	return e.RunInput(ctx, dir, nil, name, args...)
}

// RunInput is Run with stdin attached; a nil reader leaves stdin empty.
func (e *Exec) RunInput(ctx context.Context, dir string, stdin io.Reader, name string, args ...string) error {
	fullCmd := name + " " + ShellQuoteArgs(Redact(args))
	log := logrus.WithField("dir", dir)

	if e.DryRun {
		log.Infof("[DRY RUN] %s", fullCmd)
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = orDefault(e.Stdout, os.Stdout)
	cmd.Stderr = orDefault(e.Stderr, os.Stderr)
	cmd.Stdin = stdin

	log.Infof("Running: %s", fullCmd)
	if err := cmd.Run(); err != nil {
		switch {
		case errors.Is(ctx.Err(), context.Canceled):
			return &CommandError{Command: fullCmd, Dir: dir, ExitCode: -1, Err: fmt.Errorf("command canceled: %w", context.Canceled)}
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return &CommandError{Command: fullCmd, Dir: dir, ExitCode: -1, Err: fmt.Errorf("command timed out: %w", context.DeadlineExceeded)}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CommandError{Command: fullCmd, Dir: dir, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &CommandError{Command: fullCmd, Dir: dir, ExitCode: -1, Err: err}
	}
	return nil
}

func orDefault(w, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}

// ShellQuoteArgs returns a printable, shell-safe representation of args.
func ShellQuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
