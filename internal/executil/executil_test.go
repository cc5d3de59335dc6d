package executil

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDryRunNeverExecutes(t *testing.T) {
	e := &Exec{DryRun: true}
	err := e.Run(context.Background(), "", "definitely-not-a-real-binary-neomdb", "build")
	assert.NoError(t, err)
}

func TestRunInDir(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	e := &Exec{Stdout: &out}

	require.NoError(t, e.Run(context.Background(), dir, "sh", "-c", "pwd"))

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunExitCode(t *testing.T) {
	e := &Exec{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := e.Run(context.Background(), "", "sh", "-c", "exit 3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Contains(t, err.Error(), "exit=3")
}

func TestRunMissingBinary(t *testing.T) {
	e := &Exec{}
	err := e.Run(context.Background(), "", "definitely-not-a-real-binary-neomdb")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, -1, cmdErr.ExitCode)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := (&Exec{}).Run(ctx, "", "sh", "-c", "sleep 5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestShellQuoteArgs(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"build", "-t", "jbtit/neomdb:client1.2.3", "."}, "build -t jbtit/neomdb:client1.2.3 ."},
		{[]string{"a b"}, "'a b'"},
		{[]string{""}, "''"},
		{[]string{"it's"}, `'it'\''s'`},
	}
	for _, tt := range tests {
		if got := ShellQuoteArgs(tt.in); got != tt.want {
			t.Errorf("ShellQuoteArgs(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunInputFeedsStdin(t *testing.T) {
	var out bytes.Buffer
	e := &Exec{Stdout: &out}

	require.NoError(t, e.RunInput(context.Background(), "", strings.NewReader("hunter2"), "sh", "-c", "cat"))
	assert.Equal(t, "hunter2", out.String())
}
