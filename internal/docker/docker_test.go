package docker

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neomdb-deploy/internal/executil"
)

type call struct {
	dir   string
	name  string
	args  []string
	stdin string
}

type recordingRunner struct {
	calls  []call
	failOn func(c call) error
}

func (r *recordingRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	return r.RunInput(ctx, dir, nil, name, args...)
}

func (r *recordingRunner) RunInput(_ context.Context, dir string, stdin io.Reader, name string, args ...string) error {
	c := call{dir: dir, name: name, args: args}
	if stdin != nil {
		b, _ := io.ReadAll(stdin)
		c.stdin = string(b)
	}
	r.calls = append(r.calls, c)
	if r.failOn != nil {
		return r.failOn(c)
	}
	return nil
}

func TestBuildImageArgs(t *testing.T) {
	dir := t.TempDir()
	run := &recordingRunner{}
	c := NewClient(run)

	err := c.BuildImage(context.Background(), &BuildOptions{
		Dir:       dir,
		Refs:      []string{"jbtit/neomdb:client1.2.3", "jbtit/neomdb:client1.2.3"},
		BuildArgs: [][2]string{{"REACT_APP_ENV", "production"}},
	})
	require.NoError(t, err)
	require.Len(t, run.calls, 1)

	got := run.calls[0]
	assert.Equal(t, dir, got.dir)
	assert.Equal(t, "docker", got.name)
	assert.Equal(t, []string{
		"build", "-t", "jbtit/neomdb:client1.2.3",
		"--build-arg", "REACT_APP_ENV=production", ".",
	}, got.args)
}

func TestBuildImageNoBuildArg(t *testing.T) {
	run := &recordingRunner{}
	c := &Client{Runner: run, DockerBin: "podman", DryRun: true}

	require.NoError(t, c.BuildImage(context.Background(), &BuildOptions{
		Dir:  "../server",
		Refs: []string{"jbtit/neomdb:server1.2.3"},
	}))
	require.Len(t, run.calls, 1)
	assert.Equal(t, "podman", run.calls[0].name)
	assert.Equal(t, []string{"build", "-t", "jbtit/neomdb:server1.2.3", "."}, run.calls[0].args)
}

func TestBuildImageRejects(t *testing.T) {
	tests := []struct {
		name string
		opts *BuildOptions
	}{
		{"nil opts", nil},
		{"no refs", &BuildOptions{Dir: "."}},
		{"invalid ref", &BuildOptions{Dir: ".", Refs: []string{"jbtit/NeoMDB:client 1"}}},
		{"missing dir", &BuildOptions{Dir: "/does/not/exist/neomdb", Refs: []string{"jbtit/neomdb:client1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := &recordingRunner{}
			err := NewClient(run).BuildImage(context.Background(), tt.opts)
			assert.Error(t, err)
			assert.Empty(t, run.calls)
		})
	}
}

func TestBuildImageFailurePropagates(t *testing.T) {
	run := &recordingRunner{failOn: func(call) error {
		return &executil.CommandError{Command: "docker build", ExitCode: 1, Err: errors.New("exit status 1")}
	}}
	c := &Client{Runner: run, DryRun: true}

	err := c.BuildImage(context.Background(), &BuildOptions{Dir: ".", Refs: []string{"jbtit/neomdb:client1"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, executil.ErrCommandFailed))
}

func TestPushImageWithoutCredentials(t *testing.T) {
	run := &recordingRunner{}
	c := NewClient(run)

	require.NoError(t, c.PushImage(context.Background(), "jbtit/neomdb:client1.2.3"))
	require.Len(t, run.calls, 1)
	assert.Equal(t, []string{"push", "jbtit/neomdb:client1.2.3"}, run.calls[0].args)

	c.Logout(context.Background())
	assert.Len(t, run.calls, 1, "logout must not run without a login")
}

func TestPushImageLogsInOnce(t *testing.T) {
	run := &recordingRunner{}
	c := NewClient(run)
	c.Credentials = Credentials{User: "bob", Password: "hunter2"}

	require.NoError(t, c.PushImage(context.Background(), "jbtit/neomdb:client1.2.3"))
	require.NoError(t, c.PushImage(context.Background(), "jbtit/neomdb:server1.2.3"))
	c.Logout(context.Background())

	var verbs []string
	for _, cl := range run.calls {
		verbs = append(verbs, cl.args[0])
	}
	assert.Equal(t, []string{"login", "push", "push", "logout"}, verbs)
	assert.Equal(t, []string{"login", "-u", "bob", "--password-stdin", "index.docker.io"}, run.calls[0].args)
	assert.Equal(t, "hunter2", run.calls[0].stdin)
	assert.NotContains(t, run.calls[0].args, "hunter2")
	assert.Equal(t, []string{"logout", "index.docker.io"}, run.calls[3].args)
}

func TestComposeUpDown(t *testing.T) {
	run := &recordingRunner{}
	c := NewClient(run)
	opts := &ComposeOptions{
		Dir:     "deployment",
		File:    "docker-compose.testing.yaml",
		EnvFile: ".env.testing",
		Detach:  true,
		Build:   true,
	}

	require.NoError(t, c.ComposeUp(context.Background(), opts))
	require.NoError(t, c.ComposeDown(context.Background(), opts))
	require.Len(t, run.calls, 2)

	assert.Equal(t, "docker-compose", run.calls[0].name)
	assert.Equal(t, "deployment", run.calls[0].dir)
	assert.Equal(t, []string{
		"-f", "docker-compose.testing.yaml", "--env-file", ".env.testing", "up", "--detach", "--build",
	}, run.calls[0].args)
	assert.Equal(t, []string{"-f", "docker-compose.testing.yaml", "down"}, run.calls[1].args)
}

func TestComposeRequiresFile(t *testing.T) {
	c := NewClient(&recordingRunner{})
	assert.Error(t, c.ComposeUp(context.Background(), &ComposeOptions{}))
	assert.Error(t, c.ComposeDown(context.Background(), nil))
}

func TestPushImageLogsIntoRefRegistry(t *testing.T) {
	run := &recordingRunner{}
	c := NewClient(run)
	c.Credentials = Credentials{User: "bob", Password: "pw"}

	require.NoError(t, c.PushImage(context.Background(), "registry.example.com:5000/team/app:v1"))
	require.Len(t, run.calls, 2)
	assert.Equal(t, "registry.example.com:5000", run.calls[0].args[len(run.calls[0].args)-1])
}

func TestBuildArgsFlags(t *testing.T) {
	opts := &BuildOptions{
		Dockerfile: "Dockerfile.prod",
		Pull:       true,
		NoCache:    true,
		Target:     "runtime",
		Labels:     [][2]string{{"org.opencontainers.image.version", "1.2.3"}, {"empty", ""}},
		BuildArgs:  [][2]string{{"REACT_APP_ENV", "development"}},
	}

	got := buildArgs(opts, []string{"jbtit/neomdb:client1.2.3"})
	assert.Equal(t, []string{
		"build", "-t", "jbtit/neomdb:client1.2.3",
		"-f", "Dockerfile.prod",
		"--pull",
		"--no-cache",
		"--target", "runtime",
		"--label", "org.opencontainers.image.version=1.2.3",
		"--build-arg", "REACT_APP_ENV=development",
		".",
	}, got)
}
