// internal/docker/client.go
//
// Client is the docker / docker-compose adapter the release orchestrator
// drives. Every operation is one blocking external command through an
// executil.Runner, so tests swap in a recording runner instead of docker.

package docker

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"neomdb-deploy/internal/executil"
)

const (
	defaultDockerBin  = "docker"
	defaultComposeBin = "docker-compose"
)

type Client struct {
	Runner      executil.Runner
	DockerBin   string
	ComposeBin  string
	Credentials Credentials
	DryRun      bool // skips filesystem checks; the runner decides whether commands execute

	loggedIn []string
}

// NewClient returns a Client running docker through runner.
func NewClient(runner executil.Runner) *Client {
	return &Client{Runner: runner}
}

func (c *Client) docker(ctx context.Context, dir string, args ...string) error {
	return c.Runner.Run(ctx, dir, orDefault(c.DockerBin, defaultDockerBin), args...)
}

func (c *Client) compose(ctx context.Context, dir string, args ...string) error {
	return c.Runner.Run(ctx, dir, orDefault(c.ComposeBin, defaultComposeBin), args...)
}

// Logout signs out of every registry PushImage logged into. Failures only warn.
func (c *Client) Logout(ctx context.Context) {
	for _, registry := range c.loggedIn {
		if err := c.docker(ctx, "", "logout", registry); err != nil {
			logrus.Warnf("[docker] logout %s failed: %v", registry, err)
		}
	}
	c.loggedIn = nil
}

func orDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
