// internal/docker/push.go
//
// Registry side of the release: optional login (only when credentials are
// configured; otherwise the operator's existing docker login is used) and
// one docker push per ref.

package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// PushImage pushes a single ref, logging into its registry first when
// credentials are set and that registry has not been seen yet.
func (c *Client) PushImage(ctx context.Context, ref string) error {
	tag, err := parseRef(ref)
	if err != nil {
		return fmt.Errorf("PushImage: %w", err)
	}

	if !c.Credentials.empty() {
		if err := c.login(ctx, tag.RegistryStr()); err != nil {
			return fmt.Errorf("docker login failed: %w", err)
		}
	}

	logrus.Infof("[docker] pushing image: %s", ref)
	if err := c.docker(ctx, "", "push", ref); err != nil {
		return fmt.Errorf("push %s: %w", ref, err)
	}
	return nil
}

func (c *Client) login(ctx context.Context, registry string) error {
	for _, r := range c.loggedIn {
		if r == registry {
			return nil
		}
	}
	password := strings.NewReader(c.Credentials.Password)
	bin := orDefault(c.DockerBin, defaultDockerBin)
	if err := c.Runner.RunInput(ctx, "", password, bin, "login", "-u", c.Credentials.User, "--password-stdin", registry); err != nil {
		return err
	}
	c.loggedIn = append(c.loggedIn, registry)
	return nil
}
