// internal/docker/compose.go
package docker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ComposeUp builds and starts the composition described by opts.
func (c *Client) ComposeUp(ctx context.Context, opts *ComposeOptions) error {
	if opts == nil || strings.TrimSpace(opts.File) == "" {
		return errors.New("ComposeUp: compose file is required")
	}
	args := []string{"-f", opts.File}
	if opts.EnvFile != "" {
		args = append(args, "--env-file", opts.EnvFile)
	}
	args = append(args, "up")
	if opts.Detach {
		args = append(args, "--detach")
	}
	if opts.Build {
		args = append(args, "--build")
	}

	logrus.Infof("[compose] up %s", opts.File)
	if err := c.compose(ctx, opts.Dir, args...); err != nil {
		return fmt.Errorf("compose up: %w", err)
	}
	return nil
}

// ComposeDown stops and removes the composition.
func (c *Client) ComposeDown(ctx context.Context, opts *ComposeOptions) error {
	if opts == nil || strings.TrimSpace(opts.File) == "" {
		return errors.New("ComposeDown: compose file is required")
	}
	logrus.Infof("[compose] down %s", opts.File)
	if err := c.compose(ctx, opts.Dir, "-f", opts.File, "down"); err != nil {
		return fmt.Errorf("compose down: %w", err)
	}
	return nil
}
