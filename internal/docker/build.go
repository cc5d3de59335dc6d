// internal/docker/build.go
package docker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// BuildImage runs docker build with opts.Dir as both working directory and
// build context, so the caller's cwd never changes.
func (c *Client) BuildImage(ctx context.Context, opts *BuildOptions) error {
	if opts == nil {
		return errors.New("BuildImage: opts is nil")
	}
	refs := dedupRefs(opts.Refs)
	if len(refs) == 0 {
		return errors.New("BuildImage: Refs must have at least one repo:tag")
	}
	for _, r := range refs {
		if _, err := parseRef(r); err != nil {
			return fmt.Errorf("BuildImage: %w", err)
		}
	}

	dir := strings.TrimSpace(opts.Dir)
	if dir == "" {
		dir = "."
	}
	if !c.DryRun {
		if err := checkDir(dir); err != nil {
			return fmt.Errorf("BuildImage: %w", err)
		}
	}

	args := buildArgs(opts, refs)

	logrus.Infof("[docker] build %s (context %s)", strings.Join(refs, ", "), absOr(dir, dir))
	if err := c.docker(ctx, dir, args...); err != nil {
		return fmt.Errorf("build %s: %w", refs[0], err)
	}
	return nil
}

func buildArgs(opts *BuildOptions, refs []string) []string {
	args := []string{"build"}
	for _, r := range refs {
		args = append(args, "-t", r)
	}
	if df := strings.TrimSpace(opts.Dockerfile); df != "" {
		args = append(args, "-f", df)
	}
	if opts.Pull {
		args = append(args, "--pull")
	}
	if opts.NoCache {
		args = append(args, "--no-cache")
	}
	if opts.Target != "" {
		args = append(args, "--target", opts.Target)
	}
	for _, kv := range opts.Labels {
		if kv[0] != "" && kv[1] != "" {
			args = append(args, "--label", kv[0]+"="+kv[1])
		}
	}
	for _, kv := range opts.BuildArgs {
		if kv[0] != "" {
			args = append(args, "--build-arg", kv[0]+"="+kv[1])
		}
	}
	// context is always the working directory
	return append(args, ".")
}
