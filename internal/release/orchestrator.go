// internal/release/orchestrator.go
package release

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"neomdb-deploy/internal/docker"
	"neomdb-deploy/internal/version"
)

// Engine is the container tooling the orchestrator needs. docker.Client implements it.
type Engine interface {
	BuildImage(ctx context.Context, opts *docker.BuildOptions) error
	PushImage(ctx context.Context, ref string) error
	ComposeUp(ctx context.Context, opts *docker.ComposeOptions) error
	ComposeDown(ctx context.Context, opts *docker.ComposeOptions) error
}

// Prompter asks the operator for anything the Request left out.
type Prompter interface {
	Environment() (string, error)
	Version() (string, error)
	ConfirmTeardown() (bool, error)
}

// Request holds the explicit parameters of one invocation. Empty fields
// (nil Teardown) are asked for through the Prompter, if there is one.
type Request struct {
	Environment string
	Version     string
	Teardown    *bool
}

// Result reports what a successful Run did.
type Result struct {
	Environment Environment
	Pushed      []string // refs, in push order
	ComposeUp   bool
	ComposeDown bool
}

type Orchestrator struct {
	Engine     Engine
	Prompter   Prompter // nil means non-interactive
	Namespace  string
	Components []Component
	Compose    docker.ComposeOptions
	DryRun     bool
	Out        io.Writer // release summary; nil disables it
}

// Run executes the request. The first failing step aborts the run; nothing
// already built or pushed is undone.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	env, err := o.environment(req.Environment)
	if err != nil {
		return nil, err
	}
	logrus.Infof("[release] environment: %s", env)

	if env == Test {
		return o.runComposition(ctx, req.Teardown)
	}

	v, err := o.version(req.Version)
	if err != nil {
		return nil, err
	}
	if !version.IsSemver(v) {
		logrus.Warnf("[release] version %q does not follow X.Y.Z; tagging verbatim", v)
	}

	plan := PlanRelease(o.Namespace, v, env, o.Components)
	if o.Out != nil {
		PrintSummary(o.Out, plan, o.DryRun)
	}
	return o.release(ctx, plan)
}

func (o *Orchestrator) environment(raw string) (Environment, error) {
	if strings.TrimSpace(raw) == "" && o.Prompter != nil {
		answer, err := o.Prompter.Environment()
		if err != nil {
			return "", fmt.Errorf("environment prompt: %w", err)
		}
		raw = answer
	}
	return ParseEnvironment(raw)
}

func (o *Orchestrator) version(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" && o.Prompter != nil {
		answer, err := o.Prompter.Version()
		if err != nil {
			return "", fmt.Errorf("version prompt: %w", err)
		}
		v = strings.TrimSpace(answer)
	}
	if v == "" {
		return "", ErrMissingVersion
	}
	return v, nil
}

func (o *Orchestrator) runComposition(ctx context.Context, teardown *bool) (*Result, error) {
	res := &Result{Environment: Test}
	if err := o.Engine.ComposeUp(ctx, &o.Compose); err != nil {
		return nil, err
	}
	res.ComposeUp = true

	stop := false
	switch {
	case teardown != nil:
		stop = *teardown
	case o.Prompter != nil:
		answer, err := o.Prompter.ConfirmTeardown()
		if err != nil {
			return res, fmt.Errorf("teardown prompt: %w", err)
		}
		stop = answer
	default:
		logrus.Info("[release] no teardown requested; leaving containers running")
	}

	if stop {
		if err := o.Engine.ComposeDown(ctx, &o.Compose); err != nil {
			return res, err
		}
		res.ComposeDown = true
	}
	return res, nil
}

func (o *Orchestrator) release(ctx context.Context, plan Plan) (*Result, error) {
	for i := range plan.Images {
		img := &plan.Images[i]
		logrus.Infof("[release] building %s image %s", img.Component, img.Ref)
		if err := o.Engine.BuildImage(ctx, &img.Build); err != nil {
			return nil, err
		}
	}

	res := &Result{Environment: plan.Environment}
	for _, ref := range plan.Refs() {
		if err := o.Engine.PushImage(ctx, ref); err != nil {
			return res, err
		}
		res.Pushed = append(res.Pushed, ref)
	}
	return res, nil
}
