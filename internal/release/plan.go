// internal/release/plan.go
//
// The planner turns namespace + version + environment into the ordered
// list of images to build and push. Pure: no I/O, no docker.

package release

import (
	"neomdb-deploy/internal/docker"
)

// Component is one buildable part of the application.
type Component struct {
	Name       string // tag prefix, e.g. "client"
	Path       string // build context directory
	Dockerfile string // optional
	Target     string // optional multi-stage target
	Pull       bool
	NoCache    bool
	EnvArg     string // build arg that receives Environment.BuildValue(); "" for none
}

// DefaultComponents is the client + server pair, in build order.
func DefaultComponents(clientPath, serverPath string) []Component {
	return []Component{
		{Name: "client", Path: clientPath, EnvArg: "REACT_APP_ENV"},
		{Name: "server", Path: serverPath},
	}
}

type Image struct {
	Component string
	Ref       string
	Build     docker.BuildOptions
}

type Plan struct {
	Environment Environment
	Version     string
	Images      []Image
}

// Refs lists the image refs in build/push order.
func (p Plan) Refs() []string {
	out := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		out = append(out, img.Ref)
	}
	return out
}

// ImageRef composes "<namespace>:<component><version>"; the version is used verbatim.
func ImageRef(namespace, component, version string) string {
	return namespace + ":" + component + version
}

// PlanRelease builds the release plan for a non-test environment.
func PlanRelease(namespace, version string, env Environment, components []Component) Plan {
	plan := Plan{Environment: env, Version: version}
	for _, c := range components {
		ref := ImageRef(namespace, c.Name, version)
		opts := docker.BuildOptions{
			Dir:        c.Path,
			Dockerfile: c.Dockerfile,
			Target:     c.Target,
			Pull:       c.Pull,
			NoCache:    c.NoCache,
			Refs:       []string{ref},
			Labels:     [][2]string{{"org.opencontainers.image.version", version}},
		}
		if c.EnvArg != "" {
			opts.BuildArgs = [][2]string{{c.EnvArg, env.BuildValue()}}
		}
		plan.Images = append(plan.Images, Image{Component: c.Name, Ref: ref, Build: opts})
	}
	return plan
}
