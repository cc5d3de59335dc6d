package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"neomdb-deploy/internal/config"
	"neomdb-deploy/internal/docker"
	"neomdb-deploy/internal/executil"
	"neomdb-deploy/internal/logging"
	"neomdb-deploy/internal/prompt"
	"neomdb-deploy/internal/release"
)

// EngineFunc builds the container engine for a loaded config. The returned
// func runs once the release is over (registry logout).
type EngineFunc func(cfg *config.Config) (release.Engine, func(context.Context))

// NewRelease is the neomdb-deploy root command wired to docker and the terminal.
func NewRelease() *cobra.Command {
	return newReleaseCmd(dockerEngine, func() release.Prompter { return &prompt.Survey{} }, os.Stdout)
}

func dockerEngine(cfg *config.Config) (release.Engine, func(context.Context)) {
	c := docker.NewClient(&executil.Exec{DryRun: cfg.DryRun})
	c.DockerBin = cfg.Binaries.Docker
	c.ComposeBin = cfg.Binaries.Compose
	c.DryRun = cfg.DryRun
	c.Credentials = docker.Credentials{User: cfg.Registry.User, Password: cfg.Registry.Password}
	return c, c.Logout
}

func newReleaseCmd(engineFn EngineFunc, prompterFn func() release.Prompter, out io.Writer) *cobra.Command {
	var (
		env            string
		ver            string
		teardown       bool
		configPath     string
		dryRun         bool
		nonInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "neomdb-deploy",
		Short: "Build and push the neomdb images, or run the test stack",
		Example: `
# interactive
neomdb-deploy

# release 1.2.3 to production without prompts
neomdb-deploy --env prod --version 1.2.3 --non-interactive

# start the test stack and stop it again
neomdb-deploy --env test --teardown`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if dryRun {
				cfg.DryRun = true
			}
			logging.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

			engine, done := engineFn(cfg)
			if done != nil {
				defer done(cmd.Context())
			}

			orch := &release.Orchestrator{
				Engine:     engine,
				Namespace:  cfg.Namespace,
				Components: components(cfg),
				Compose: docker.ComposeOptions{
					Dir:     cfg.Compose.Dir,
					File:    cfg.Compose.File,
					EnvFile: cfg.Compose.EnvFile,
					Detach:  true,
					Build:   true,
				},
				DryRun: cfg.DryRun,
				Out:    out,
			}
			if !nonInteractive {
				orch.Prompter = prompterFn()
			}

			req := release.Request{Environment: env, Version: ver}
			if cmd.Flags().Changed("teardown") {
				req.Teardown = &teardown
			}

			res, err := orch.Run(cmd.Context(), req)
			if err != nil {
				if prompt.Interrupted(err) {
					return errors.New("aborted")
				}
				return err
			}
			report(out, res, cfg.DryRun)
			return nil
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment to release (prod, dev, test)")
	cmd.Flags().StringVarP(&ver, "version", "v", "", "Version used in the image tags (X.Y.Z)")
	cmd.Flags().BoolVar(&teardown, "teardown", false, "Stop the test containers after starting them (test only)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print docker commands instead of running them")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Fail instead of prompting for missing values")

	return cmd
}

func components(cfg *config.Config) []release.Component {
	comps := release.DefaultComponents(cfg.Components["client"].Path, cfg.Components["server"].Path)
	for i := range comps {
		c := cfg.Components[comps[i].Name]
		comps[i].Dockerfile = c.Dockerfile
		comps[i].Target = c.Target
		comps[i].Pull = c.Pull
		comps[i].NoCache = c.NoCache
	}
	return comps
}

func report(out io.Writer, res *release.Result, dryRun bool) {
	if dryRun {
		pterm.Warning.Println("Dry run: no docker command was executed")
	}
	switch {
	case res.Environment == release.Test && res.ComposeDown:
		fmt.Fprintln(out, "Test containers stopped.")
	case res.Environment == release.Test:
		fmt.Fprintln(out, "Test containers are running.")
	default:
		pterm.Success.Println("Docker images built and pushed successfully.")
	}
}
