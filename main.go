// neomdb-deploy main entrypoint
//
// Builds and pushes the neomdb client/server images for prod or dev, or runs
// the test docker-compose stack. Anything not given as a flag is prompted for.
//
// Keep this file simple: load .env, build the command, map errors to exit 1.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"neomdb-deploy/internal/cli"
	"neomdb-deploy/internal/config"
)

func main() {
	// Local overrides for dev runs; harmless when absent.
	config.LoadDotEnv(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRelease().ExecuteContext(ctx); err != nil {
		logrus.Errorf("Error executing command: %v", err)
		stop()
		os.Exit(1)
	}
}
