// dbinit sets up the neomdb MySQL database and user once per server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"neomdb-deploy/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewDBInit().ExecuteContext(ctx); err != nil {
		logrus.Errorf("Error: %v", err)
		stop()
		os.Exit(1)
	}
}
