package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"neomdb-deploy/internal/dbsetup"
	"neomdb-deploy/internal/logging"
)

// OpenFunc connects to the server described by the options.
type OpenFunc func(ctx context.Context, o dbsetup.Options) (*sql.DB, error)

// NewDBInit is the dbinit root command wired to a real MySQL server.
func NewDBInit() *cobra.Command {
	return newDBInitCmd(dbsetup.Open)
}

func newDBInitCmd(open OpenFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "dbinit HOST PORT ROOT_USER ROOT_PASSWORD NEW_USER NEW_PASSWORD DB_NAME SQL_FILE",
		Short: "Set up a MySQL database and user",
		Long: `Creates DB_NAME, creates NEW_USER@'%' with NEW_PASSWORD, grants it all
privileges, then executes every ";"-separated statement of SQL_FILE inside DB_NAME.`,
		Args:          cobra.ExactArgs(8),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), cmd.ErrOrStderr())

			opts, err := parseDBInitArgs(args)
			if err != nil {
				return err
			}

			db, err := open(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := dbsetup.Bootstrap(cmd.Context(), db, opts); err != nil {
				return err
			}
			pterm.Success.Println("Database setup completed successfully.")
			return nil
		},
	}
}

func parseDBInitArgs(args []string) (dbsetup.Options, error) {
	port, err := strconv.Atoi(args[1])
	if err != nil {
		return dbsetup.Options{}, fmt.Errorf("port must be an integer, got %q", args[1])
	}
	opts := dbsetup.Options{
		Host:         args[0],
		Port:         port,
		RootUser:     args[2],
		RootPassword: args[3],
		User:         args[4],
		Password:     args[5],
		Database:     args[6],
		SchemaFile:   args[7],
	}
	if err := opts.Validate(); err != nil {
		return dbsetup.Options{}, err
	}
	return opts, nil
}
