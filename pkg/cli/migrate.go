package cli

import (
	"context"

	"github.com/fluidattacks/roots/pkg/cli/config"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func migrateCommand() *cli.Command {
	var database config.Database

	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database schema and exit",
		Flags: database.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if !database.Persistent() {
				return goerr.New("db-path is required for migrate")
			}

			if _, err := database.NewRepository(ctx); err != nil {
				return err
			}

			logging.From(ctx).Info("database schema is up to date")
			return nil
		},
	}
}
