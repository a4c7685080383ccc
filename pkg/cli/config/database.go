package config

import (
	"context"
	"log/slog"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/repository/memory"
	"github.com/fluidattacks/roots/pkg/repository/sqlite"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Database struct {
	path          string
	encryptionKey string `masq:"secret"`
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-path",
			Usage:       "SQLite database path (empty runs in-memory, for development only)",
			Category:    "Database",
			Sources:     cli.EnvVars("ROOTS_DB_PATH"),
			Destination: &x.path,
		},
		&cli.StringFlag{
			Name:        "db-encryption-key",
			Usage:       "Base64 fernet key for credential material at rest",
			Category:    "Database",
			Sources:     cli.EnvVars("ROOTS_DB_ENCRYPTION_KEY"),
			Destination: &x.encryptionKey,
		},
	}
}

func (x Database) Persistent() bool {
	return x.path != ""
}

func (x Database) NewRepository(ctx context.Context) (interfaces.RootRepository, error) {
	if x.path == "" {
		logging.From(ctx).Warn("no database path: roots are stored in memory and lost on restart")
		return memory.New(), nil
	}
	return sqlite.New(x.path, x.encryptionKey)
}

func (x Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("path", x.path),
		slog.Int("encryptionKey.len", len(x.encryptionKey)),
	)
}
