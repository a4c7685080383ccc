package config

import (
	"log/slog"

	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra/scanner"
	"github.com/urfave/cli/v3"
)

type Scanner struct {
	url   string
	token types.ScannerToken `masq:"secret"`
}

func (x *Scanner) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "scanner-url",
			Usage:       "Scanning engine base URL",
			Category:    "Scanner",
			Sources:     cli.EnvVars("ROOTS_SCANNER_URL"),
			Destination: &x.url,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "scanner-token",
			Usage:       "Scanning engine API token",
			Category:    "Scanner",
			Sources:     cli.EnvVars("ROOTS_SCANNER_TOKEN"),
			Destination: (*string)(&x.token),
			Required:    true,
		},
	}
}

func (x Scanner) NewClient() (*scanner.Client, error) {
	return scanner.New(x.url, x.token)
}

func (x Scanner) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("URL", x.url),
		slog.Int("Token.len", len(x.token)),
	)
}
