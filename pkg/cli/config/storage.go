package config

import (
	"context"
	"log/slog"

	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	bucket types.GCSBucketName
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "GCS bucket holding group files, used to validate APK environments (optional)",
			Category:    "Storage",
			Sources:     cli.EnvVars("ROOTS_GCS_BUCKET"),
			Destination: (*string)(&x.bucket),
		},
	}
}

func (x Storage) Configured() bool {
	return x.bucket != ""
}

// NewClient returns nil without error when no bucket is configured: APK
// environment validation is skipped in that case.
func (x Storage) NewClient(ctx context.Context) (*gcs.Client, error) {
	if !x.Configured() {
		return nil, nil
	}
	return gcs.New(ctx, x.bucket)
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("bucket", x.bucket),
	)
}
