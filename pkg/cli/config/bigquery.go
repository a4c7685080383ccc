package config

import (
	"context"
	"log/slog"

	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra/bq"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

type BigQuery struct {
	projectID      types.GoogleProjectID
	datasetID      types.BQDatasetID
	tableID        types.BQTableID
	impersonateSvc string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID for the root event audit log (optional)",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("ROOTS_BIGQUERY_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("ROOTS_BIGQUERY_DATASET_ID"),
			Destination: (*string)(&x.datasetID),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("ROOTS_BIGQUERY_TABLE_ID"),
			Value:       "root_events",
			Destination: (*string)(&x.tableID),
		},
		&cli.StringFlag{
			Name:        "bigquery-impersonate-service-account",
			Usage:       "Service account to impersonate for BigQuery access",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("ROOTS_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT"),
			Destination: &x.impersonateSvc,
		},
	}
}

func (x BigQuery) Configured() bool {
	return x.projectID != "" && x.datasetID != ""
}

// NewClient returns nil without error when BigQuery is not configured:
// the audit log is optional.
func (x BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if !x.Configured() {
		return nil, nil
	}

	var options []option.ClientOption
	if x.impersonateSvc != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateSvc,
			Scopes:          []string{"https://www.googleapis.com/auth/cloud-platform"},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create impersonated token source",
				goerr.V("serviceAccount", x.impersonateSvc),
			)
		}
		options = append(options, option.WithTokenSource(ts))
	}

	return bq.New(ctx, x.projectID, x.datasetID, x.tableID, options...)
}

func (x BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
		slog.Any("impersonateServiceAccount", x.impersonateSvc),
	)
}
