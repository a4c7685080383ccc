package usecase

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/errutil"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
)

// recordEvent appends a lifecycle event to the audit table. Audit
// failures are reported but never fail the mutation that produced them.
func (x *UseCase) recordEvent(ctx context.Context, event *model.RootEvent) {
	if x.clients.BigQuery() == nil {
		return
	}

	event.ID, _ = logging.CtxRequestID(ctx)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := x.insertEvent(ctx, event); err != nil {
		errutil.HandleError(ctx, "failed to record root event", err)
	}
}

func (x *UseCase) insertEvent(ctx context.Context, event *model.RootEvent) error {
	schema, err := createOrUpdateEventTable(ctx, x.clients.BigQuery(), event)
	if err != nil {
		return err
	}

	rawRecord := &model.RootEventRawRecord{
		RootEvent: *event,
		Timestamp: event.Timestamp.UnixMicro(),
	}
	if err := x.clients.BigQuery().Insert(ctx, schema, rawRecord); err != nil {
		return goerr.Wrap(err, "failed to insert root event to BigQuery")
	}
	return nil
}

func createOrUpdateEventTable(ctx context.Context, bq interfaces.BigQuery, event *model.RootEvent) (bigquery.Schema, error) {
	schema, err := bqs.Infer(event)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer event schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}

func newEvent(action model.RootAction, root *model.RootCommon, kind types.RootKind) *model.RootEvent {
	return &model.RootEvent{
		Timestamp: time.Now().UTC(),
		Action:    action,
		GroupID:   root.GroupID,
		RootID:    root.ID,
		RootKind:  kind,
		Nickname:  root.Nickname,
	}
}
