package gcs_test

import (
	"context"
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra/gcs"
	"github.com/fluidattacks/roots/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("empty bucket fails", func(t *testing.T) {
		_, err := gcs.New(context.Background(), "")
		gt.Error(t, err)
	})
}

func TestListGroupFiles(t *testing.T) {
	bucket := testutil.GetEnvOrSkip(t, "TEST_GCS_BUCKET")
	groupID := testutil.GetEnvOrSkip(t, "TEST_GCS_GROUP_ID")

	ctx := context.Background()
	client := gt.R1(gcs.New(ctx, types.GCSBucketName(bucket))).NoError(t)
	defer client.Close()

	files := gt.R1(client.ListGroupFiles(ctx, types.GroupID(groupID))).NoError(t)
	for _, f := range files {
		gt.V(t, f).NotEqual("")
	}
}
