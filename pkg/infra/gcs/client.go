// Package gcs lists the files uploaded for a group, backing the APK
// environment URL picker.
package gcs

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type Client struct {
	client *storage.Client
	bucket types.GCSBucketName
}

var _ interfaces.Storage = (*Client)(nil)

func New(ctx context.Context, bucket types.GCSBucketName, options ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket name is empty")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

// ListGroupFiles returns the object names under the group's upload
// prefix, with the prefix stripped.
func (x *Client) ListGroupFiles(ctx context.Context, groupID types.GroupID) ([]string, error) {
	prefix := "groups/" + string(groupID) + "/files/"

	it := x.client.Bucket(string(x.bucket)).Objects(ctx, &storage.Query{
		Prefix: prefix,
	})

	var files []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list group files",
				goerr.V("bucket", x.bucket),
				goerr.V("groupID", groupID),
			)
		}

		name := strings.TrimPrefix(attrs.Name, prefix)
		if name == "" {
			continue
		}
		files = append(files, name)
	}

	return files, nil
}

func (x *Client) Close() error {
	return x.client.Close()
}
