package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Scanner BigQuery GitHubApp Storage

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
)

// Scanner is the remote scanning engine RPC. Every operation either
// succeeds or fails with a closed set of string error codes; see
// pkg/infra/scanner.
type Scanner interface {
	AddRoot(ctx context.Context, root *model.GitRoot) error
	UpdateRoot(ctx context.Context, root *model.GitRoot, branchChanged bool) error
	ActivateRoot(ctx context.Context, rootID types.RootID) error
	DeactivateRoot(ctx context.Context, rootID types.RootID, reason types.DeactivationReason, other string) error
	MoveRoot(ctx context.Context, rootID types.RootID, target types.GroupID) error
	SyncRoot(ctx context.Context, rootID types.RootID) error
	ValidateAccess(ctx context.Context, input *ValidateAccessInput) error
}

// ValidateAccessInput is the combination probed by check-access.
type ValidateAccessInput struct {
	URL        string
	Branch     string
	Credential *model.Credential
}

// BigQuery appends lifecycle events to the audit table.
type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHubApp probes repository metadata for github.com roots with an
// installation-scoped client.
type GitHubApp interface {
	BranchExists(ctx context.Context, input *BranchProbeInput) (bool, error)
}

// BranchProbeInput identifies the branch checked before a root is saved.
type BranchProbeInput struct {
	Owner     string
	Repo      string
	Branch    types.BranchName
	InstallID types.GitHubAppInstallID
}

// Storage lists the files uploaded for a group, backing the APK
// environment URL picker.
type Storage interface {
	ListGroupFiles(ctx context.Context, groupID types.GroupID) ([]string, error)
}
