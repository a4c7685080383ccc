package interfaces

import (
	"context"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
)

// RootRepository persists roots, their environment URLs and secrets, the
// owning groups, and the open-finding counters used by deactivation.
type RootRepository interface {
	// Root operations. Roots are soft-state: deactivation updates them,
	// nothing deletes them.
	CreateRoot(ctx context.Context, root model.Root) error
	GetRoot(ctx context.Context, rootID types.RootID) (model.Root, error)
	ListRoots(ctx context.Context, groupID types.GroupID) ([]model.Root, error)
	UpdateRoot(ctx context.Context, root model.Root) error

	// FindGitRoots returns the Git roots registered for any of the given
	// repository URLs, across all groups. The push webhook uses it to
	// locate the targets of an incoming commit.
	FindGitRoots(ctx context.Context, urls []string) ([]*model.GitRoot, error)

	// Group operations.
	SaveGroup(ctx context.Context, group *model.Group) error
	GetGroup(ctx context.Context, groupID types.GroupID) (*model.Group, error)
	ListSiblingGroups(ctx context.Context, orgID types.OrgID) ([]*model.Group, error)

	// Environment URL operations. RemoveEnvironmentURL of an unknown ID
	// is a no-op success.
	AddEnvironmentURL(ctx context.Context, envURL *model.EnvironmentURL) error
	RemoveEnvironmentURL(ctx context.Context, rootID types.RootID, id types.EnvURLID) error
	ListEnvironmentURLs(ctx context.Context, rootID types.RootID) ([]*model.EnvironmentURL, error)
	AddEnvironmentSecret(ctx context.Context, rootID types.RootID, id types.EnvURLID, secret *model.Secret) error

	// Shared credential operations. Saving an inline credential under an
	// organization makes it selectable as an existing credential.
	SaveOrganizationCredential(ctx context.Context, orgID types.OrgID, cred *model.Credential) error
	ListOrganizationCredentials(ctx context.Context, orgID types.OrgID) ([]*model.Credential, error)

	// Open-finding counters, recorded by the scan ingestion pipeline,
	// consumed by the deactivation preview and closed as a consequence
	// of deactivation.
	RecordOpenVulns(ctx context.Context, rootID types.RootID, kind types.VulnKind, count int) error
	CountOpenVulns(ctx context.Context, rootID types.RootID) (model.OpenVulns, error)
	CloseVulns(ctx context.Context, rootID types.RootID) (model.OpenVulns, error)
}
