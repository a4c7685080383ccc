package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/rules"
	"github.com/fluidattacks/roots/pkg/domain/types"
)

// UseCase is the lifecycle controller surface consumed by the HTTP API.
type UseCase interface {
	AddGitRoot(ctx context.Context, input *model.AddGitRootInput) (*model.GitRoot, error)
	UpdateGitRoot(ctx context.Context, input *model.UpdateGitRootInput) (*model.GitRoot, error)
	ActivateRoot(ctx context.Context, rootID types.RootID) error
	DeactivateRoot(ctx context.Context, input *model.DeactivateRootInput) (model.OpenVulns, error)
	PreviewDeactivation(ctx context.Context, rootID types.RootID) (model.OpenVulns, error)
	MoveRoot(ctx context.Context, input *model.MoveRootInput) error
	MoveSuggestions(ctx context.Context, rootID types.RootID) ([]*model.Group, error)
	SyncRoot(ctx context.Context, rootID types.RootID) error
	SyncPushedRepo(ctx context.Context, input *model.SyncPushedRepoInput) error
	CheckAccess(ctx context.Context, input *model.CheckAccessInput) (bool, error)

	ListRoots(ctx context.Context, groupID types.GroupID) ([]model.Root, error)
	ListOrganizationCredentials(ctx context.Context, orgID types.OrgID) ([]*model.Credential, error)

	ValidateForm(ctx context.Context, form *model.GitRootForm) ([]rules.Violation, error)

	AddEnvironmentURL(ctx context.Context, input *model.AddEnvironmentURLInput) (*model.EnvironmentURL, error)
	RemoveEnvironmentURL(ctx context.Context, rootID types.RootID, id types.EnvURLID) error
	AddEnvironmentSecret(ctx context.Context, input *model.AddEnvironmentSecretInput) error
	ListGroupFiles(ctx context.Context, groupID types.GroupID) ([]string, error)
}
