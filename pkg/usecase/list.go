package usecase

import (
	"context"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
)

// ListRoots returns every root of the group, environment URLs included.
func (x *UseCase) ListRoots(ctx context.Context, groupID types.GroupID) ([]model.Root, error) {
	return x.clients.RootRepository().ListRoots(ctx, groupID)
}

// ListOrganizationCredentials lists the shared credentials selectable in
// the root form.
func (x *UseCase) ListOrganizationCredentials(ctx context.Context, orgID types.OrgID) ([]*model.Credential, error) {
	return x.clients.RootRepository().ListOrganizationCredentials(ctx, orgID)
}
