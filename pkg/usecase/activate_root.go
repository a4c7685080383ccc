package usecase

import (
	"context"
	"time"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ActivateRoot returns an inactive root to scanning scope. The nickname
// must not be held by another active root of the group; the repository
// enforces that on commit, and the scanning engine rejects URL/branch
// duplicates.
func (x *UseCase) ActivateRoot(ctx context.Context, rootID types.RootID) error {
	unlock, err := x.lockRoot(rootID)
	if err != nil {
		return err
	}
	defer unlock()

	root, err := x.clients.RootRepository().GetRoot(ctx, rootID)
	if err != nil {
		return err
	}
	common := root.Common()
	if common.State == types.RootStateActive {
		return goerr.Wrap(types.ErrInvalidOption, "root is already active",
			goerr.V("rootID", rootID),
		)
	}

	if err := x.clients.Scanner().ActivateRoot(ctx, rootID); err != nil {
		return x.translateRemoteError(ctx, err)
	}

	common.State = types.RootStateActive
	common.DeactivationReason = ""
	common.DeactivationOther = ""
	common.UpdatedAt = time.Now().UTC()
	if err := x.clients.RootRepository().UpdateRoot(ctx, root); err != nil {
		return err
	}

	logging.From(ctx).Info("Activated root", "rootID", rootID)
	x.recordEvent(ctx, newEvent(model.RootActionActivate, common, root.Kind()))

	return nil
}
