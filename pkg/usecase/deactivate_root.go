package usecase

import (
	"context"
	"time"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// PreviewDeactivation reports how many open findings would be closed by
// deactivating the root, without changing anything.
func (x *UseCase) PreviewDeactivation(ctx context.Context, rootID types.RootID) (model.OpenVulns, error) {
	if _, err := x.clients.RootRepository().GetRoot(ctx, rootID); err != nil {
		return model.OpenVulns{}, err
	}
	return x.clients.RootRepository().CountOpenVulns(ctx, rootID)
}

// DeactivateRoot takes an active root out of scanning scope. Open
// findings attached to the root are closed as a consequence and the
// closed counts are returned.
func (x *UseCase) DeactivateRoot(ctx context.Context, input *model.DeactivateRootInput) (model.OpenVulns, error) {
	if err := input.Validate(); err != nil {
		return model.OpenVulns{}, err
	}

	unlock, err := x.lockRoot(input.RootID)
	if err != nil {
		return model.OpenVulns{}, err
	}
	defer unlock()

	root, err := x.clients.RootRepository().GetRoot(ctx, input.RootID)
	if err != nil {
		return model.OpenVulns{}, err
	}
	common := root.Common()
	if common.State != types.RootStateActive {
		return model.OpenVulns{}, goerr.Wrap(types.ErrInvalidOption, "root is not active",
			goerr.V("rootID", input.RootID),
		)
	}

	if err := x.clients.Scanner().DeactivateRoot(ctx, input.RootID, input.Reason, input.Other); err != nil {
		return model.OpenVulns{}, x.translateRemoteError(ctx, err)
	}

	common.State = types.RootStateInactive
	common.DeactivationReason = input.Reason
	common.DeactivationOther = input.Other
	common.UpdatedAt = time.Now().UTC()
	if err := x.clients.RootRepository().UpdateRoot(ctx, root); err != nil {
		return model.OpenVulns{}, err
	}

	closed, err := x.clients.RootRepository().CloseVulns(ctx, input.RootID)
	if err != nil {
		return model.OpenVulns{}, err
	}

	logging.From(ctx).Info("Deactivated root",
		"rootID", input.RootID,
		"reason", input.Reason,
		"closedFindings", closed.Total(),
	)

	event := newEvent(model.RootActionDeactivate, common, root.Kind())
	event.ClosedSAST = closed.SAST
	event.ClosedDAST = closed.DAST
	x.recordEvent(ctx, event)

	return closed, nil
}
