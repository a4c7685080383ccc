package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/errutil"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// SyncRoot triggers an out-of-band re-clone. The root must be active
// and have credentials configured; a sync while a clone is already
// running is rejected, not queued.
func (x *UseCase) SyncRoot(ctx context.Context, rootID types.RootID) error {
	unlock, err := x.lockRoot(rootID)
	if err != nil {
		return err
	}
	defer unlock()

	git, err := x.getGitRoot(ctx, rootID)
	if err != nil {
		return err
	}
	if git.State != types.RootStateActive {
		return goerr.Wrap(types.ErrInvalidOption, "only active roots can sync",
			goerr.V("rootID", rootID),
		)
	}
	if git.Credentials == nil {
		return &Rejection{
			MessageKeys: []string{MsgNoCredentials},
		}
	}
	if git.Cloning.Status.InFlight() {
		return &Rejection{
			MessageKeys: []string{MsgAlreadyCloning},
		}
	}

	if err := x.clients.Scanner().SyncRoot(ctx, rootID); err != nil {
		return x.translateRemoteError(ctx, err)
	}

	git.Cloning = model.CloningStatus{Status: types.CloningStateQueued}
	git.UpdatedAt = time.Now().UTC()
	if err := x.clients.RootRepository().UpdateRoot(ctx, git); err != nil {
		return err
	}

	logging.From(ctx).Info("Queued root sync", "rootID", rootID)
	x.recordEvent(ctx, newEvent(model.RootActionSync, &git.RootCommon, types.RootKindGit))

	return nil
}

// SyncPushedRepo re-clones every active Git root tracking the pushed
// repository and branch. Roots that cannot sync right now (no
// credentials, clone in flight, busy) are skipped: a push must not fail
// because one of its targets is mid-mutation.
func (x *UseCase) SyncPushedRepo(ctx context.Context, input *model.SyncPushedRepoInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	roots, err := x.clients.RootRepository().FindGitRoots(ctx, input.CloneURLs)
	if err != nil {
		return err
	}

	for _, git := range roots {
		if git.State != types.RootStateActive || string(git.Branch) != input.Branch {
			continue
		}

		if err := x.SyncRoot(ctx, git.ID); err != nil {
			var rejection *Rejection
			if errors.As(err, &rejection) || errors.Is(err, types.ErrRootBusy) {
				logging.From(ctx).Debug("Skipped push-triggered sync",
					"rootID", git.ID,
					"error", err,
				)
				continue
			}
			errutil.HandleError(ctx, "push-triggered sync failed", err)
		}
	}
	return nil
}
