package usecase

import (
	"context"
	"time"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// UpdateGitRoot edits a registered git root. A branch change must be
// explicitly confirmed, and the stored state is only replaced after the
// scanning engine accepts the edit.
func (x *UseCase) UpdateGitRoot(ctx context.Context, input *model.UpdateGitRootInput) (*model.GitRoot, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	unlock, err := x.lockRoot(input.Form.RootID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := x.getGitRoot(ctx, input.Form.RootID)
	if err != nil {
		return nil, err
	}
	input.Form.GroupID = existing.GroupID

	evaluated, err := x.evaluateForm(ctx, &input.Form)
	if err != nil {
		return nil, err
	}
	if len(evaluated.violations) > 0 {
		return nil, &FormError{Violations: evaluated.violations}
	}

	branchChanged := string(existing.Branch) != input.Form.Branch
	if branchChanged && !input.BranchChangeConfirmed {
		return nil, goerr.Wrap(types.ErrBranchChangeUnconfirmed, "branch edit not confirmed",
			goerr.V("rootID", existing.ID),
			goerr.V("from", existing.Branch),
			goerr.V("to", input.Form.Branch),
		)
	}

	updated := buildGitRoot(&input.Form, existing.ID)
	updated.State = existing.State
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	updated.EnvironmentURLs = existing.EnvironmentURLs
	if !branchChanged {
		updated.Cloning = existing.Cloning
	}
	// An acknowledgement already on file survives an edit that omits it.
	if updated.IncludesHealthCheck == nil {
		updated.IncludesHealthCheck = existing.IncludesHealthCheck
		updated.HealthCheckConfirm = existing.HealthCheckConfirm
	}

	if err := x.clients.Scanner().UpdateRoot(ctx, updated, branchChanged); err != nil {
		return nil, x.translateRemoteError(ctx, err)
	}

	if err := x.clients.RootRepository().UpdateRoot(ctx, updated); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Updated git root",
		"rootID", updated.ID,
		"branchChanged", branchChanged,
	)
	x.recordEvent(ctx, newEvent(model.RootActionUpdate, &updated.RootCommon, types.RootKindGit))

	return updated, nil
}

// getGitRoot loads a root and asserts it is the git variant.
func (x *UseCase) getGitRoot(ctx context.Context, rootID types.RootID) (*model.GitRoot, error) {
	root, err := x.clients.RootRepository().GetRoot(ctx, rootID)
	if err != nil {
		return nil, err
	}
	git, ok := root.(*model.GitRoot)
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidOption, "root is not a git root",
			goerr.V("rootID", rootID),
			goerr.V("kind", root.Kind()),
		)
	}
	return git, nil
}
