package usecase

import (
	"context"
	"time"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/logging"
)

// AddGitRoot registers a new git root and activates it. The form must
// pass the full constraint schema; the scanning engine must accept the
// root before anything is committed locally.
func (x *UseCase) AddGitRoot(ctx context.Context, input *model.AddGitRootInput) (*model.GitRoot, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	evaluated, err := x.evaluateForm(ctx, &input.Form)
	if err != nil {
		return nil, err
	}
	if len(evaluated.violations) > 0 {
		return nil, &FormError{Violations: evaluated.violations}
	}

	root := buildGitRoot(&input.Form, types.NewRootID())

	unlock, err := x.lockRoot(root.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := x.clients.Scanner().AddRoot(ctx, root); err != nil {
		return nil, x.translateRemoteError(ctx, err)
	}

	if err := x.clients.RootRepository().CreateRoot(ctx, root); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Added git root",
		"rootID", root.ID,
		"groupID", root.GroupID,
		"nickname", root.Nickname,
	)
	x.recordEvent(ctx, newEvent(model.RootActionAdd, &root.RootCommon, types.RootKindGit))

	return root, nil
}

// buildGitRoot materializes the validated form into a domain root. The
// nickname falls back to the slug of the repository basename.
func buildGitRoot(form *model.GitRootForm, rootID types.RootID) *model.GitRoot {
	nickname := types.Nickname(form.Nickname)
	if nickname == "" {
		nickname = model.DeriveNickname(form.URL)
	}

	now := time.Now().UTC()
	return &model.GitRoot{
		RootCommon: model.RootCommon{
			ID:        rootID,
			GroupID:   form.GroupID,
			Nickname:  nickname,
			State:     types.RootStateActive,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Branch:              types.BranchName(form.Branch),
		URL:                 form.URL,
		Environment:         form.Environment,
		Gitignore:           form.Gitignore,
		UseVPN:              form.UseVPN,
		Credentials:         form.Credential.Credential(),
		IncludesHealthCheck: form.IncludesHealthCheck,
		HealthCheckConfirm:  form.HealthCheckConfirm,
		Cloning: model.CloningStatus{
			Status: types.CloningStateQueued,
		},
	}
}
