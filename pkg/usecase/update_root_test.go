package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestUpdateGitRoot(t *testing.T) {
	ctx := context.Background()

	t.Run("edit without branch change", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		form := env.validForm("universe")
		form.RootID = root.ID
		form.Environment = "production"

		updated := gt.R1(env.uc.UpdateGitRoot(ctx, &model.UpdateGitRootInput{Form: form})).NoError(t)
		gt.V(t, updated.Environment).Equal("production")
		gt.V(t, updated.Cloning.Status).Equal(root.Cloning.Status)

		calls := env.scanner.UpdateRootCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.False(t, calls[0].BranchChanged)
	})

	t.Run("branch change requires confirmation", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		form := env.validForm("universe")
		form.RootID = root.ID
		form.Branch = "develop"

		_, err := env.uc.UpdateGitRoot(ctx, &model.UpdateGitRootInput{Form: form})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrBranchChangeUnconfirmed))
		gt.V(t, len(env.scanner.UpdateRootCalls())).Equal(0)

		// Confirmed: dispatched with the branch-changed flag, clone queued.
		updated := gt.R1(env.uc.UpdateGitRoot(ctx, &model.UpdateGitRootInput{
			Form:                  form,
			BranchChangeConfirmed: true,
		})).NoError(t)
		gt.V(t, string(updated.Branch)).Equal("develop")
		gt.V(t, updated.Cloning.Status).Equal(types.CloningStateQueued)

		calls := env.scanner.UpdateRootCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.True(t, calls[0].BranchChanged)
	})

	t.Run("unchanged nickname never collides with itself", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		form := env.validForm("universe")
		form.RootID = root.ID
		form.Nickname = string(root.Nickname)

		updated := gt.R1(env.uc.UpdateGitRoot(ctx, &model.UpdateGitRootInput{Form: form})).NoError(t)
		gt.V(t, updated.Nickname).Equal(root.Nickname)
	})

	t.Run("health check acknowledgement survives omission on edit", func(t *testing.T) {
		env := newTestEnv(t, withTier(types.PlanTierSquad))

		form := env.validForm("universe")
		include := true
		form.IncludesHealthCheck = &include
		form.HealthCheckConfirm = []string{types.HealthCheckAccept}
		root := gt.R1(env.uc.AddGitRoot(ctx, &model.AddGitRootInput{Form: form})).NoError(t)

		// The edit form omits the acknowledgement; it is already on file.
		edit := env.validForm("universe")
		edit.RootID = root.ID
		edit.Environment = "staging"

		updated := gt.R1(env.uc.UpdateGitRoot(ctx, &model.UpdateGitRootInput{Form: edit})).NoError(t)
		gt.V(t, *updated.IncludesHealthCheck).Equal(true)
	})
}
