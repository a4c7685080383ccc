package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestDeactivateRoot(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivation closes open findings", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		gt.NoError(t, env.repo.RecordOpenVulns(ctx, root.ID, types.VulnKindSAST, 5))
		gt.NoError(t, env.repo.RecordOpenVulns(ctx, root.ID, types.VulnKindDAST, 2))

		preview := gt.R1(env.uc.PreviewDeactivation(ctx, root.ID)).NoError(t)
		gt.V(t, preview.SAST).Equal(5)
		gt.V(t, preview.DAST).Equal(2)

		// Preview changes nothing.
		stored := gt.R1(env.repo.GetRoot(ctx, root.ID)).NoError(t)
		gt.V(t, stored.Common().State).Equal(types.RootStateActive)

		closed := gt.R1(env.uc.DeactivateRoot(ctx, &model.DeactivateRootInput{
			RootID: root.ID,
			Reason: types.ReasonOutOfScope,
		})).NoError(t)
		gt.V(t, closed.Total()).Equal(7)

		stored = gt.R1(env.repo.GetRoot(ctx, root.ID)).NoError(t)
		gt.V(t, stored.Common().State).Equal(types.RootStateInactive)
		gt.V(t, stored.Common().DeactivationReason).Equal(types.ReasonOutOfScope)

		remaining := gt.R1(env.repo.CountOpenVulns(ctx, root.ID)).NoError(t)
		gt.V(t, remaining.Total()).Equal(0)
	})

	t.Run("reason OTHER requires elaboration", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		_, err := env.uc.DeactivateRoot(ctx, &model.DeactivateRootInput{
			RootID: root.ID,
			Reason: types.ReasonOther,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))

		_, err = env.uc.DeactivateRoot(ctx, &model.DeactivateRootInput{
			RootID: root.ID,
			Reason: types.ReasonOther,
			Other:  "repository archived upstream",
		})
		gt.NoError(t, err)
	})

	t.Run("inactive root cannot deactivate again", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		gt.R1(env.uc.DeactivateRoot(ctx, &model.DeactivateRootInput{
			RootID: root.ID,
			Reason: types.ReasonMistake,
		})).NoError(t)

		_, err := env.uc.DeactivateRoot(ctx, &model.DeactivateRootInput{
			RootID: root.ID,
			Reason: types.ReasonMistake,
		})
		gt.Error(t, err)
	})
}

func TestActivateRoot(t *testing.T) {
	ctx := context.Background()

	t.Run("reactivation restores scanning scope", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		gt.R1(env.uc.DeactivateRoot(ctx, &model.DeactivateRootInput{
			RootID: root.ID,
			Reason: types.ReasonOutOfScope,
		})).NoError(t)

		gt.NoError(t, env.uc.ActivateRoot(ctx, root.ID))

		stored := gt.R1(env.repo.GetRoot(ctx, root.ID)).NoError(t)
		gt.V(t, stored.Common().State).Equal(types.RootStateActive)
		gt.V(t, string(stored.Common().DeactivationReason)).Equal("")
	})

	t.Run("active root cannot activate again", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		err := env.uc.ActivateRoot(ctx, root.ID)
		gt.Error(t, err)
		gt.V(t, len(env.scanner.ActivateRootCalls())).Equal(0)
	})

	t.Run("reactivation collides with a nickname taken meanwhile", func(t *testing.T) {
		env := newTestEnv(t)
		first := env.addRoot(t, "universe")

		gt.R1(env.uc.DeactivateRoot(ctx, &model.DeactivateRootInput{
			RootID: first.ID,
			Reason: types.ReasonMistake,
		})).NoError(t)

		// Another root claims the nickname while the first is inactive.
		env.addRoot(t, "universe")

		err := env.uc.ActivateRoot(ctx, first.ID)
		gt.Error(t, err)
	})
}
