package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/rules"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra/scanner"
	"github.com/fluidattacks/roots/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestAddGitRoot(t *testing.T) {
	ctx := context.Background()

	t.Run("valid form registers an active root", func(t *testing.T) {
		env := newTestEnv(t)

		root := env.addRoot(t, "universe")
		gt.V(t, root.State).Equal(types.RootStateActive)
		gt.V(t, string(root.Nickname)).Equal("universe")
		gt.V(t, root.Cloning.Status).Equal(types.CloningStateQueued)

		// Dispatched to the engine once, then committed.
		gt.V(t, len(env.scanner.AddRootCalls())).Equal(1)

		stored := gt.R1(env.repo.GetRoot(ctx, root.ID)).NoError(t)
		gt.V(t, stored.Common().Nickname).Equal(root.Nickname)
	})

	t.Run("violations block submission before dispatch", func(t *testing.T) {
		env := newTestEnv(t)

		form := env.validForm("universe")
		form.Branch = ""
		_, err := env.uc.AddGitRoot(ctx, &model.AddGitRootInput{Form: form})
		gt.Error(t, err)

		var formErr *usecase.FormError
		gt.True(t, errors.As(err, &formErr))
		gt.V(t, formErr.Violations[0].Field).Equal(rules.FieldBranch)
		gt.V(t, formErr.Violations[0].MessageKey).Equal(rules.MsgRequired)

		// Validation failures never reach the engine.
		gt.V(t, len(env.scanner.AddRootCalls())).Equal(0)
	})

	t.Run("nickname required when derived name is taken", func(t *testing.T) {
		env := newTestEnv(t)
		env.addRoot(t, "universe")

		// Same basename, different host path: derived nickname collides.
		form := env.validForm("universe")
		form.URL = "https://github.com/another/universe.git"
		_, err := env.uc.AddGitRoot(ctx, &model.AddGitRootInput{Form: form})

		var formErr *usecase.FormError
		gt.True(t, errors.As(err, &formErr))
		gt.V(t, formErr.Violations[0].Field).Equal(rules.FieldNickname)

		// An explicit distinct nickname resolves it.
		form.Nickname = "universe-mirror"
		root := gt.R1(env.uc.AddGitRoot(ctx, &model.AddGitRootInput{Form: form})).NoError(t)
		gt.V(t, string(root.Nickname)).Equal("universe-mirror")
	})

	t.Run("remote rejection is translated and nothing is committed", func(t *testing.T) {
		env := newTestEnv(t)
		env.scanner.AddRootFunc = func(ctx context.Context, root *model.GitRoot) error {
			return &scanner.Error{
				Op:    "addRoot",
				Codes: []string{scanner.CodeRepeatedRoot},
			}
		}

		form := env.validForm("universe")
		_, err := env.uc.AddGitRoot(ctx, &model.AddGitRootInput{Form: form})
		gt.Error(t, err)

		var rejection *usecase.Rejection
		gt.True(t, errors.As(err, &rejection))
		gt.V(t, rejection.MessageKeys[0]).Equal(usecase.MsgRepeatedRoot)

		// Failed mutation leaves the root list untouched.
		roots := gt.R1(env.repo.ListRoots(ctx, env.group.ID)).NoError(t)
		gt.V(t, len(roots)).Equal(0)
	})

	t.Run("unknown remote code becomes a generic failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.scanner.AddRootFunc = func(ctx context.Context, root *model.GitRoot) error {
			return &scanner.Error{
				Op:    "addRoot",
				Codes: []string{"Exception - Something never seen before"},
			}
		}

		form := env.validForm("universe")
		_, err := env.uc.AddGitRoot(ctx, &model.AddGitRootInput{Form: form})

		var rejection *usecase.Rejection
		gt.True(t, errors.As(err, &rejection))
		gt.V(t, rejection.MessageKeys[0]).Equal(usecase.MsgGenericFailure)
	})

	t.Run("health check acknowledgement required on advanced tier", func(t *testing.T) {
		env := newTestEnv(t, withTier(types.PlanTierSquad))

		form := env.validForm("universe")
		_, err := env.uc.AddGitRoot(ctx, &model.AddGitRootInput{Form: form})

		var formErr *usecase.FormError
		gt.True(t, errors.As(err, &formErr))

		fields := map[rules.Field]bool{}
		for _, v := range formErr.Violations {
			fields[v.Field] = true
		}
		gt.True(t, fields[rules.FieldIncludesHealthCheck])
		gt.True(t, fields[rules.FieldHealthCheckConfirm])

		// Accepting health checks with the include token passes.
		include := true
		form.IncludesHealthCheck = &include
		form.HealthCheckConfirm = []string{types.HealthCheckAccept}
		root := gt.R1(env.uc.AddGitRoot(ctx, &model.AddGitRootInput{Form: form})).NoError(t)
		gt.V(t, *root.IncludesHealthCheck).Equal(true)
	})
}
