package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestSyncRoot(t *testing.T) {
	ctx := context.Background()

	t.Run("sync queues a new clone", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		// Simulate a finished clone so the sync is not in flight.
		root.Cloning.Status = types.CloningStateOK
		gt.NoError(t, env.repo.UpdateRoot(ctx, root))

		gt.NoError(t, env.uc.SyncRoot(ctx, root.ID))
		gt.V(t, len(env.scanner.SyncRootCalls())).Equal(1)

		stored := gt.R1(env.uc.ListRoots(ctx, env.group.ID)).NoError(t)
		gt.V(t, len(stored)).Equal(1)
		git := gt.Cast[*model.GitRoot](t, stored[0])
		gt.V(t, git.Cloning.Status).Equal(types.CloningStateQueued)
	})

	t.Run("sync without credentials is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		root.Credentials = nil
		root.Cloning.Status = types.CloningStateOK
		gt.NoError(t, env.repo.UpdateRoot(ctx, root))

		err := env.uc.SyncRoot(ctx, root.ID)
		var rejection *usecase.Rejection
		gt.True(t, errors.As(err, &rejection))
		gt.V(t, rejection.MessageKeys[0]).Equal(usecase.MsgNoCredentials)
		gt.V(t, len(env.scanner.SyncRootCalls())).Equal(0)
	})

	t.Run("sync while cloning is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		// A freshly added root is still QUEUED.
		err := env.uc.SyncRoot(ctx, root.ID)
		var rejection *usecase.Rejection
		gt.True(t, errors.As(err, &rejection))
		gt.V(t, rejection.MessageKeys[0]).Equal(usecase.MsgAlreadyCloning)
	})

	t.Run("push sync targets matching roots only", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")
		env.addRoot(t, "cosmos")

		root.Cloning.Status = types.CloningStateOK
		gt.NoError(t, env.repo.UpdateRoot(ctx, root))

		gt.NoError(t, env.uc.SyncPushedRepo(ctx, &model.SyncPushedRepoInput{
			CloneURLs: []string{"https://gitlab.com/org/universe"},
			Branch:    "main",
		}))

		calls := env.scanner.SyncRootCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].RootID).Equal(root.ID)

		// A push to another branch is not this root's business.
		gt.NoError(t, env.uc.SyncPushedRepo(ctx, &model.SyncPushedRepoInput{
			CloneURLs: []string{"https://gitlab.com/org/universe"},
			Branch:    "develop",
		}))
		gt.V(t, len(env.scanner.SyncRootCalls())).Equal(1)
	})

	t.Run("inactive root cannot sync", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		root.State = types.RootStateInactive
		root.Cloning.Status = types.CloningStateOK
		gt.NoError(t, env.repo.UpdateRoot(ctx, root))

		err := env.uc.SyncRoot(ctx, root.ID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
