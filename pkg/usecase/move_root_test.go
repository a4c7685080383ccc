package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra/scanner"
	"github.com/fluidattacks/roots/pkg/usecase"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

func (e *testEnv) saveGroup(t *testing.T, org types.OrgID, tier types.PlanTier) *model.Group {
	t.Helper()
	group := &model.Group{
		ID:   types.GroupID("group-" + uuid.NewString()[:8]),
		Org:  org,
		Name: "sibling",
		Tier: tier,
	}
	gt.NoError(t, e.repo.SaveGroup(context.Background(), group))
	return group
}

func TestMoveSuggestions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	root := env.addRoot(t, "universe")

	sameTier := env.saveGroup(t, env.group.Org, types.PlanTierMachine)
	// Neither a different tier nor a different organization qualifies.
	env.saveGroup(t, env.group.Org, types.PlanTierSquad)
	env.saveGroup(t, types.OrgID(uuid.NewString()), types.PlanTierMachine)

	suggestions := gt.R1(env.uc.MoveSuggestions(ctx, root.ID)).NoError(t)
	gt.V(t, len(suggestions)).Equal(1)
	gt.V(t, suggestions[0].ID).Equal(sameTier.ID)
}

func TestMoveRoot(t *testing.T) {
	ctx := context.Background()

	t.Run("move to a sibling group", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")
		target := env.saveGroup(t, env.group.Org, types.PlanTierMachine)

		gt.NoError(t, env.uc.MoveRoot(ctx, &model.MoveRootInput{
			RootID:      root.ID,
			TargetGroup: target.ID,
		}))

		stored := gt.R1(env.repo.GetRoot(ctx, root.ID)).NoError(t)
		gt.V(t, stored.Common().GroupID).Equal(target.ID)

		moved := gt.R1(env.repo.ListRoots(ctx, target.ID)).NoError(t)
		gt.V(t, len(moved)).Equal(1)
	})

	t.Run("target outside the suggestion set is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")
		otherTier := env.saveGroup(t, env.group.Org, types.PlanTierSquad)

		err := env.uc.MoveRoot(ctx, &model.MoveRootInput{
			RootID:      root.ID,
			TargetGroup: otherTier.ID,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
		gt.V(t, len(env.scanner.MoveRootCalls())).Equal(0)
	})

	t.Run("destination conflict is translated", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")
		target := env.saveGroup(t, env.group.Org, types.PlanTierMachine)

		env.scanner.MoveRootFunc = func(ctx context.Context, rootID types.RootID, targetGroup types.GroupID) error {
			return &scanner.Error{
				Op:    "moveRoot",
				Codes: []string{scanner.CodeRepeatedNickname},
			}
		}

		err := env.uc.MoveRoot(ctx, &model.MoveRootInput{
			RootID:      root.ID,
			TargetGroup: target.ID,
		})

		var rejection *usecase.Rejection
		gt.True(t, errors.As(err, &rejection))
		gt.V(t, rejection.MessageKeys[0]).Equal(usecase.MsgRepeatedNickname)

		// The root stays in its source group.
		stored := gt.R1(env.repo.GetRoot(ctx, root.ID)).NoError(t)
		gt.V(t, stored.Common().GroupID).Equal(env.group.ID)
	})
}
