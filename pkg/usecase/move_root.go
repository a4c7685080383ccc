package usecase

import (
	"context"
	"time"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// MoveSuggestions lists the groups a root may legally move to: the
// sibling groups of the same organization sharing the same scanning
// tier, excluding the root's current group.
func (x *UseCase) MoveSuggestions(ctx context.Context, rootID types.RootID) ([]*model.Group, error) {
	root, err := x.clients.RootRepository().GetRoot(ctx, rootID)
	if err != nil {
		return nil, err
	}
	return x.moveSuggestionsLocked(ctx, root)
}

// MoveRoot transfers an active root to a sibling group. The target must
// come from the suggestion set; duplicate nickname or URL conflicts in
// the destination are reported by the scanning engine.
func (x *UseCase) MoveRoot(ctx context.Context, input *model.MoveRootInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	unlock, err := x.lockRoot(input.RootID)
	if err != nil {
		return err
	}
	defer unlock()

	root, err := x.clients.RootRepository().GetRoot(ctx, input.RootID)
	if err != nil {
		return err
	}
	common := root.Common()
	if common.State != types.RootStateActive {
		return goerr.Wrap(types.ErrInvalidOption, "only active roots can move",
			goerr.V("rootID", input.RootID),
		)
	}

	suggestions, err := x.moveSuggestionsLocked(ctx, root)
	if err != nil {
		return err
	}
	allowed := false
	for _, group := range suggestions {
		if group.ID == input.TargetGroup {
			allowed = true
			break
		}
	}
	if !allowed {
		return goerr.Wrap(types.ErrInvalidOption, "target group is not a legal destination",
			goerr.V("rootID", input.RootID),
			goerr.V("target", input.TargetGroup),
		)
	}

	if err := x.clients.Scanner().MoveRoot(ctx, input.RootID, input.TargetGroup); err != nil {
		return x.translateRemoteError(ctx, err)
	}

	sourceGroup := common.GroupID
	common.GroupID = input.TargetGroup
	common.UpdatedAt = time.Now().UTC()
	if err := x.clients.RootRepository().UpdateRoot(ctx, root); err != nil {
		return err
	}

	logging.From(ctx).Info("Moved root",
		"rootID", input.RootID,
		"from", sourceGroup,
		"to", input.TargetGroup,
	)

	event := newEvent(model.RootActionMove, common, root.Kind())
	event.GroupID = sourceGroup
	event.TargetGroup = input.TargetGroup
	x.recordEvent(ctx, event)

	return nil
}

// moveSuggestionsLocked computes the suggestion set for an already
// loaded root; MoveRoot holds the root lock and must not reload it.
func (x *UseCase) moveSuggestionsLocked(ctx context.Context, root model.Root) ([]*model.Group, error) {
	repo := x.clients.RootRepository()

	group, err := repo.GetGroup(ctx, root.Common().GroupID)
	if err != nil {
		return nil, err
	}

	siblings, err := repo.ListSiblingGroups(ctx, group.Org)
	if err != nil {
		return nil, err
	}

	var suggestions []*model.Group
	for _, sibling := range siblings {
		if sibling.ID == group.ID || sibling.Tier != group.Tier {
			continue
		}
		suggestions = append(suggestions, sibling)
	}
	return suggestions, nil
}
