package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/mock"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra"
	"github.com/fluidattacks/roots/pkg/repository/memory"
	"github.com/fluidattacks/roots/pkg/usecase"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

type testEnv struct {
	uc      *usecase.UseCase
	repo    interfaces.RootRepository
	scanner *mock.ScannerMock
	storage *mock.StorageMock
	github  *mock.GitHubAppMock
	group   *model.Group
}

type envOption func(*testEnv)

func withTier(tier types.PlanTier) envOption {
	return func(e *testEnv) {
		e.group.Tier = tier
	}
}

func withGitHubApp(app *mock.GitHubAppMock) envOption {
	return func(e *testEnv) {
		e.github = app
	}
}

// newTestEnv builds a controller over the in-memory repository with a
// scanner that accepts everything by default.
func newTestEnv(t *testing.T, options ...envOption) *testEnv {
	t.Helper()

	env := &testEnv{
		repo: memory.New(),
		scanner: &mock.ScannerMock{
			AddRootFunc: func(ctx context.Context, root *model.GitRoot) error {
				return nil
			},
			UpdateRootFunc: func(ctx context.Context, root *model.GitRoot, branchChanged bool) error {
				return nil
			},
			ActivateRootFunc: func(ctx context.Context, rootID types.RootID) error {
				return nil
			},
			DeactivateRootFunc: func(ctx context.Context, rootID types.RootID, reason types.DeactivationReason, other string) error {
				return nil
			},
			MoveRootFunc: func(ctx context.Context, rootID types.RootID, target types.GroupID) error {
				return nil
			},
			SyncRootFunc: func(ctx context.Context, rootID types.RootID) error {
				return nil
			},
			ValidateAccessFunc: func(ctx context.Context, input *interfaces.ValidateAccessInput) error {
				return nil
			},
		},
		storage: &mock.StorageMock{
			ListGroupFilesFunc: func(ctx context.Context, groupID types.GroupID) ([]string, error) {
				return []string{"app-release.apk"}, nil
			},
		},
		group: &model.Group{
			ID:   types.GroupID(fmt.Sprintf("group-%s", uuid.NewString()[:8])),
			Org:  types.OrgID(uuid.NewString()),
			Name: "unittesting",
			Tier: types.PlanTierMachine,
		},
	}

	for _, opt := range options {
		opt(env)
	}

	gt.NoError(t, env.repo.SaveGroup(context.Background(), env.group))

	infraOptions := []infra.Option{
		infra.WithRootRepository(env.repo),
		infra.WithScanner(env.scanner),
		infra.WithStorage(env.storage),
	}
	if env.github != nil {
		infraOptions = append(infraOptions, infra.WithGitHubApp(env.github))
	}

	env.uc = usecase.New(infra.New(infraOptions...))
	return env
}

// validForm returns a form that passes the constraint schema for a
// MACHINE-tier group.
func (e *testEnv) validForm(repoName string) model.GitRootForm {
	return model.GitRootForm{
		GroupID: e.group.ID,
		URL:     "https://gitlab.com/org/" + repoName,
		Branch:  "main",
		Credential: model.CredentialForm{
			Name:  "deploy token",
			Kind:  types.CredentialKindToken,
			Token: "glpat-xxxx",
		},
	}
}

func (e *testEnv) addRoot(t *testing.T, repoName string) *model.GitRoot {
	t.Helper()
	form := e.validForm(repoName)
	root := gt.R1(e.uc.AddGitRoot(context.Background(), &model.AddGitRootInput{Form: form})).NoError(t)
	return root
}
