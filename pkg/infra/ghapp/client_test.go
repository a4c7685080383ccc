package ghapp_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra/ghapp"
	"github.com/fluidattacks/roots/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("missing appID fails", func(t *testing.T) {
		_, err := ghapp.New(0, "dummy-pem")
		gt.Error(t, err)
	})

	t.Run("missing pem fails", func(t *testing.T) {
		_, err := ghapp.New(12345, "")
		gt.Error(t, err)
	})

	t.Run("valid arguments succeed", func(t *testing.T) {
		client, err := ghapp.New(12345, "dummy-pem")
		gt.NoError(t, err)
		gt.V(t, client).NotEqual(nil)
	})
}

func TestBranchExists(t *testing.T) {
	appIDStr := testutil.GetEnvOrSkip(t, "TEST_GITHUB_APP_ID")
	pem := testutil.GetEnvOrSkip(t, "TEST_GITHUB_APP_PRIVATE_KEY")
	installIDStr := testutil.GetEnvOrSkip(t, "TEST_GITHUB_APP_INSTALL_ID")
	owner := testutil.GetEnvOrSkip(t, "TEST_GITHUB_OWNER")
	repo := testutil.GetEnvOrSkip(t, "TEST_GITHUB_REPO")

	appID := gt.R1(parseInt64(appIDStr)).NoError(t)
	installID := gt.R1(parseInt64(installIDStr)).NoError(t)

	client := gt.R1(ghapp.New(types.GitHubAppID(appID), types.GitHubAppPrivateKey(pem))).NoError(t)
	ctx := context.Background()

	t.Run("default branch exists", func(t *testing.T) {
		exists := gt.R1(client.BranchExists(ctx, &interfaces.BranchProbeInput{
			Owner:     owner,
			Repo:      repo,
			Branch:    "main",
			InstallID: types.GitHubAppInstallID(installID),
		})).NoError(t)
		gt.True(t, exists)
	})

	t.Run("unknown branch does not exist", func(t *testing.T) {
		exists := gt.R1(client.BranchExists(ctx, &interfaces.BranchProbeInput{
			Owner:     owner,
			Repo:      repo,
			Branch:    "no-such-branch-xyz",
			InstallID: types.GitHubAppInstallID(installID),
		})).NoError(t)
		gt.False(t, exists)
	})
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
