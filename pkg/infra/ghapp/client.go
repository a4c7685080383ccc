// Package ghapp probes repository metadata on github.com with a GitHub
// App installation client.
package ghapp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

type Client struct {
	appID types.GitHubAppID
	pem   types.GitHubAppPrivateKey
}

var _ interfaces.GitHubApp = (*Client)(nil)

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID: appID,
		pem:   pem,
	}

	return client, nil
}

func (x *Client) buildGithubClient(installID types.GitHubAppInstallID) (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github client")
	}

	return github.NewClient(&http.Client{Transport: itr}), nil
}

// resolveInstallID looks up the App installation that covers the
// repository, using app-level credentials.
func (x *Client) resolveInstallID(ctx context.Context, owner, repo string) (types.GitHubAppInstallID, error) {
	atr, err := ghinstallation.NewAppsTransport(http.DefaultTransport, int64(x.appID), []byte(x.pem))
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create app transport")
	}

	inst, _, err := github.NewClient(&http.Client{Transport: atr}).Apps.FindRepositoryInstallation(ctx, owner, repo)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to find repository installation",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}
	return types.GitHubAppInstallID(inst.GetID()), nil
}

// BranchExists reports whether the branch is present in the repository.
// A 404 from the API means "no" rather than an error; anything else is
// propagated. A zero InstallID is resolved through the repository's
// installation.
func (x *Client) BranchExists(ctx context.Context, input *interfaces.BranchProbeInput) (bool, error) {
	installID := input.InstallID
	if installID == 0 {
		resolved, err := x.resolveInstallID(ctx, input.Owner, input.Repo)
		if err != nil {
			return false, err
		}
		installID = resolved
	}

	client, err := x.buildGithubClient(installID)
	if err != nil {
		return false, err
	}

	branch, resp, err := client.Repositories.GetBranch(ctx, input.Owner, input.Repo, string(input.Branch), false)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get branch",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("branch", input.Branch),
		)
	}

	logging.From(ctx).Debug("Probed branch",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.String("branch", branch.GetName()),
	)

	return true, nil
}
