package usecase

import (
	"context"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra/scanner"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// CheckAccess probes whether the form's credential can reach the
// repository at the given branch. The outcome is cached by credential
// fingerprint so the rules engine can consume it; a probe whose form
// fields changed while it was in flight is discarded as stale.
func (x *UseCase) CheckAccess(ctx context.Context, input *model.CheckAccessInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	scope := string(input.RootID)
	if scope == "" {
		scope = "group:" + string(input.GroupID)
	}
	fingerprint := input.Fingerprint()

	x.probesMu.Lock()
	x.probeGen[scope]++
	gen := x.probeGen[scope]
	x.probesMu.Unlock()

	accessible := true
	if known := x.probeGitHubBranch(ctx, input.URL, input.Branch); known != nil && !*known {
		// The branch is definitively absent; no need to bother the
		// scanning engine.
		accessible = false
	} else {
		err := x.clients.Scanner().ValidateAccess(ctx, &interfaces.ValidateAccessInput{
			URL:        input.URL,
			Branch:     input.Branch,
			Credential: input.Credential.Credential(),
		})
		if err != nil {
			// A rejection is a probe outcome, not a failure.
			if _, rejected := scanner.AsError(err); !rejected {
				return false, x.translateRemoteError(ctx, err)
			}
			accessible = false
		}
	}

	x.probesMu.Lock()
	defer x.probesMu.Unlock()

	if x.probeGen[scope] != gen {
		logging.From(ctx).Debug("Discarded stale access probe",
			"scope", scope,
			"generation", gen,
		)
		return false, goerr.Wrap(types.ErrStaleProbe, "a newer probe superseded this one",
			goerr.V("scope", scope),
		)
	}

	x.probeResult[fingerprint] = accessible
	return accessible, nil
}

// probeGitHubBranch asks the GitHub App whether the branch exists. It
// returns nil when the probe does not apply: no App configured, the
// repository is not on github.com, or the API call failed. A failed
// probe falls back to the scanning engine rather than surfacing.
func (x *UseCase) probeGitHubBranch(ctx context.Context, rawURL, branch string) *bool {
	app := x.clients.GitHubApp()
	if app == nil {
		return nil
	}

	owner, repo, ok := model.GitHubRepo(rawURL)
	if !ok {
		return nil
	}

	exists, err := app.BranchExists(ctx, &interfaces.BranchProbeInput{
		Owner:  owner,
		Repo:   repo,
		Branch: types.BranchName(branch),
	})
	if err != nil {
		logging.From(ctx).Debug("GitHub branch probe failed",
			"url", rawURL,
			"error", err,
		)
		return nil
	}
	return &exists
}
