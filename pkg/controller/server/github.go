package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"log/slog"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/errutil"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
)

// handleGitHubWebhook accepts GitHub App push events and queues a
// re-clone of every root tracking the pushed repository. The sync runs
// in the background: GitHub expects a fast response and retries on
// timeout.
func handleGitHubWebhook(uc interfaces.UseCase, secret types.GitHubAppSecret) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseGitHubEvent(r, secret)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to validate GitHub event", err)
			safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
			return
		}

		if input == nil {
			safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"no sync required"}`))
			return
		}

		// The request context dies with the response; detach before
		// handing the sync to a goroutine.
		bgCtx := DetachContext(r.Context())
		go runPushSync(bgCtx, uc, input)

		safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","message":"sync enqueued"}`))
	}
}

func parseGitHubEvent(r *http.Request, key types.GitHubAppSecret) (*model.SyncPushedRepoInput, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, err
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("Received GitHub event", slog.String("type", github.WebHookType(r)))

	return githubEventToSyncInput(event), nil
}

func githubEventToSyncInput(event interface{}) *model.SyncPushedRepoInput {
	switch ev := event.(type) {
	case *github.PushEvent:
		repo := ev.GetRepo()
		urls := cloneURLCandidates(repo.GetCloneURL(), repo.GetSSHURL(), repo.GetHTMLURL())
		if len(urls) == 0 {
			logging.Default().Warn("ignore push event without repository URL", slog.Any("event", ev))
			return nil
		}

		return &model.SyncPushedRepoInput{
			CloneURLs: urls,
			Branch:    refToBranch(ev.GetRef()),
		}

	case *github.InstallationEvent, *github.InstallationRepositoriesEvent, *github.PingEvent:
		return nil // ignore

	default:
		logging.Default().Debug("unsupported event", slog.String("type", fmt.Sprintf("%T", event)))
		return nil
	}
}

func runPushSync(ctx context.Context, uc interfaces.UseCase, input *model.SyncPushedRepoInput) {
	logger := logging.From(ctx).With(slog.Any("input", input))
	logger.Info("Starting push-triggered sync")

	if err := uc.SyncPushedRepo(ctx, input); err != nil {
		logger.Error("Push-triggered sync failed", slog.Any("error", err))
	} else {
		logger.Info("Push-triggered sync completed")
	}
}

// cloneURLCandidates collects the distinct clone URL spellings a root
// may be registered under, including ".git"-less variants.
func cloneURLCandidates(urls ...string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	for _, u := range urls {
		add(u)
		add(strings.TrimSuffix(u, ".git"))
	}
	return out
}

func refToBranch(v string) string {
	if ref := strings.SplitN(v, "/", 3); len(ref) == 3 && ref[0] == "refs" && ref[1] == "heads" {
		return ref[2]
	}
	return v
}
