package usecase

import (
	"context"
	"net/url"
	"regexp"
	"time"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

var ptnAWSAccount = regexp.MustCompile(`^[0-9]{12}$`)

// AddEnvironmentURL attaches a deployed environment to a git root. The
// value is validated per kind: URL must be an absolute http(s) URL, APK
// must name an uploaded group file, and AWS cloud environments take a
// 12-digit account ID.
func (x *UseCase) AddEnvironmentURL(ctx context.Context, input *model.AddEnvironmentURLInput) (*model.EnvironmentURL, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	git, err := x.getGitRoot(ctx, input.RootID)
	if err != nil {
		return nil, err
	}

	if err := x.validateEnvironmentValue(ctx, git.GroupID, input); err != nil {
		return nil, err
	}

	env := &model.EnvironmentURL{
		ID:        types.NewEnvURLID(),
		RootID:    input.RootID,
		URL:       input.URL,
		Kind:      input.Kind,
		Cloud:     input.Cloud,
		CreatedAt: time.Now().UTC(),
	}
	if err := x.clients.RootRepository().AddEnvironmentURL(ctx, env); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Added environment URL",
		"rootID", input.RootID,
		"envURLID", env.ID,
		"kind", input.Kind,
	)

	return env, nil
}

func (x *UseCase) validateEnvironmentValue(ctx context.Context, groupID types.GroupID, input *model.AddEnvironmentURLInput) error {
	switch input.Kind {
	case types.EnvURLKindURL:
		u, err := url.Parse(input.URL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return goerr.Wrap(types.ErrValidationFailed, "environment URL must be an absolute http(s) URL",
				goerr.V("url", input.URL),
			)
		}

	case types.EnvURLKindAPK:
		if x.clients.Storage() == nil {
			logging.From(ctx).Debug("no storage client, skip APK file check",
				"file", input.URL,
				"groupID", groupID,
			)
			return nil
		}
		files, err := x.clients.Storage().ListGroupFiles(ctx, groupID)
		if err != nil {
			return err
		}
		for _, f := range files {
			if f == input.URL {
				return nil
			}
		}
		return goerr.Wrap(types.ErrValidationFailed, "APK file is not uploaded for the group",
			goerr.V("file", input.URL),
			goerr.V("groupID", groupID),
		)

	case types.EnvURLKindCloud:
		if input.Cloud == types.CloudProviderAWS && !ptnAWSAccount.MatchString(input.URL) {
			return goerr.Wrap(types.ErrValidationFailed, "AWS environment takes a 12-digit account ID",
				goerr.V("value", input.URL),
			)
		}
	}
	return nil
}

// RemoveEnvironmentURL detaches an environment from a root. Removing an
// already removed environment succeeds: the caller's intent holds either
// way.
func (x *UseCase) RemoveEnvironmentURL(ctx context.Context, rootID types.RootID, id types.EnvURLID) error {
	if _, err := x.getGitRoot(ctx, rootID); err != nil {
		return err
	}

	if err := x.clients.RootRepository().RemoveEnvironmentURL(ctx, rootID, id); err != nil {
		return err
	}

	logging.From(ctx).Info("Removed environment URL",
		"rootID", rootID,
		"envURLID", id,
	)
	return nil
}

// AddEnvironmentSecret stores a secret under an environment URL. The
// value is encrypted at rest by the repository backend.
func (x *UseCase) AddEnvironmentSecret(ctx context.Context, input *model.AddEnvironmentSecretInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	secret := &model.Secret{
		Key:         input.Key,
		Value:       input.Value,
		Description: input.Description,
	}
	if err := x.clients.RootRepository().AddEnvironmentSecret(ctx, input.RootID, input.EnvURLID, secret); err != nil {
		return err
	}

	logging.From(ctx).Info("Added environment secret",
		"rootID", input.RootID,
		"envURLID", input.EnvURLID,
		"key", input.Key,
	)
	return nil
}

// ListGroupFiles lists the uploaded files available to back APK
// environments.
func (x *UseCase) ListGroupFiles(ctx context.Context, groupID types.GroupID) ([]string, error) {
	if x.clients.Storage() == nil {
		return nil, nil
	}
	return x.clients.Storage().ListGroupFiles(ctx, groupID)
}
