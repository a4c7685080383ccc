package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra"
	"github.com/fluidattacks/roots/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestAddEnvironmentURL(t *testing.T) {
	ctx := context.Background()

	t.Run("absolute http(s) URL is accepted", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		added := gt.R1(env.uc.AddEnvironmentURL(ctx, &model.AddEnvironmentURLInput{
			RootID: root.ID,
			URL:    "https://app.example.com",
			Kind:   types.EnvURLKindURL,
		})).NoError(t)
		gt.V(t, added.Kind).Equal(types.EnvURLKindURL)

		listed := gt.R1(env.repo.ListEnvironmentURLs(ctx, root.ID)).NoError(t)
		gt.V(t, len(listed)).Equal(1)
		gt.V(t, listed[0].URL).Equal("https://app.example.com")
	})

	t.Run("relative or non-http values are rejected", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		for _, value := range []string{"app.example.com/path", "ftp://example.com"} {
			_, err := env.uc.AddEnvironmentURL(ctx, &model.AddEnvironmentURLInput{
				RootID: root.ID,
				URL:    value,
				Kind:   types.EnvURLKindURL,
			})
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrValidationFailed))
		}
	})

	t.Run("APK must name an uploaded group file", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		// The storage mock serves app-release.apk only.
		_, err := env.uc.AddEnvironmentURL(ctx, &model.AddEnvironmentURLInput{
			RootID: root.ID,
			URL:    "app-debug.apk",
			Kind:   types.EnvURLKindAPK,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))

		_, err = env.uc.AddEnvironmentURL(ctx, &model.AddEnvironmentURLInput{
			RootID: root.ID,
			URL:    "app-release.apk",
			Kind:   types.EnvURLKindAPK,
		})
		gt.NoError(t, err)
	})

	t.Run("APK check is skipped without a storage client", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		uc := usecase.New(infra.New(
			infra.WithRootRepository(env.repo),
			infra.WithScanner(env.scanner),
		))
		_, err := uc.AddEnvironmentURL(ctx, &model.AddEnvironmentURLInput{
			RootID: root.ID,
			URL:    "app-debug.apk",
			Kind:   types.EnvURLKindAPK,
		})
		gt.NoError(t, err)
	})

	t.Run("AWS cloud environment takes a 12-digit account", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		_, err := env.uc.AddEnvironmentURL(ctx, &model.AddEnvironmentURLInput{
			RootID: root.ID,
			URL:    "not-an-account",
			Kind:   types.EnvURLKindCloud,
			Cloud:  types.CloudProviderAWS,
		})
		gt.Error(t, err)

		_, err = env.uc.AddEnvironmentURL(ctx, &model.AddEnvironmentURLInput{
			RootID: root.ID,
			URL:    "123456789012",
			Kind:   types.EnvURLKindCloud,
			Cloud:  types.CloudProviderAWS,
		})
		gt.NoError(t, err)
	})

	t.Run("cloud provider is only valid for CLOUD urls", func(t *testing.T) {
		env := newTestEnv(t)
		root := env.addRoot(t, "universe")

		_, err := env.uc.AddEnvironmentURL(ctx, &model.AddEnvironmentURLInput{
			RootID: root.ID,
			URL:    "https://app.example.com",
			Kind:   types.EnvURLKindURL,
			Cloud:  types.CloudProviderAWS,
		})
		gt.Error(t, err)
	})
}

func TestRemoveEnvironmentURL(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	root := env.addRoot(t, "universe")

	added := gt.R1(env.uc.AddEnvironmentURL(ctx, &model.AddEnvironmentURLInput{
		RootID: root.ID,
		URL:    "https://app.example.com",
		Kind:   types.EnvURLKindURL,
	})).NoError(t)

	gt.NoError(t, env.uc.RemoveEnvironmentURL(ctx, root.ID, added.ID))
	listed := gt.R1(env.repo.ListEnvironmentURLs(ctx, root.ID)).NoError(t)
	gt.V(t, len(listed)).Equal(0)

	// Removing again still succeeds.
	gt.NoError(t, env.uc.RemoveEnvironmentURL(ctx, root.ID, added.ID))
}

func TestAddEnvironmentSecret(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	root := env.addRoot(t, "universe")

	added := gt.R1(env.uc.AddEnvironmentURL(ctx, &model.AddEnvironmentURLInput{
		RootID: root.ID,
		URL:    "https://app.example.com",
		Kind:   types.EnvURLKindURL,
	})).NoError(t)

	gt.NoError(t, env.uc.AddEnvironmentSecret(ctx, &model.AddEnvironmentSecretInput{
		RootID:      root.ID,
		EnvURLID:    added.ID,
		Key:         "API_TOKEN",
		Value:       types.SecretValue("s3cr3t"),
		Description: "staging API token",
	}))

	err := env.uc.AddEnvironmentSecret(ctx, &model.AddEnvironmentSecretInput{
		RootID:   root.ID,
		EnvURLID: added.ID,
	})
	gt.Error(t, err)
}
