package infra_test

import (
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/mock"
	"github.com/fluidattacks/roots/pkg/infra"
	"github.com/fluidattacks/roots/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// Clients should be nil without configuration
		gt.V(t, clients.Scanner()).Equal(nil)
		gt.V(t, clients.GitHubApp()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
		gt.V(t, clients.Storage()).Equal(nil)
	})

	t.Run("WithScanner option sets scanner client", func(t *testing.T) {
		mockScanner := &mock.ScannerMock{}
		clients := infra.New(infra.WithScanner(mockScanner))
		gt.V(t, clients.Scanner()).Equal(mockScanner)
	})

	t.Run("WithGitHubApp option sets GitHub App client", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{}
		clients := infra.New(infra.WithGitHubApp(mockGH))
		gt.V(t, clients.GitHubApp()).Equal(mockGH)
	})

	t.Run("WithBigQuery option sets BigQuery client", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{}
		clients := infra.New(infra.WithBigQuery(mockBQ))
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
	})

	t.Run("WithRootRepository option sets repository", func(t *testing.T) {
		repo := memory.New()
		clients := infra.New(infra.WithRootRepository(repo))
		gt.V(t, clients.RootRepository()).Equal(repo)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockScanner := &mock.ScannerMock{}
		mockGH := &mock.GitHubAppMock{}
		mockBQ := &mock.BigQueryMock{}

		clients := infra.New(
			infra.WithScanner(mockScanner),
			infra.WithGitHubApp(mockGH),
			infra.WithBigQuery(mockBQ),
		)

		gt.V(t, clients.Scanner()).Equal(mockScanner)
		gt.V(t, clients.GitHubApp()).Equal(mockGH)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
	})
}
