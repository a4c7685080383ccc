package infra

import (
	"github.com/fluidattacks/roots/pkg/domain/interfaces"
)

type Clients struct {
	scanner        interfaces.Scanner
	githubApp      interfaces.GitHubApp
	bqClient       interfaces.BigQuery
	storage        interfaces.Storage
	rootRepository interfaces.RootRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Scanner() interfaces.Scanner {
	return x.scanner
}
func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) Storage() interfaces.Storage {
	return x.storage
}
func (x *Clients) RootRepository() interfaces.RootRepository {
	return x.rootRepository
}

func WithScanner(client interfaces.Scanner) Option {
	return func(x *Clients) {
		x.scanner = client
	}
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithStorage(client interfaces.Storage) Option {
	return func(x *Clients) {
		x.storage = client
	}
}

func WithRootRepository(repo interfaces.RootRepository) Option {
	return func(x *Clients) {
		x.rootRepository = repo
	}
}
