package model

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/gosimple/slug"
)

// Root is the closed set of scan-target variants. Boundaries switch on
// Kind() and must handle every variant.
type Root interface {
	Kind() types.RootKind
	Common() *RootCommon
}

// RootCommon holds the attributes shared by all root variants.
type RootCommon struct {
	ID        types.RootID
	GroupID   types.GroupID
	Nickname  types.Nickname
	State     types.RootState
	CreatedAt time.Time
	UpdatedAt time.Time

	// Set when the root was deactivated. Roots are never deleted.
	DeactivationReason types.DeactivationReason
	DeactivationOther  string
}

// GitRoot is a Git repository registered for scanning.
type GitRoot struct {
	RootCommon
	Branch          types.BranchName
	URL             string
	Credentials     *Credential
	Environment     string
	EnvironmentURLs []EnvironmentURL
	Gitignore       []string
	Cloning         CloningStatus
	UseVPN          bool

	// Health-check acknowledgement. Nil IncludesHealthCheck means the
	// question has not been answered yet.
	IncludesHealthCheck *bool
	HealthCheckConfirm  []string
}

func (x *GitRoot) Kind() types.RootKind { return types.RootKindGit }
func (x *GitRoot) Common() *RootCommon  { return &x.RootCommon }

// IPRoot is a network address registered for scanning.
type IPRoot struct {
	RootCommon
	Address string
}

func (x *IPRoot) Kind() types.RootKind { return types.RootKindIP }
func (x *IPRoot) Common() *RootCommon  { return &x.RootCommon }

// URLRoot is a deployed endpoint registered for scanning.
type URLRoot struct {
	RootCommon
	Protocol string
	Host     string
	Port     string
	Path     string
	Query    string
}

func (x *URLRoot) Kind() types.RootKind { return types.RootKindURL }
func (x *URLRoot) Common() *RootCommon  { return &x.RootCommon }

// CloningStatus is the remote engine's report of repository-fetch
// progress for a Git root. The service never computes it locally.
type CloningStatus struct {
	Status  types.CloningState
	Message string
}

// RepoBasename returns the last path segment of a repository URL with
// any ".git" suffix removed, lower-cased. It is the default nickname and
// the value gitignore patterns may not self-exclude.
func RepoBasename(rawURL string) string {
	trimmed := strings.TrimSuffix(strings.TrimRight(rawURL, "/"), ".git")
	return strings.ToLower(path.Base(strings.ReplaceAll(trimmed, ":", "/")))
}

// DeriveNickname normalizes the repository basename into a valid
// nickname.
func DeriveNickname(rawURL string) types.Nickname {
	return types.Nickname(slug.Make(RepoBasename(rawURL)))
}

// GitHubRepo extracts the owner and repository name when the URL points
// at github.com, in either HTTPS or SSH form. ok is false for any other
// host.
func GitHubRepo(rawURL string) (owner, repo string, ok bool) {
	normalized := strings.TrimSuffix(strings.TrimRight(rawURL, "/"), ".git")
	if after, found := strings.CutPrefix(normalized, "git@github.com:"); found {
		normalized = "https://github.com/" + after
	}

	u, err := url.Parse(normalized)
	if err != nil || u.Host != "github.com" {
		return "", "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
