package model_test

import (
	"testing"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestRepoBasename(t *testing.T) {
	testCases := map[string]struct {
		url  string
		want string
	}{
		"https with .git":   {"https://gitlab.com/org/Universe.git", "universe"},
		"https without ext": {"https://github.com/org/universe", "universe"},
		"trailing slash":    {"https://github.com/org/universe/", "universe"},
		"ssh form":          {"git@github.com:org/universe.git", "universe"},
		"nested path":       {"https://dev.azure.com/org/project/_git/repo", "repo"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, model.RepoBasename(tc.url)).Equal(tc.want)
		})
	}
}

func TestDeriveNickname(t *testing.T) {
	gt.V(t, model.DeriveNickname("https://gitlab.com/org/My_Repo.git")).
		Equal(types.Nickname("my_repo"))
	gt.V(t, model.DeriveNickname("git@github.com:org/some repo")).
		Equal(types.Nickname("some-repo"))
}

func TestGitHubRepo(t *testing.T) {
	t.Run("https form", func(t *testing.T) {
		owner, repo, ok := model.GitHubRepo("https://github.com/fluidattacks/universe.git")
		gt.True(t, ok)
		gt.V(t, owner).Equal("fluidattacks")
		gt.V(t, repo).Equal("universe")
	})

	t.Run("ssh form", func(t *testing.T) {
		owner, repo, ok := model.GitHubRepo("git@github.com:fluidattacks/universe.git")
		gt.True(t, ok)
		gt.V(t, owner).Equal("fluidattacks")
		gt.V(t, repo).Equal("universe")
	})

	t.Run("other hosts are not github", func(t *testing.T) {
		_, _, ok := model.GitHubRepo("https://gitlab.com/org/universe")
		gt.False(t, ok)
	})

	t.Run("extra path segments do not match", func(t *testing.T) {
		_, _, ok := model.GitHubRepo("https://github.com/org/universe/tree/main")
		gt.False(t, ok)
	})
}
