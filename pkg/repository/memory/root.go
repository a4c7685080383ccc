package memory

import (
	"context"
	"sync"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type rootRepository struct {
	mu     sync.RWMutex
	groups map[types.GroupID]*model.Group
	roots  map[types.RootID]model.Root
	envs   map[types.RootID][]*model.EnvironmentURL
	creds  map[types.OrgID][]*model.Credential
	vulns  map[types.RootID]map[types.VulnKind]int
}

// Root operations

func (r *rootRepository) CreateRoot(ctx context.Context, root model.Root) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	common := root.Common()
	if _, exists := r.roots[common.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "root already exists",
			goerr.V("rootID", common.ID),
		)
	}
	if err := r.checkNickname(common); err != nil {
		return err
	}

	r.roots[common.ID] = copyRoot(root)
	return nil
}

func (r *rootRepository) GetRoot(ctx context.Context, rootID types.RootID) (model.Root, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	root, exists := r.roots[rootID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "root not found",
			goerr.V("rootID", rootID),
		)
	}

	return r.withEnvironments(copyRoot(root)), nil
}

func (r *rootRepository) ListRoots(ctx context.Context, groupID types.GroupID) ([]model.Root, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var roots []model.Root
	for _, root := range r.roots {
		if root.Common().GroupID == groupID {
			roots = append(roots, r.withEnvironments(copyRoot(root)))
		}
	}

	return roots, nil
}

func (r *rootRepository) UpdateRoot(ctx context.Context, root model.Root) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	common := root.Common()
	if _, exists := r.roots[common.ID]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "root not found",
			goerr.V("rootID", common.ID),
		)
	}
	if err := r.checkNickname(common); err != nil {
		return err
	}

	r.roots[common.ID] = copyRoot(root)
	return nil
}

func (r *rootRepository) FindGitRoots(ctx context.Context, urls []string) ([]*model.GitRoot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := make(map[string]bool, len(urls))
	for _, u := range urls {
		candidates[u] = true
	}

	var roots []*model.GitRoot
	for _, root := range r.roots {
		git, ok := root.(*model.GitRoot)
		if !ok || !candidates[git.URL] {
			continue
		}
		roots = append(roots, r.withEnvironments(copyRoot(git)).(*model.GitRoot))
	}
	return roots, nil
}

// checkNickname enforces nickname uniqueness among the ACTIVE roots of a
// group. Inactive roots are exempt, as is the root itself.
func (r *rootRepository) checkNickname(common *model.RootCommon) error {
	if common.State != types.RootStateActive {
		return nil
	}
	for _, other := range r.roots {
		oc := other.Common()
		if oc.ID == common.ID || oc.GroupID != common.GroupID {
			continue
		}
		if oc.State == types.RootStateActive && oc.Nickname == common.Nickname {
			return goerr.Wrap(repository.ErrDuplicateNickname, "nickname taken",
				goerr.V("groupID", common.GroupID),
				goerr.V("nickname", common.Nickname),
			)
		}
	}
	return nil
}

// withEnvironments fills the environment URL list of a Git root copy.
func (r *rootRepository) withEnvironments(root model.Root) model.Root {
	git, ok := root.(*model.GitRoot)
	if !ok {
		return root
	}

	git.EnvironmentURLs = nil
	for _, env := range r.envs[git.ID] {
		git.EnvironmentURLs = append(git.EnvironmentURLs, *copyEnvironmentURL(env))
	}
	return git
}

// Group operations

func (r *rootRepository) SaveGroup(ctx context.Context, group *model.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *group
	r.groups[group.ID] = &cpy
	return nil
}

func (r *rootRepository) GetGroup(ctx context.Context, groupID types.GroupID) (*model.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	group, exists := r.groups[groupID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "group not found",
			goerr.V("groupID", groupID),
		)
	}

	cpy := *group
	return &cpy, nil
}

func (r *rootRepository) ListSiblingGroups(ctx context.Context, orgID types.OrgID) ([]*model.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var groups []*model.Group
	for _, group := range r.groups {
		if group.Org == orgID {
			cpy := *group
			groups = append(groups, &cpy)
		}
	}

	return groups, nil
}

// Environment URL operations

func (r *rootRepository) AddEnvironmentURL(ctx context.Context, envURL *model.EnvironmentURL) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.roots[envURL.RootID]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "root not found",
			goerr.V("rootID", envURL.RootID),
		)
	}

	r.envs[envURL.RootID] = append(r.envs[envURL.RootID], copyEnvironmentURL(envURL))
	return nil
}

func (r *rootRepository) RemoveEnvironmentURL(ctx context.Context, rootID types.RootID, id types.EnvURLID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	envs := r.envs[rootID]
	for i, env := range envs {
		if env.ID == id {
			r.envs[rootID] = append(envs[:i], envs[i+1:]...)
			return nil
		}
	}

	// Removing an unknown ID is a no-op success.
	return nil
}

func (r *rootRepository) ListEnvironmentURLs(ctx context.Context, rootID types.RootID) ([]*model.EnvironmentURL, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var envs []*model.EnvironmentURL
	for _, env := range r.envs[rootID] {
		envs = append(envs, copyEnvironmentURL(env))
	}

	return envs, nil
}

func (r *rootRepository) AddEnvironmentSecret(ctx context.Context, rootID types.RootID, id types.EnvURLID, secret *model.Secret) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, env := range r.envs[rootID] {
		if env.ID == id {
			env.Secrets = append(env.Secrets, *secret)
			return nil
		}
	}

	return goerr.Wrap(repository.ErrNotFound, "environment URL not found",
		goerr.V("rootID", rootID),
		goerr.V("envURLID", id),
	)
}

// Shared credential operations

func (r *rootRepository) SaveOrganizationCredential(ctx context.Context, orgID types.OrgID, cred *model.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.creds[orgID] {
		if existing.ID == cred.ID {
			r.creds[orgID][i] = copyCredential(cred)
			return nil
		}
	}

	r.creds[orgID] = append(r.creds[orgID], copyCredential(cred))
	return nil
}

func (r *rootRepository) ListOrganizationCredentials(ctx context.Context, orgID types.OrgID) ([]*model.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var creds []*model.Credential
	for _, cred := range r.creds[orgID] {
		creds = append(creds, copyCredential(cred))
	}

	return creds, nil
}

// Open-finding counters

func (r *rootRepository) RecordOpenVulns(ctx context.Context, rootID types.RootID, kind types.VulnKind, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.roots[rootID]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "root not found",
			goerr.V("rootID", rootID),
		)
	}

	if r.vulns[rootID] == nil {
		r.vulns[rootID] = make(map[types.VulnKind]int)
	}
	r.vulns[rootID][kind] += count
	return nil
}

func (r *rootRepository) CountOpenVulns(ctx context.Context, rootID types.RootID) (model.OpenVulns, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := r.vulns[rootID]
	return model.OpenVulns{
		SAST: counts[types.VulnKindSAST],
		DAST: counts[types.VulnKindDAST],
	}, nil
}

func (r *rootRepository) CloseVulns(ctx context.Context, rootID types.RootID) (model.OpenVulns, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := r.vulns[rootID]
	closed := model.OpenVulns{
		SAST: counts[types.VulnKindSAST],
		DAST: counts[types.VulnKindDAST],
	}
	delete(r.vulns, rootID)
	return closed, nil
}

// Helper functions for deep copy

func copyRoot(root model.Root) model.Root {
	switch v := root.(type) {
	case *model.GitRoot:
		cpy := *v
		cpy.Credentials = copyCredential(v.Credentials)
		if v.Gitignore != nil {
			cpy.Gitignore = make([]string, len(v.Gitignore))
			copy(cpy.Gitignore, v.Gitignore)
		}
		if v.HealthCheckConfirm != nil {
			cpy.HealthCheckConfirm = make([]string, len(v.HealthCheckConfirm))
			copy(cpy.HealthCheckConfirm, v.HealthCheckConfirm)
		}
		if v.IncludesHealthCheck != nil {
			hc := *v.IncludesHealthCheck
			cpy.IncludesHealthCheck = &hc
		}
		cpy.EnvironmentURLs = nil
		return &cpy

	case *model.IPRoot:
		cpy := *v
		return &cpy

	case *model.URLRoot:
		cpy := *v
		return &cpy

	default:
		return root
	}
}

func copyCredential(cred *model.Credential) *model.Credential {
	if cred == nil {
		return nil
	}
	cpy := *cred
	return &cpy
}

func copyEnvironmentURL(env *model.EnvironmentURL) *model.EnvironmentURL {
	if env == nil {
		return nil
	}
	cpy := *env
	if env.Secrets != nil {
		cpy.Secrets = make([]model.Secret, len(env.Secrets))
		copy(cpy.Secrets, env.Secrets)
	}
	return &cpy
}
