// Package sqlite is the persistent RootRepository backend. Credential
// material and environment secrets are fernet-encrypted before they are
// written.
package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type rootRepository struct {
	db     *gorm.DB
	cipher *cipher
}

// New opens (or creates) the database at path and runs migrations.
// encryptionKey is a base64 fernet key.
func New(path, encryptionKey string) (interfaces.RootRepository, error) {
	c, err := newCipher(encryptionKey)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("path", path))
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &rootRepository{db: db, cipher: c}, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&groupModel{},
		&rootModel{},
		&environmentURLModel{},
		&environmentSecretModel{},
		&orgCredentialModel{},
		&vulnCounterModel{},
	); err != nil {
		return goerr.Wrap(err, "failed to migrate database schema")
	}
	return nil
}

// Root operations

func (r *rootRepository) CreateRoot(ctx context.Context, root model.Root) error {
	m, err := r.toRootModel(root)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkNickname(tx, m); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return goerr.Wrap(err, "failed to create root", goerr.V("rootID", m.ID))
		}
		return nil
	})
}

func (r *rootRepository) GetRoot(ctx context.Context, rootID types.RootID) (model.Root, error) {
	var m rootModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", string(rootID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerr.Wrap(repository.ErrNotFound, "root not found",
				goerr.V("rootID", rootID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get root", goerr.V("rootID", rootID))
	}

	root, err := r.toRootDomain(&m)
	if err != nil {
		return nil, err
	}
	return r.fillEnvironments(ctx, root)
}

func (r *rootRepository) ListRoots(ctx context.Context, groupID types.GroupID) ([]model.Root, error) {
	var models []rootModel
	if err := r.db.WithContext(ctx).Where("group_id = ?", string(groupID)).Find(&models).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list roots", goerr.V("groupID", groupID))
	}

	var roots []model.Root
	for i := range models {
		root, err := r.toRootDomain(&models[i])
		if err != nil {
			return nil, err
		}
		root, err = r.fillEnvironments(ctx, root)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}
	return roots, nil
}

func (r *rootRepository) FindGitRoots(ctx context.Context, urls []string) ([]*model.GitRoot, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	var models []rootModel
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND url IN ?", string(types.RootKindGit), urls).
		Find(&models).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to find git roots")
	}

	var roots []*model.GitRoot
	for i := range models {
		root, err := r.toRootDomain(&models[i])
		if err != nil {
			return nil, err
		}
		root, err = r.fillEnvironments(ctx, root)
		if err != nil {
			return nil, err
		}
		if git, ok := root.(*model.GitRoot); ok {
			roots = append(roots, git)
		}
	}
	return roots, nil
}

func (r *rootRepository) UpdateRoot(ctx context.Context, root model.Root) error {
	m, err := r.toRootModel(root)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing rootModel
		if err := tx.First(&existing, "id = ?", m.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return goerr.Wrap(repository.ErrNotFound, "root not found",
					goerr.V("rootID", m.ID),
				)
			}
			return goerr.Wrap(err, "failed to load root", goerr.V("rootID", m.ID))
		}
		if err := checkNickname(tx, m); err != nil {
			return err
		}

		m.CreatedAt = existing.CreatedAt
		m.UpdatedAt = time.Now().UTC()
		if err := tx.Save(m).Error; err != nil {
			return goerr.Wrap(err, "failed to update root", goerr.V("rootID", m.ID))
		}
		return nil
	})
}

// checkNickname enforces nickname uniqueness among the ACTIVE roots of a
// group. Inactive roots are exempt.
func checkNickname(tx *gorm.DB, m *rootModel) error {
	if m.State != string(types.RootStateActive) {
		return nil
	}

	var count int64
	err := tx.Model(&rootModel{}).
		Where("group_id = ? AND nickname = ? AND state = ? AND id <> ?",
			m.GroupID, m.Nickname, string(types.RootStateActive), m.ID).
		Count(&count).Error
	if err != nil {
		return goerr.Wrap(err, "failed to check nickname uniqueness")
	}
	if count > 0 {
		return goerr.Wrap(repository.ErrDuplicateNickname, "nickname taken",
			goerr.V("groupID", m.GroupID),
			goerr.V("nickname", m.Nickname),
		)
	}
	return nil
}

func (r *rootRepository) fillEnvironments(ctx context.Context, root model.Root) (model.Root, error) {
	git, ok := root.(*model.GitRoot)
	if !ok {
		return root, nil
	}

	envs, err := r.ListEnvironmentURLs(ctx, git.ID)
	if err != nil {
		return nil, err
	}
	git.EnvironmentURLs = nil
	for _, env := range envs {
		git.EnvironmentURLs = append(git.EnvironmentURLs, *env)
	}
	return git, nil
}

// Group operations

func (r *rootRepository) SaveGroup(ctx context.Context, group *model.Group) error {
	m := &groupModel{
		ID:    string(group.ID),
		OrgID: string(group.Org),
		Name:  group.Name,
		Tier:  string(group.Tier),
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return goerr.Wrap(err, "failed to save group", goerr.V("groupID", group.ID))
	}
	return nil
}

func (r *rootRepository) GetGroup(ctx context.Context, groupID types.GroupID) (*model.Group, error) {
	var m groupModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", string(groupID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerr.Wrap(repository.ErrNotFound, "group not found",
				goerr.V("groupID", groupID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get group", goerr.V("groupID", groupID))
	}
	return toGroupDomain(&m), nil
}

func (r *rootRepository) ListSiblingGroups(ctx context.Context, orgID types.OrgID) ([]*model.Group, error) {
	var models []groupModel
	if err := r.db.WithContext(ctx).Where("org_id = ?", string(orgID)).Find(&models).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list groups", goerr.V("orgID", orgID))
	}

	var groups []*model.Group
	for i := range models {
		groups = append(groups, toGroupDomain(&models[i]))
	}
	return groups, nil
}

// Environment URL operations

func (r *rootRepository) AddEnvironmentURL(ctx context.Context, envURL *model.EnvironmentURL) error {
	var root rootModel
	if err := r.db.WithContext(ctx).First(&root, "id = ?", string(envURL.RootID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return goerr.Wrap(repository.ErrNotFound, "root not found",
				goerr.V("rootID", envURL.RootID),
			)
		}
		return goerr.Wrap(err, "failed to load root", goerr.V("rootID", envURL.RootID))
	}

	m := &environmentURLModel{
		ID:        string(envURL.ID),
		RootID:    string(envURL.RootID),
		URL:       envURL.URL,
		Kind:      string(envURL.Kind),
		Cloud:     string(envURL.Cloud),
		CreatedAt: envURL.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return goerr.Wrap(err, "failed to add environment URL", goerr.V("rootID", envURL.RootID))
	}
	return nil
}

func (r *rootRepository) RemoveEnvironmentURL(ctx context.Context, rootID types.RootID, id types.EnvURLID) error {
	// Deleting an unknown ID affects zero rows, which is a success: the
	// caller's intent (the record is gone) holds either way.
	err := r.db.WithContext(ctx).
		Where("root_id = ? AND id = ?", string(rootID), string(id)).
		Delete(&environmentURLModel{}).Error
	if err != nil {
		return goerr.Wrap(err, "failed to remove environment URL",
			goerr.V("rootID", rootID),
			goerr.V("envURLID", id),
		)
	}
	return nil
}

func (r *rootRepository) ListEnvironmentURLs(ctx context.Context, rootID types.RootID) ([]*model.EnvironmentURL, error) {
	var models []environmentURLModel
	err := r.db.WithContext(ctx).
		Preload("Secrets").
		Where("root_id = ?", string(rootID)).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list environment URLs", goerr.V("rootID", rootID))
	}

	var envs []*model.EnvironmentURL
	for i := range models {
		env, err := r.toEnvironmentURLDomain(&models[i])
		if err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}
	return envs, nil
}

func (r *rootRepository) AddEnvironmentSecret(ctx context.Context, rootID types.RootID, id types.EnvURLID, secret *model.Secret) error {
	var env environmentURLModel
	err := r.db.WithContext(ctx).
		First(&env, "root_id = ? AND id = ?", string(rootID), string(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return goerr.Wrap(repository.ErrNotFound, "environment URL not found",
				goerr.V("rootID", rootID),
				goerr.V("envURLID", id),
			)
		}
		return goerr.Wrap(err, "failed to load environment URL", goerr.V("envURLID", id))
	}

	value, err := r.cipher.encrypt(string(secret.Value))
	if err != nil {
		return err
	}

	m := &environmentSecretModel{
		EnvURLID:    string(id),
		Key:         secret.Key,
		Value:       value,
		Description: secret.Description,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return goerr.Wrap(err, "failed to add environment secret", goerr.V("envURLID", id))
	}
	return nil
}

// Shared credential operations

func (r *rootRepository) SaveOrganizationCredential(ctx context.Context, orgID types.OrgID, cred *model.Credential) error {
	blob, err := r.cipher.encryptCredential(&model.Credential{
		Kind:              cred.Kind,
		Key:               cred.Key,
		User:              cred.User,
		Password:          cred.Password,
		Token:             cred.Token,
		AzureOrganization: cred.AzureOrganization,
		IsPAT:             cred.IsPAT,
	})
	if err != nil {
		return err
	}

	m := &orgCredentialModel{
		ID:    string(cred.ID),
		OrgID: string(orgID),
		Name:  cred.Name,
		Kind:  string(cred.Kind),
		Blob:  blob,
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return goerr.Wrap(err, "failed to save organization credential",
			goerr.V("orgID", orgID),
			goerr.V("credID", cred.ID),
		)
	}
	return nil
}

func (r *rootRepository) ListOrganizationCredentials(ctx context.Context, orgID types.OrgID) ([]*model.Credential, error) {
	var models []orgCredentialModel
	if err := r.db.WithContext(ctx).Where("org_id = ?", string(orgID)).Find(&models).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list organization credentials", goerr.V("orgID", orgID))
	}

	var creds []*model.Credential
	for i := range models {
		cred := &model.Credential{
			ID:   types.CredID(models[i].ID),
			Name: models[i].Name,
			Kind: types.CredentialKind(models[i].Kind),
		}
		if err := r.cipher.decryptCredential(models[i].Blob, cred); err != nil {
			return nil, err
		}
		creds = append(creds, cred)
	}
	return creds, nil
}

// Open-finding counters

func (r *rootRepository) RecordOpenVulns(ctx context.Context, rootID types.RootID, kind types.VulnKind, count int) error {
	var root rootModel
	if err := r.db.WithContext(ctx).First(&root, "id = ?", string(rootID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return goerr.Wrap(repository.ErrNotFound, "root not found",
				goerr.V("rootID", rootID),
			)
		}
		return goerr.Wrap(err, "failed to load root", goerr.V("rootID", rootID))
	}

	m := &vulnCounterModel{
		RootID: string(rootID),
		Kind:   string(kind),
		Count:  count,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return goerr.Wrap(err, "failed to record open findings", goerr.V("rootID", rootID))
	}
	return nil
}

func (r *rootRepository) CountOpenVulns(ctx context.Context, rootID types.RootID) (model.OpenVulns, error) {
	return r.sumVulns(ctx, rootID)
}

func (r *rootRepository) CloseVulns(ctx context.Context, rootID types.RootID) (model.OpenVulns, error) {
	var closed model.OpenVulns
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counts, err := sumVulnsTx(tx, rootID)
		if err != nil {
			return err
		}
		closed = counts

		return tx.Model(&vulnCounterModel{}).
			Where("root_id = ? AND closed = ?", string(rootID), false).
			Update("closed", true).Error
	})
	if err != nil {
		return model.OpenVulns{}, goerr.Wrap(err, "failed to close findings", goerr.V("rootID", rootID))
	}
	return closed, nil
}

func (r *rootRepository) sumVulns(ctx context.Context, rootID types.RootID) (model.OpenVulns, error) {
	counts, err := sumVulnsTx(r.db.WithContext(ctx), rootID)
	if err != nil {
		return model.OpenVulns{}, goerr.Wrap(err, "failed to count open findings", goerr.V("rootID", rootID))
	}
	return counts, nil
}

func sumVulnsTx(tx *gorm.DB, rootID types.RootID) (model.OpenVulns, error) {
	var rows []vulnCounterModel
	err := tx.Where("root_id = ? AND closed = ?", string(rootID), false).Find(&rows).Error
	if err != nil {
		return model.OpenVulns{}, err
	}

	var counts model.OpenVulns
	for _, row := range rows {
		switch types.VulnKind(row.Kind) {
		case types.VulnKindSAST:
			counts.SAST += row.Count
		case types.VulnKindDAST:
			counts.DAST += row.Count
		}
	}
	return counts, nil
}
