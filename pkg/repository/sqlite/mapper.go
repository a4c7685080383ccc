package sqlite

import (
	"strings"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const listSep = "\x00"

func joinList(values []string) string {
	return strings.Join(values, listSep)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, listSep)
}

func (r *rootRepository) toRootModel(root model.Root) (*rootModel, error) {
	common := root.Common()
	m := &rootModel{
		ID:                 string(common.ID),
		GroupID:            string(common.GroupID),
		Kind:               string(root.Kind()),
		Nickname:           string(common.Nickname),
		State:              string(common.State),
		CreatedAt:          common.CreatedAt,
		UpdatedAt:          common.UpdatedAt,
		DeactivationReason: string(common.DeactivationReason),
		DeactivationOther:  common.DeactivationOther,
	}

	switch v := root.(type) {
	case *model.GitRoot:
		m.Branch = string(v.Branch)
		m.URL = v.URL
		m.Environment = v.Environment
		m.Gitignore = joinList(v.Gitignore)
		m.UseVPN = v.UseVPN
		m.CloningStatus = string(v.Cloning.Status)
		m.CloningMessage = v.Cloning.Message
		m.IncludesHealthCheck = v.IncludesHealthCheck
		m.HealthCheckConfirm = joinList(v.HealthCheckConfirm)

		if v.Credentials != nil {
			m.CredentialID = string(v.Credentials.ID)
			m.CredentialName = v.Credentials.Name
			m.CredentialKind = string(v.Credentials.Kind)

			blob, err := r.cipher.encryptCredential(v.Credentials)
			if err != nil {
				return nil, err
			}
			m.CredentialBlob = blob
		}

	case *model.IPRoot:
		m.Address = v.Address

	case *model.URLRoot:
		m.Protocol = v.Protocol
		m.Host = v.Host
		m.Port = v.Port
		m.Path = v.Path
		m.Query = v.Query

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown root kind",
			goerr.V("kind", root.Kind()),
		)
	}

	return m, nil
}

func (r *rootRepository) toRootDomain(m *rootModel) (model.Root, error) {
	common := model.RootCommon{
		ID:                 types.RootID(m.ID),
		GroupID:            types.GroupID(m.GroupID),
		Nickname:           types.Nickname(m.Nickname),
		State:              types.RootState(m.State),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		DeactivationReason: types.DeactivationReason(m.DeactivationReason),
		DeactivationOther:  m.DeactivationOther,
	}

	switch types.RootKind(m.Kind) {
	case types.RootKindGit:
		git := &model.GitRoot{
			RootCommon:          common,
			Branch:              types.BranchName(m.Branch),
			URL:                 m.URL,
			Environment:         m.Environment,
			Gitignore:           splitList(m.Gitignore),
			UseVPN:              m.UseVPN,
			IncludesHealthCheck: m.IncludesHealthCheck,
			HealthCheckConfirm:  splitList(m.HealthCheckConfirm),
			Cloning: model.CloningStatus{
				Status:  types.CloningState(m.CloningStatus),
				Message: m.CloningMessage,
			},
		}

		if m.CredentialID != "" || m.CredentialKind != "" {
			cred := &model.Credential{
				ID:   types.CredID(m.CredentialID),
				Name: m.CredentialName,
				Kind: types.CredentialKind(m.CredentialKind),
			}
			if err := r.cipher.decryptCredential(m.CredentialBlob, cred); err != nil {
				return nil, err
			}
			git.Credentials = cred
		}
		return git, nil

	case types.RootKindIP:
		return &model.IPRoot{RootCommon: common, Address: m.Address}, nil

	case types.RootKindURL:
		return &model.URLRoot{
			RootCommon: common,
			Protocol:   m.Protocol,
			Host:       m.Host,
			Port:       m.Port,
			Path:       m.Path,
			Query:      m.Query,
		}, nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown root kind in database",
			goerr.V("kind", m.Kind),
			goerr.V("rootID", m.ID),
		)
	}
}

func (r *rootRepository) toEnvironmentURLDomain(m *environmentURLModel) (*model.EnvironmentURL, error) {
	env := &model.EnvironmentURL{
		ID:        types.EnvURLID(m.ID),
		RootID:    types.RootID(m.RootID),
		URL:       m.URL,
		Kind:      types.EnvURLKind(m.Kind),
		Cloud:     types.CloudProvider(m.Cloud),
		CreatedAt: m.CreatedAt,
	}

	for _, s := range m.Secrets {
		value, err := r.cipher.decrypt(s.Value)
		if err != nil {
			return nil, err
		}
		env.Secrets = append(env.Secrets, model.Secret{
			Key:         s.Key,
			Value:       types.SecretValue(value),
			Description: s.Description,
		})
	}

	return env, nil
}

func toGroupDomain(m *groupModel) *model.Group {
	return &model.Group{
		ID:   types.GroupID(m.ID),
		Org:  types.OrgID(m.OrgID),
		Name: m.Name,
		Tier: types.PlanTier(m.Tier),
	}
}
