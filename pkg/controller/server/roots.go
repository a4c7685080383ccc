package server

import (
	"net/http"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/go-chi/chi/v5"
)

// rootResponse is the API shape of a root. Credential material never
// leaves the service, so the stored credential is reduced to its name
// and kind.
type rootResponse struct {
	ID       types.RootID             `json:"id"`
	GroupID  types.GroupID            `json:"groupId"`
	Kind     types.RootKind           `json:"kind"`
	Nickname types.Nickname           `json:"nickname"`
	State    types.RootState          `json:"state"`
	Reason   types.DeactivationReason `json:"deactivationReason,omitempty"`

	URL                 string                   `json:"url,omitempty"`
	Branch              types.BranchName         `json:"branch,omitempty"`
	Environment         string                   `json:"environment,omitempty"`
	EnvironmentURLs     []environmentURLResponse `json:"environmentUrls,omitempty"`
	Gitignore           []string                 `json:"gitignore,omitempty"`
	UseVPN              bool                     `json:"useVpn,omitempty"`
	IncludesHealthCheck *bool                    `json:"includesHealthCheck,omitempty"`
	CloningStatus       types.CloningState       `json:"cloningStatus,omitempty"`
	CloningMessage      string                   `json:"cloningMessage,omitempty"`
	CredentialName      string                   `json:"credentialName,omitempty"`
	CredentialKind      types.CredentialKind     `json:"credentialKind,omitempty"`

	Address string `json:"address,omitempty"`

	Host string `json:"host,omitempty"`
	Port string `json:"port,omitempty"`
	Path string `json:"path,omitempty"`
}

// environmentURLResponse is the API shape of an environment URL. Secret
// values stay server side: only key and description serialize.
type environmentURLResponse struct {
	ID    types.EnvURLID      `json:"id"`
	URL   string              `json:"url"`
	Kind  types.EnvURLKind    `json:"kind"`
	Cloud types.CloudProvider `json:"cloud,omitempty"`

	Secrets []secretResponse `json:"secrets,omitempty"`
}

type secretResponse struct {
	Key         string `json:"key"`
	Description string `json:"description,omitempty"`
}

func toEnvironmentURLResponse(env model.EnvironmentURL) environmentURLResponse {
	resp := environmentURLResponse{
		ID:    env.ID,
		URL:   env.URL,
		Kind:  env.Kind,
		Cloud: env.Cloud,
	}
	for _, secret := range env.Secrets {
		resp.Secrets = append(resp.Secrets, secretResponse{
			Key:         secret.Key,
			Description: secret.Description,
		})
	}
	return resp
}

func toRootResponse(root model.Root) rootResponse {
	common := root.Common()
	resp := rootResponse{
		ID:       common.ID,
		GroupID:  common.GroupID,
		Kind:     root.Kind(),
		Nickname: common.Nickname,
		State:    common.State,
		Reason:   common.DeactivationReason,
	}

	switch v := root.(type) {
	case *model.GitRoot:
		resp.URL = v.URL
		resp.Branch = v.Branch
		resp.Environment = v.Environment
		for _, env := range v.EnvironmentURLs {
			resp.EnvironmentURLs = append(resp.EnvironmentURLs, toEnvironmentURLResponse(env))
		}
		resp.Gitignore = v.Gitignore
		resp.UseVPN = v.UseVPN
		resp.IncludesHealthCheck = v.IncludesHealthCheck
		resp.CloningStatus = v.Cloning.Status
		resp.CloningMessage = v.Cloning.Message
		if v.Credentials != nil {
			resp.CredentialName = v.Credentials.Name
			resp.CredentialKind = v.Credentials.Kind
		}
	case *model.IPRoot:
		resp.Address = v.Address
	case *model.URLRoot:
		resp.URL = v.Protocol + "://" + v.Host
		resp.Host = v.Host
		resp.Port = v.Port
		resp.Path = v.Path
	}
	return resp
}

func handleListRoots(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := types.GroupID(chi.URLParam(r, "groupID"))

		roots, err := uc.ListRoots(r.Context(), groupID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := make([]rootResponse, 0, len(roots))
		for _, root := range roots {
			resp = append(resp, toRootResponse(root))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func handleAddGitRoot(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.AddGitRootInput
		if err := decodeBody(r, &input); err != nil {
			respondError(w, r, err)
			return
		}
		input.Form.GroupID = types.GroupID(chi.URLParam(r, "groupID"))

		root, err := uc.AddGitRoot(r.Context(), &input)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, toRootResponse(root))
	}
}

func handleUpdateGitRoot(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.UpdateGitRootInput
		if err := decodeBody(r, &input); err != nil {
			respondError(w, r, err)
			return
		}
		input.Form.RootID = types.RootID(chi.URLParam(r, "rootID"))

		root, err := uc.UpdateGitRoot(r.Context(), &input)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, toRootResponse(root))
	}
}

func handleValidateForm(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form model.GitRootForm
		if err := decodeBody(r, &form); err != nil {
			respondError(w, r, err)
			return
		}
		form.GroupID = types.GroupID(chi.URLParam(r, "groupID"))

		violations, err := uc.ValidateForm(r.Context(), &form)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"violations": violations,
		})
	}
}

func handleCheckAccess(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.CheckAccessInput
		if err := decodeBody(r, &input); err != nil {
			respondError(w, r, err)
			return
		}
		input.GroupID = types.GroupID(chi.URLParam(r, "groupID"))

		accessible, err := uc.CheckAccess(r.Context(), &input)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{
			"accessible": accessible,
		})
	}
}

func handleActivateRoot(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rootID := types.RootID(chi.URLParam(r, "rootID"))

		if err := uc.ActivateRoot(r.Context(), rootID); err != nil {
			respondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handlePreviewDeactivation(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rootID := types.RootID(chi.URLParam(r, "rootID"))

		open, err := uc.PreviewDeactivation(r.Context(), rootID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, open)
	}
}

func handleDeactivateRoot(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.DeactivateRootInput
		if err := decodeBody(r, &input); err != nil {
			respondError(w, r, err)
			return
		}
		input.RootID = types.RootID(chi.URLParam(r, "rootID"))

		closed, err := uc.DeactivateRoot(r.Context(), &input)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, closed)
	}
}

func handleMoveSuggestions(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rootID := types.RootID(chi.URLParam(r, "rootID"))

		groups, err := uc.MoveSuggestions(r.Context(), rootID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, groups)
	}
}

func handleMoveRoot(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.MoveRootInput
		if err := decodeBody(r, &input); err != nil {
			respondError(w, r, err)
			return
		}
		input.RootID = types.RootID(chi.URLParam(r, "rootID"))

		if err := uc.MoveRoot(r.Context(), &input); err != nil {
			respondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSyncRoot(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rootID := types.RootID(chi.URLParam(r, "rootID"))

		if err := uc.SyncRoot(r.Context(), rootID); err != nil {
			respondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}
