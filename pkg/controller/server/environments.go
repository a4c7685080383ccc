package server

import (
	"net/http"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/go-chi/chi/v5"
)

func handleAddEnvironmentURL(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.AddEnvironmentURLInput
		if err := decodeBody(r, &input); err != nil {
			respondError(w, r, err)
			return
		}
		input.RootID = types.RootID(chi.URLParam(r, "rootID"))

		env, err := uc.AddEnvironmentURL(r.Context(), &input)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, toEnvironmentURLResponse(*env))
	}
}

func handleRemoveEnvironmentURL(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rootID := types.RootID(chi.URLParam(r, "rootID"))
		envURLID := types.EnvURLID(chi.URLParam(r, "envURLID"))

		if err := uc.RemoveEnvironmentURL(r.Context(), rootID, envURLID); err != nil {
			respondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAddEnvironmentSecret(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.AddEnvironmentSecretInput
		if err := decodeBody(r, &input); err != nil {
			respondError(w, r, err)
			return
		}
		input.RootID = types.RootID(chi.URLParam(r, "rootID"))
		input.EnvURLID = types.EnvURLID(chi.URLParam(r, "envURLID"))

		if err := uc.AddEnvironmentSecret(r.Context(), &input); err != nil {
			respondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleListGroupFiles(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := types.GroupID(chi.URLParam(r, "groupID"))

		files, err := uc.ListGroupFiles(r.Context(), groupID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"files": files,
		})
	}
}

// handleListCredentials exposes the shared organization credentials.
// Only names and kinds: the secret material stays server side.
func handleListCredentials(uc interfaces.UseCase) http.HandlerFunc {
	type credentialResponse struct {
		ID   types.CredID         `json:"id"`
		Name string               `json:"name"`
		Kind types.CredentialKind `json:"kind"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		orgID := types.OrgID(chi.URLParam(r, "orgID"))

		creds, err := uc.ListOrganizationCredentials(r.Context(), orgID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := make([]credentialResponse, 0, len(creds))
		for _, cred := range creds {
			resp = append(resp, credentialResponse{
				ID:   cred.ID,
				Name: cred.Name,
				Kind: cred.Kind,
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
