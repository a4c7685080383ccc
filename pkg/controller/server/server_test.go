package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fluidattacks/roots/pkg/controller/server"
	"github.com/fluidattacks/roots/pkg/domain/mock"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/rules"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/repository"
	"github.com/fluidattacks/roots/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func postJSON(t *testing.T, mux http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data := gt.R1(json.Marshal(body)).NoError(t)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := server.New(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Mux().ServeHTTP(w, req)

	gt.V(t, w.Code).Equal(http.StatusOK)
	gt.V(t, w.Body.String()).Equal("ok")
}

func TestAddGitRoot(t *testing.T) {
	t.Run("created root is returned without secrets", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			AddGitRootFunc: func(ctx context.Context, input *model.AddGitRootInput) (*model.GitRoot, error) {
				return &model.GitRoot{
					RootCommon: model.RootCommon{
						ID:       "root-1",
						GroupID:  input.Form.GroupID,
						Nickname: "universe",
						State:    types.RootStateActive,
					},
					URL:    input.Form.URL,
					Branch: types.BranchName(input.Form.Branch),
					Credentials: &model.Credential{
						Name:  "deploy token",
						Kind:  types.CredentialKindToken,
						Token: "glpat-xxxx",
					},
					Cloning: model.CloningStatus{Status: types.CloningStateQueued},
				}, nil
			},
		}
		s := server.New(uc)

		w := postJSON(t, s.Mux(), "/api/v1/groups/unittesting/roots/git", model.AddGitRootInput{
			Form: model.GitRootForm{
				URL:    "https://gitlab.com/org/universe",
				Branch: "main",
			},
		})

		gt.V(t, w.Code).Equal(http.StatusCreated)

		calls := uc.AddGitRootCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Input.Form.GroupID).Equal(types.GroupID("unittesting"))

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		gt.V(t, resp["nickname"]).Equal("universe")
		gt.V(t, resp["credentialName"]).Equal("deploy token")
		gt.False(t, strings.Contains(w.Body.String(), "glpat-xxxx"))
	})

	t.Run("violations map to 400 with message keys", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			AddGitRootFunc: func(ctx context.Context, input *model.AddGitRootInput) (*model.GitRoot, error) {
				return nil, &usecase.FormError{Violations: []rules.Violation{
					{Field: rules.FieldBranch, MessageKey: rules.MsgRequired},
				}}
			},
		}
		s := server.New(uc)

		w := postJSON(t, s.Mux(), "/api/v1/groups/unittesting/roots/git", model.AddGitRootInput{})
		gt.V(t, w.Code).Equal(http.StatusBadRequest)

		var resp struct {
			Violations []rules.Violation `json:"violations"`
		}
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		gt.V(t, len(resp.Violations)).Equal(1)
		gt.V(t, resp.Violations[0].Field).Equal(rules.FieldBranch)
	})

	t.Run("remote rejection maps to 422", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			AddGitRootFunc: func(ctx context.Context, input *model.AddGitRootInput) (*model.GitRoot, error) {
				return nil, &usecase.Rejection{MessageKeys: []string{usecase.MsgRepeatedRoot}}
			},
		}
		s := server.New(uc)

		w := postJSON(t, s.Mux(), "/api/v1/groups/unittesting/roots/git", model.AddGitRootInput{})
		gt.V(t, w.Code).Equal(http.StatusUnprocessableEntity)
		gt.True(t, strings.Contains(w.Body.String(), usecase.MsgRepeatedRoot))
	})
}

func TestListRoots(t *testing.T) {
	t.Run("environment secret values stay server side", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListRootsFunc: func(ctx context.Context, groupID types.GroupID) ([]model.Root, error) {
				return []model.Root{&model.GitRoot{
					RootCommon: model.RootCommon{
						ID:      "root-1",
						GroupID: groupID,
						State:   types.RootStateActive,
					},
					URL:    "https://gitlab.com/org/universe",
					Branch: "main",
					EnvironmentURLs: []model.EnvironmentURL{{
						ID:   "env-1",
						URL:  "https://app.example.com",
						Kind: types.EnvURLKindURL,
						Secrets: []model.Secret{{
							Key:         "DB_PASSWORD",
							Value:       "hunter2-super-secret",
							Description: "production database",
						}},
					}},
				}}, nil
			},
		}
		s := server.New(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/unittesting/roots", nil)
		w := httptest.NewRecorder()
		s.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusOK)
		// Key and description serialize so the console can list secrets,
		// but the value never leaves the service.
		gt.True(t, strings.Contains(w.Body.String(), "DB_PASSWORD"))
		gt.True(t, strings.Contains(w.Body.String(), "production database"))
		gt.False(t, strings.Contains(w.Body.String(), "hunter2-super-secret"))
	})
}

func TestUpdateGitRoot(t *testing.T) {
	t.Run("unconfirmed branch change maps to 409", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			UpdateGitRootFunc: func(ctx context.Context, input *model.UpdateGitRootInput) (*model.GitRoot, error) {
				return nil, goerr.Wrap(types.ErrBranchChangeUnconfirmed, "branch change needs confirmation")
			},
		}
		s := server.New(uc)

		data := gt.R1(json.Marshal(model.UpdateGitRootInput{})).NoError(t)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/roots/root-1/", bytes.NewReader(data))
		w := httptest.NewRecorder()
		s.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusConflict)
	})

	t.Run("root ID comes from the path", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			UpdateGitRootFunc: func(ctx context.Context, input *model.UpdateGitRootInput) (*model.GitRoot, error) {
				return &model.GitRoot{RootCommon: model.RootCommon{ID: input.Form.RootID}}, nil
			},
		}
		s := server.New(uc)

		data := gt.R1(json.Marshal(model.UpdateGitRootInput{})).NoError(t)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/roots/root-1/", bytes.NewReader(data))
		w := httptest.NewRecorder()
		s.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusOK)
		calls := uc.UpdateGitRootCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Input.Form.RootID).Equal(types.RootID("root-1"))
	})
}

func TestLifecycleEndpoints(t *testing.T) {
	t.Run("deactivation returns the closed counters", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			DeactivateRootFunc: func(ctx context.Context, input *model.DeactivateRootInput) (model.OpenVulns, error) {
				return model.OpenVulns{SAST: 5, DAST: 2}, nil
			},
		}
		s := server.New(uc)

		w := postJSON(t, s.Mux(), "/api/v1/roots/root-1/deactivate", model.DeactivateRootInput{
			Reason: types.ReasonOutOfScope,
		})

		gt.V(t, w.Code).Equal(http.StatusOK)
		var resp model.OpenVulns
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		gt.V(t, resp.Total()).Equal(7)
	})

	t.Run("unknown root maps to 404", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ActivateRootFunc: func(ctx context.Context, rootID types.RootID) error {
				return goerr.Wrap(repository.ErrNotFound, "root not found")
			},
		}
		s := server.New(uc)

		w := postJSON(t, s.Mux(), "/api/v1/roots/nope/activate", nil)
		gt.V(t, w.Code).Equal(http.StatusNotFound)
	})

	t.Run("sync responds accepted", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			SyncRootFunc: func(ctx context.Context, rootID types.RootID) error {
				return nil
			},
		}
		s := server.New(uc)

		w := postJSON(t, s.Mux(), "/api/v1/roots/root-1/sync", nil)
		gt.V(t, w.Code).Equal(http.StatusAccepted)
		gt.V(t, len(uc.SyncRootCalls())).Equal(1)
	})
}

func TestGitHubWebhook(t *testing.T) {
	t.Run("push event queues a background sync", func(t *testing.T) {
		synced := make(chan *model.SyncPushedRepoInput, 1)
		uc := &mock.UseCaseMock{
			SyncPushedRepoFunc: func(ctx context.Context, input *model.SyncPushedRepoInput) error {
				synced <- input
				return nil
			},
		}
		s := server.New(uc)

		payload := map[string]any{
			"ref": "refs/heads/main",
			"repository": map[string]any{
				"clone_url": "https://github.com/org/universe.git",
				"ssh_url":   "git@github.com:org/universe.git",
				"html_url":  "https://github.com/org/universe",
			},
		}
		data := gt.R1(json.Marshal(payload)).NoError(t)
		req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "push")

		w := httptest.NewRecorder()
		s.Mux().ServeHTTP(w, req)
		gt.V(t, w.Code).Equal(http.StatusAccepted)

		select {
		case input := <-synced:
			gt.V(t, input.Branch).Equal("main")
			gt.True(t, len(input.CloneURLs) >= 2)
		case <-time.After(3 * time.Second):
			t.Fatal("sync was not triggered")
		}
	})

	t.Run("ping event is acknowledged without a sync", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		s := server.New(uc)

		req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "ping")

		w := httptest.NewRecorder()
		s.Mux().ServeHTTP(w, req)
		gt.V(t, w.Code).Equal(http.StatusOK)
		gt.V(t, len(uc.SyncPushedRepoCalls())).Equal(0)
	})
}
