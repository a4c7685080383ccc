package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/rules"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/repository"
	"github.com/fluidattacks/roots/pkg/usecase"
	"github.com/fluidattacks/roots/pkg/utils/errutil"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

type Server struct {
	mux *chi.Mux
}

type config struct {
	ghSecret types.GitHubAppSecret
}

type Option func(*config)

// WithGitHubSecret enables signature validation on the GitHub webhook
// endpoint.
func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/groups/{groupID}", func(r chi.Router) {
			r.Get("/roots", handleListRoots(uc))
			r.Post("/roots/git", handleAddGitRoot(uc))
			r.Post("/roots/validate", handleValidateForm(uc))
			r.Post("/roots/access", handleCheckAccess(uc))
			r.Get("/files", handleListGroupFiles(uc))
		})

		r.Route("/roots/{rootID}", func(r chi.Router) {
			r.Put("/", handleUpdateGitRoot(uc))
			r.Post("/activate", handleActivateRoot(uc))
			r.Get("/deactivation", handlePreviewDeactivation(uc))
			r.Post("/deactivate", handleDeactivateRoot(uc))
			r.Get("/moves", handleMoveSuggestions(uc))
			r.Post("/move", handleMoveRoot(uc))
			r.Post("/sync", handleSyncRoot(uc))

			r.Route("/environments", func(r chi.Router) {
				r.Post("/", handleAddEnvironmentURL(uc))
				r.Delete("/{envURLID}", handleRemoveEnvironmentURL(uc))
				r.Post("/{envURLID}/secrets", handleAddEnvironmentSecret(uc))
			})
		})

		r.Get("/orgs/{orgID}/credentials", handleListCredentials(uc))
	})

	r.Route("/webhook", func(r chi.Router) {
		r.Route("/github", func(r chi.Router) {
			r.Post("/app", handleGitHubWebhook(uc, cfg.ghSecret))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

type errorResponse struct {
	Error       string            `json:"error"`
	MessageKeys []string          `json:"messageKeys,omitempty"`
	Violations  []rules.Violation `json:"violations,omitempty"`
}

// respondError maps domain failures onto HTTP statuses. Validation
// violations and remote rejections keep their message keys so the form
// can render them; anything unrecognized is reported and returned as an
// opaque 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var formErr *usecase.FormError
	if errors.As(err, &formErr) {
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Error:      "validation failed",
			Violations: formErr.Violations,
		})
		return
	}

	var rejection *usecase.Rejection
	if errors.As(err, &rejection) {
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:       "rejected",
			MessageKeys: rejection.MessageKeys,
		})
		return
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})

	case errors.Is(err, types.ErrBranchChangeUnconfirmed),
		errors.Is(err, types.ErrRootBusy),
		errors.Is(err, types.ErrStaleProbe):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.Is(err, types.ErrValidationFailed),
		errors.Is(err, types.ErrInvalidOption):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	default:
		errutil.HandleError(r.Context(), "request failed", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("cause", err.Error()))
	}
	return nil
}
