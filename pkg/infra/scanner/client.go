// Package scanner is the HTTP client for the scanning engine API. Every
// mutation either succeeds or fails with a closed set of string error
// codes; see errors.go.
package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/fluidattacks/roots/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL    string
	token      types.ScannerToken
	httpClient HTTPClient
}

var _ interfaces.Scanner = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(baseURL string, token types.ScannerToken, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "scanner URL is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, goerr.Wrap(err, "invalid scanner URL", goerr.V("url", baseURL))
	}
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "scanner token is empty")
	}

	client := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// apiResponse is the engine's envelope: success, or a list of error
// codes explaining the rejection.
type apiResponse struct {
	OK    bool     `json:"ok"`
	Codes []string `json:"codes,omitempty"`
}

func (x *Client) dispatch(ctx context.Context, op string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return goerr.Wrap(err, "failed to encode scanner request", goerr.V("op", op))
	}

	endpoint := x.baseURL + "/api/v1/" + op
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to build scanner request", goerr.V("op", op))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+string(x.token))

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "scanner request failed", goerr.V("op", op))
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read scanner response", goerr.V("op", op))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return goerr.Wrap(err, "malformed scanner response",
			goerr.V("op", op),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		)
	}

	if resp.StatusCode == http.StatusOK && apiResp.OK {
		return nil
	}

	logging.From(ctx).Debug("scanner rejected operation",
		"op", op,
		"status", resp.StatusCode,
		"codes", apiResp.Codes,
	)

	return &Error{
		Op:     op,
		Status: resp.StatusCode,
		Codes:  apiResp.Codes,
	}
}

// credentialPayload carries credential material to the engine. Secrets
// are sent in clear over the authenticated channel; the struct is never
// logged directly.
type credentialPayload struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name,omitempty"`
	Kind              string `json:"kind,omitempty"`
	Key               string `json:"key,omitempty"`
	User              string `json:"user,omitempty"`
	Password          string `json:"password,omitempty"`
	Token             string `json:"token,omitempty"`
	AzureOrganization string `json:"azure_organization,omitempty"`
	IsPAT             bool   `json:"is_pat,omitempty"`
}

func toCredentialPayload(cred *model.Credential) *credentialPayload {
	if cred == nil {
		return nil
	}
	return &credentialPayload{
		ID:                string(cred.ID),
		Name:              cred.Name,
		Kind:              string(cred.Kind),
		Key:               string(cred.Key),
		User:              cred.User,
		Password:          string(cred.Password),
		Token:             string(cred.Token),
		AzureOrganization: cred.AzureOrganization,
		IsPAT:             cred.IsPAT,
	}
}

type gitRootPayload struct {
	RootID      string             `json:"root_id"`
	GroupID     string             `json:"group_id"`
	Nickname    string             `json:"nickname"`
	URL         string             `json:"url"`
	Branch      string             `json:"branch"`
	Environment string             `json:"environment,omitempty"`
	Gitignore   []string           `json:"gitignore,omitempty"`
	UseVPN      bool               `json:"use_vpn,omitempty"`
	Credential  *credentialPayload `json:"credential,omitempty"`
}

func toGitRootPayload(root *model.GitRoot) *gitRootPayload {
	return &gitRootPayload{
		RootID:      string(root.ID),
		GroupID:     string(root.GroupID),
		Nickname:    string(root.Nickname),
		URL:         root.URL,
		Branch:      string(root.Branch),
		Environment: root.Environment,
		Gitignore:   root.Gitignore,
		UseVPN:      root.UseVPN,
		Credential:  toCredentialPayload(root.Credentials),
	}
}

func (x *Client) AddRoot(ctx context.Context, root *model.GitRoot) error {
	return x.dispatch(ctx, "addRoot", toGitRootPayload(root))
}

func (x *Client) UpdateRoot(ctx context.Context, root *model.GitRoot, branchChanged bool) error {
	payload := struct {
		*gitRootPayload
		BranchChanged bool `json:"branch_changed"`
	}{
		gitRootPayload: toGitRootPayload(root),
		BranchChanged:  branchChanged,
	}
	return x.dispatch(ctx, "updateRoot", payload)
}

func (x *Client) ActivateRoot(ctx context.Context, rootID types.RootID) error {
	payload := struct {
		RootID string `json:"root_id"`
	}{
		RootID: string(rootID),
	}
	return x.dispatch(ctx, "activateRoot", payload)
}

func (x *Client) DeactivateRoot(ctx context.Context, rootID types.RootID, reason types.DeactivationReason, other string) error {
	payload := struct {
		RootID string `json:"root_id"`
		Reason string `json:"reason"`
		Other  string `json:"other,omitempty"`
	}{
		RootID: string(rootID),
		Reason: string(reason),
		Other:  other,
	}
	return x.dispatch(ctx, "deactivateRoot", payload)
}

func (x *Client) MoveRoot(ctx context.Context, rootID types.RootID, target types.GroupID) error {
	payload := struct {
		RootID      string `json:"root_id"`
		TargetGroup string `json:"target_group"`
	}{
		RootID:      string(rootID),
		TargetGroup: string(target),
	}
	return x.dispatch(ctx, "moveRoot", payload)
}

func (x *Client) SyncRoot(ctx context.Context, rootID types.RootID) error {
	payload := struct {
		RootID string `json:"root_id"`
	}{
		RootID: string(rootID),
	}
	return x.dispatch(ctx, "syncRoot", payload)
}

func (x *Client) ValidateAccess(ctx context.Context, input *interfaces.ValidateAccessInput) error {
	payload := struct {
		URL        string             `json:"url"`
		Branch     string             `json:"branch"`
		Credential *credentialPayload `json:"credential,omitempty"`
	}{
		URL:        input.URL,
		Branch:     input.Branch,
		Credential: toCredentialPayload(input.Credential),
	}
	return x.dispatch(ctx, "validateAccess", payload)
}
