package model

import (
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// GitRootForm is the full state of the root management form. The rules
// engine evaluates it on every field change; the lifecycle controller
// submits it once it passes.
type GitRootForm struct {
	RootID  types.RootID // empty on add
	GroupID types.GroupID

	URL         string
	Branch      string
	Environment string
	Nickname    string
	Gitignore   []string
	UseVPN      bool

	Credential CredentialForm

	IncludesHealthCheck *bool
	HealthCheckConfirm  []string
}

// CredentialForm is the credential section of the root form.
type CredentialForm struct {
	ExistingID types.CredID // non-empty when a shared credential is selected
	Name       string
	Kind       types.CredentialKind

	Key               types.SSHPrivateKey `masq:"secret"`
	User              string
	Password          types.Password    `masq:"secret"`
	Token             types.AccessToken `masq:"secret"`
	AzureOrganization string
	IsPAT             bool
}

// UsesExisting reports whether a shared organization credential is
// selected. Inline credential fields are neither required nor editable
// in that case.
func (x CredentialForm) UsesExisting() bool {
	return x.ExistingID != ""
}

// Credential materializes the form section into the domain credential.
func (x CredentialForm) Credential() *Credential {
	if x.Kind == types.CredentialKindNone && !x.UsesExisting() {
		return nil
	}

	cred := &Credential{
		ID:   x.ExistingID,
		Name: x.Name,
		Kind: x.Kind,
	}
	if x.UsesExisting() {
		return cred
	}

	switch x.Kind {
	case types.CredentialKindSSH:
		cred.Proto = types.CredentialProtoSSH
		cred.Key = x.Key
	case types.CredentialKindUser:
		cred.Proto = types.CredentialProtoHTTPS
		cred.Auth = types.CredentialAuthUser
		cred.User = x.User
		cred.Password = x.Password
	case types.CredentialKindToken:
		cred.Proto = types.CredentialProtoHTTPS
		cred.Auth = types.CredentialAuthToken
		cred.Token = x.Token
		cred.AzureOrganization = x.AzureOrganization
		cred.IsPAT = x.IsPAT
	case types.CredentialKindOAuth:
		cred.Proto = types.CredentialProtoHTTPS
	}
	return cred
}

type AddGitRootInput struct {
	Form GitRootForm
}

func (x *AddGitRootInput) Validate() error {
	if x.Form.GroupID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "group ID is empty")
	}
	if x.Form.RootID != "" {
		return goerr.Wrap(types.ErrInvalidOption, "root ID must be empty on add")
	}
	if x.Form.URL == "" {
		return goerr.Wrap(types.ErrValidationFailed, "URL is empty")
	}
	return nil
}

type UpdateGitRootInput struct {
	Form GitRootForm

	// BranchChangeConfirmed must be set when Form.Branch differs from the
	// stored branch. A branch change triggers a re-scan and loses scan
	// history, so the caller gates it behind an explicit confirmation.
	BranchChangeConfirmed bool
}

func (x *UpdateGitRootInput) Validate() error {
	if x.Form.RootID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "root ID is empty")
	}
	if x.Form.URL == "" {
		return goerr.Wrap(types.ErrValidationFailed, "URL is empty")
	}
	return nil
}

type DeactivateRootInput struct {
	RootID types.RootID
	Reason types.DeactivationReason
	Other  string
}

func (x *DeactivateRootInput) Validate() error {
	if x.RootID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "root ID is empty")
	}
	if !x.Reason.Valid() {
		return goerr.Wrap(types.ErrValidationFailed, "unknown deactivation reason",
			goerr.V("reason", x.Reason),
		)
	}
	if x.Reason == types.ReasonOther && x.Other == "" {
		return goerr.Wrap(types.ErrValidationFailed, "reason OTHER requires elaboration")
	}
	return nil
}

type MoveRootInput struct {
	RootID      types.RootID
	TargetGroup types.GroupID
}

func (x *MoveRootInput) Validate() error {
	if x.RootID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "root ID is empty")
	}
	if x.TargetGroup == "" {
		return goerr.Wrap(types.ErrInvalidOption, "target group is empty")
	}
	return nil
}

type CheckAccessInput struct {
	RootID     types.RootID // empty when probing before the root exists
	GroupID    types.GroupID
	URL        string
	Branch     string
	Credential CredentialForm
}

func (x *CheckAccessInput) Validate() error {
	if x.GroupID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "group ID is empty")
	}
	if x.URL == "" || x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "URL and branch are required to probe access")
	}
	return nil
}

// Fingerprint identifies the probed combination; see
// Credential.AccessFingerprint.
func (x *CheckAccessInput) Fingerprint() string {
	cred := x.Credential.Credential()
	if cred == nil {
		cred = &Credential{}
	}
	return cred.AccessFingerprint(x.URL, x.Branch)
}

// SyncPushedRepoInput identifies a pushed commit by the clone URL
// variants of its repository. Every active root tracking one of the
// URLs at the pushed branch gets a re-clone.
type SyncPushedRepoInput struct {
	CloneURLs []string
	Branch    string
}

func (x *SyncPushedRepoInput) Validate() error {
	if len(x.CloneURLs) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "clone URL candidates are empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrInvalidOption, "branch is empty")
	}
	return nil
}

type AddEnvironmentURLInput struct {
	RootID types.RootID
	URL    string
	Kind   types.EnvURLKind
	Cloud  types.CloudProvider
}

func (x *AddEnvironmentURLInput) Validate() error {
	if x.RootID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "root ID is empty")
	}
	if x.Kind == "" {
		return goerr.Wrap(types.ErrValidationFailed, "url type is required")
	}
	if x.Kind == types.EnvURLKindCloud && x.Cloud == types.CloudProviderNone {
		return goerr.Wrap(types.ErrValidationFailed, "cloud provider is required for CLOUD urls")
	}
	if x.Kind != types.EnvURLKindCloud && x.Cloud != types.CloudProviderNone {
		return goerr.Wrap(types.ErrValidationFailed, "cloud provider is only valid for CLOUD urls")
	}
	return nil
}

type AddEnvironmentSecretInput struct {
	RootID      types.RootID
	EnvURLID    types.EnvURLID
	Key         string
	Value       types.SecretValue `masq:"secret"`
	Description string
}

func (x *AddEnvironmentSecretInput) Validate() error {
	if x.RootID == "" || x.EnvURLID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "root ID and environment URL ID are required")
	}
	if x.Key == "" {
		return goerr.Wrap(types.ErrValidationFailed, "secret key is empty")
	}
	return nil
}
