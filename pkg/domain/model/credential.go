package model

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Credential is authentication material granting scan access to a root.
// It is either created inline for one root or shared across roots of an
// organization (referenced by ID).
type Credential struct {
	ID    types.CredID
	Name  string
	Kind  types.CredentialKind
	Proto types.CredentialProto
	Auth  types.CredentialAuth

	Key               types.SSHPrivateKey `masq:"secret"`
	User              string
	Password          types.Password    `masq:"secret"`
	Token             types.AccessToken `masq:"secret"`
	AzureOrganization string
	IsPAT             bool
}

// Shared reports whether the credential references an existing
// organization credential rather than inline material.
func (x *Credential) Shared() bool {
	return x != nil && x.ID != ""
}

// Validate enforces that exactly the field set matching the credential
// kind is populated. Shared credentials carry no inline material.
func (x *Credential) Validate() error {
	if x == nil || x.Kind == types.CredentialKindNone {
		return nil
	}
	if x.Shared() {
		if x.Key != "" || x.Password != "" || x.Token != "" {
			return goerr.Wrap(types.ErrValidationFailed,
				"shared credential must not carry inline secrets",
				goerr.V("credID", x.ID),
			)
		}
		return nil
	}

	hasKey := x.Key != ""
	hasUserPass := x.User != "" && x.Password != ""
	hasToken := x.Token != ""

	switch x.Kind {
	case types.CredentialKindSSH:
		if !hasKey || hasUserPass || hasToken {
			return goerr.Wrap(types.ErrValidationFailed, "SSH credential requires only a private key")
		}
	case types.CredentialKindUser:
		if !hasUserPass || hasKey || hasToken {
			return goerr.Wrap(types.ErrValidationFailed, "user credential requires only user and password")
		}
	case types.CredentialKindToken:
		if !hasToken || hasKey || hasUserPass {
			return goerr.Wrap(types.ErrValidationFailed, "token credential requires only a token")
		}
		if x.IsPAT && x.AzureOrganization == "" {
			return goerr.Wrap(types.ErrValidationFailed, "PAT credential requires an Azure organization")
		}
	case types.CredentialKindOAuth:
		if hasKey || hasUserPass || hasToken {
			return goerr.Wrap(types.ErrValidationFailed, "OAuth credential carries no inline secrets")
		}
	default:
		return goerr.Wrap(types.ErrInvalidOption, "unknown credential kind", goerr.V("kind", x.Kind))
	}

	return nil
}

// AccessFingerprint identifies a (credential, branch, url) combination
// for the check-access probe cache. A probe result is applied only while
// the fingerprint of the live form still matches.
func (x *Credential) AccessFingerprint(rawURL, branch string) string {
	h := sha256.New()
	for _, v := range []string{
		rawURL, branch, string(x.Kind), string(x.ID),
		string(x.Key), x.User, string(x.Password), string(x.Token),
		x.AzureOrganization,
	} {
		h.Write([]byte(v))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
