// Package rules evaluates the conditional field constraints of the root
// management form. Evaluation is a pure function of the form state plus
// explicitly passed context (entitlements, sibling nicknames, cached
// probe results) and is intended to run on every field change.
package rules

import (
	"github.com/fluidattacks/roots/pkg/domain/model"
)

// Field names a form field carrying constraints.
type Field string

const (
	FieldURL                 Field = "url"
	FieldBranch              Field = "branch"
	FieldEnvironment         Field = "environment"
	FieldNickname            Field = "nickname"
	FieldGitignore           Field = "gitignore"
	FieldCredentialKind      Field = "credentials.typeCredential"
	FieldCredentialKey       Field = "credentials.key"
	FieldCredentialUser      Field = "credentials.user"
	FieldCredentialPassword  Field = "credentials.password"
	FieldCredentialToken     Field = "credentials.token"
	FieldCredentialAzureOrg  Field = "credentials.azureOrganization"
	FieldIncludesHealthCheck Field = "includesHealthCheck"
	FieldHealthCheckConfirm  Field = "healthCheckConfirm"
)

// fieldOrder fixes the order in which violations are reported.
var fieldOrder = []Field{
	FieldURL,
	FieldBranch,
	FieldEnvironment,
	FieldNickname,
	FieldGitignore,
	FieldCredentialKind,
	FieldCredentialKey,
	FieldCredentialUser,
	FieldCredentialPassword,
	FieldCredentialToken,
	FieldCredentialAzureOrg,
	FieldIncludesHealthCheck,
	FieldHealthCheckConfirm,
}

// Message keys resolved by the presentation layer.
const (
	MsgRequired          = "validations.required"
	MsgSSHFormat         = "validations.invalidSshFormat"
	MsgNoSpaces          = "validations.noSpaces"
	MsgOAuthHTTPSOnly    = "validations.oauthHttpsOnly"
	MsgNicknameFormat    = "validations.invalidNickname"
	MsgDuplicateNickname = "validations.duplicateNickname"
	MsgSelfExclusion     = "validations.selfExclusion"
	MsgHealthCheckTokens = "validations.healthCheckConfirm"
	MsgInaccessible      = "validations.repositoryNotAccessible"
	MsgBlankCharacters   = "validations.blankCharacters"
)

// Form is the evaluation input: the live form plus the context flags the
// engine would otherwise have to read ambiently.
type Form struct {
	model.GitRootForm

	// AdvancedScanning is the organization entitlement that gates the
	// health-check acknowledgement fields.
	AdvancedScanning bool

	// HealthCheckGiven is set when the acknowledgement is already on
	// file for this root.
	HealthCheckGiven bool

	// ActiveNicknames holds the nicknames of the other ACTIVE roots in
	// the group. The root being edited is excluded by the caller, so an
	// unchanged nickname never collides with itself.
	ActiveNicknames []string

	// AccessOK is the cached outcome of the last check-access probe for
	// the current (credential, branch, url) fingerprint. Nil when no
	// probe result applies.
	AccessOK *bool
}

// Test is a format predicate. It runs only when its field has a value
// (or, for requirement-carrying fields like healthCheckConfirm, when the
// field is required).
type Test struct {
	MessageKey string
	OK         func(Form) bool
}

// Rule is the constraint set of one field for the current form state.
type Rule struct {
	Required bool
	// Present reports whether the field currently has a value.
	Present func(Form) bool
	Tests   []Test
}

// RuleSet maps fields to their active constraints.
type RuleSet map[Field]Rule

// Violation is one failed constraint.
type Violation struct {
	Field      Field  `json:"field"`
	MessageKey string `json:"messageKey"`
}

// Violations applies the rule set to the form and returns the failures
// in stable field order.
func (rs RuleSet) Violations(form Form) []Violation {
	var out []Violation
	for _, field := range fieldOrder {
		rule, ok := rs[field]
		if !ok {
			continue
		}

		present := rule.Present(form)
		if rule.Required && !present {
			out = append(out, Violation{Field: field, MessageKey: MsgRequired})
			continue
		}
		if !present {
			continue
		}
		for _, test := range rule.Tests {
			if !test.OK(form) {
				out = append(out, Violation{Field: field, MessageKey: test.MessageKey})
			}
		}
	}
	return out
}

// RequiredFields returns the set of currently required fields.
func (rs RuleSet) RequiredFields() map[Field]bool {
	out := make(map[Field]bool)
	for field, rule := range rs {
		if rule.Required {
			out[field] = true
		}
	}
	return out
}
