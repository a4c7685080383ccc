package types

import "log/slog"

type (
	OrgID    string
	GroupID  string
	RootID   string
	CredID   string
	EnvURLID string

	Nickname   string
	BranchName string

	SSHPrivateKey string
	Password      string
	AccessToken   string
	SecretValue   string
)

// RootState is the lifecycle state of a root. Roots are never deleted,
// only deactivated.
type RootState string

const (
	RootStateActive   RootState = "ACTIVE"
	RootStateInactive RootState = "INACTIVE"
)

// RootKind discriminates the root variants.
type RootKind string

const (
	RootKindGit RootKind = "Git"
	RootKindIP  RootKind = "IP"
	RootKindURL RootKind = "URL"
)

// CredentialKind is the presentation-level credential type selected in
// the root form.
type CredentialKind string

const (
	CredentialKindNone  CredentialKind = ""
	CredentialKindSSH   CredentialKind = "SSH"
	CredentialKindUser  CredentialKind = "USER"
	CredentialKindToken CredentialKind = "TOKEN"
	CredentialKindOAuth CredentialKind = "OAUTH"
)

// CredentialProto is the wire-level credential protocol.
type CredentialProto string

const (
	CredentialProtoNone  CredentialProto = ""
	CredentialProtoSSH   CredentialProto = "SSH"
	CredentialProtoHTTPS CredentialProto = "HTTPS"
)

// CredentialAuth distinguishes HTTPS sub-flows.
type CredentialAuth string

const (
	CredentialAuthNone  CredentialAuth = ""
	CredentialAuthUser  CredentialAuth = "USER"
	CredentialAuthToken CredentialAuth = "TOKEN"
)

// CloningState is reported by the remote scanning engine. The service
// only stores and displays it.
type CloningState string

const (
	CloningStateUnknown CloningState = "UNKNOWN"
	CloningStateQueued  CloningState = "QUEUED"
	CloningStateCloning CloningState = "CLONING"
	CloningStateOK      CloningState = "OK"
	CloningStateFailed  CloningState = "FAILED"
	CloningStateNA      CloningState = "N/A"
)

// InFlight reports whether a clone is queued or running. Sync requests
// are rejected while this holds.
func (x CloningState) InFlight() bool {
	return x == CloningStateQueued || x == CloningStateCloning
}

// DeactivationReason is the categorical reason required to deactivate a
// root. ReasonOther additionally requires free-text elaboration.
type DeactivationReason string

const (
	ReasonOutOfScope DeactivationReason = "OUT_OF_SCOPE"
	ReasonMistake    DeactivationReason = "REGISTERED_BY_MISTAKE"
	ReasonMoved      DeactivationReason = "MOVED_TO_ANOTHER_GROUP"
	ReasonOther      DeactivationReason = "OTHER"
)

func (x DeactivationReason) Valid() bool {
	switch x {
	case ReasonOutOfScope, ReasonMistake, ReasonMoved, ReasonOther:
		return true
	}
	return false
}

// PlanTier is the scanning-service tier of a group. The advanced tier
// gates the health-check acknowledgement requirement.
type PlanTier string

const (
	PlanTierMachine PlanTier = "MACHINE"
	PlanTierSquad   PlanTier = "SQUAD"
)

// AdvancedScanning reports whether the tier unlocks the advanced scan
// features that require a health-check acknowledgement.
func (x PlanTier) AdvancedScanning() bool {
	return x == PlanTierSquad
}

// EnvURLKind classifies an environment URL entry.
type EnvURLKind string

const (
	EnvURLKindURL   EnvURLKind = "URL"
	EnvURLKindAPK   EnvURLKind = "APK"
	EnvURLKindCloud EnvURLKind = "CLOUD"
)

// CloudProvider is set only when the environment URL kind is CLOUD.
type CloudProvider string

const (
	CloudProviderNone  CloudProvider = ""
	CloudProviderAWS   CloudProvider = "AWS"
	CloudProviderAzure CloudProvider = "AZURE"
	CloudProviderGCP   CloudProvider = "GCP"
)

// VulnKind classifies open findings attached to a root, reported when
// deactivation is previewed.
type VulnKind string

const (
	VulnKindSAST VulnKind = "SAST"
	VulnKindDAST VulnKind = "DAST"
)

// Health-check acknowledgement tokens. Accepting requires exactly the
// include token; declining requires all three reject tokens.
const (
	HealthCheckAccept  = "includeA"
	HealthCheckRejectA = "rejectA"
	HealthCheckRejectB = "rejectB"
	HealthCheckRejectC = "rejectC"
)

func (x SSHPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SSHPrivateKey) String() string {
	return "***********"
}

func (x Password) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x Password) String() string {
	return "***********"
}

func (x AccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AccessToken) String() string {
	return "***********"
}

func (x SecretValue) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SecretValue) String() string {
	return "***********"
}
