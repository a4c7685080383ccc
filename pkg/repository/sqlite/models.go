package sqlite

import "time"

type groupModel struct {
	ID        string `gorm:"primaryKey;type:char(36)"`
	OrgID     string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Tier      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (groupModel) TableName() string { return "groups" }

type rootModel struct {
	ID        string `gorm:"primaryKey;type:char(36)"`
	GroupID   string `gorm:"not null;index"`
	Kind      string `gorm:"not null"`
	Nickname  string `gorm:"not null;index"`
	State     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	DeactivationReason string
	DeactivationOther  string

	// Git variant
	Branch              string
	URL                 string
	Environment         string
	Gitignore           string // patterns separated by null character (\0)
	UseVPN              bool
	CloningStatus       string
	CloningMessage      string
	IncludesHealthCheck *bool
	HealthCheckConfirm  string // tokens separated by null character (\0)

	// Credential. Secrets live in an encrypted JSON blob; a non-empty
	// CredentialID references a shared organization credential instead.
	CredentialID   string
	CredentialName string
	CredentialKind string
	CredentialBlob string `gorm:"type:text"`

	// IP variant
	Address string

	// URL variant
	Protocol string
	Host     string
	Port     string
	Path     string
	Query    string
}

func (rootModel) TableName() string { return "roots" }

type environmentURLModel struct {
	ID        string `gorm:"primaryKey;type:char(36)"`
	RootID    string `gorm:"not null;index"`
	URL       string `gorm:"not null"`
	Kind      string `gorm:"not null"`
	Cloud     string
	CreatedAt time.Time

	Secrets []environmentSecretModel `gorm:"foreignKey:EnvURLID;constraint:OnDelete:CASCADE"`
}

func (environmentURLModel) TableName() string { return "environment_urls" }

type environmentSecretModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	EnvURLID    string `gorm:"not null;index"`
	Key         string `gorm:"not null"`
	Value       string `gorm:"type:text"` // encrypted
	Description string
}

func (environmentSecretModel) TableName() string { return "environment_secrets" }

type orgCredentialModel struct {
	ID        string `gorm:"primaryKey;type:char(36)"`
	OrgID     string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Kind      string `gorm:"not null"`
	Blob      string `gorm:"type:text"` // encrypted
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (orgCredentialModel) TableName() string { return "organization_credentials" }

type vulnCounterModel struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	RootID string `gorm:"not null;index"`
	Kind   string `gorm:"not null"`
	Count  int    `gorm:"not null"`
	Closed bool   `gorm:"not null;default:false"`
}

func (vulnCounterModel) TableName() string { return "vuln_counters" }
