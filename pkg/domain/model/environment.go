package model

import (
	"time"

	"github.com/fluidattacks/roots/pkg/domain/types"
)

// EnvironmentURL is a deployed environment reachable from a root's code.
// The same literal URL may be attached to several roots; each
// (root, url) pair is a distinct record with its own secrets.
type EnvironmentURL struct {
	ID        types.EnvURLID
	RootID    types.RootID
	URL       string
	Kind      types.EnvURLKind
	Cloud     types.CloudProvider
	Secrets   []Secret
	CreatedAt time.Time
}

// Secret is a key/value pair scoped to one environment URL record.
type Secret struct {
	Key         string
	Value       types.SecretValue `masq:"secret"`
	Description string
}

// Group is the owning group of a set of roots.
type Group struct {
	ID   types.GroupID
	Org  types.OrgID
	Name string
	Tier types.PlanTier
}

// OpenVulns is the count of open findings attached to a root, shown to
// the user before deactivation closes them.
type OpenVulns struct {
	SAST int
	DAST int
}

func (x OpenVulns) Total() int {
	return x.SAST + x.DAST
}
