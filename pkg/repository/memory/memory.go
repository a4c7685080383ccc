package memory

import (
	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
)

// New creates a new in-memory repository
func New() interfaces.RootRepository {
	return &rootRepository{
		groups: make(map[types.GroupID]*model.Group),
		roots:  make(map[types.RootID]model.Root),
		envs:   make(map[types.RootID][]*model.EnvironmentURL),
		creds:  make(map[types.OrgID][]*model.Credential),
		vulns:  make(map[types.RootID]map[types.VulnKind]int),
	}
}
