// Package usecase is the root lifecycle controller. Each mutation
// validates locally, dispatches to the scanning engine, and commits the
// transition to the repository only on success. Failed mutations leave
// local state untouched.
package usecase

import (
	"sync"

	"github.com/fluidattacks/roots/pkg/domain/interfaces"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/fluidattacks/roots/pkg/infra"
	"github.com/m-mizutani/goerr/v2"
)

type UseCase struct {
	clients *infra.Clients

	// inflight serializes mutations per root. A mutation arriving while
	// another is running on the same root is rejected, not queued.
	inflightMu sync.Mutex
	inflight   map[types.RootID]bool

	// probes caches check-access outcomes by fingerprint and discards
	// stale results by generation; see check_access.go.
	probesMu    sync.Mutex
	probeResult map[string]bool
	probeGen    map[string]uint64
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients:     clients,
		inflight:    make(map[types.RootID]bool),
		probeResult: make(map[string]bool),
		probeGen:    make(map[string]uint64),
	}
}

// lockRoot claims the per-root mutation slot. It fails with ErrRootBusy
// when another mutation is in flight for the same root.
func (x *UseCase) lockRoot(rootID types.RootID) (func(), error) {
	x.inflightMu.Lock()
	defer x.inflightMu.Unlock()

	if x.inflight[rootID] {
		return nil, goerr.Wrap(types.ErrRootBusy, "another mutation is in flight",
			goerr.V("rootID", rootID),
		)
	}
	x.inflight[rootID] = true

	return func() {
		x.inflightMu.Lock()
		defer x.inflightMu.Unlock()
		delete(x.inflight, rootID)
	}, nil
}
