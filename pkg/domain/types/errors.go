package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrValidationFailed = goerr.New("validation failed")
	ErrInvalidOption    = goerr.New("invalid option")

	// ErrRootBusy rejects a second mutation on a root while one is in
	// flight. The caller should retry after the pending one settles.
	ErrRootBusy = goerr.New("another operation on the root is in progress")

	// ErrStaleProbe marks a check-access response that arrived after the
	// credential fields it was evaluated against changed.
	ErrStaleProbe = goerr.New("access probe result is stale")

	// ErrBranchChangeUnconfirmed gates branch edits: changing the branch
	// triggers a re-scan and drops history, so it needs an explicit
	// confirmation flag.
	ErrBranchChangeUnconfirmed = goerr.New("branch change requires confirmation")
)
