package scanner

import (
	"errors"
	"fmt"
	"strings"
)

// The scanning engine rejects mutations with a closed set of string
// codes. Anything outside this set is treated as an unknown failure by
// the caller.
const (
	CodeRepeatedNickname  = "Exception - Active root with the same nickname already exists"
	CodeRepeatedRoot      = "Exception - Active root with the same URL/branch already exists"
	CodeInvalidChars      = "Exception - Invalid characters"
	CodeUnsanitizedInput  = "Exception - Unsanitized input found"
	CodeCredentialExists  = "Exception - A credential exists with the same name"
	CodeRootNotAccessible = "Exception - Git repository was not accessible with given credentials"
	CodeBranchNotFound    = "Exception - The branch is not present in the repository"
	CodeBlankCharacters   = "Exception - Field cannot contain blank characters"
	CodeNoCredentials     = "Exception - Root has no credentials configured"
	CodeAlreadyCloning    = "Exception - The root already has an active cloning process"
	CodeRootMoveConflict  = "Exception - The destination group already has the same root"
	CodeInvalidRootState  = "Exception - The root is not in a valid state"
)

// Error is a rejection reported by the scanning engine. Codes holds the
// backend's error codes verbatim; callers translate known codes and
// treat the rest as generic failures.
type Error struct {
	Op     string
	Status int
	Codes  []string
}

func (x *Error) Error() string {
	return fmt.Sprintf("scanner rejected %s (status=%d): %s",
		x.Op, x.Status, strings.Join(x.Codes, "; "))
}

// AsError unwraps err into a scanner rejection if it is one.
func AsError(err error) (*Error, bool) {
	var scanErr *Error
	if errors.As(err, &scanErr) {
		return scanErr, true
	}
	return nil, false
}
