package usecase

import (
	"context"

	"github.com/fluidattacks/roots/pkg/domain/rules"
	"github.com/fluidattacks/roots/pkg/infra/scanner"
	"github.com/fluidattacks/roots/pkg/utils/errutil"
)

// Message keys resolved by the presentation layer for remote
// rejections. Local validation failures use the keys in pkg/domain/rules.
const (
	MsgRepeatedNickname  = "errors.duplicateNickname"
	MsgRepeatedRoot      = "errors.duplicateRootURLBranch"
	MsgInvalidChars      = "errors.invalidCharacters"
	MsgUnsanitizedInput  = "errors.unsanitizedInput"
	MsgCredentialExists  = "errors.credentialNameTaken"
	MsgRootNotAccessible = "errors.rootNotAccessible"
	MsgBranchNotFound    = "errors.branchNotFound"
	MsgBlankCharacters   = "errors.blankCharacters"
	MsgNoCredentials     = "errors.noCredentials"
	MsgAlreadyCloning    = "errors.alreadyCloning"
	MsgRootMoveConflict  = "errors.moveConflict"
	MsgInvalidRootState  = "errors.invalidRootState"
	MsgGenericFailure    = "errors.genericFailure"
)

var codeToMessageKey = map[string]string{
	scanner.CodeRepeatedNickname:  MsgRepeatedNickname,
	scanner.CodeRepeatedRoot:      MsgRepeatedRoot,
	scanner.CodeInvalidChars:      MsgInvalidChars,
	scanner.CodeUnsanitizedInput:  MsgUnsanitizedInput,
	scanner.CodeCredentialExists:  MsgCredentialExists,
	scanner.CodeRootNotAccessible: MsgRootNotAccessible,
	scanner.CodeBranchNotFound:    MsgBranchNotFound,
	scanner.CodeBlankCharacters:   MsgBlankCharacters,
	scanner.CodeNoCredentials:     MsgNoCredentials,
	scanner.CodeAlreadyCloning:    MsgAlreadyCloning,
	scanner.CodeRootMoveConflict:  MsgRootMoveConflict,
	scanner.CodeInvalidRootState:  MsgInvalidRootState,
}

// Rejection is a remote rejection translated to user-facing message
// keys. It is recoverable: the caller keeps its state and may retry.
type Rejection struct {
	MessageKeys []string
	Codes       []string
}

func (x *Rejection) Error() string {
	if len(x.MessageKeys) == 0 {
		return MsgGenericFailure
	}
	msg := x.MessageKeys[0]
	for _, k := range x.MessageKeys[1:] {
		msg += "; " + k
	}
	return msg
}

// FormError reports local rule violations that block submission. It
// never reaches the scanning engine.
type FormError struct {
	Violations []rules.Violation
}

func (x *FormError) Error() string {
	msg := "form has violations"
	for _, v := range x.Violations {
		msg += "; " + string(v.Field) + ": " + v.MessageKey
	}
	return msg
}

// translateRemoteError maps a scanning engine failure onto user-facing
// message keys. Known codes translate 1:1; unknown codes and transport
// failures become a generic message and are reported for diagnosis.
func (x *UseCase) translateRemoteError(ctx context.Context, err error) error {
	scanErr, ok := scanner.AsError(err)
	if !ok {
		errutil.HandleError(ctx, "scanner call failed", err)
		return &Rejection{MessageKeys: []string{MsgGenericFailure}}
	}

	rejection := &Rejection{Codes: scanErr.Codes}
	unknown := false
	for _, code := range scanErr.Codes {
		key, known := codeToMessageKey[code]
		if !known {
			unknown = true
			continue
		}
		rejection.MessageKeys = append(rejection.MessageKeys, key)
	}
	if unknown || len(rejection.MessageKeys) == 0 {
		errutil.HandleError(ctx, "scanner returned unknown error code", err)
		rejection.MessageKeys = append(rejection.MessageKeys, MsgGenericFailure)
	}

	return rejection
}
