package usecase

import (
	"context"

	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/rules"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ValidateForm evaluates the constraint schema against the live form.
// The HTTP API exposes it for per-keystroke validation; the mutations
// run it again before dispatching.
func (x *UseCase) ValidateForm(ctx context.Context, form *model.GitRootForm) ([]rules.Violation, error) {
	evaluated, err := x.evaluateForm(ctx, form)
	if err != nil {
		return nil, err
	}
	return evaluated.violations, nil
}

type evaluatedForm struct {
	form       rules.Form
	violations []rules.Violation
}

// evaluateForm assembles the evaluation context (entitlement, sibling
// nicknames, cached probe outcome) and runs the rules engine.
func (x *UseCase) evaluateForm(ctx context.Context, form *model.GitRootForm) (*evaluatedForm, error) {
	if form.GroupID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "group ID is empty")
	}

	repo := x.clients.RootRepository()
	group, err := repo.GetGroup(ctx, form.GroupID)
	if err != nil {
		return nil, err
	}

	roots, err := repo.ListRoots(ctx, form.GroupID)
	if err != nil {
		return nil, err
	}

	var nicknames []string
	healthCheckGiven := false
	for _, root := range roots {
		common := root.Common()
		if common.ID == form.RootID {
			if git, ok := root.(*model.GitRoot); ok && git.IncludesHealthCheck != nil {
				healthCheckGiven = true
			}
			continue
		}
		if common.State != types.RootStateActive {
			continue
		}
		nicknames = append(nicknames, string(common.Nickname))
	}

	evalForm := rules.Form{
		GitRootForm:      *form,
		AdvancedScanning: group.Tier.AdvancedScanning(),
		HealthCheckGiven: healthCheckGiven,
		ActiveNicknames:  nicknames,
		AccessOK:         x.cachedProbe(form),
	}

	ruleSet := rules.Evaluate(evalForm)
	return &evaluatedForm{
		form:       evalForm,
		violations: ruleSet.Violations(evalForm),
	}, nil
}

// cachedProbe returns the stored check-access outcome for the form's
// current credential/URL/branch combination, or nil when no probe has
// run for it.
func (x *UseCase) cachedProbe(form *model.GitRootForm) *bool {
	cred := form.Credential.Credential()
	if cred == nil {
		cred = &model.Credential{}
	}
	fingerprint := cred.AccessFingerprint(form.URL, form.Branch)

	x.probesMu.Lock()
	defer x.probesMu.Unlock()

	if ok, found := x.probeResult[fingerprint]; found {
		return &ok
	}
	return nil
}
