package guard

import (
	"strings"

	"github.com/katalvlaran/formulath/core"
	"github.com/katalvlaran/formulath/cycle"
	"github.com/katalvlaran/formulath/refs"
	"github.com/katalvlaran/formulath/token"
)

// CommitFunc is the host store's mutation hook: set the parameter's formula
// (non-nil) or clear it (nil). The host performs its own final validation
// (forbidden data types, evaluator-level cycle rejection) and returns its
// failure, which the guard wraps into *CommitError.
type CommitFunc func(p core.Param, formula *string) error

// Guard runs the validation pipeline over one tokenizer dialect. It holds
// no per-call state; one Guard serves any number of sequential mutations.
type Guard struct {
	res *refs.Resolver
	det *cycle.Detector
}

// New constructs a Guard. Dialect options (boundary characters, reserved
// function names) are shared by every stage of the pipeline.
func New(opts ...token.Option) *Guard {
	res := refs.NewResolver(opts...)

	return &Guard{
		res: res,
		det: cycle.NewDetector(res),
	}
}

// Resolver exposes the guard's resolver so hosts can answer reference
// queries with the exact dialect the pipeline validates under.
func (g *Guard) Resolver() *refs.Resolver {
	return g.res
}

// TrySetFormula validates formula for target against the set snapshot and,
// only when every check passes, invokes commit. Steps short-circuit in
// order: blank-clears, unknown references, the type/instance class
// constraint, the would-cycle probe, then the host commit. A non-nil
// return is always one of the package's typed errors; nothing has been
// mutated unless the return is nil or the failure is *CommitError.
func (g *Guard) TrySetFormula(target core.Param, formula string, set core.Set, commit CommitFunc) error {
	// 1. Clearing is always legal and skips validation entirely.
	if strings.TrimSpace(formula) == "" {
		if err := commit(target, nil); err != nil {
			return &CommitError{Param: target.Name(), Err: err}
		}

		return nil
	}

	// 2. Every token must resolve to a parameter, literal, or function.
	if invalid := g.res.InvalidReferences(set, formula); len(invalid) > 0 {
		return &UnknownReferenceError{Tokens: invalid}
	}

	// 3. Directional class constraint: a type parameter's formula may only
	//    reference type parameters. Instance targets skip this.
	if !target.IsInstance() {
		var offending []string
		for _, p := range g.res.ReferencedIn(set, formula) {
			if p.IsInstance() {
				offending = append(offending, p.Name())
			}
		}
		if len(offending) > 0 {
			return &InstanceReferenceError{Names: offending}
		}
	}

	// 4. Would committing close a reference loop?
	if res := g.det.Detect(target, formula, set); res.WouldCycle {
		return &CycleError{Result: res}
	}

	// 5. Hand off to the host store, the final authority.
	if err := commit(target, &formula); err != nil {
		return &CommitError{Param: target.Name(), Err: err}
	}

	return nil
}

// TrySetFormulaFrom copies source's formula verbatim onto target. The two
// parameters must share a data type; otherwise the copy is rejected with
// *TypeMismatchError before any other validation runs. A source without a
// formula clears the target.
func (g *Guard) TrySetFormulaFrom(target, source core.Param, set core.Set, commit CommitFunc) error {
	// 1. Formulas only transfer between identically-typed parameters.
	if source.DataType() != target.DataType() {
		return &TypeMismatchError{Source: source.DataType(), Target: target.DataType()}
	}

	// 2. Delegate to the primary path with the verbatim formula.
	return g.TrySetFormula(target, source.Formula(), set, commit)
}
