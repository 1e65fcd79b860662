package refs

import "github.com/katalvlaran/formulath/core"

// Navigator derives dependency edges in both directions from a Resolver.
// Edges are recomputed from the snapshot on every call; nothing is cached
// across mutations.
type Navigator struct {
	res *Resolver
}

// NewNavigator constructs a Navigator over the given resolver.
func NewNavigator(r *Resolver) *Navigator {
	return &Navigator{res: r}
}

// Dependencies returns the parameters p's own formula references
// (downstream edges), in set order. A parameter without a formula has no
// dependencies.
func (n *Navigator) Dependencies(set core.Set, p core.Param) []core.Param {
	return n.res.ReferencedIn(set, p.Formula())
}

// Dependents returns the parameters whose own formulas reference p
// (upstream edges), in set order. Built-in parameters are excluded: they
// can never hold formulas, so they can never be dependents. Resolution uses
// the same masking-aware pass as Dependencies, so "Width" never counts a
// formula mentioning only "Width Offset" as a dependent.
func (n *Navigator) Dependents(set core.Set, p core.Param) []core.Param {
	var out []core.Param
	for _, q := range set.Params() {
		if q.Builtin() {
			continue
		}
		if q.ID() == p.ID() {
			// A committed formula never references its own parameter; the
			// guard rejects that as a cycle before commit.
			continue
		}
		if containsParam(n.res.ReferencedIn(set, q.Formula()), p.ID()) {
			out = append(out, q)
		}
	}

	return out
}

// containsParam reports whether params holds the identity id.
func containsParam(params []core.Param, id core.ID) bool {
	for _, p := range params {
		if p.ID() == id {
			return true
		}
	}

	return false
}
