// Package cycle defines the Detector, its Result type, and the sentinel
// errors of the recalculation-order pass.
package cycle

import (
	"errors"

	"github.com/katalvlaran/formulath/core"
	"github.com/katalvlaran/formulath/refs"
)

// Visitation states for the recalculation-order DFS.
const (
	white = iota // not visited yet
	gray         // on the current DFS path
	black        // fully explored
)

var (
	// ErrSetNil is returned when a nil parameter set is passed to EvalOrder.
	ErrSetNil = errors.New("cycle: parameter set is nil")

	// ErrCycleDetected indicates the committed parameter set already
	// contains a reference cycle. With every mutation routed through the
	// guard this is unreachable; it exists to surface corrupted snapshots.
	ErrCycleDetected = errors.New("cycle: cycle detected in committed parameter set")
)

// Result is the outcome of one would-cycle query. Pure data, suitable for
// direct rendering into a diagnostic message.
type Result struct {
	// WouldCycle reports whether committing the proposed formula would
	// close a reference loop.
	WouldCycle bool

	// Direct is the directly-referenced parameter whose pre-existing chain
	// leads back to the target. Nil when WouldCycle is false.
	Direct core.Param

	// Path is the pre-existing chain that proves the loop, running from
	// Direct through to the target (direct reference first, target last).
	// Nil when WouldCycle is false.
	Path []core.Param
}

// Detector answers would-cycle queries over parameter-set snapshots. It
// holds only a resolver (for on-demand edge derivation) and no traversal
// state, so one Detector serves any number of sequential queries.
type Detector struct {
	res *refs.Resolver
}

// NewDetector constructs a Detector over the given resolver. Passing nil
// uses a resolver with the default dialect.
func NewDetector(r *refs.Resolver) *Detector {
	if r == nil {
		r = refs.NewResolver()
	}

	return &Detector{res: r}
}
