package cycle

import (
	"context"

	"github.com/katalvlaran/formulath/core"
	"github.com/katalvlaran/formulath/refs"
)

// EvalOption configures optional behavior for EvalOrder.
type EvalOption func(*evalOptions)

// evalOptions holds settings for EvalOrder, currently only cancellation.
type evalOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultEvalOptions returns the default options (Background context).
func defaultEvalOptions() evalOptions {
	return evalOptions{ctx: context.Background()}
}

// WithCancelContext returns an EvalOption that sets the cancellation
// context. Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) EvalOption {
	return func(o *evalOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// evalSorter encapsulates state for one recalculation-order traversal.
type evalSorter struct {
	set   core.Set
	res   *refs.Resolver
	opts  evalOptions
	state map[core.ID]int // visitation state: white, gray, black
	order []core.Param    // post-order: dependencies before dependents
}

// EvalOrder computes a recalculation order for the committed parameter set:
// every parameter appears after all parameters its formula references, so a
// host evaluator can recompute values front to back in one pass.
//
// Built-in and formula-free parameters appear in the order too (they are
// valid dependencies); their position is simply wherever the post-order
// first completes them. Returns ErrSetNil for a nil set and
// ErrCycleDetected if the snapshot already contains a reference loop.
func (d *Detector) EvalOrder(set core.Set, options ...EvalOption) ([]core.Param, error) {
	// 1. Validate input.
	if set == nil {
		return nil, ErrSetNil
	}

	// 2. Apply optional settings.
	opts := defaultEvalOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 3. Initialize sorter state.
	params := set.Params()
	sorter := &evalSorter{
		set:   set,
		res:   d.res,
		opts:  opts,
		state: make(map[core.ID]int, len(params)),
		order: make([]core.Param, 0, len(params)),
	}

	// 4. Drive DFS from every unvisited parameter.
	for _, p := range params {
		if sorter.state[p.ID()] == white {
			if err := sorter.visit(p); err != nil {
				return nil, err
			}
		}
	}

	// 5. Post-order already places dependencies first; no reversal needed
	//    because edges here point from a parameter to what it references.
	return sorter.order, nil
}

// visit explores p's dependencies depth-first, recording p once all of them
// have completed. A gray dependency means the committed snapshot already
// holds a loop.
func (s *evalSorter) visit(p core.Param) error {
	// 1. Cancellation check.
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}

	// 2. Mark in-progress.
	s.state[p.ID()] = gray

	// 3. Recurse into each referenced parameter.
	for _, dep := range s.res.ReferencedIn(s.set, p.Formula()) {
		switch s.state[dep.ID()] {
		case white:
			if err := s.visit(dep); err != nil {
				return err
			}
		case gray:
			return ErrCycleDetected
		}
	}

	// 4. Complete: dependencies are all recorded, now record p.
	s.state[p.ID()] = black
	s.order = append(s.order, p)

	return nil
}
