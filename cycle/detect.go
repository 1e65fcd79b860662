package cycle

import (
	"strings"

	"github.com/katalvlaran/formulath/core"
)

// Detect reports whether setting target's formula to proposed would create
// a reference cycle in set, and if so, through which pre-existing chain.
//
// The proposed edge target → r does not exist in the live graph yet, so the
// search runs the other way: rooted at each directly-referenced parameter
// r, it follows current committed formulas looking for a path back to
// target. Finding one proves that adding the proposed edge closes a loop.
//
// Each root searches with a fresh visited set. Sharing one set across roots
// would let an earlier root's failed branch mark nodes a later root must
// pass through, under-detecting cycles.
func (d *Detector) Detect(target core.Param, proposed string, set core.Set) Result {
	// 1. Clearing or blanking a formula can never create a cycle.
	if strings.TrimSpace(proposed) == "" {
		return Result{}
	}

	// 2. Roots: the parameters the proposed formula directly references.
	roots := d.res.ReferencedIn(set, proposed)

	// 3. Probe each root for a pre-existing path back to the target.
	for _, root := range roots {
		// 3a. A direct self-reference is the loop in its shortest form.
		if root.ID() == target.ID() {
			return Result{WouldCycle: true, Direct: root, Path: []core.Param{root}}
		}

		// 3b. Fresh visited set per root.
		if path, found := d.search(root, target, set); found {
			return Result{WouldCycle: true, Direct: root, Path: path}
		}
	}

	// 4. No root reaches the target: the proposed edge is safe.
	return Result{}
}

// frame is one level of the explicit DFS stack: a node plus its out-edges
// and the index of the next edge to explore.
type frame struct {
	out []core.Param // node's dependencies, resolved once on push
	idx int          // next out-edge to explore
}

// search runs a depth-first search from root over committed formulas,
// looking for target. On success it returns the path [root, …, target].
//
// The iteration mirrors the recursive form exactly: push the node onto the
// path before exploring its out-edges, test each edge head for the target
// before descending, and pop on backtrack so a failed branch never pollutes
// the path reported by a later successful one.
func (d *Detector) search(root, target core.Param, set core.Set) ([]core.Param, bool) {
	// 1. Seed path, visited set, and stack with the root.
	visited := map[core.ID]struct{}{root.ID(): {}}
	path := []core.Param{root}
	stack := []frame{{out: d.res.ReferencedIn(set, root.Formula())}}

	// 2. Explore until the stack unwinds.
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 2a. Out-edges exhausted: backtrack.
		if top.idx >= len(top.out) {
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			continue
		}

		// 2b. Take the next out-edge.
		next := top.out[top.idx]
		top.idx++

		// 2c. Target reached: close the path and stop.
		if next.ID() == target.ID() {
			path = append(path, next)

			return path, true
		}

		// 2d. Skip nodes already on an explored branch. The live graph is
		//     acyclic for committed formulas, but the guard may be probing
		//     a snapshot that shares nodes across branches.
		if _, seen := visited[next.ID()]; seen {
			continue
		}
		visited[next.ID()] = struct{}{}

		// 2e. Descend: push onto path and stack in recursive order.
		path = append(path, next)
		stack = append(stack, frame{out: d.res.ReferencedIn(set, next.Formula())})
	}

	return nil, false
}
