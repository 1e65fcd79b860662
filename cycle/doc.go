// Package cycle decides whether committing a proposed formula would close a
// reference loop, reconstructs the exact loop for diagnostics, and computes
// a safe recalculation order over an already-committed parameter set.
//
// What:
//
//   - Detector.Detect(target, proposed, set): would setting target's formula
//     to proposed create a cycle? The search is rooted at each parameter the
//     proposed formula directly references, because the edge that would
//     close the loop (target → reference) does not exist yet: a pre-existing
//     path reference → … → target proves that adding it would.
//   - EvalOrder(set, opts...): a topological order of the committed set in
//     which every parameter appears after its dependencies — the order a
//     host evaluator can recalculate in. ErrCycleDetected reports a cycle
//     already persisted in the snapshot, which the guard exists to prevent.
//
// Why:
//
//	A false negative here silently accepts a self-referential formula that
//	crashes the host evaluator; a false positive rejects a legal edit.
//	Detection therefore recomputes edges from the live snapshot on every
//	call and uses a fresh visited set per root, so one root's failed branch
//	can never hide a path another root needs.
//
// Key rules:
//
//   - An empty proposed formula never creates a cycle (clearing is legal).
//   - Traversal follows each node's current committed formula, never the
//     proposed one.
//   - The reported path runs direct-reference-first, target-last.
//   - The traversal is an explicit-stack iteration pushing and popping in
//     recursive order, so path reconstruction matches the recursive form
//     while recursion depth never touches the goroutine stack.
//
// Complexity:
//
//   - Detect:    Time O(R·P²·F) worst case (R = #roots, P = #parameters,
//     F = formula length; each node expansion resolves references on demand)
//   - EvalOrder: Time O(P²·F), Memory O(P)
//
// Errors:
//
//   - ErrSetNil         nil parameter set passed to EvalOrder
//   - ErrCycleDetected  the committed snapshot already contains a cycle
package cycle
