// Package refs resolves which parameters a formula references and navigates
// the derived dependency relation in both directions.
//
// What:
//
//   - Resolver.IsReferencedIn(name, formula): does formula mention name as a
//     complete, boundary-delimited token? (Point query; see caveat below.)
//   - Resolver.ReferencedIn(set, formula): every parameter of the set the
//     formula references, in set order, resolved masking-aware so longer
//     names consume their spans before shorter substring names are tested.
//   - Resolver.InvalidReferences(set, formula): tokens that resolve to no
//     parameter, numeric literal, or reserved function.
//   - Navigator.Dependencies(set, p): what p's own formula references
//     (downstream edges).
//   - Navigator.Dependents(set, p): what else references p (upstream edges),
//     excluding built-in parameters, which can never hold formulas.
//
// Why:
//
//	The reference relation is derived, never stored: any formula edit
//	changes the edge set of that one node, so every query recomputes from
//	the current snapshot. Both navigator directions are thin compositions
//	over the resolver — there is no materialized graph to fall out of sync.
//
// Key rules:
//
//   - IsReferencedIn scans plain substring occurrences and validates the
//     boundary on both sides of each; a failed occurrence advances the scan
//     by one character (not past its end), so overlapping occurrences of
//     names sharing a prefix are still found.
//   - IsReferencedIn does not strip string literals and knows nothing of
//     other names, so it reports "Width" inside the text "Width Offset"
//     (the space is a boundary). Set-wide resolution goes through the
//     masking pass precisely to avoid that; use ReferencedIn whenever the
//     full set is at hand.
//   - A nil/empty formula yields empty results from every operation.
//     Absence is an empty result, never an error.
//
// Complexity:
//
//   - IsReferencedIn:    Time O(F·K) worst case (F = formula length, K = name length)
//   - ReferencedIn:      Time O(P·F·K) (P = #parameters)
//   - Dependents:        Time O(P·F·K) over the parameters' own formulas
package refs
