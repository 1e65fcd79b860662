// Package guard orchestrates formula mutation: it validates a proposed
// formula against the parameter-set snapshot and only then hands it to the
// host store's commit function, translating every failure into a typed,
// diagnostic-rich error instead of silently modifying state.
//
// What:
//
//	Guard.TrySetFormula(target, formula, set, commit) runs the pipeline,
//	each step short-circuiting on failure:
//
//	  1. blank formula     → commit(target, nil); clearing is always legal
//	  2. unknown tokens    → *UnknownReferenceError
//	  3. class constraint  → *InstanceReferenceError (a type parameter may
//	     only reference type parameters; instance parameters may reference
//	     both classes)
//	  4. would-cycle probe → *CycleError carrying the full cycle.Result
//	  5. commit failure    → *CommitError wrapping the host error
//
//	Guard.TrySetFormulaFrom(target, source, set, commit) copies another
//	parameter's formula verbatim, first requiring matching data types
//	(*TypeMismatchError otherwise).
//
// Why:
//
//	Nothing is mutated until every prior check passes, so a rejected
//	attempt leaves no state to roll back — callers re-prompt and retry.
//	The host commit stays the final authority (forbidden data types,
//	evaluator-level cycle rejection); its refusal is passed through as
//	*CommitError, never interpreted or retried, and never allowed to
//	escape as a raw host failure.
//
// Errors:
//
//	Every typed error also matches a package sentinel via errors.Is, so
//	callers can branch without unpacking:
//
//	  ErrUnknownReference  - formula contains unresolvable tokens
//	  ErrInstanceReference - type parameter referencing an instance parameter
//	  ErrTypeMismatch      - copy-from-source across differing data types
//	  ErrWouldCycle        - committing would close a reference loop
//	  ErrCommitRejected    - the host store refused the commit
//
// All errors are rejected-before-commit outcomes scoped to one mutation
// attempt; there is no global or fatal class.
package guard
