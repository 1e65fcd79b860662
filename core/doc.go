// Package core defines the parameter data model every other formulath
// package consumes: opaque identity handles, the Param and Set accessor
// interfaces, and MemSet, an in-memory reference implementation of the
// external parameter store.
//
// What:
//
//   - ID: opaque, stable, comparable handle identifying one parameter.
//   - DataType: opaque comparable token; compared only for equality
//     (copy-formula checks, host commit validation).
//   - Param: read-only view of one parameter — name, instance/type class,
//     built-in flag, data type, current formula.
//   - Set: snapshot accessor over the full parameter set — enumeration in
//     stable order plus name and ID lookups.
//   - MemSet: a concrete Set with uuid-minted handles and a Commit method
//     implementing the host-store side of the mutation contract. Hosts with
//     their own stores only need to satisfy Param and Set.
//
// Why:
//
//	The analysis packages (token, refs, cycle, guard) are pure functions
//	over a snapshot of this model. They never create or destroy parameters
//	and never mutate formulas directly — mutation happens only through a
//	commit function owned by the store.
//
// Concurrency:
//
//	Param and Set implementations are read during one validate+commit call
//	and must not be mutated concurrently with it. MemSet performs no
//	internal locking; the host serializes mutations (e.g. one document
//	transaction at a time).
//
// Errors:
//
//	ErrEmptyParamName     - parameter name is the empty string.
//	ErrDuplicateParamName - a parameter with this name already exists.
//	ErrParamNotFound      - commit referenced a parameter not in the set.
//	ErrBuiltinFormula     - commit attempted on a built-in parameter.
//	ErrDataTypeFormula    - the parameter's data type cannot hold a formula.
package core
