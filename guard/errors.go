// Package guard defines the typed error taxonomy of the mutation pipeline.
// Each type carries the diagnostics a UI needs to explain the rejection and
// matches its package sentinel through errors.Is.
package guard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/formulath/core"
	"github.com/katalvlaran/formulath/cycle"
)

// Sentinel errors for the mutation pipeline. The typed error values below
// match these via errors.Is.
var (
	// ErrUnknownReference indicates the formula contains boundary-delimited
	// tokens that resolve to no parameter, numeric literal, or reserved
	// function.
	ErrUnknownReference = errors.New("guard: formula references unknown tokens")

	// ErrInstanceReference indicates a type parameter's formula references
	// an instance parameter.
	ErrInstanceReference = errors.New("guard: type parameter cannot reference instance parameters")

	// ErrTypeMismatch indicates a copy-formula-from-source request between
	// parameters of different data types.
	ErrTypeMismatch = errors.New("guard: source and target data types differ")

	// ErrWouldCycle indicates committing the formula would close a
	// reference loop.
	ErrWouldCycle = errors.New("guard: formula would create a reference cycle")

	// ErrCommitRejected indicates the host store's own commit step failed.
	ErrCommitRejected = errors.New("guard: host store rejected the commit")
)

// UnknownReferenceError reports the offending tokens verbatim, in
// first-seen order.
type UnknownReferenceError struct {
	// Tokens are the unresolvable tokens exactly as they appear.
	Tokens []string
}

// Error renders the offending tokens into one diagnostic line.
func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("guard: unknown references: %s", strings.Join(e.Tokens, ", "))
}

// Is matches ErrUnknownReference.
func (e *UnknownReferenceError) Is(target error) bool {
	return target == ErrUnknownReference
}

// InstanceReferenceError reports which referenced instance parameters a
// type parameter's formula illegally names.
type InstanceReferenceError struct {
	// Names are the display names of the offending instance parameters.
	Names []string
}

// Error renders the offending parameter names into one diagnostic line.
func (e *InstanceReferenceError) Error() string {
	return fmt.Sprintf("guard: type parameter formula references instance parameters: %s",
		strings.Join(e.Names, ", "))
}

// Is matches ErrInstanceReference.
func (e *InstanceReferenceError) Is(target error) bool {
	return target == ErrInstanceReference
}

// TypeMismatchError reports the two incompatible data types of a
// copy-from-source request.
type TypeMismatchError struct {
	// Source is the data type of the parameter being copied from.
	Source core.DataType

	// Target is the data type of the parameter being copied to.
	Target core.DataType
}

// Error renders both type tokens.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("guard: cannot copy formula from data type %q to %q", e.Source, e.Target)
}

// Is matches ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// CycleError carries the detector's full result: the direct reference that
// would close the loop and the pre-existing path back to the target.
type CycleError struct {
	// Result is the would-cycle probe outcome, WouldCycle always true.
	Result cycle.Result
}

// Error renders the cycle path, direct reference first, target last.
func (e *CycleError) Error() string {
	names := make([]string, 0, len(e.Result.Path))
	for _, p := range e.Result.Path {
		names = append(names, p.Name())
	}

	return fmt.Sprintf("guard: formula would create a reference cycle: %s", strings.Join(names, " -> "))
}

// Is matches ErrWouldCycle.
func (e *CycleError) Is(target error) bool {
	return target == ErrWouldCycle
}

// CommitError wraps the host store's own rejection. The guard never
// interprets or retries it.
type CommitError struct {
	// Param is the display name of the parameter being committed.
	Param string

	// Err is the host-supplied failure.
	Err error
}

// Error renders the parameter and the host message.
func (e *CommitError) Error() string {
	return fmt.Sprintf("guard: commit of %q rejected by host: %v", e.Param, e.Err)
}

// Is matches ErrCommitRejected.
func (e *CommitError) Is(target error) bool {
	return target == ErrCommitRejected
}

// Unwrap exposes the host error for errors.Is/As chains.
func (e *CommitError) Unwrap() error {
	return e.Err
}
