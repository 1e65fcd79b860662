// Package core declares the Param and Set accessor interfaces, the opaque
// identity and data-type tokens, and the sentinel errors shared by the
// MemSet reference store.
package core

import "errors"

// Sentinel errors for parameter-store operations.
var (
	// ErrEmptyParamName indicates an attempt to create a parameter with an empty name.
	ErrEmptyParamName = errors.New("core: parameter name is empty")

	// ErrDuplicateParamName indicates a parameter with the same name already exists in the set.
	ErrDuplicateParamName = errors.New("core: duplicate parameter name")

	// ErrParamNotFound indicates an operation referenced a parameter not present in the set.
	ErrParamNotFound = errors.New("core: parameter not found")

	// ErrBuiltinFormula indicates a formula commit was attempted on a built-in parameter.
	ErrBuiltinFormula = errors.New("core: built-in parameter cannot hold a formula")

	// ErrDataTypeFormula indicates the parameter's data type cannot hold a formula.
	ErrDataTypeFormula = errors.New("core: data type cannot hold a formula")
)

// ID is an opaque, stable, comparable handle identifying one parameter
// within its set. The analysis packages compare IDs for identity and never
// interpret their contents.
type ID string

// DataType is an opaque comparable token naming a parameter's value type.
// It is compared only for equality; the library never interprets it.
type DataType string

// DataTypeText is the one data type the MemSet reference store refuses to
// attach formulas to, mirroring hosts that treat text values as literal.
const DataTypeText DataType = "text"

// Param is a read-only view of one parameter in the external store.
//
// Formula returns the current formula text, or the empty string when the
// parameter holds a plain value. Built-in parameters can never hold
// formulas and are excluded from dependent queries.
type Param interface {
	// ID returns the parameter's stable identity handle.
	ID() ID

	// Name returns the display name, unique within the set. Names may
	// contain spaces, which is why tokenization masks longest-name-first.
	Name() string

	// IsInstance reports whether this is an instance parameter (true) or a
	// type parameter (false). Type parameters may only reference other type
	// parameters in their formulas.
	IsInstance() bool

	// Builtin reports whether the parameter is owned by the host and can
	// never hold a formula.
	Builtin() bool

	// DataType returns the parameter's value type token.
	DataType() DataType

	// Formula returns the current formula, or "" if none is set.
	Formula() string
}

// Set is a snapshot accessor over the full parameter set. Implementations
// must return parameters in a stable order from Params so that derived
// results (references, cycle paths, evaluation order) are deterministic.
type Set interface {
	// Params enumerates every parameter in the set, in stable order.
	Params() []Param

	// ByName returns the parameter with the given display name, if any.
	ByName(name string) (Param, bool)

	// ByID returns the parameter with the given identity handle, if any.
	ByID(id ID) (Param, bool)
}

// Names returns the display names of every parameter in s, in set order.
// Handy as the known-name list for tokenization.
func Names(s Set) []string {
	params := s.Params()
	out := make([]string, 0, len(params))
	for _, p := range params {
		out = append(out, p.Name())
	}

	return out
}
