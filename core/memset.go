package core

import (
	"fmt"

	"github.com/google/uuid"
)

// MemParam is the MemSet-owned Param implementation. All fields are private;
// mutation happens only through MemSet.Commit.
type MemParam struct {
	id       ID
	name     string
	instance bool
	builtin  bool
	dataType DataType
	formula  string
}

// ID returns the parameter's identity handle.
func (p *MemParam) ID() ID { return p.id }

// Name returns the parameter's display name.
func (p *MemParam) Name() string { return p.name }

// IsInstance reports whether the parameter belongs to the instance class.
func (p *MemParam) IsInstance() bool { return p.instance }

// Builtin reports whether the parameter is host-owned and formula-incapable.
func (p *MemParam) Builtin() bool { return p.builtin }

// DataType returns the parameter's value type token.
func (p *MemParam) DataType() DataType { return p.dataType }

// Formula returns the current formula, or "" if none is set.
func (p *MemParam) Formula() string { return p.formula }

// ParamOption configures a parameter at creation time.
type ParamOption func(*MemParam)

// WithInstance marks the parameter as an instance parameter.
// Parameters are type parameters by default.
func WithInstance() ParamOption {
	return func(p *MemParam) { p.instance = true }
}

// WithBuiltin marks the parameter as host-owned. Built-in parameters can
// never hold formulas; Commit rejects them with ErrBuiltinFormula.
func WithBuiltin() ParamOption {
	return func(p *MemParam) { p.builtin = true }
}

// WithDataType sets the parameter's value type token.
func WithDataType(dt DataType) ParamOption {
	return func(p *MemParam) { p.dataType = dt }
}

// WithFormula seeds the parameter with an initial formula. Creation-time
// seeding bypasses validation on purpose: tests use it to build snapshots,
// including deliberately broken ones.
func WithFormula(f string) ParamOption {
	return func(p *MemParam) { p.formula = f }
}

// MemSet is an in-memory parameter store satisfying Set. It preserves
// insertion order for Params and mints uuid-backed identity handles.
//
// MemSet performs no locking: the host serializes mutations, matching the
// one-transaction-at-a-time contract of real parameter stores.
type MemSet struct {
	order  []*MemParam
	byName map[string]*MemParam
	byID   map[ID]*MemParam
}

// NewMemSet creates an empty in-memory parameter set.
func NewMemSet() *MemSet {
	return &MemSet{
		byName: make(map[string]*MemParam),
		byID:   make(map[ID]*MemParam),
	}
}

// Add creates a new parameter with the given display name and options,
// minting a fresh identity handle. Returns ErrEmptyParamName for an empty
// name and ErrDuplicateParamName when the name is already taken.
func (s *MemSet) Add(name string, opts ...ParamOption) (*MemParam, error) {
	// 1. Validate the name before allocating anything.
	if name == "" {
		return nil, ErrEmptyParamName
	}
	if _, exists := s.byName[name]; exists {
		return nil, fmt.Errorf("core: Add(%q): %w", name, ErrDuplicateParamName)
	}

	// 2. Allocate with defaults (type class, no formula) and apply options.
	p := &MemParam{
		id:   ID(uuid.NewString()),
		name: name,
	}
	for _, opt := range opts {
		opt(p)
	}

	// 3. Index by insertion order, name, and identity.
	s.order = append(s.order, p)
	s.byName[name] = p
	s.byID[p.id] = p

	return p, nil
}

// Params enumerates all parameters in insertion order.
func (s *MemSet) Params() []Param {
	out := make([]Param, len(s.order))
	for i, p := range s.order {
		out[i] = p
	}

	return out
}

// ByName returns the parameter with the given display name, if any.
func (s *MemSet) ByName(name string) (Param, bool) {
	p, ok := s.byName[name]
	if !ok {
		return nil, false
	}

	return p, true
}

// ByID returns the parameter with the given identity handle, if any.
func (s *MemSet) ByID(id ID) (Param, bool) {
	p, ok := s.byID[id]
	if !ok {
		return nil, false
	}

	return p, true
}

// Commit implements the host-store side of the mutation contract: it sets
// (formula non-nil) or clears (formula nil) the parameter's formula.
//
// Commit enforces only store-level rules — the parameter must belong to
// this set, must not be built-in, and its data type must be able to hold a
// formula. Reference validation, the class constraint, and cycle detection
// are the guard's job and happen before Commit is called.
func (s *MemSet) Commit(p Param, formula *string) error {
	// 1. The handle must resolve to a parameter owned by this set.
	target, ok := s.byID[p.ID()]
	if !ok {
		return fmt.Errorf("core: Commit(%q): %w", p.Name(), ErrParamNotFound)
	}

	// 2. Clearing is always legal, even on otherwise formula-incapable
	//    parameters left over from older snapshots.
	if formula == nil {
		target.formula = ""

		return nil
	}

	// 3. Store-level rejections: built-ins and literal-valued data types.
	if target.builtin {
		return fmt.Errorf("core: Commit(%q): %w", target.name, ErrBuiltinFormula)
	}
	if target.dataType == DataTypeText {
		return fmt.Errorf("core: Commit(%q): %w", target.name, ErrDataTypeFormula)
	}

	target.formula = *formula

	return nil
}
