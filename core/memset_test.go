package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formulath/core"
)

// strPtr is a small helper to pass formula text to Commit.
func strPtr(s string) *string { return &s }

// TestMemSet_AddAndLookup verifies insertion order, name lookup, and
// identity lookup after adding several parameters.
func TestMemSet_AddAndLookup(t *testing.T) {
	s := core.NewMemSet()

	w, err := s.Add("Width")
	require.NoError(t, err)
	h, err := s.Add("Height", core.WithInstance())
	require.NoError(t, err)
	_, err = s.Add("Label", core.WithDataType(core.DataTypeText))
	require.NoError(t, err)

	// Params preserves insertion order.
	params := s.Params()
	require.Len(t, params, 3)
	assert.Equal(t, "Width", params[0].Name())
	assert.Equal(t, "Height", params[1].Name())
	assert.Equal(t, "Label", params[2].Name())

	// Name lookup resolves to the same identity.
	got, ok := s.ByName("Width")
	require.True(t, ok)
	assert.Equal(t, w.ID(), got.ID())

	// ID lookup resolves to the same parameter.
	got, ok = s.ByID(h.ID())
	require.True(t, ok)
	assert.Equal(t, "Height", got.Name())

	// Unknown lookups report absence, not errors.
	_, ok = s.ByName("Depth")
	assert.False(t, ok)
	_, ok = s.ByID(core.ID("no-such-id"))
	assert.False(t, ok)
}

// TestMemSet_AddRejectsEmptyAndDuplicateNames covers the two creation-time
// sentinel errors.
func TestMemSet_AddRejectsEmptyAndDuplicateNames(t *testing.T) {
	s := core.NewMemSet()

	_, err := s.Add("")
	assert.ErrorIs(t, err, core.ErrEmptyParamName)

	_, err = s.Add("Width")
	require.NoError(t, err)
	_, err = s.Add("Width")
	assert.ErrorIs(t, err, core.ErrDuplicateParamName)
}

// TestMemSet_ClassAndFlags verifies the defaults and the option setters.
func TestMemSet_ClassAndFlags(t *testing.T) {
	s := core.NewMemSet()

	w, err := s.Add("Width")
	require.NoError(t, err)
	assert.False(t, w.IsInstance()) // type class by default
	assert.False(t, w.Builtin())
	assert.Empty(t, w.Formula())

	h, err := s.Add("Height", core.WithInstance(), core.WithFormula("Width * 2"))
	require.NoError(t, err)
	assert.True(t, h.IsInstance())
	assert.Equal(t, "Width * 2", h.Formula())

	b, err := s.Add("Area", core.WithBuiltin())
	require.NoError(t, err)
	assert.True(t, b.Builtin())
}

// TestMemSet_CommitSetAndClear verifies the two legs of the commit contract.
func TestMemSet_CommitSetAndClear(t *testing.T) {
	s := core.NewMemSet()
	w, err := s.Add("Width")
	require.NoError(t, err)

	// Set a formula.
	require.NoError(t, s.Commit(w, strPtr("10 + 2")))
	assert.Equal(t, "10 + 2", w.Formula())

	// Clear it again.
	require.NoError(t, s.Commit(w, nil))
	assert.Empty(t, w.Formula())
}

// TestMemSet_CommitRejections covers the store-level rejection rules:
// foreign handles, built-ins, and literal-valued data types.
func TestMemSet_CommitRejections(t *testing.T) {
	s := core.NewMemSet()

	builtin, err := s.Add("Area", core.WithBuiltin())
	require.NoError(t, err)
	label, err := s.Add("Label", core.WithDataType(core.DataTypeText))
	require.NoError(t, err)

	// Built-in parameters never hold formulas.
	err = s.Commit(builtin, strPtr("1 + 1"))
	assert.ErrorIs(t, err, core.ErrBuiltinFormula)

	// Text-typed parameters are literal-valued.
	err = s.Commit(label, strPtr("1 + 1"))
	assert.ErrorIs(t, err, core.ErrDataTypeFormula)

	// Clearing is always legal, even on formula-incapable parameters.
	assert.NoError(t, s.Commit(builtin, nil))
	assert.NoError(t, s.Commit(label, nil))

	// A handle from another set is rejected.
	other := core.NewMemSet()
	foreign, err := other.Add("Width")
	require.NoError(t, err)
	err = s.Commit(foreign, strPtr("2"))
	assert.ErrorIs(t, err, core.ErrParamNotFound)
}

// TestNames returns display names in set order.
func TestNames(t *testing.T) {
	s := core.NewMemSet()
	for _, name := range []string{"Width", "Width Offset", "Height"} {
		_, err := s.Add(name)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"Width", "Width Offset", "Height"}, core.Names(s))
}
