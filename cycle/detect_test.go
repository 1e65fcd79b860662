package cycle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formulath/core"
	"github.com/katalvlaran/formulath/cycle"
	"github.com/katalvlaran/formulath/refs"
)

// add is a test helper that fails fast on snapshot construction errors.
func add(t *testing.T, s *core.MemSet, name string, opts ...core.ParamOption) *core.MemParam {
	t.Helper()
	p, err := s.Add(name, opts...)
	require.NoError(t, err)

	return p
}

// pathNames flattens a cycle path to display names for assertions.
func pathNames(path []core.Param) []string {
	out := make([]string, 0, len(path))
	for _, p := range path {
		out = append(out, p.Name())
	}

	return out
}

// TestDetect_EmptyFormulaNeverCycles: clearing or blanking a formula is
// always cycle-free.
func TestDetect_EmptyFormulaNeverCycles(t *testing.T) {
	s := core.NewMemSet()
	a := add(t, s, "A", core.WithFormula("B"))
	add(t, s, "B")
	det := cycle.NewDetector(nil)

	assert.False(t, det.Detect(a, "", s).WouldCycle)
	assert.False(t, det.Detect(a, "   \t", s).WouldCycle)
}

// TestDetect_NoCycleOnAcyclicProposal: a proposal into an acyclic region
// passes.
func TestDetect_NoCycleOnAcyclicProposal(t *testing.T) {
	s := core.NewMemSet()
	a := add(t, s, "A")
	add(t, s, "B", core.WithFormula("C * 2"))
	add(t, s, "C")

	det := cycle.NewDetector(nil)
	res := det.Detect(a, "B + C", s)

	assert.False(t, res.WouldCycle)
	assert.Nil(t, res.Direct)
	assert.Nil(t, res.Path)
}

// TestDetect_DirectSelfReference: the shortest possible loop.
func TestDetect_DirectSelfReference(t *testing.T) {
	s := core.NewMemSet()
	a := add(t, s, "A")

	det := cycle.NewDetector(nil)
	res := det.Detect(a, "A + 1", s)

	require.True(t, res.WouldCycle)
	assert.Equal(t, "A", res.Direct.Name())
	assert.Equal(t, []string{"A"}, pathNames(res.Path))
}

// TestDetect_TwoNodeCycle: Width Offset already references Width, so
// proposing "Width Offset" for Width closes a two-node loop.
func TestDetect_TwoNodeCycle(t *testing.T) {
	s := core.NewMemSet()
	width := add(t, s, "Width")
	add(t, s, "Width Offset", core.WithFormula("Width * 2"))
	add(t, s, "Height", core.WithInstance())

	det := cycle.NewDetector(nil)
	res := det.Detect(width, "Width Offset", s)

	require.True(t, res.WouldCycle)
	assert.Equal(t, "Width Offset", res.Direct.Name())
	assert.Equal(t, []string{"Width Offset", "Width"}, pathNames(res.Path))
}

// TestDetect_ChainCycleSymmetry: with B → C → A committed, proposing "B"
// for A must report the full pre-existing chain, direct reference first,
// target last.
func TestDetect_ChainCycleSymmetry(t *testing.T) {
	s := core.NewMemSet()
	a := add(t, s, "A")
	add(t, s, "B", core.WithFormula("C"))
	add(t, s, "C", core.WithFormula("A"))

	det := cycle.NewDetector(nil)
	res := det.Detect(a, "B", s)

	require.True(t, res.WouldCycle)
	assert.Equal(t, "B", res.Direct.Name())
	assert.Equal(t, []string{"B", "C", "A"}, pathNames(res.Path))
}

// TestDetect_FailedBranchDoesNotPolluteFoundPath: the root's first branch
// dead-ends; the reported path must contain only the successful branch.
func TestDetect_FailedBranchDoesNotPolluteFoundPath(t *testing.T) {
	s := core.NewMemSet()
	target := add(t, s, "T")
	add(t, s, "R", core.WithFormula("A + B"))
	add(t, s, "A", core.WithFormula("D"))
	add(t, s, "B", core.WithFormula("T"))
	add(t, s, "D")

	det := cycle.NewDetector(nil)
	res := det.Detect(target, "R", s)

	require.True(t, res.WouldCycle)
	assert.Equal(t, "R", res.Direct.Name())
	// A and D were explored and popped; they must not appear.
	assert.Equal(t, []string{"R", "B", "T"}, pathNames(res.Path))
}

// TestDetect_PerRootVisitedSets is the property the per-root-reset design
// guarantees: the first root's failed exploration marks nodes the second
// root's path shares, and the second root must still find its way through.
// A single visited set shared across roots in one call risks pruning here.
func TestDetect_PerRootVisitedSets(t *testing.T) {
	s := core.NewMemSet()
	target := add(t, s, "T")
	// Root one dead-ends through the shared node M.
	add(t, s, "R1", core.WithFormula("M"))
	// Root two reaches the target through M's sibling chain.
	add(t, s, "R2", core.WithFormula("M + C"))
	add(t, s, "M")
	add(t, s, "C", core.WithFormula("T"))

	det := cycle.NewDetector(nil)
	res := det.Detect(target, "R1 + R2", s)

	require.True(t, res.WouldCycle)
	assert.Equal(t, "R2", res.Direct.Name())
	assert.Equal(t, []string{"R2", "C", "T"}, pathNames(res.Path))
}

// TestDetect_FollowsCommittedNotProposedFormulas: the traversal reads each
// node's current committed formula, never the proposal under test.
func TestDetect_FollowsCommittedNotProposedFormulas(t *testing.T) {
	s := core.NewMemSet()
	// A currently references B; the proposal would *replace* that, so the
	// old A → B edge must not count against the new formula.
	a := add(t, s, "A", core.WithFormula("B"))
	add(t, s, "B")
	add(t, s, "C")

	det := cycle.NewDetector(nil)
	res := det.Detect(a, "C", s)

	assert.False(t, res.WouldCycle)
}

// TestDetect_IdempotentRecommit: re-proposing the already-committed formula
// finds no cycle (the committed graph is acyclic and the proposal adds no
// new edge).
func TestDetect_IdempotentRecommit(t *testing.T) {
	s := core.NewMemSet()
	add(t, s, "Width")
	offset := add(t, s, "Width Offset", core.WithFormula("Width * 2"))

	det := cycle.NewDetector(nil)
	res := det.Detect(offset, "Width * 2", s)

	assert.False(t, res.WouldCycle)
}

// nameAt builds the synthetic chain parameter names.
func nameAt(i int) string { return fmt.Sprintf("P%d", i) }

// TestDetect_DeepChain exercises the explicit stack on a long chain:
// P0 → P1 → … committed, then proposing "P0" for the tail closes the loop
// with the full chain reported.
func TestDetect_DeepChain(t *testing.T) {
	s := core.NewMemSet()
	const depth = 2000

	names := make([]string, depth)
	for i := 0; i < depth; i++ {
		names[i] = nameAt(i)
	}
	// P[i] references P[i+1]; the last link is added formula-free.
	for i := 0; i < depth-1; i++ {
		add(t, s, names[i], core.WithFormula(names[i+1]))
	}
	tail := add(t, s, names[depth-1])

	det := cycle.NewDetector(refs.NewResolver())
	res := det.Detect(tail, names[0], s)

	require.True(t, res.WouldCycle)
	assert.Equal(t, names[0], res.Direct.Name())
	require.Len(t, res.Path, depth)
	assert.Equal(t, names[0], res.Path[0].Name())
	assert.Equal(t, names[depth-1], res.Path[depth-1].Name())
}
