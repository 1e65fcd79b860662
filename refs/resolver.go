// Package refs implements the reference resolver: boundary-validated
// point queries plus set-wide reference and invalid-token resolution.
package refs

import (
	"strings"

	"github.com/katalvlaran/formulath/core"
	"github.com/katalvlaran/formulath/token"
)

// Resolver answers reference queries over formulas under one tokenizer
// dialect. A Resolver is immutable after construction and safe for
// concurrent readers.
type Resolver struct {
	tok *token.Tokenizer
}

// NewResolver constructs a Resolver with the given dialect options.
func NewResolver(opts ...token.Option) *Resolver {
	return &Resolver{tok: token.New(opts...)}
}

// Tokenizer exposes the resolver's tokenizer, so collaborators built on the
// same dialect (detector, guard) can share it.
func (r *Resolver) Tokenizer() *token.Tokenizer {
	return r.tok
}

// IsReferencedIn reports whether formula mentions name as a complete,
// boundary-delimited token.
//
// The scan walks plain substring occurrences left to right. Each occurrence
// is accepted only if its left neighbor (or start of string) and right
// neighbor (or end of string) are boundary characters; a rejected
// occurrence advances the search start by exactly one character past the
// occurrence's start, so overlapping candidates sharing a prefix are still
// found. String literals are not stripped here — callers needing
// literal-safety pre-strip the formula.
func (r *Resolver) IsReferencedIn(name, formula string) bool {
	// 1. Degenerate inputs can never contain a reference.
	if name == "" || formula == "" {
		return false
	}

	// 2. Scan occurrence by occurrence.
	for start := 0; start+len(name) <= len(formula); {
		idx := strings.Index(formula[start:], name)
		if idx < 0 {
			return false
		}
		pos := start + idx

		// 3. Accept on the first boundary-valid occurrence.
		if r.boundaryBefore(formula, pos) && r.boundaryAfter(formula, pos+len(name)) {
			return true
		}

		// 4. Advance one character past the failed occurrence's start.
		start = pos + 1
	}

	return false
}

// ReferencedIn returns every parameter of set whose name occurs as a
// boundary-delimited token in formula, preserving set order. Resolution is
// masking-aware: longer names consume their spans first, so a parameter
// whose name is a substring of another ("Width" vs "Width Offset") is only
// reported when it occurs on its own. A blank formula yields an empty
// result.
func (r *Resolver) ReferencedIn(set core.Set, formula string) []core.Param {
	if strings.TrimSpace(formula) == "" {
		return nil
	}

	// 1. One masking pass decides which names the formula consumed.
	matched := make(map[string]struct{})
	for _, name := range r.tok.Referenced(formula, core.Names(set)) {
		matched[name] = struct{}{}
	}

	// 2. Report the owning parameters in set order.
	var out []core.Param
	for _, p := range set.Params() {
		if _, ok := matched[p.Name()]; ok {
			out = append(out, p)
		}
	}

	return out
}

// InvalidReferences returns the tokens of formula that resolve to no
// parameter of set, no numeric literal, and no reserved function, in
// first-seen order. A blank formula yields an empty result.
func (r *Resolver) InvalidReferences(set core.Set, formula string) []string {
	return r.tok.InvalidTokens(formula, core.Names(set))
}

// boundaryBefore reports whether position pos starts the string or follows
// a boundary character.
func (r *Resolver) boundaryBefore(s string, pos int) bool {
	return pos == 0 || r.tok.IsBoundary(s[pos-1])
}

// boundaryAfter reports whether position end is the end of the string or a
// boundary character.
func (r *Resolver) boundaryAfter(s string, end int) bool {
	return end == len(s) || r.tok.IsBoundary(s[end])
}
