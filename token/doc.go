// Package token implements formula tokenization: splitting a formula string
// into boundary-delimited tokens, masking already-known parameter names
// longest-first, and flagging tokens that resolve to nothing.
//
// What:
//
//   - Tokens(formula): strip double-quoted string literals, split on the
//     dialect's boundary characters, discard empty segments.
//   - InvalidTokens(formula, known): additionally mask every boundary-valid
//     occurrence of a known parameter name (longest name first, single
//     left-to-right pass, skip past each match), then report the surviving
//     tokens that are neither numeric literals, nor reserved function names,
//     nor digit-leading unit noise.
//   - Mask(formula, known): the masking pass by itself, for callers that
//     want to inspect the residue.
//
// Why:
//
//	Parameter names may contain spaces and may be substrings of one another
//	("Width" inside "Width Offset"). Plain splitting would shred multi-word
//	names and report their fragments as unknown; masking the longest names
//	first removes every legitimate reference before the split, so whatever
//	survives is genuinely unresolved.
//
// Key rules:
//
//   - A name occurrence only matches when its left neighbor (or start of
//     string) and right neighbor (or end of string) are boundary characters.
//   - Double quotes are not boundary characters: they delimit string
//     literals, which are stripped before any matching.
//   - Masking never mutates the input; each pass works on a fresh buffer.
//   - A known name that itself contains a boundary character never matches
//     (valid names cannot contain them by construction).
//
// Complexity:
//
//   - Tokens:        Time O(F), Memory O(F)            (F = formula length)
//   - InvalidTokens: Time O(N·F + N·logN), Memory O(F) (N = #known names)
//
// Configuration (functional options, applied at construction):
//
//   - WithBoundaryChars(chars) replaces the boundary character set.
//   - WithReservedFuncs(names...) replaces the case-insensitive reserved
//     function name set.
package token
