package token

import (
	"sort"
	"strconv"
	"strings"
)

// blank is the character masked spans and stripped literals are overwritten
// with. It must be a boundary character so masked spans split cleanly.
const blank = ' '

// Tokenizer splits formulas into boundary-delimited tokens under one fixed
// dialect (boundary characters + reserved function names). A Tokenizer is
// immutable after construction and safe for concurrent readers.
type Tokenizer struct {
	opts     Options
	boundary [256]bool           // byte-indexed boundary membership
	reserved map[string]struct{} // lower-cased reserved function names
	// nameBreak holds the boundary characters that can never occur inside
	// a valid parameter name. The plain space is excluded: display names
	// may contain spaces ("Width Offset") and are matched as opaque runs.
	nameBreak string
}

// New constructs a Tokenizer with the given dialect options.
func New(opts ...Option) *Tokenizer {
	// 1. Apply options over the defaults.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Build the byte-indexed boundary table once.
	t := &Tokenizer{opts: o}
	for i := 0; i < len(o.BoundaryChars); i++ {
		t.boundary[o.BoundaryChars[i]] = true
	}
	t.nameBreak = strings.ReplaceAll(o.BoundaryChars, " ", "")

	// 3. Index reserved names lower-cased for case-insensitive lookup.
	t.reserved = make(map[string]struct{}, len(o.ReservedFuncs))
	for _, name := range o.ReservedFuncs {
		t.reserved[strings.ToLower(name)] = struct{}{}
	}

	return t
}

// IsBoundary reports whether b delimits tokens in this dialect.
func (t *Tokenizer) IsBoundary(b byte) bool {
	return t.boundary[b]
}

// IsReserved reports whether name is a reserved function name in this
// dialect. Matching is case-insensitive.
func (t *Tokenizer) IsReserved(name string) bool {
	_, ok := t.reserved[strings.ToLower(name)]

	return ok
}

// Tokens splits formula into candidate tokens: double-quoted string
// literals are stripped first, then the text is split on boundary
// characters and empty segments are discarded.
// An empty or all-whitespace formula yields no tokens.
func (t *Tokenizer) Tokens(formula string) []string {
	if strings.TrimSpace(formula) == "" {
		return nil
	}

	return t.split(t.stripLiterals([]byte(formula)))
}

// Mask returns formula with string literals stripped and every
// boundary-valid occurrence of a known name overwritten with blanks.
// Longer names are masked before shorter ones so that a name which is a
// substring of another ("Width" inside "Width Offset") never matches inside
// the longer name's span. The input string is never mutated.
func (t *Tokenizer) Mask(formula string, known []string) string {
	return string(t.mask([]byte(formula), known))
}

// InvalidTokens reports the tokens of formula that resolve to nothing: not
// a known parameter name, not a numeric literal (with or without a unit
// suffix), and not a reserved function name. The result is deduplicated in
// first-seen order. An empty or all-whitespace formula yields no tokens.
func (t *Tokenizer) InvalidTokens(formula string, known []string) []string {
	// 1. Blank input: nothing to validate.
	if strings.TrimSpace(formula) == "" {
		return nil
	}

	// 2. Mask literals and every known name, then split the residue.
	var invalid []string
	seen := make(map[string]struct{})
	for _, tok := range t.split(t.mask([]byte(formula), known)) {
		// 3. Keep only tokens that fail every legitimate interpretation.
		if t.validToken(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		invalid = append(invalid, tok)
	}

	return invalid
}

// validToken reports whether tok has a legitimate non-reference reading:
// a numeric literal, a digit-leading unit-suffix fragment, or a reserved
// function name.
func (t *Tokenizer) validToken(tok string) bool {
	// Numeric literal: decimal parse is decisive, not heuristic.
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return true
	}
	// Digit-leading tokens are numeric-literal-with-unit-suffix noise
	// ("12in"); parameter names never start with a digit here.
	if tok[0] >= '0' && tok[0] <= '9' {
		return true
	}

	return t.IsReserved(tok)
}

// Referenced reports which known names occur as boundary-delimited tokens
// in formula, in the order of the known slice. Masking runs longest name
// first, so a name that is a substring of another ("Width" inside
// "Width Offset") is only reported when it occurs on its own. String
// literals are stripped before matching.
func (t *Tokenizer) Referenced(formula string, known []string) []string {
	if strings.TrimSpace(formula) == "" {
		return nil
	}

	// 1. Run the masking pass, collecting which names consumed a span.
	matched := make(map[string]struct{})
	t.maskTrack([]byte(formula), known, matched)

	// 2. Report in the caller's order.
	var out []string
	for _, name := range known {
		if _, ok := matched[name]; ok {
			out = append(out, name)
		}
	}

	return out
}

// mask strips string literals from buf and overwrites every boundary-valid
// occurrence of each known name with blanks, longest name first. buf is the
// working copy and is mutated; callers pass a fresh buffer.
func (t *Tokenizer) mask(buf []byte, known []string) []byte {
	return t.maskTrack(buf, known, nil)
}

// maskTrack is the shared masking pass. When matched is non-nil, every name
// that consumed at least one span is recorded in it.
func (t *Tokenizer) maskTrack(buf []byte, known []string, matched map[string]struct{}) []byte {
	// 1. Literals first, so quoted text can never match a name.
	buf = t.stripLiterals(buf)

	// 2. Longest-name-first ordering. Sort a copy; the caller's slice must
	//    stay untouched. SliceStable keeps equal-length names in set order.
	names := make([]string, len(known))
	copy(names, known)
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})

	// 3. One left-to-right pass per name, skipping past each match.
	for _, name := range names {
		if t.maskName(buf, name) && matched != nil {
			matched[name] = struct{}{}
		}
	}

	return buf
}

// maskName overwrites every boundary-valid occurrence of name in buf with
// blanks, reporting whether at least one occurrence was masked. Occurrences
// failing the boundary check advance the scan by a single byte so
// overlapping candidates sharing a prefix are still found; accepted matches
// advance past the masked span (no rescan inside it).
func (t *Tokenizer) maskName(buf []byte, name string) bool {
	// A valid name never contains a non-space boundary character; if one
	// somehow does, no match is attempted. Spaces are legal inside names,
	// and the name is matched as one opaque contiguous run.
	if name == "" || strings.ContainsAny(name, t.nameBreak) {
		return false
	}

	found := false
	for i := 0; i+len(name) <= len(buf); {
		// 1. Byte-exact candidate match at i.
		if !matchAt(buf, name, i) {
			i++
			continue
		}
		// 2. Both neighbors (or the string edges) must be boundaries.
		if !t.boundaryBefore(buf, i) || !t.boundaryAfter(buf, i+len(name)) {
			i++
			continue
		}
		// 3. Accept: blank the span and skip past it.
		for j := i; j < i+len(name); j++ {
			buf[j] = blank
		}
		i += len(name)
		found = true
	}

	return found
}

// stripLiterals overwrites every double-quoted substring in buf, quotes
// included, with blanks. An unterminated literal is stripped to the end of
// the buffer. buf is mutated and returned for chaining.
func (t *Tokenizer) stripLiterals(buf []byte) []byte {
	inLiteral := false
	for i := 0; i < len(buf); i++ {
		if buf[i] == '"' {
			inLiteral = !inLiteral
			buf[i] = blank
			continue
		}
		if inLiteral {
			buf[i] = blank
		}
	}

	return buf
}

// split cuts buf on boundary characters, discarding empty segments.
func (t *Tokenizer) split(buf []byte) []string {
	var out []string
	start := -1 // start of the current token, -1 = between tokens
	for i := 0; i < len(buf); i++ {
		if t.boundary[buf[i]] {
			if start >= 0 {
				out = append(out, string(buf[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, string(buf[start:]))
	}

	return out
}

// boundaryBefore reports whether position i is at the start of buf or
// preceded by a boundary character.
func (t *Tokenizer) boundaryBefore(buf []byte, i int) bool {
	return i == 0 || t.boundary[buf[i-1]]
}

// boundaryAfter reports whether position end is at the end of buf or
// followed by a boundary character.
func (t *Tokenizer) boundaryAfter(buf []byte, end int) bool {
	return end == len(buf) || t.boundary[buf[end]]
}

// matchAt reports whether name occurs byte-for-byte in buf at offset i.
func matchAt(buf []byte, name string, i int) bool {
	for j := 0; j < len(name); j++ {
		if buf[i+j] != name[j] {
			return false
		}
	}

	return true
}
