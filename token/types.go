// Package token defines the tokenizer's dialect configuration: the boundary
// character set and the reserved function name set, both per-instance
// options rather than process-wide constants.
package token

// DefaultBoundaryChars is the default set of characters that delimit a
// token: arithmetic and comparison operators, brackets, parentheses, comma,
// and whitespace. The double quote is deliberately absent — it delimits
// string literals, not identifiers.
const DefaultBoundaryChars = "+-*/^%<>=()[]{}, \t\r\n"

// defaultReservedFuncs is the default reserved function dialect. Matching is
// case-insensitive; these tokens are never resolved as parameter names.
var defaultReservedFuncs = []string{
	"abs", "acos", "asin", "atan",
	"cos", "exp", "ln", "log",
	"max", "min", "pi",
	"round", "rounddown", "roundup",
	"sin", "sqrt", "tan",
}

// Option configures a Tokenizer at construction time.
// Use with New(opts...).
type Option func(*Options)

// Options holds the tokenizer dialect.
type Options struct {
	// BoundaryChars is the set of characters that delimit tokens. Every
	// character of the string is treated as one boundary character.
	BoundaryChars string

	// ReservedFuncs lists function names that are never resolved as
	// parameter references. Matching is case-insensitive.
	ReservedFuncs []string
}

// DefaultOptions returns the default dialect:
//   - DefaultBoundaryChars as the boundary set
//   - the built-in trigonometric/rounding function names as reserved
func DefaultOptions() Options {
	return Options{
		BoundaryChars: DefaultBoundaryChars,
		ReservedFuncs: defaultReservedFuncs,
	}
}

// WithBoundaryChars returns an Option that replaces the boundary character
// set. An empty string has no effect (the default set is retained).
func WithBoundaryChars(chars string) Option {
	return func(o *Options) {
		if chars != "" {
			o.BoundaryChars = chars
		}
	}
}

// WithReservedFuncs returns an Option that replaces the reserved function
// name set. Passing no names clears the set entirely.
func WithReservedFuncs(names ...string) Option {
	return func(o *Options) {
		o.ReservedFuncs = names
	}
}
