// Package translate turns named parameter sets into source-text blocks
// for a target host language. A Translator renders each of the seven
// value tags under one language's literal grammar; the Registry resolves
// which Translator serves a given kernel identity or language family.
//
// Shared rendering rules live here as free functions (EscapedString,
// FormatInt, DefaultAssign, Codify) that each language package opts
// into, so a variant overrides only the rules that differ.
package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inkmill/inkmill/errors"
)

// Translator renders values and statements for one target language.
// Implementations are stateless and pure: output is a function of the
// input value alone.
type Translator interface {
	// TranslateNull renders the null literal. Variants whose type
	// system has no universal null refuse with an unsupported-type
	// error instead of approximating.
	TranslateNull() (string, error)

	// TranslateBool renders a boolean literal.
	TranslateBool(v bool) string

	// TranslateInt renders an integer literal, applying the variant's
	// wide-integer suffix beyond the signed 32-bit range where the
	// language distinguishes the two.
	TranslateInt(v int64) string

	// TranslateFloat renders a floating-point literal.
	TranslateFloat(v float64) string

	// TranslateStr renders an escaped, quoted string literal.
	TranslateStr(v string) string

	// TranslateMapping renders a key/value collection literal.
	TranslateMapping(v Mapping) (string, error)

	// TranslateSequence renders an ordered collection literal.
	TranslateSequence(v Sequence) (string, error)

	// Comment wraps one line of text in the language's comment syntax.
	Comment(text string) string

	// Assign produces one statement binding name to the literal text.
	Assign(name, literal string) string

	// Codify emits the full parameter block: a comment header followed
	// by one assignment per parameter, in insertion order.
	Codify(params *Parameters) (string, error)
}

// NewUnknownTranslatorError reports a Find miss, naming both lookup keys.
func NewUnknownTranslatorError(kernel, language string) error {
	return errors.Mark(
		errors.Newf("no parameter translator registered for kernel %q or language %q", kernel, language),
		errors.ErrUnknownTranslator,
	)
}

// NewUnsupportedTypeError reports a value tag the named variant has no
// rule for.
func NewUnsupportedTypeError(variant, kind string) error {
	return errors.Mark(
		errors.Newf("%s translation not implemented for %s", kind, variant),
		errors.ErrUnsupportedType,
	)
}

// Translate dispatches v to the type-specific method for its tag. Bool
// and Int are distinct tags, so a boolean can never take the integer
// branch. Implementations of Value outside the seven canonical tags
// fall back to the variant's escaped-string form of their raw text;
// mapping and sequence have no such fallback and fail when a variant
// refuses them.
func Translate(t Translator, v Value) (string, error) {
	switch v := v.(type) {
	case nil:
		return t.TranslateNull()
	case Null:
		return t.TranslateNull()
	case Str:
		return t.TranslateStr(string(v)), nil
	case Bool:
		return t.TranslateBool(bool(v)), nil
	case Int:
		return t.TranslateInt(int64(v)), nil
	case Float:
		return t.TranslateFloat(float64(v)), nil
	case Mapping:
		return t.TranslateMapping(v)
	case Sequence:
		return t.TranslateSequence(v)
	default:
		return t.TranslateStr(v.Raw()), nil
	}
}

// FormatInt renders the decimal digits of v.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

const (
	maxInt32 = 2147483647
	minInt32 = -2147483648
)

// FormatIntWide renders v's decimal digits, appending suffix when v
// does not fit the language's default 32-bit integer type.
func FormatIntWide(v int64, suffix string) string {
	s := FormatInt(v)
	if v > maxInt32 || v < minInt32 {
		return s + suffix
	}
	return s
}

// FormatFloat renders v in the shortest decimal form that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// KeywordBool renders the lower-case true/false keyword spelling shared
// by most variants.
func KeywordBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// EscapeControl backslash-escapes backslashes, control characters and
// non-ASCII text, leaving quotes untouched so each variant can apply
// its own quoting rule on top.
func EscapeControl(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r < 0x80:
			sb.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			fmt.Fprintf(&sb, `\U%08x`, r)
		}
	}
	return sb.String()
}

// EscapedString renders the double-quoted escaped string form shared by
// most variants: control characters backslash-escaped, embedded double
// quotes escaped with a backslash.
func EscapedString(s string) string {
	return `"` + strings.ReplaceAll(EscapeControl(s), `"`, `\"`) + `"`
}

// DefaultAssign is the bare `name = literal` statement form.
func DefaultAssign(name, literal string) string {
	return name + " = " + literal
}

// Comment renders text behind a single-line comment token, trimming
// trailing space when text is empty.
func Comment(token, text string) string {
	return strings.TrimSpace(token + " " + text)
}

// Codify emits the standard parameter block for t: a "Parameters"
// comment header and one assignment line per parameter, in insertion
// order.
func Codify(t Translator, params *Parameters) (string, error) {
	return CodifyLines(t, params, "")
}

// CodifyLines is Codify with a statement terminator appended to every
// assignment line, for languages that end statements explicitly.
func CodifyLines(t Translator, params *Parameters, terminator string) (string, error) {
	var sb strings.Builder
	sb.WriteString(t.Comment("Parameters"))
	sb.WriteByte('\n')

	err := params.Each(func(name string, v Value) error {
		literal, err := Translate(t, v)
		if err != nil {
			return errors.Wrapf(err, "translating parameter %q", name)
		}
		sb.WriteString(t.Assign(name, literal))
		sb.WriteString(terminator)
		sb.WriteByte('\n')
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
