// Package csharp renders parameter blocks as C# source.
package csharp

import (
	"strings"

	"github.com/inkmill/inkmill/translate"
)

// Translator implements translate.Translator for C#.
type Translator struct{}

// New creates a C# translator.
func New() *Translator {
	return &Translator{}
}

// TranslateNull refuses: `var x = null` cannot be typed, and there is
// no universal option literal to fall back on.
func (t *Translator) TranslateNull() (string, error) {
	return "", translate.NewUnsupportedTypeError("csharp", "null")
}

// TranslateBool renders the true/false keyword.
func (t *Translator) TranslateBool(v bool) string {
	return translate.KeywordBool(v)
}

// TranslateInt renders digits with an L suffix beyond the int range.
func (t *Translator) TranslateInt(v int64) string {
	return translate.FormatIntWide(v, "L")
}

// TranslateFloat renders the shortest round-tripping decimal form.
func (t *Translator) TranslateFloat(v float64) string {
	return translate.FormatFloat(v)
}

// TranslateStr renders the double-quoted escaped form.
func (t *Translator) TranslateStr(v string) string {
	return translate.EscapedString(v)
}

// TranslateMapping renders an untyped Dictionary initializer.
func (t *Translator) TranslateMapping(v translate.Mapping) (string, error) {
	parts := make([]string, 0, len(v))
	for _, p := range v {
		literal, err := translate.Translate(t, p.Val)
		if err != nil {
			return "", err
		}
		parts = append(parts, "{ "+t.TranslateStr(p.Key)+" , "+literal+" }")
	}
	return "new Dictionary<string,Object>{ " + strings.Join(parts, ", ") + " }", nil
}

// TranslateSequence renders an implicitly typed array initializer.
func (t *Translator) TranslateSequence(v translate.Sequence) (string, error) {
	parts := make([]string, 0, len(v))
	for _, item := range v {
		literal, err := translate.Translate(t, item)
		if err != nil {
			return "", err
		}
		parts = append(parts, literal)
	}
	return "new [] { " + strings.Join(parts, ", ") + " }", nil
}

// Comment renders a // comment.
func (t *Translator) Comment(text string) string {
	return translate.Comment("//", text)
}

// Assign renders `var name = literal;`.
func (t *Translator) Assign(name, literal string) string {
	return "var " + name + " = " + literal + ";"
}

// Codify emits the standard parameter block.
func (t *Translator) Codify(params *translate.Parameters) (string, error) {
	return translate.Codify(t, params)
}
