// Package julia renders parameter blocks as Julia source.
package julia

import (
	"strings"

	"github.com/inkmill/inkmill/translate"
)

// Translator implements translate.Translator for Julia.
type Translator struct{}

// New creates a Julia translator.
func New() *Translator {
	return &Translator{}
}

// TranslateNull renders Julia's nothing.
func (t *Translator) TranslateNull() (string, error) {
	return "nothing", nil
}

// TranslateBool renders the true/false keyword.
func (t *Translator) TranslateBool(v bool) string {
	return translate.KeywordBool(v)
}

// TranslateInt renders raw digits; Julia's default Int is 64-bit.
func (t *Translator) TranslateInt(v int64) string {
	return translate.FormatInt(v)
}

// TranslateFloat renders the shortest round-tripping decimal form.
func (t *Translator) TranslateFloat(v float64) string {
	return translate.FormatFloat(v)
}

// TranslateStr renders the double-quoted escaped form.
func (t *Translator) TranslateStr(v string) string {
	return translate.EscapedString(v)
}

// TranslateMapping renders a Dict literal.
func (t *Translator) TranslateMapping(v translate.Mapping) (string, error) {
	parts := make([]string, 0, len(v))
	for _, p := range v {
		literal, err := translate.Translate(t, p.Val)
		if err != nil {
			return "", err
		}
		parts = append(parts, t.TranslateStr(p.Key)+" => "+literal)
	}
	return "Dict(" + strings.Join(parts, ", ") + ")", nil
}

// TranslateSequence renders a vector literal.
func (t *Translator) TranslateSequence(v translate.Sequence) (string, error) {
	parts := make([]string, 0, len(v))
	for _, item := range v {
		literal, err := translate.Translate(t, item)
		if err != nil {
			return "", err
		}
		parts = append(parts, literal)
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// Comment renders a # comment.
func (t *Translator) Comment(text string) string {
	return translate.Comment("#", text)
}

// Assign renders `name = literal`.
func (t *Translator) Assign(name, literal string) string {
	return translate.DefaultAssign(name, literal)
}

// Codify emits the standard parameter block.
func (t *Translator) Codify(params *translate.Parameters) (string, error) {
	return translate.Codify(t, params)
}
