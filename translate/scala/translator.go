// Package scala renders parameter blocks as Scala source.
package scala

import (
	"strings"

	"github.com/inkmill/inkmill/translate"
)

// Translator implements translate.Translator for Scala.
type Translator struct{}

// New creates a Scala translator.
func New() *Translator {
	return &Translator{}
}

// TranslateNull renders the raw null form.
func (t *Translator) TranslateNull() (string, error) {
	return translate.Null{}.Raw(), nil
}

// TranslateBool renders the true/false keyword.
func (t *Translator) TranslateBool(v bool) string {
	return translate.KeywordBool(v)
}

// TranslateInt renders digits with an L suffix beyond the Int range.
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

// TranslateMapping renders a Map literal.
func (t *Translator) TranslateMapping(v translate.Mapping) (string, error) {
	parts := make([]string, 0, len(v))
	for _, p := range v {
		literal, err := translate.Translate(t, p.Val)
		if err != nil {
			return "", err
		}
		parts = append(parts, t.TranslateStr(p.Key)+" -> "+literal)
	}
	return "Map(" + strings.Join(parts, ", ") + ")", nil
}

// TranslateSequence renders a Seq literal.
func (t *Translator) TranslateSequence(v translate.Sequence) (string, error) {
	parts := make([]string, 0, len(v))
	for _, item := range v {
		literal, err := translate.Translate(t, item)
		if err != nil {
			return "", err
		}
		parts = append(parts, literal)
	}
	return "Seq(" + strings.Join(parts, ", ") + ")", nil
}

// Comment renders a // comment.
func (t *Translator) Comment(text string) string {
	return translate.Comment("//", text)
}

// Assign renders `val name = literal`.
func (t *Translator) Assign(name, literal string) string {
	return "val " + name + " = " + literal
}

// Codify emits the standard parameter block.
func (t *Translator) Codify(params *translate.Parameters) (string, error) {
	return translate.Codify(t, params)
}
