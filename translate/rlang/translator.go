// Package rlang renders parameter blocks as R source.
package rlang

import (
	"strings"

	"github.com/inkmill/inkmill/translate"
)

// Translator implements translate.Translator for R.
type Translator struct{}

// New creates an R translator.
func New() *Translator {
	return &Translator{}
}

// TranslateNull renders R's NULL.
func (t *Translator) TranslateNull() (string, error) {
	return "NULL", nil
}

// TranslateBool renders the upper-case TRUE/FALSE spelling.
func (t *Translator) TranslateBool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// TranslateInt renders raw digits.
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

// TranslateMapping renders a named list literal.
func (t *Translator) TranslateMapping(v translate.Mapping) (string, error) {
	parts := make([]string, 0, len(v))
	for _, p := range v {
		literal, err := translate.Translate(t, p.Val)
		if err != nil {
			return "", err
		}
		parts = append(parts, t.TranslateStr(p.Key)+" = "+literal)
	}
	return "list(" + strings.Join(parts, ", ") + ")", nil
}

// TranslateSequence renders an unnamed list literal.
func (t *Translator) TranslateSequence(v translate.Sequence) (string, error) {
	parts := make([]string, 0, len(v))
	for _, item := range v {
		literal, err := translate.Translate(t, item)
		if err != nil {
			return "", err
		}
		parts = append(parts, literal)
	}
	return "list(" + strings.Join(parts, ", ") + ")", nil
}

// Comment renders a # comment.
func (t *Translator) Comment(text string) string {
	return translate.Comment("#", text)
}

// Assign renders `name = literal`. Leading underscores are not legal in
// R variable names, so they are dropped before assembling the
// statement.
func (t *Translator) Assign(name, literal string) string {
	return translate.DefaultAssign(strings.TrimLeft(name, "_"), literal)
}

// Codify emits the standard parameter block.
func (t *Translator) Codify(params *translate.Parameters) (string, error) {
	return translate.Codify(t, params)
}
