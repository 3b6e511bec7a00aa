// Package fsharp renders parameter blocks as F# source.
package fsharp

import (
	"strings"

	"github.com/inkmill/inkmill/translate"
)

// Translator implements translate.Translator for F#.
type Translator struct{}

// New creates an F# translator.
func New() *Translator {
	return &Translator{}
}

// TranslateNull renders the None option case.
func (t *Translator) TranslateNull() (string, error) {
	return "None", nil
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

// TranslateMapping renders a tuple list piped into Map.ofList. Values
// are upcast to IComparable so heterogeneous maps type-check.
func (t *Translator) TranslateMapping(v translate.Mapping) (string, error) {
	parts := make([]string, 0, len(v))
	for _, p := range v {
		literal, err := translate.Translate(t, p.Val)
		if err != nil {
			return "", err
		}
		parts = append(parts, "("+t.TranslateStr(p.Key)+", "+literal+" :> IComparable)")
	}
	return "[ " + strings.Join(parts, "; ") + " ] |> Map.ofList", nil
}

// TranslateSequence renders a list literal with semicolon separators.
func (t *Translator) TranslateSequence(v translate.Sequence) (string, error) {
	parts := make([]string, 0, len(v))
	for _, item := range v {
		literal, err := translate.Translate(t, item)
		if err != nil {
			return "", err
		}
		parts = append(parts, literal)
	}
	return "[ " + strings.Join(parts, "; ") + " ]", nil
}

// Comment renders a (* ... *) comment.
func (t *Translator) Comment(text string) string {
	return strings.TrimSpace("(* " + text + " *)")
}

// Assign renders `let name = literal`.
func (t *Translator) Assign(name, literal string) string {
	return "let " + name + " = " + literal
}

// Codify emits the standard parameter block.
func (t *Translator) Codify(params *translate.Parameters) (string, error) {
	return translate.Codify(t, params)
}
