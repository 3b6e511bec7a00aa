// Package matlab renders parameter blocks as MATLAB source.
package matlab

import (
	"strings"

	"github.com/inkmill/inkmill/translate"
)

// Translator implements translate.Translator for MATLAB.
type Translator struct{}

// New creates a MATLAB translator.
func New() *Translator {
	return &Translator{}
}

// TranslateNull renders NaN, the closest MATLAB spelling for a missing
// value.
func (t *Translator) TranslateNull() (string, error) {
	return "NaN", nil
}

// TranslateBool renders the true/false keyword.
func (t *Translator) TranslateBool(v bool) string {
	return translate.KeywordBool(v)
}

// TranslateInt renders raw digits.
func (t *Translator) TranslateInt(v int64) string {
	return translate.FormatInt(v)
}

// TranslateFloat renders the shortest round-tripping decimal form.
func (t *Translator) TranslateFloat(v float64) string {
	return translate.FormatFloat(v)
}

// TranslateStr renders a double-quoted MATLAB string; embedded double
// quotes are escaped by doubling, not backslashes.
func (t *Translator) TranslateStr(v string) string {
	return `"` + strings.ReplaceAll(translate.EscapeControl(v), `"`, `""`) + `"`
}

// charArray renders a single-quoted MATLAB char array, doubling
// embedded single quotes. containers.Map keys must be char arrays, not
// strings.
func charArray(v string) string {
	return `'` + strings.ReplaceAll(translate.EscapeControl(v), `'`, `''`) + `'`
}

// TranslateMapping renders a containers.Map constructor with parallel
// key and value cell arrays.
func (t *Translator) TranslateMapping(v translate.Mapping) (string, error) {
	keys := make([]string, 0, len(v))
	vals := make([]string, 0, len(v))
	for _, p := range v {
		literal, err := translate.Translate(t, p.Val)
		if err != nil {
			return "", err
		}
		keys = append(keys, charArray(p.Key))
		vals = append(vals, literal)
	}
	return "containers.Map({" + strings.Join(keys, ", ") + "}, {" + strings.Join(vals, ", ") + "})", nil
}

// TranslateSequence renders a cell array literal.
func (t *Translator) TranslateSequence(v translate.Sequence) (string, error) {
	parts := make([]string, 0, len(v))
	for _, item := range v {
		literal, err := translate.Translate(t, item)
		if err != nil {
			return "", err
		}
		parts = append(parts, literal)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

// Comment renders a % comment.
func (t *Translator) Comment(text string) string {
	return translate.Comment("%", text)
}

// Assign renders `name = literal`.
func (t *Translator) Assign(name, literal string) string {
	return translate.DefaultAssign(name, literal)
}

// Codify emits the parameter block with every assignment terminated by
// a semicolon to suppress MATLAB's result echo.
func (t *Translator) Codify(params *translate.Parameters) (string, error) {
	return translate.CodifyLines(t, params, ";")
}
