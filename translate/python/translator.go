// Package python renders parameter blocks as Python source.
package python

import (
	"strings"

	"github.com/inkmill/inkmill/errors"
	"github.com/inkmill/inkmill/translate"
)

// Translator implements translate.Translator for Python. An injectable
// Normalizer runs the assembled block through a canonical style
// formatter; the default is the identity.
type Translator struct {
	normalizer translate.Normalizer
}

// Option configures a Translator.
type Option func(*Translator)

// WithNormalizer replaces the post-processing normalizer.
func WithNormalizer(n translate.Normalizer) Option {
	return func(t *Translator) {
		if n != nil {
			t.normalizer = n
		}
	}
}

// New creates a Python translator.
func New(opts ...Option) *Translator {
	t := &Translator{normalizer: translate.Identity}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TranslateNull renders Python's None.
func (t *Translator) TranslateNull() (string, error) {
	return "None", nil
}

// TranslateBool renders the capitalized True/False spelling.
func (t *Translator) TranslateBool(v bool) string {
	return translate.Bool(v).Raw()
}

// TranslateInt renders raw digits; Python integers are arbitrary
// precision, so no wide suffix exists.
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

// TranslateMapping renders a dict literal.
func (t *Translator) TranslateMapping(v translate.Mapping) (string, error) {
	parts := make([]string, 0, len(v))
	for _, p := range v {
		literal, err := translate.Translate(t, p.Val)
		if err != nil {
			return "", err
		}
		parts = append(parts, t.TranslateStr(p.Key)+": "+literal)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

// TranslateSequence renders a list literal.
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

// Codify emits the parameter block and runs it through the configured
// normalizer.
func (t *Translator) Codify(params *translate.Parameters) (string, error) {
	source, err := translate.Codify(t, params)
	if err != nil {
		return "", err
	}
	normalized, err := t.normalizer.Normalize(source)
	if err != nil {
		if errors.IsNormalizationError(err) {
			return "", err
		}
		return "", errors.Mark(
			errors.Wrap(err, "normalizing generated block"),
			errors.ErrNormalization,
		)
	}
	return normalized, nil
}
