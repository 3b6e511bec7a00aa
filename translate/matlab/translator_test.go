package matlab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmill/inkmill/translate"
)

func TestScalars(t *testing.T) {
	tr := New()

	null, err := tr.TranslateNull()
	require.NoError(t, err)
	assert.Equal(t, "NaN", null)

	assert.Equal(t, "true", tr.TranslateBool(true))
	assert.Equal(t, "12", tr.TranslateInt(12))
}

func TestStr_DoubledQuotes(t *testing.T) {
	tr := New()
	assert.Equal(t, `"foo"`, tr.TranslateStr("foo"))
	assert.Equal(t, `"say ""hi"""`, tr.TranslateStr(`say "hi"`))
	assert.Equal(t, `"a\nb"`, tr.TranslateStr("a\nb"))
}

func TestMapping_CharArrayKeys(t *testing.T) {
	got, err := New().TranslateMapping(translate.Mapping{
		{Key: "foo", Val: translate.Str("bar")},
		{Key: "it's", Val: translate.Int(5)},
	})
	require.NoError(t, err)
	assert.Equal(t, `containers.Map({'foo', 'it''s'}, {"bar", 5})`, got)
}

func TestSequence_CellArray(t *testing.T) {
	got, err := New().TranslateSequence(translate.Sequence{
		translate.Int(1), translate.Str("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, `{1, "x"}`, got)
}

func TestCodify_SemicolonTerminated(t *testing.T) {
	params := translate.NewParameters().
		Set("alpha", translate.Int(1)).
		Set("beta", translate.Str("x"))

	got, err := New().Codify(params)
	require.NoError(t, err)
	assert.Equal(t, "% Parameters\nalpha = 1;\nbeta = \"x\";\n", got)
}
