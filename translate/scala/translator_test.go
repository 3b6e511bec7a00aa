package scala

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmill/inkmill/translate"
)

func TestInt_WideSuffix(t *testing.T) {
	tr := New()

	assert.Equal(t, "42", tr.TranslateInt(42))
	assert.Equal(t, "3000000000L", tr.TranslateInt(3000000000))
	assert.Equal(t, "2147483647", tr.TranslateInt(2147483647))
	assert.Equal(t, "2147483648L", tr.TranslateInt(2147483648))
	assert.Equal(t, "-2147483648", tr.TranslateInt(-2147483648))
	assert.Equal(t, "-2147483649L", tr.TranslateInt(-2147483649))
}

func TestScalars(t *testing.T) {
	tr := New()

	null, err := tr.TranslateNull()
	require.NoError(t, err)
	assert.Equal(t, "None", null)

	assert.Equal(t, "true", tr.TranslateBool(true))
	assert.Equal(t, "false", tr.TranslateBool(false))
	assert.Equal(t, `"foo"`, tr.TranslateStr("foo"))
}

func TestMapping(t *testing.T) {
	got, err := New().TranslateMapping(translate.Mapping{
		{Key: "foo", Val: translate.Str("bar")},
		{Key: "n", Val: translate.Int(5)},
	})
	require.NoError(t, err)
	assert.Equal(t, `Map("foo" -> "bar", "n" -> 5)`, got)
}

func TestSequence(t *testing.T) {
	got, err := New().TranslateSequence(translate.Sequence{
		translate.Int(1), translate.Int(2), translate.Int(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "Seq(1, 2, 3)", got)
}

func TestCodify(t *testing.T) {
	params := translate.NewParameters().
		Set("alpha", translate.Int(1)).
		Set("beta", translate.Str("x"))

	got, err := New().Codify(params)
	require.NoError(t, err)
	assert.Equal(t, "// Parameters\nval alpha = 1\nval beta = \"x\"\n", got)
}
