package csharp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmill/inkmill/errors"
	"github.com/inkmill/inkmill/translate"
)

func TestNull_Refused(t *testing.T) {
	_, err := New().TranslateNull()
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedTypeError(err))
	assert.Contains(t, err.Error(), "null translation not implemented for csharp")
}

func TestNullInsideCodify(t *testing.T) {
	params := translate.NewParameters().Set("missing", translate.Null{})

	_, err := New().Codify(params)
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedTypeError(err))
	assert.Contains(t, err.Error(), `translating parameter "missing"`)
}

func TestInt_WideSuffix(t *testing.T) {
	tr := New()
	assert.Equal(t, "12", tr.TranslateInt(12))
	assert.Equal(t, "2147483648L", tr.TranslateInt(2147483648))
	assert.Equal(t, "-2147483649L", tr.TranslateInt(-2147483649))
}

func TestMapping(t *testing.T) {
	got, err := New().TranslateMapping(translate.Mapping{
		{Key: "foo", Val: translate.Str("bar")},
		{Key: "n", Val: translate.Int(5)},
	})
	require.NoError(t, err)
	assert.Equal(t, `new Dictionary<string,Object>{ { "foo" , "bar" }, { "n" , 5 } }`, got)
}

func TestSequence(t *testing.T) {
	got, err := New().TranslateSequence(translate.Sequence{
		translate.Int(1), translate.Int(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "new [] { 1, 2 }", got)
}

func TestCodify(t *testing.T) {
	params := translate.NewParameters().
		Set("alpha", translate.Int(1)).
		Set("flag", translate.Bool(true))

	got, err := New().Codify(params)
	require.NoError(t, err)
	assert.Equal(t, "// Parameters\nvar alpha = 1;\nvar flag = true;\n", got)
}
