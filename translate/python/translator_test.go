package python

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmill/inkmill/errors"
	"github.com/inkmill/inkmill/translate"
)

func TestCodify(t *testing.T) {
	params := translate.NewParameters().
		Set("alpha", translate.Int(1)).
		Set("beta", translate.Str("x"))

	got, err := New().Codify(params)
	require.NoError(t, err)
	assert.Equal(t, "# Parameters\nalpha = 1\nbeta = \"x\"\n", got)
}

func TestScalars(t *testing.T) {
	tr := New()

	null, err := tr.TranslateNull()
	require.NoError(t, err)
	assert.Equal(t, "None", null)

	// Capitalized spelling, never the 0/1 integer rendering.
	assert.Equal(t, "True", tr.TranslateBool(true))
	assert.Equal(t, "False", tr.TranslateBool(false))
	assert.Equal(t, "-1", tr.TranslateInt(-1))
	assert.Equal(t, "3000000000", tr.TranslateInt(3000000000))
	assert.Equal(t, "1.5", tr.TranslateFloat(1.5))
	assert.Equal(t, `"foo"`, tr.TranslateStr("foo"))
	assert.Equal(t, `"say \"hi\""`, tr.TranslateStr(`say "hi"`))
}

func TestBoolInsideDispatch(t *testing.T) {
	got, err := translate.Translate(New(), translate.Bool(true))
	require.NoError(t, err)
	assert.Equal(t, "True", got)
}

func TestMapping(t *testing.T) {
	got, err := New().TranslateMapping(translate.Mapping{
		{Key: "foo", Val: translate.Str("bar")},
		{Key: "baz", Val: translate.Int(2)},
		{Key: "nested", Val: translate.Sequence{translate.Int(1), translate.Bool(false)}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"foo": "bar", "baz": 2, "nested": [1, False]}`, got)
}

func TestSequence(t *testing.T) {
	got, err := New().TranslateSequence(translate.Sequence{
		translate.Int(1), translate.Float(2.5), translate.Str("s"), translate.Null{},
	})
	require.NoError(t, err)
	assert.Equal(t, `[1, 2.5, "s", None]`, got)
}

func TestCommentAndAssign(t *testing.T) {
	tr := New()
	assert.Equal(t, "# Parameters", tr.Comment("Parameters"))
	assert.Equal(t, "x = 42", tr.Assign("x", "42"))
}

func TestCodify_WithNormalizer(t *testing.T) {
	normalized := "alpha = 1\n"
	tr := New(WithNormalizer(translate.NormalizerFunc(func(source string) (string, error) {
		assert.Contains(t, source, "# Parameters")
		return normalized, nil
	})))

	got, err := tr.Codify(translate.NewParameters().Set("alpha", translate.Int(1)))
	require.NoError(t, err)
	assert.Equal(t, normalized, got)
}

func TestCodify_NormalizerFailure(t *testing.T) {
	tr := New(WithNormalizer(translate.NormalizerFunc(func(string) (string, error) {
		return "", errors.New("formatter crashed")
	})))

	_, err := tr.Codify(translate.NewParameters().Set("alpha", translate.Int(1)))
	require.Error(t, err)
	assert.True(t, errors.IsNormalizationError(err))
	assert.False(t, errors.IsUnsupportedTypeError(err))
}
