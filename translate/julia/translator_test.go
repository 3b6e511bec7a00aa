package julia

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
	assert.Equal(t, "nothing", null)

	assert.Equal(t, "true", tr.TranslateBool(true))
	assert.Equal(t, "3000000000", tr.TranslateInt(3000000000))
	assert.Equal(t, `"foo"`, tr.TranslateStr("foo"))
}

func TestMapping(t *testing.T) {
	got, err := New().TranslateMapping(translate.Mapping{
		{Key: "foo", Val: translate.Str("bar")},
		{Key: "n", Val: translate.Int(5)},
	})
	require.NoError(t, err)
	assert.Equal(t, `Dict("foo" => "bar", "n" => 5)`, got)
}

func TestSequence(t *testing.T) {
	got, err := New().TranslateSequence(translate.Sequence{
		translate.Int(1), translate.Float(2.5), translate.Null{},
	})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5, nothing]", got)
}

func TestCodify(t *testing.T) {
	params := translate.NewParameters().
		Set("alpha", translate.Int(1)).
		Set("flag", translate.Bool(false))

	got, err := New().Codify(params)
	require.NoError(t, err)
	assert.Equal(t, "# Parameters\nalpha = 1\nflag = false\n", got)
}
