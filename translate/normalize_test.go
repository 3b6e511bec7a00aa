package translate

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmill/inkmill/errors"
)

func TestIdentityNormalizer(t *testing.T) {
	out, err := Identity.Normalize("x = 1\n")
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", out)
}

func TestNormalizerFunc(t *testing.T) {
	n := NormalizerFunc(func(source string) (string, error) {
		return source + "# formatted\n", nil
	})
	out, err := n.Normalize("x = 1\n")
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n# formatted\n", out)
}

func TestCommandNormalizer_Passthrough(t *testing.T) {
	skipWithoutShellTools(t)

	n := &CommandNormalizer{Command: "cat"}
	out, err := n.Normalize("alpha = 1\n")
	require.NoError(t, err)
	assert.Equal(t, "alpha = 1\n", out)
}

func TestCommandNormalizer_MissingBinary(t *testing.T) {
	n := &CommandNormalizer{Command: "inkmill-no-such-formatter"}
	_, err := n.Normalize("x = 1\n")
	require.Error(t, err)
	assert.True(t, errors.IsNormalizationError(err))
}

func TestCommandNormalizer_BadQuoting(t *testing.T) {
	n := &CommandNormalizer{Command: `fmt --flag "unterminated`}
	_, err := n.Normalize("x = 1\n")
	require.Error(t, err)
	assert.True(t, errors.IsNormalizationError(err))
}

func TestCommandNormalizer_Empty(t *testing.T) {
	n := &CommandNormalizer{Command: ""}
	_, err := n.Normalize("x = 1\n")
	require.Error(t, err)
	assert.True(t, errors.IsNormalizationError(err))
}

func TestCommandNormalizer_Timeout(t *testing.T) {
	skipWithoutShellTools(t)

	n := &CommandNormalizer{Command: "sleep 5", Timeout: 50 * time.Millisecond}
	_, err := n.Normalize("x = 1\n")
	require.Error(t, err)
	assert.True(t, errors.IsNormalizationError(err))
}

func skipWithoutShellTools(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires unix shell tools")
	}
}
