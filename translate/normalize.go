package translate

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/inkmill/inkmill/errors"
)

// Normalizer is an optional post-processing step applied to a generated
// block after assembly, for languages whose ecosystem defines a
// canonical style formatter. The block is already valid source before
// normalization, so a normalizer failure is reported as a distinct
// condition (errors.ErrNormalization) rather than a translation error.
type Normalizer interface {
	Normalize(source string) (string, error)
}

// NormalizerFunc adapts a plain function to the Normalizer interface.
type NormalizerFunc func(source string) (string, error)

// Normalize calls f.
func (f NormalizerFunc) Normalize(source string) (string, error) {
	return f(source)
}

// Identity is the no-op normalizer.
var Identity Normalizer = NormalizerFunc(func(source string) (string, error) {
	return source, nil
})

// DefaultNormalizeTimeout bounds an external formatter run.
const DefaultNormalizeTimeout = 30 * time.Second

// CommandNormalizer pipes the generated block through an external
// formatter command (e.g. a canonical style formatter for the target
// language), reading the normalized block from its stdout.
type CommandNormalizer struct {
	// Command is the formatter command line, shell-quoted.
	Command string

	// Timeout bounds the formatter run; DefaultNormalizeTimeout when zero.
	Timeout time.Duration
}

// Normalize runs the formatter with source on stdin. Every failure mode
// (unparseable command line, missing binary, non-zero exit, timeout) is
// marked errors.ErrNormalization.
func (n *CommandNormalizer) Normalize(source string) (string, error) {
	words, err := shellquote.Split(n.Command)
	if err != nil {
		return "", errors.Mark(
			errors.Wrapf(err, "parsing formatter command %q", n.Command),
			errors.ErrNormalization,
		)
	}
	if len(words) == 0 {
		return "", errors.Mark(
			errors.New("empty formatter command"),
			errors.ErrNormalization,
		)
	}

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = DefaultNormalizeTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Stdin = strings.NewReader(source)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			err = errors.WithDetail(err, msg)
		}
		return "", errors.Mark(
			errors.Wrapf(err, "formatter %q failed", words[0]),
			errors.ErrNormalization,
		)
	}
	return stdout.String(), nil
}
