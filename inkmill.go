// Package inkmill generates parameter-assignment source blocks for
// notebook-style injection. Given a kernel identity, a language family
// and an ordered parameter set, it resolves a language translator and
// emits one assignment statement per parameter, ready to be inserted
// ahead of a computation template.
package inkmill

import (
	"sync"

	"github.com/inkmill/inkmill/translate"
	"github.com/inkmill/inkmill/translate/csharp"
	"github.com/inkmill/inkmill/translate/fsharp"
	"github.com/inkmill/inkmill/translate/julia"
	"github.com/inkmill/inkmill/translate/matlab"
	"github.com/inkmill/inkmill/translate/python"
	"github.com/inkmill/inkmill/translate/rlang"
	"github.com/inkmill/inkmill/translate/scala"
)

var (
	defaultRegistry *translate.Registry
	registryOnce    sync.Once
)

// DefaultRegistry returns the process-wide registry, populating the
// built-in translators on first use. The registration keys double as
// kernel identities and language families.
func DefaultRegistry() *translate.Registry {
	registryOnce.Do(func() {
		r := translate.NewRegistry()
		r.Register("python", python.New())
		r.Register("R", rlang.New())
		r.Register("scala", scala.New())
		r.Register("julia", julia.New())
		r.Register("matlab", matlab.New())
		r.Register(".net-csharp", csharp.New())
		r.Register(".net-fsharp", fsharp.New())
		defaultRegistry = r
	})
	return defaultRegistry
}

// Register adds or replaces a translator in the default registry.
func Register(key string, t translate.Translator) {
	DefaultRegistry().Register(key, t)
}

// TranslateParameters resolves a translator for the kernel identity
// (falling back to the language family) and codifies the parameter set
// into a source-text block.
func TranslateParameters(kernel, language string, params *translate.Parameters) (string, error) {
	t, err := DefaultRegistry().Find(kernel, language)
	if err != nil {
		return "", err
	}
	return t.Codify(params)
}
