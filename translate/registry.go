package translate

import (
	"sort"
	"sync"
)

// Registry holds the translators registered with the system, keyed by
// kernel identity or language family. Both key namespaces share one
// table: a kernel-specific registration shadows its language family on
// lookup.
type Registry struct {
	mu          sync.RWMutex
	translators map[string]Translator
}

// NewRegistry creates an empty translator registry.
func NewRegistry() *Registry {
	return &Registry{
		translators: make(map[string]Translator),
	}
}

// Register inserts or replaces the translator under key. The last
// registration for a key wins.
func (r *Registry) Register(key string, t Translator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.translators[key] = t
}

// Find resolves a translator for the given kernel identity, falling
// back to the language family when no kernel-specific entry exists.
// This lets a specific kernel flavor (e.g. "ir") reuse the translator
// registered for its language ("R") without a dedicated entry.
func (r *Registry) Find(kernel, language string) (Translator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.translators[kernel]; ok {
		return t, nil
	}
	if t, ok := r.translators[language]; ok {
		return t, nil
	}
	return nil, NewUnknownTranslatorError(kernel, language)
}

// Keys returns all registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.translators))
	for key := range r.translators {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
