package style

import (
	"sync"

	tomatoerrors "github.com/LuizRaizen/tomato/pkg/errors"
)

// Registry maps style names to SGR attribute codes. It is seeded with the
// base styles and grows through plugin registration during startup; plugins
// registering an existing name win, base names included.
type Registry struct {
	mu     sync.RWMutex
	styles map[string]string
}

// NewRegistry returns a registry holding the base styles.
func NewRegistry() *Registry {
	return &Registry{
		styles: map[string]string{
			"bold":      "1",
			"underline": "4",
			"negative":  "7",
		},
	}
}

// Register adds or replaces a style. Last write wins on name collision.
func (r *Registry) Register(name, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[name] = code
}

// Lookup resolves a style name to its attribute code. An empty name means
// no style was requested and resolves to an empty code.
func (r *Registry) Lookup(name string) (string, error) {
	if name == "" {
		return "", nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	code, ok := r.styles[name]
	if !ok {
		return "", tomatoerrors.NewAttributeError(KindStyle, name, r.namesLocked())
	}
	return code, nil
}

// Names returns every registered style name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// Len reports the number of registered styles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.styles)
}

func (r *Registry) namesLocked() []string {
	return sortedKeys(r.styles)
}
