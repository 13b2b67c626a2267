package plugin

import (
	"fmt"
	"sort"
	"sync"

	tomatoerrors "github.com/LuizRaizen/tomato/pkg/errors"
)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// RegisterFactory adds a plugin factory under the provided name.
func RegisterFactory(name string, f Factory) error {
	if f == nil {
		return tomatoerrors.NewPluginError(name, fmt.Errorf("factory is nil"))
	}

	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	if _, exists := factories[name]; exists {
		return tomatoerrors.NewPluginError(name, fmt.Errorf("factory already registered"))
	}

	factories[name] = f
	return nil
}

// GetFactory retrieves a plugin factory by name.
func GetFactory(name string) (Factory, error) {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, tomatoerrors.NewPluginError(name, fmt.Errorf("no plugin registered"))
	}

	return f, nil
}

// FactoryNames returns every registered factory name, sorted.
func FactoryNames() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResetFactories clears factory registrations (for tests).
func ResetFactories() {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories = make(map[string]Factory)
}
