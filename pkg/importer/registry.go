package importer

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for all importers.
var globalRegistry = &Registry{
	defs: make(map[string]Def),
}

// Registry stores registered importers keyed by module name.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Def
}

// Register adds an importer to the global registry.
// Call this from init() functions in importer packages.
func Register(def Def) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.defs[def.Name] = def
}

// Get returns the importer registered for a module name.
func Get(name string) (Def, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.defs[name]
	return def, ok
}

// All returns all registered importers sorted by name.
func All() []Def {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	defs := make([]Def, 0, len(globalRegistry.defs))
	for _, def := range globalRegistry.defs {
		defs = append(defs, def)
	}
	sortDefs(defs)
	return defs
}

// ByGroup returns the importers of one group sorted by name.
func ByGroup(group string) []Def {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var defs []Def
	for _, def := range globalRegistry.defs {
		if def.Group == group {
			defs = append(defs, def)
		}
	}
	sortDefs(defs)
	return defs
}

// Count returns the number of registered importers.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.defs)
}

// Clear removes all registered importers. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.defs = make(map[string]Def)
}

func sortDefs(defs []Def) {
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
}
