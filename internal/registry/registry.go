// Package registry provides a global registry for paddle controller factories.
// Controllers register themselves in init() functions, allowing the CLI and
// config to pick them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/autopong/internal/core"
	"github.com/vovakirdan/autopong/internal/pong"
)

// ControllerInfo contains metadata about a registered controller.
type ControllerInfo struct {
	ID          string
	Description string
}

// Factory creates a controller. Keys is the platform's key state; controllers
// that ignore input may ignore it, and it may be nil in headless runs.
type Factory func(keys core.KeyReader) pong.Controller

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a controller factory to the registry.
// Typically called from an init() function.
// Panics if a controller with the same ID is already registered.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: controller %q already registered", id))
	}

	factories[id] = f
	descriptions[id] = description
}

// List returns information about all registered controllers, sorted by ID.
func List() []ControllerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ControllerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ControllerInfo{
			ID:          id,
			Description: descriptions[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a controller by its ID.
// Returns an error if the ID is not registered.
func Create(id string, keys core.KeyReader) (pong.Controller, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown controller %q", id)
	}

	return f(keys), nil
}

// Exists checks if a controller with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Pair creates the left and right controllers in one call.
func Pair(left, right string, keys core.KeyReader) (pong.Controller, pong.Controller, error) {
	l, err := Create(left, keys)
	if err != nil {
		return nil, nil, err
	}
	r, err := Create(right, keys)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
