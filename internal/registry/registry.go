// Package registry provides a global registry of board content themes.
// Themes register themselves in init() functions, allowing the board
// generator and the platform to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Theme describes a content alphabet that tiles draw their faces from.
type Theme struct {
	// ID is a unique identifier (e.g., "numbers", "alphabet").
	// Used for CLI commands and progress storage keys.
	ID string

	// Title is a human-readable name for display (e.g., "Numbers 1-100").
	Title string

	// Order controls menu position; lower comes first.
	Order int

	// Symbols is the ordered alphabet. Pair-type index i gets Symbols[i % len].
	Symbols []string
}

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID      string
	Title   string
	Symbols int
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from an init() function.
// Panics if a theme with the same ID is already registered or has no symbols.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", t.ID))
	}
	if len(t.Symbols) == 0 {
		panic(fmt.Sprintf("registry: theme %q has no symbols", t.ID))
	}

	symbols := make([]string, len(t.Symbols))
	copy(symbols, t.Symbols)
	t.Symbols = symbols
	themes[t.ID] = t
}

// List returns information about all registered themes, sorted by Order then ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	sorted := make([]Theme, 0, len(themes))
	for _, t := range themes {
		sorted = append(sorted, t)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].ID < sorted[j].ID
	})

	result := make([]ThemeInfo, len(sorted))
	for i, t := range sorted {
		result[i] = ThemeInfo{ID: t.ID, Title: t.Title, Symbols: len(t.Symbols)}
	}
	return result
}

// Lookup returns a registered theme by its ID.
// Returns an error if the theme ID is not registered.
func Lookup(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("registry: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}
