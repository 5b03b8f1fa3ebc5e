// Package template holds named template definitions and the templating
// engine contract used at render time.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Definition is one named template. Source carries the literal template
// text fed to the engine.
type Definition struct {
	Name   string
	Source string
}

// Store is an explicit registry of template definitions, queried by exact
// name.
type Store struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{defs: make(map[string]Definition)}
}

// Add registers a template source under the given name, replacing any
// previous definition.
func (s *Store) Add(name, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defs[name] = Definition{Name: name, Source: source}
}

// Lookup returns the definition for the name and whether it exists.
func (s *Store) Lookup(name string) (Definition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.defs[name]
	return def, ok
}

// Names returns the registered template names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered templates.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.defs)
}

// LoadDir registers every *.html file in dir as a template named after its
// base name without extension.
func (s *Store) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("template: reading %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("template: reading %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".html")
		s.Add(name, string(data))
	}
	return nil
}
