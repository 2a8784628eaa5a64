package app

import (
	"fmt"
	"sync"
)

// Demo services showing the binding strategies: an interface redirected to
// a singleton implementation, a structurally constructed service with a
// defaulted parameter, and a provider-bound value type.

// Banner is a provider-bound value type.
type Banner string

// Store abstracts greeting storage. Interface types are never constructible
// on their own, so the wiring binds Store to *MemoryStore.
type Store interface {
	Greeting(lang string) string
	Put(lang, greeting string)
}

// MemoryStore is the in-memory Store, shared as a singleton.
type MemoryStore struct {
	mu        sync.RWMutex
	greetings map[string]string
}

func (s *MemoryStore) Put(lang, greeting string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.greetings == nil {
		s.greetings = make(map[string]string)
	}
	s.greetings[lang] = greeting
}

func (s *MemoryStore) Greeting(lang string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if g, ok := s.greetings[lang]; ok {
		return g
	}
	return "Hello"
}

// Greeter is constructed structurally by the schema port: Store resolves
// through the class binding, Lang falls back to its declared default.
type Greeter struct {
	Store Store
	Lang  string `default:"en"`
}

func (g *Greeter) Greet(name string) string {
	return fmt.Sprintf("%s, %s!", g.Store.Greeting(g.Lang), name)
}
