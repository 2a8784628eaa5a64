package inject

import "sync"

// ── Singleton store ───────────────────────────────────────────────────────────

type buildFunc func() (any, error)

// store is the session-owned cache of constructed singletons. Construction
// is serialized per key: the first requester builds, concurrent requesters
// for the same key block until that build finishes. Builds for different
// keys proceed independently. A failed build leaves no entry behind, so a
// later request retries from scratch.
type store struct {
	mu      sync.Mutex
	entries map[Key]*entry
}

type entry struct {
	done  chan struct{} // closed once the build finished
	value any
	err   error
}

func newStore() *store {
	return &store{entries: make(map[Key]*entry)}
}

// GetOrBuild returns the cached instance for key, building it with build if
// absent. The second result reports whether this call performed the build;
// callers use it to notify listeners exactly once per constructed object.
func (s *store) GetOrBuild(key Key, build buildFunc) (any, bool, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		s.mu.Unlock()
		<-e.done
		return e.value, false, e.err
	}
	e := &entry{done: make(chan struct{})}
	s.entries[key] = e
	s.mu.Unlock()

	e.value, e.err = build()
	if e.err != nil {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
	}
	close(e.done)
	return e.value, true, e.err
}

// Keys returns the keys of all successfully built singletons.
func (s *store) Keys() []Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]Key, 0, len(s.entries))
	for k, e := range s.entries {
		select {
		case <-e.done:
			if e.err == nil {
				keys = append(keys, k)
			}
		default: // build still in flight
		}
	}
	return keys
}
