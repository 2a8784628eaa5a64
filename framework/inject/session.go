package inject

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
)

// ── Session ───────────────────────────────────────────────────────────────────

// Session is the live object-graph resolver. It owns an immutable binding
// registry, a singleton store, the listener hub and a schema port, and is
// safe for concurrent use: multiple goroutines may call Get on the same
// session, blocking only on in-flight singleton construction for the same
// key.
type Session struct {
	registry *registry
	store    *store
	hub      *hub
	schema   Schema
	logger   *slog.Logger

	mu      sync.RWMutex
	overlay map[Key]any // instances added via Register after construction
}

// Option configures a Session at creation time.
type Option func(*Session)

// WithLogger sets the logger used to report listener failures. The default
// discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSchema sets the schema introspection port used to construct types
// that have no binding. Without it, every unbound request fails with
// NotBoundError.
func WithSchema(sc Schema) Option {
	return func(s *Session) {
		if sc != nil {
			s.schema = sc
		}
	}
}

// NewSession creates a session from bindings and listeners, both taken in
// registration order, and runs the eager initialization pass before
// returning: every instance binding is announced to the listeners once, and
// every eager singleton is forced, exactly as a normal Get would build it.
// Any failure during the pass aborts session creation.
func NewSession(bindings []Binding, listeners []Listener, opts ...Option) (*Session, error) {
	s := &Session{
		registry: newRegistry(bindings),
		store:    newStore(),
		schema:   noSchema{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		overlay:  make(map[Key]any),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = &hub{listeners: listeners, logger: s.logger}

	for _, b := range s.registry.all() {
		switch b.kind {
		case KindInstance:
			if err := s.hub.notify(b.from, b.obj); err != nil {
				return nil, err
			}
		case KindSingleton:
			if b.eager {
				if _, err := s.getSingleton(b, newTrail()); err != nil {
					return nil, err
				}
			}
		}
	}
	return s, nil
}

// Get resolves the object graph for key and returns the constructed
// instance. It fails with CycleError, NotBoundError, ConstructionError or
// ListenerError; it never returns a nil instance with a nil error for a
// constructible type.
func (s *Session) Get(key Key) (any, error) {
	return s.resolve(key, newTrail())
}

// Register memoizes a pre-built instance for key after session creation,
// overwriting any earlier Register for the same key, and notifies the
// listeners once. Registered instances take precedence over the binding
// registry.
func (s *Session) Register(key Key, instance any) error {
	s.mu.Lock()
	s.overlay[key] = instance
	s.mu.Unlock()
	return s.hub.notify(key, instance)
}

// ── Resolution engine ─────────────────────────────────────────────────────────

// resolve applies the first matching binding for key, or falls back to
// structural construction through the schema port.
func (s *Session) resolve(key Key, t *trail) (any, error) {
	if t.has(key) {
		return nil, &CycleError{Chain: t.chainWith(key)}
	}

	s.mu.RLock()
	v, ok := s.overlay[key]
	s.mu.RUnlock()
	if ok {
		return v, nil
	}

	if b, ok := s.registry.lookup(key); ok {
		switch b.kind {
		case KindInstance:
			// Announced once during the eager pass, not per Get.
			return b.obj, nil
		case KindClass:
			return s.resolve(b.to, t.with(b.from))
		case KindSingleton:
			return s.getSingleton(b, t)
		case KindProvider:
			v, err := b.provider(key)
			if err != nil {
				return nil, &ConstructionError{Key: key, Err: err}
			}
			if err := s.hub.notify(key, v); err != nil {
				return nil, err
			}
			return v, nil
		}
	}

	return s.build(key, t.with(key))
}

// getSingleton fetches the binding's target from the store, building it on
// first use. Listeners are notified only by the call that performed the
// build; a listener failure is returned but leaves the cached instance in
// place, so the exactly-once construction guarantee holds across retries.
func (s *Session) getSingleton(b Binding, t *trail) (any, error) {
	buildTrail := t.with(b.from, b.to)
	v, built, err := s.store.GetOrBuild(b.to, func() (any, error) {
		return s.construct(b.to, buildTrail)
	})
	if err != nil {
		return nil, err
	}
	if built {
		if err := s.hub.notify(b.to, v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// build constructs key through the schema port and announces the result.
func (s *Session) build(key Key, t *trail) (any, error) {
	v, err := s.construct(key, t)
	if err != nil {
		return nil, err
	}
	if err := s.hub.notify(key, v); err != nil {
		return nil, err
	}
	return v, nil
}

// construct asks the schema port for key's constructor parameters, resolves
// each one recursively in declared order, and instantiates the type. A
// parameter that is unbound and not constructible falls back to its declared
// default when the port reports one; cycle and construction failures always
// propagate.
func (s *Session) construct(key Key, t *trail) (any, error) {
	params, ok := s.schema.Describe(key)
	if !ok {
		return nil, &NotBoundError{Key: key}
	}
	args := make([]any, len(params))
	for i, p := range params {
		v, err := s.resolve(p.Key, t)
		if err != nil {
			var nb *NotBoundError
			if p.HasDefault && errors.As(err, &nb) {
				args[i] = p.Default
				continue
			}
			return nil, err
		}
		args[i] = v
	}
	v, err := s.schema.Construct(key, args)
	if err != nil {
		return nil, &ConstructionError{Key: key, Err: err}
	}
	return v, nil
}

// ── Resolution context ────────────────────────────────────────────────────────

// trail is the set of keys on the active resolution chain. Each top-level
// Get owns its own trail, so concurrent resolutions never observe each
// other's in-progress set. Extension copies rather than mutates: sibling
// parameter branches must not see keys from a completed branch.
type trail struct {
	chain []Key
	seen  map[Key]struct{}
}

func newTrail() *trail {
	return &trail{seen: make(map[Key]struct{})}
}

func (t *trail) has(k Key) bool {
	_, ok := t.seen[k]
	return ok
}

// with returns a copy of the trail extended by keys, skipping any already
// present.
func (t *trail) with(keys ...Key) *trail {
	nt := &trail{
		chain: make([]Key, len(t.chain), len(t.chain)+len(keys)),
		seen:  make(map[Key]struct{}, len(t.seen)+len(keys)),
	}
	copy(nt.chain, t.chain)
	for k := range t.seen {
		nt.seen[k] = struct{}{}
	}
	for _, k := range keys {
		if _, ok := nt.seen[k]; ok {
			continue
		}
		nt.chain = append(nt.chain, k)
		nt.seen[k] = struct{}{}
	}
	return nt
}

// chainWith returns the visited chain closed by k, for cycle diagnostics.
func (t *trail) chainWith(k Key) []Key {
	out := make([]Key, len(t.chain), len(t.chain)+1)
	copy(out, t.chain)
	return append(out, k)
}

// ── Introspection ─────────────────────────────────────────────────────────────

// BindingInfo is the read-only description of one registry entry, consumed
// by the management surface.
type BindingInfo struct {
	Kind  string `json:"kind"`
	From  string `json:"from"`
	To    string `json:"to,omitempty"`
	Eager bool   `json:"eager,omitempty"`
}

// Bindings describes the registry in registration order, followed by
// instances added through Register (sorted by key for stable output).
func (s *Session) Bindings() []BindingInfo {
	all := s.registry.all()
	out := make([]BindingInfo, 0, len(all))
	for _, b := range all {
		info := BindingInfo{Kind: b.kind.String(), From: b.from.String()}
		switch b.kind {
		case KindClass, KindSingleton:
			info.To = b.to.String()
			info.Eager = b.eager
		}
		out = append(out, info)
	}

	s.mu.RLock()
	registered := make([]Key, 0, len(s.overlay))
	for k := range s.overlay {
		registered = append(registered, k)
	}
	s.mu.RUnlock()
	sort.Slice(registered, func(i, j int) bool {
		return registered[i].String() < registered[j].String()
	})
	for _, k := range registered {
		out = append(out, BindingInfo{Kind: "registered", From: k.String()})
	}
	return out
}

// CachedKeys returns the keys of all singletons built so far, sorted for
// stable output.
func (s *Session) CachedKeys() []Key {
	keys := s.store.Keys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

// ── Generic helpers ───────────────────────────────────────────────────────────

// Resolve resolves T from the session and type-asserts the result.
//
//	repo, err := inject.Resolve[*UserRepository](session)
func Resolve[T any](s *Session) (T, error) {
	var zero T
	v, err := s.Get(KeyOf[T]())
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("inject: %s resolved to %T, which is not assignable to the requested type", KeyOf[T](), v)
	}
	return typed, nil
}

// MustResolve is Resolve but panics on failure. Reserve it for wiring code
// that runs at startup.
func MustResolve[T any](s *Session) T {
	v, err := Resolve[T](s)
	if err != nil {
		panic(err)
	}
	return v
}
