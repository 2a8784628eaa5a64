package inject

// ── Binding model ─────────────────────────────────────────────────────────────

// Kind discriminates the binding strategies a session knows how to apply.
type Kind int

const (
	// KindInstance satisfies the key with a pre-built value.
	KindInstance Kind = iota + 1
	// KindClass redirects resolution of the key to another key.
	KindClass
	// KindSingleton builds the target at most once per session and caches it.
	KindSingleton
	// KindProvider delegates to a caller-supplied function.
	KindProvider
)

func (k Kind) String() string {
	switch k {
	case KindInstance:
		return "instance"
	case KindClass:
		return "class"
	case KindSingleton:
		return "singleton"
	case KindProvider:
		return "provider"
	}
	return "unknown"
}

// Provider produces an instance for the requested key, bypassing
// constructor-based resolution.
type Provider func(key Key) (any, error)

// Binding is the immutable rule describing how to satisfy a request for its
// From key. Values are created through the constructors below or the fluent
// Binder and carry no behaviour of their own; the session pattern-matches on
// Kind during resolution.
type Binding struct {
	kind     Kind
	from     Key
	to       Key
	obj      any
	provider Provider
	eager    bool
}

// NewInstanceBinding binds from to the pre-built value obj.
func NewInstanceBinding(from Key, obj any) Binding {
	return Binding{kind: KindInstance, from: from, obj: obj}
}

// NewClassBinding redirects requests for from to to.
func NewClassBinding(from, to Key) Binding {
	return Binding{kind: KindClass, from: from, to: to}
}

// NewSingletonBinding satisfies from by building to at most once per
// session. When eager is true the instance is forced during session creation.
func NewSingletonBinding(from, to Key, eager bool) Binding {
	return Binding{kind: KindSingleton, from: from, to: to, eager: eager}
}

// NewProviderBinding satisfies from by invoking provider.
func NewProviderBinding(from Key, provider Provider) Binding {
	return Binding{kind: KindProvider, from: from, provider: provider}
}

func (b Binding) Kind() Kind    { return b.kind }
func (b Binding) From() Key     { return b.from }
func (b Binding) To() Key       { return b.to }
func (b Binding) Instance() any { return b.obj }
func (b Binding) Eager() bool   { return b.eager }

// ── Registry ──────────────────────────────────────────────────────────────────

// registry is the session's read-only view of its bindings. Duplicate From
// keys are legal; lookup returns the first registration, so the slice order
// is the registration order and must be preserved.
type registry struct {
	bindings []Binding
	first    map[Key]int
}

func newRegistry(bindings []Binding) *registry {
	r := &registry{
		bindings: make([]Binding, len(bindings)),
		first:    make(map[Key]int, len(bindings)),
	}
	copy(r.bindings, bindings)
	for i, b := range r.bindings {
		if _, ok := r.first[b.from]; !ok {
			r.first[b.from] = i
		}
	}
	return r
}

// lookup returns the first binding registered for key.
func (r *registry) lookup(key Key) (Binding, bool) {
	i, ok := r.first[key]
	if !ok {
		return Binding{}, false
	}
	return r.bindings[i], true
}

// all returns the bindings in registration order. Callers must not mutate
// the returned slice.
func (r *registry) all() []Binding { return r.bindings }
