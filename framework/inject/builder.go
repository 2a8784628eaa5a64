package inject

// ── Fluent binding builder ────────────────────────────────────────────────────

// Module groups related bindings so they can be installed together,
// mirroring how an application splits its wiring across service areas.
//
//	type CacheModule struct{}
//
//	func (CacheModule) Configure(b *inject.Binder) {
//	    b.Bind(inject.KeyOf[Cache]()).To(inject.KeyOf[*RedisCache]()).AsSingleton()
//	}
type Module interface {
	Configure(b *Binder)
}

// Binder accumulates bindings in registration order and is handed to
// NewSession once configuration is complete.
type Binder struct {
	bindings []Binding
}

// NewBinder creates an empty Binder.
func NewBinder() *Binder {
	return &Binder{}
}

// Bind starts a fluent chain for the given key.
//
//	b.Bind(inject.KeyOf[Mailer]()).To(inject.KeyOf[*SMTPMailer]())
//	b.Bind(inject.KeyOf[*Config]()).ToInstance(cfg)
//	b.Bind(inject.KeyOf[*Pool]()).AsEagerSingleton()
//	b.Bind(inject.KeyOf[Banner]()).ToProvider(bannerProvider)
//
// A chain with no terminal call registers nothing.
func (b *Binder) Bind(from Key) *BindingBuilder {
	return &BindingBuilder{binder: b, from: from, slot: -1}
}

// Add appends fully constructed bindings, preserving order.
func (b *Binder) Add(bindings ...Binding) {
	b.bindings = append(b.bindings, bindings...)
}

// Install runs each module's Configure against this binder.
func (b *Binder) Install(modules ...Module) {
	for _, m := range modules {
		m.Configure(b)
	}
}

// Bindings returns the accumulated bindings in registration order.
func (b *Binder) Bindings() []Binding {
	out := make([]Binding, len(b.bindings))
	copy(out, b.bindings)
	return out
}

// BindingBuilder is the fluent surface returned by Binder.Bind. Each
// terminal call materializes a binding in the binder; later calls on the
// same chain refine it in place, so
// Bind(T).To(U).AsSingleton() registers a single singleton binding.
type BindingBuilder struct {
	binder *Binder
	from   Key
	to     Key
	slot   int // index into binder.bindings, -1 until placed
}

func (bb *BindingBuilder) place(binding Binding) *BindingBuilder {
	if bb.slot < 0 {
		bb.binder.bindings = append(bb.binder.bindings, binding)
		bb.slot = len(bb.binder.bindings) - 1
		return bb
	}
	bb.binder.bindings[bb.slot] = binding
	return bb
}

// To redirects the bound key to another key.
func (bb *BindingBuilder) To(to Key) *BindingBuilder {
	bb.to = to
	return bb.place(NewClassBinding(bb.from, to))
}

// ToInstance binds the key to a pre-built value.
func (bb *BindingBuilder) ToInstance(v any) *BindingBuilder {
	return bb.place(NewInstanceBinding(bb.from, v))
}

// ToProvider binds the key to a provider function.
func (bb *BindingBuilder) ToProvider(fn Provider) *BindingBuilder {
	return bb.place(NewProviderBinding(bb.from, fn))
}

// AsSingleton caches the built instance for the life of the session.
// Without a preceding To the key is bound to itself.
func (bb *BindingBuilder) AsSingleton() *BindingBuilder {
	return bb.place(NewSingletonBinding(bb.from, bb.target(), false))
}

// AsEagerSingleton is AsSingleton with construction forced during session
// creation.
func (bb *BindingBuilder) AsEagerSingleton() *BindingBuilder {
	return bb.place(NewSingletonBinding(bb.from, bb.target(), true))
}

func (bb *BindingBuilder) target() Key {
	if bb.to.IsValid() {
		return bb.to
	}
	return bb.from
}
