// Package inject provides a declarative object-graph construction engine:
// bindings describe how to satisfy a request for a type, and a Session
// resolves, on demand, a fully wired graph of collaborating objects.
//
// # Session Lifecycle
//
//  1. Declare bindings: b := inject.NewBinder(); b.Bind(...)...
//  2. Create the session: s, err := inject.NewSession(b.Bindings(), listeners)
//     — eager singletons are built and instance bindings announced here,
//     before NewSession returns.
//  3. Resolve: v, err := inject.Resolve[*Service](s)
//
// # Bindings
//
//	// Pre-built value
//	b.Bind(inject.KeyOf[*Config]()).ToInstance(cfg)
//
//	// Redirect an interface to its implementation
//	b.Bind(inject.KeyOf[Mailer]()).To(inject.KeyOf[*SMTPMailer]())
//
//	// Built at most once per session, cached thereafter
//	b.Bind(inject.KeyOf[*Pool]()).AsSingleton()
//
//	// Forced into existence during session creation
//	b.Bind(inject.KeyOf[*Pool]()).AsEagerSingleton()
//
//	// Caller-supplied factory
//	b.Bind(inject.KeyOf[Banner]()).ToProvider(func(inject.Key) (any, error) {
//	    return Banner("hello"), nil
//	})
//
// When several bindings share a from key, the first registration wins.
//
// # Unbound types
//
// A request with no matching binding is delegated to the Schema port, which
// reports the type's constructor parameters; the session resolves each
// parameter recursively and constructs the instance bottom-up. The
// reflection-backed port in framework/schema treats a struct's exported
// fields as its constructor parameters. Types the port cannot describe fail
// with NotBoundError — in particular, interface types always need an
// explicit class or provider binding.
//
// # Cycles
//
// Each top-level Get tracks the keys on its own resolution chain. Asking
// for a key that is already in progress fails immediately with a CycleError
// carrying the full chain; no partial object is returned.
//
// # Listeners
//
// Listeners observe every successful construction in registration order,
// synchronously, before the instance is returned. A singleton notifies once
// when built; cache hits stay silent. Listener failures are logged, wrapped
// in ListenerError and returned to the caller — the constructed object is
// not discarded.
//
// # Concurrency
//
// A session is safe for concurrent Get calls. The binding registry is
// immutable after creation; the singleton store serializes construction per
// key while letting different keys build in parallel; resolution contexts
// are per-call and never shared.
package inject
