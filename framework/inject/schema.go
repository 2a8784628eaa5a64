package inject

import "errors"

// ── Schema introspection port ─────────────────────────────────────────────────

// Param describes one constructor parameter of a constructible type.
type Param struct {
	// Name is the declared parameter name, for diagnostics only.
	Name string
	// Key is the parameter's type key, resolved recursively by the session.
	Key Key
	// Default is the declared fallback value, used when the parameter is
	// unbound and not constructible. Only meaningful when HasDefault is set.
	Default    any
	HasDefault bool
}

// Schema is the introspection port the session delegates to when no binding
// matches a requested key. Implementations report a type's constructor
// parameters and build instances from resolved arguments; the reference
// implementation lives in framework/schema.
type Schema interface {
	// Describe returns the constructor parameters of key's type in declared
	// order. The second result is false when the type has no usable
	// constructor, in which case the session fails with NotBoundError.
	Describe(key Key) ([]Param, bool)

	// Construct builds an instance of key's type from args, which carry the
	// resolved parameter values in the order reported by Describe.
	Construct(key Key, args []any) (any, error)
}

// noSchema is the default port of a session created without WithSchema:
// nothing is constructible, so every unbound request fails with
// NotBoundError.
type noSchema struct{}

func (noSchema) Describe(Key) ([]Param, bool) { return nil, false }

func (noSchema) Construct(Key, []any) (any, error) {
	return nil, errors.New("inject: no schema configured")
}
