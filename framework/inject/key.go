package inject

import "reflect"

// Key identifies a requested type throughout the registry, the singleton
// store and the resolution context. Keys are comparable values and can be
// used directly as map keys; two keys are equal exactly when they stand for
// the same Go type.
type Key struct {
	t reflect.Type
}

// KeyOf returns the key for the type parameter T.
//
//	repoKey := inject.KeyOf[*UserRepository]()
//	ifaceKey := inject.KeyOf[Mailer]()   // interface types work too
func KeyOf[T any]() Key {
	return Key{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// KeyFor returns the key for the dynamic type of v.
func KeyFor(v any) Key {
	return Key{t: reflect.TypeOf(v)}
}

// KeyOfType wraps a reflect.Type in a Key. Schema implementations use this
// to describe constructor parameters.
func KeyOfType(t reflect.Type) Key {
	return Key{t: t}
}

// Type returns the underlying reflect.Type, or nil for the zero Key.
func (k Key) Type() reflect.Type { return k.t }

// IsValid reports whether the key stands for a type.
func (k Key) IsValid() bool { return k.t != nil }

func (k Key) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}
