// Package schema implements the inject.Schema introspection port with
// reflection. Go has no runtime constructor reflection, so a struct's
// exported fields stand in for its constructor parameters: Describe reports
// them in declaration order and Construct assigns the resolved arguments
// field by field.
package schema

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/km-arc/go-inject/framework/inject"
)

// Reflector is the reflection-backed schema port.
//
// Constructible types are structs and pointers to structs. Fields tagged
// `inject:"-"` are skipped; a `default:"..."` tag declares a fallback value
// for string, bool, integer, unsigned and float fields, used by the session
// when the field's type is unbound. Malformed default tags are treated as
// absent.
//
//	type Server struct {
//	    Store *Store
//	    Addr  string `default:":8000"`
//	    calls int            // unexported: ignored
//	    Meta  any `inject:"-"` // opted out: left zero
//	}
type Reflector struct{}

// New returns a Reflector.
func New() *Reflector { return &Reflector{} }

// Describe implements inject.Schema.
func (r *Reflector) Describe(key inject.Key) ([]inject.Param, bool) {
	st, _, ok := structType(key)
	if !ok {
		return nil, false
	}
	params := make([]inject.Param, 0, st.NumField())
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !injectable(f) {
			continue
		}
		p := inject.Param{
			Name: f.Name,
			Key:  inject.KeyOfType(f.Type),
		}
		if raw, ok := f.Tag.Lookup("default"); ok {
			if v, err := parseDefault(f.Type, raw); err == nil {
				p.Default = v
				p.HasDefault = true
			}
		}
		params = append(params, p)
	}
	return params, true
}

// Construct implements inject.Schema. args must match Describe's parameter
// list positionally; a nil argument leaves the field at its zero value.
func (r *Reflector) Construct(key inject.Key, args []any) (any, error) {
	st, ptr, ok := structType(key)
	if !ok {
		return nil, fmt.Errorf("schema: %s is not constructible", key)
	}
	v := reflect.New(st)

	idx := 0
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !injectable(f) {
			continue
		}
		if idx >= len(args) {
			return nil, fmt.Errorf("schema: %s: got %d arguments, need %d", key, len(args), idx+1)
		}
		arg := args[idx]
		idx++
		if arg == nil {
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(f.Type) {
			if !av.Type().ConvertibleTo(f.Type) {
				return nil, fmt.Errorf("schema: %s: cannot assign %s to field %s (%s)", key, av.Type(), f.Name, f.Type)
			}
			av = av.Convert(f.Type)
		}
		v.Elem().Field(i).Set(av)
	}
	if idx != len(args) {
		return nil, fmt.Errorf("schema: %s: got %d arguments, need %d", key, len(args), idx)
	}

	if ptr {
		return v.Interface(), nil
	}
	return v.Elem().Interface(), nil
}

// structType unwraps key into its struct type, reporting whether the key
// itself was a pointer.
func structType(key inject.Key) (st reflect.Type, ptr bool, ok bool) {
	t := key.Type()
	if t == nil {
		return nil, false, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
		ptr = true
	}
	if t.Kind() != reflect.Struct {
		return nil, false, false
	}
	return t, ptr, true
}

func injectable(f reflect.StructField) bool {
	return f.IsExported() && f.Tag.Get("inject") != "-"
}

// parseDefault converts a `default` tag into a value of the field's exact
// type.
func parseDefault(t reflect.Type, raw string) (any, error) {
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		if v.OverflowInt(n) {
			return nil, fmt.Errorf("schema: default %q overflows %s", raw, t)
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		if v.OverflowUint(n) {
			return nil, fmt.Errorf("schema: default %q overflows %s", raw, t)
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		v.SetFloat(f)
	default:
		return nil, fmt.Errorf("schema: no default support for %s", t.Kind())
	}
	return v.Interface(), nil
}
