package inject

import (
	"fmt"
	"strings"
)

// ── Error taxonomy ────────────────────────────────────────────────────────────

// CycleError is returned when resolution encounters a key that is already on
// the active resolution chain. Chain holds every key visited on the way into
// the cycle, in resolution order, ending with the key that closed it.
type CycleError struct {
	Chain []Key
}

func (e *CycleError) Error() string {
	names := make([]string, len(e.Chain))
	for i, k := range e.Chain {
		names[i] = k.String()
	}
	return "inject: cyclic dependency: " + strings.Join(names, " -> ")
}

// NotBoundError is returned when no binding matches the requested key and
// the schema port cannot construct its type.
type NotBoundError struct {
	Key Key
}

func (e *NotBoundError) Error() string {
	return fmt.Sprintf("inject: no binding for %s and type is not constructible", e.Key)
}

// ConstructionError wraps a failure raised while actually instantiating a
// type, either by the schema port or by a provider function.
type ConstructionError struct {
	Key Key
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("inject: constructing %s: %v", e.Key, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// ListenerError wraps a failure raised inside a listener. The object itself
// was constructed successfully; this signals a defect in the observation
// layer, not in the graph.
type ListenerError struct {
	Key      Key
	Listener int
	Err      error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("inject: listener %d failed for %s: %v", e.Listener, e.Key, e.Err)
}

func (e *ListenerError) Unwrap() error { return e.Err }
