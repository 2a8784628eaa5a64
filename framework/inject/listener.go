package inject

import "log/slog"

// ── Listeners ─────────────────────────────────────────────────────────────────

// Listener observes every successful object construction performed by a
// session: built instances, provider results, eagerly registered instance
// bindings and values added through Session.Register. Singleton cache hits
// do not re-notify.
//
// Listeners run synchronously, in registration order, after construction but
// before the instance is returned to the caller that triggered it. They must
// be safe for concurrent use when the session is shared across goroutines.
type Listener interface {
	Constructed(key Key, instance any) error
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(key Key, instance any) error

func (f ListenerFunc) Constructed(key Key, instance any) error { return f(key, instance) }

// hub fans a construction event out to the registered listeners.
type hub struct {
	listeners []Listener
	logger    *slog.Logger
}

// notify invokes every listener in order. The first failure is logged and
// returned wrapped in a ListenerError; later listeners are not invoked.
func (h *hub) notify(key Key, instance any) error {
	for i, l := range h.listeners {
		if err := l.Constructed(key, instance); err != nil {
			h.logger.Error("listener failed",
				"listener", i,
				"type", key.String(),
				"error", err,
			)
			return &ListenerError{Key: key, Listener: i, Err: err}
		}
	}
	return nil
}
