package app

import (
	"log/slog"

	"github.com/km-arc/go-inject/framework/config"
	"github.com/km-arc/go-inject/framework/inject"
)

// ── CoreModule ────────────────────────────────────────────────────────────────

// CoreModule binds the pre-built application infrastructure: configuration
// and logger are registered as instances so every service can depend on
// them.
type CoreModule struct {
	Config *config.Config
	Logger *slog.Logger
}

func (m *CoreModule) Configure(b *inject.Binder) {
	b.Bind(inject.KeyOf[*config.Config]()).ToInstance(m.Config)
	b.Bind(inject.KeyOf[*slog.Logger]()).ToInstance(m.Logger)
}

// ── ServiceModule ─────────────────────────────────────────────────────────────

// ServiceModule wires the demo services: the Store interface redirects to a
// MemoryStore built eagerly at session creation, and Banner comes from a
// provider.
type ServiceModule struct{}

func (ServiceModule) Configure(b *inject.Binder) {
	b.Bind(inject.KeyOf[Store]()).To(inject.KeyOf[*MemoryStore]())
	b.Bind(inject.KeyOf[*MemoryStore]()).AsEagerSingleton()
	b.Bind(inject.KeyOf[Banner]()).ToProvider(func(inject.Key) (any, error) {
		return Banner("go-inject demo"), nil
	})
}
