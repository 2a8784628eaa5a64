package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/km-arc/go-inject/framework/config"
	"github.com/km-arc/go-inject/framework/inject"
	"github.com/km-arc/go-inject/framework/manage"
	"github.com/km-arc/go-inject/framework/metrics"
	"github.com/km-arc/go-inject/framework/schema"
)

// Application is the top-level kernel: it loads configuration, builds the
// inject session from the application modules, and serves the HTTP surface
// (demo routes, management endpoints, metrics).
type Application struct {
	Config  *config.Config
	Session *inject.Session
	Logger  *slog.Logger
}

// New bootstraps the application. The session's eager pass runs here, so
// every eager singleton exists before New returns.
func New(envFiles ...string) (*Application, error) {
	cfg, err := config.Load("config.yaml", envFiles...)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg.Log.Level)

	counter, err := metrics.NewListener(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}

	binder := inject.NewBinder()
	binder.Install(
		&CoreModule{Config: cfg, Logger: logger},
		ServiceModule{},
	)

	session, err := inject.NewSession(
		binder.Bindings(),
		[]inject.Listener{counter, logListener(logger)},
		inject.WithLogger(logger),
		inject.WithSchema(schema.New()),
	)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, Session: session, Logger: logger}, nil
}

// logListener reports every construction at debug level.
func logListener(l *slog.Logger) inject.Listener {
	return inject.ListenerFunc(func(key inject.Key, _ any) error {
		l.Debug("object constructed", "type", key.String())
		return nil
	})
}

// Router builds the HTTP surface.
func (a *Application) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/greet/{name}", func(w http.ResponseWriter, req *http.Request) {
		greeter, err := inject.Resolve[*Greeter](a.Session)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(greeter.Greet(chi.URLParam(req, "name")) + "\n"))
	})

	r.Mount("/manage", manage.Handler(a.Session))
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Run starts the HTTP server on the configured management port.
func (a *Application) Run() error {
	addr := ":" + a.Config.Manage.Port
	a.Logger.Info("listening",
		"app", a.Config.App.Name,
		"addr", addr,
		"env", a.Config.App.Env,
	)
	return http.ListenAndServe(addr, a.Router())
}
