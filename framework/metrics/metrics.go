// Package metrics provides an inject.Listener that counts object
// constructions per type key in Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/km-arc/go-inject/framework/inject"
)

// Listener increments a counter for every object a session constructs,
// labelled by the constructed type. Singletons count once per session by
// construction; cache hits are not observed.
type Listener struct {
	constructions *prometheus.CounterVec
}

// NewListener registers the construction counter against reg and returns
// the listener.
func NewListener(reg prometheus.Registerer) (*Listener, error) {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inject",
		Name:      "constructions_total",
		Help:      "Objects constructed by the session, by type.",
	}, []string{"type"})
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return &Listener{constructions: c}, nil
}

// Constructed implements inject.Listener.
func (l *Listener) Constructed(key inject.Key, _ any) error {
	l.constructions.WithLabelValues(key.String()).Inc()
	return nil
}
