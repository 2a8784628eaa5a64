package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-inject/framework/inject"
)

type widget struct{}
type gadget struct{}

func TestListener_CountsConstructionsByType(t *testing.T) {
	l, err := NewListener(prometheus.NewRegistry())
	require.NoError(t, err)

	require.NoError(t, l.Constructed(inject.KeyOf[*widget](), &widget{}))
	require.NoError(t, l.Constructed(inject.KeyOf[*widget](), &widget{}))
	require.NoError(t, l.Constructed(inject.KeyOf[*gadget](), &gadget{}))

	wk := inject.KeyOf[*widget]().String()
	gk := inject.KeyOf[*gadget]().String()
	assert.Equal(t, 2.0, testutil.ToFloat64(l.constructions.WithLabelValues(wk)))
	assert.Equal(t, 1.0, testutil.ToFloat64(l.constructions.WithLabelValues(gk)))
}

func TestNewListener_DuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewListener(reg)
	require.NoError(t, err)

	_, err = NewListener(reg)
	assert.Error(t, err)
}

func TestListener_ObservesSessionConstructions(t *testing.T) {
	l, err := NewListener(prometheus.NewRegistry())
	require.NoError(t, err)

	b := inject.NewBinder()
	b.Bind(inject.KeyOf[*widget]()).ToProvider(func(inject.Key) (any, error) {
		return &widget{}, nil
	})
	s, err := inject.NewSession(b.Bindings(), []inject.Listener{l})
	require.NoError(t, err)

	_, err = s.Get(inject.KeyOf[*widget]())
	require.NoError(t, err)

	wk := inject.KeyOf[*widget]().String()
	assert.Equal(t, 1.0, testutil.ToFloat64(l.constructions.WithLabelValues(wk)))
}
