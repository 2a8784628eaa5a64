package inject_test

import (
	"testing"

	"github.com/km-arc/go-inject/framework/inject"
)

type iface interface{ m() }
type impl struct{}

func (impl) m() {}

func TestBinder_To_RegistersClassBinding(t *testing.T) {
	b := inject.NewBinder()
	b.Bind(inject.KeyOf[iface]()).To(inject.KeyOf[*impl]())

	bs := b.Bindings()
	if len(bs) != 1 {
		t.Fatalf("got %d bindings, want 1", len(bs))
	}
	if bs[0].Kind() != inject.KindClass {
		t.Errorf("kind = %s, want class", bs[0].Kind())
	}
	if bs[0].From() != inject.KeyOf[iface]() || bs[0].To() != inject.KeyOf[*impl]() {
		t.Errorf("binding %s -> %s, want iface -> *impl", bs[0].From(), bs[0].To())
	}
}

func TestBinder_ToAsSingleton_RefinesInPlace(t *testing.T) {
	b := inject.NewBinder()
	b.Bind(inject.KeyOf[iface]()).To(inject.KeyOf[*impl]()).AsSingleton()

	bs := b.Bindings()
	if len(bs) != 1 {
		t.Fatalf("chained calls produced %d bindings, want 1", len(bs))
	}
	if bs[0].Kind() != inject.KindSingleton {
		t.Errorf("kind = %s, want singleton", bs[0].Kind())
	}
	if bs[0].To() != inject.KeyOf[*impl]() {
		t.Errorf("singleton target = %s, want *impl", bs[0].To())
	}
	if bs[0].Eager() {
		t.Error("AsSingleton should not be eager")
	}
}

func TestBinder_AsEagerSingleton_SelfTarget(t *testing.T) {
	b := inject.NewBinder()
	b.Bind(inject.KeyOf[*impl]()).AsEagerSingleton()

	bs := b.Bindings()
	if len(bs) != 1 {
		t.Fatalf("got %d bindings, want 1", len(bs))
	}
	if bs[0].To() != inject.KeyOf[*impl]() {
		t.Errorf("self singleton target = %s, want the bound key", bs[0].To())
	}
	if !bs[0].Eager() {
		t.Error("AsEagerSingleton should be eager")
	}
}

func TestBinder_ToInstanceAndProvider(t *testing.T) {
	v := &impl{}
	b := inject.NewBinder()
	b.Bind(inject.KeyOf[*impl]()).ToInstance(v)
	b.Bind(inject.KeyOf[iface]()).ToProvider(func(inject.Key) (any, error) { return v, nil })

	bs := b.Bindings()
	if len(bs) != 2 {
		t.Fatalf("got %d bindings, want 2", len(bs))
	}
	if bs[0].Kind() != inject.KindInstance || bs[0].Instance() != any(v) {
		t.Error("ToInstance did not capture the value")
	}
	if bs[1].Kind() != inject.KindProvider {
		t.Errorf("kind = %s, want provider", bs[1].Kind())
	}
}

func TestBinder_PreservesRegistrationOrder(t *testing.T) {
	b := inject.NewBinder()
	b.Bind(inject.KeyOf[*impl]()).ToInstance(&impl{})
	b.Bind(inject.KeyOf[iface]()).To(inject.KeyOf[*impl]())
	b.Add(inject.NewSingletonBinding(inject.KeyOf[*impl](), inject.KeyOf[*impl](), false))

	bs := b.Bindings()
	want := []inject.Kind{inject.KindInstance, inject.KindClass, inject.KindSingleton}
	if len(bs) != len(want) {
		t.Fatalf("got %d bindings, want %d", len(bs), len(want))
	}
	for i, k := range want {
		if bs[i].Kind() != k {
			t.Errorf("binding %d kind = %s, want %s", i, bs[i].Kind(), k)
		}
	}
}

type testModule struct{}

func (testModule) Configure(b *inject.Binder) {
	b.Bind(inject.KeyOf[iface]()).To(inject.KeyOf[*impl]())
}

func TestBinder_Install_RunsModules(t *testing.T) {
	b := inject.NewBinder()
	b.Install(testModule{}, testModule{})

	if got := len(b.Bindings()); got != 2 {
		t.Errorf("Install produced %d bindings, want 2", got)
	}
}

func TestBinder_IncompleteChain_RegistersNothing(t *testing.T) {
	b := inject.NewBinder()
	b.Bind(inject.KeyOf[iface]())

	if got := len(b.Bindings()); got != 0 {
		t.Errorf("unterminated chain produced %d bindings, want 0", got)
	}
}
