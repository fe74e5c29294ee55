package backend

import (
	"testing"

	"github.com/gogpu/wavetrace"
)

// stubBackend is a minimal RasterBackend for registry tests.
type stubBackend struct {
	name string
}

func (s *stubBackend) Name() string { return s.name }
func (s *stubBackend) Init() error  { return nil }
func (s *stubBackend) Close()       {}
func (s *stubBackend) Rasterize(wavetrace.Params, []float32, []float32) error {
	return nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	Register("stub", func() RasterBackend { return &stubBackend{name: "stub"} })
	t.Cleanup(func() { Unregister("stub") })

	if !IsRegistered("stub") {
		t.Fatal("stub backend should be registered")
	}
	b := Get("stub")
	if b == nil {
		t.Fatal("Get(stub) = nil")
	}
	if b.Name() != "stub" {
		t.Errorf("Name() = %q, want stub", b.Name())
	}
}

func TestRegistry_Unregister(t *testing.T) {
	Register("gone", func() RasterBackend { return &stubBackend{name: "gone"} })
	Unregister("gone")

	if IsRegistered("gone") {
		t.Error("backend should be unregistered")
	}
	if Get("gone") != nil {
		t.Error("Get of unregistered backend should return nil")
	}
}

func TestRegistry_SoftwareAlwaysAvailable(t *testing.T) {
	if !IsRegistered(BackendSoftware) {
		t.Fatal("software backend must self-register on import")
	}

	found := false
	for _, name := range Available() {
		if name == BackendSoftware {
			found = true
		}
	}
	if !found {
		t.Error("Available() should list the software backend")
	}
}

func TestRegistry_Default(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() = nil with software backend registered")
	}
}

func TestInitDefault(t *testing.T) {
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault: %v", err)
	}
	defer b.Close()

	// Whatever was selected must be usable.
	p := wavetrace.Params{
		PlotRight: 2, Width: 2, Height: 4, Depth: 2,
		Alpha: 1, XScale: 1, YScale: 1,
	}
	out := make([]float32, 2*4)
	if err := b.Rasterize(p, []float32{0, 1}, out); err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
}

func TestSoftwareBackend(t *testing.T) {
	b := NewSoftwareBackend()

	// Uninitialized use is an error, not a crash.
	if err := b.Rasterize(wavetrace.Params{}, nil, nil); err != ErrNotInitialized {
		t.Errorf("Rasterize before Init = %v, want ErrNotInitialized", err)
	}

	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer b.Close()

	if b.Name() != BackendSoftware {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendSoftware)
	}
	if b.Renderer() == nil {
		t.Error("Renderer() = nil after Init")
	}

	p := wavetrace.Params{
		PlotRight: 1, Width: 1, Height: 8, Depth: 2,
		Alpha: 0.5, XScale: 1, YScale: 1,
	}
	out := make([]float32, 8)
	if err := b.Rasterize(p, []float32{0, 1}, out); err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if out[0] != 0.5 || out[1] != 0.5 {
		t.Errorf("rows 0..1 = %v, %v, want 0.5, 0.5", out[0], out[1])
	}

	b.Close()
	if b.Renderer() != nil {
		t.Error("Renderer() should be nil after Close")
	}
}
