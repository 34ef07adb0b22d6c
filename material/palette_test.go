package material

import (
	"testing"
)

func TestPaletteInitializeOnce(t *testing.T) {
	p := NewPalette()

	if p.Initialized() {
		t.Fatalf("expected fresh palette uninitialized")
	}

	if err := p.Initialize(1); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	if p.Handle() != 1 {
		t.Errorf("expected handle 1, got %d", p.Handle())
	}

	if err := p.Initialize(2); err == nil {
		t.Errorf("expected error on repeat initialization")
	}
	if p.Handle() != 1 {
		t.Errorf("expected handle unchanged after failed re-init")
	}
}

func TestPaletteRejectsSentinel(t *testing.T) {
	p := NewPalette()
	if err := p.Initialize(HandleNone); err == nil {
		t.Errorf("expected sentinel handle rejected")
	}
}

func TestPaletteUninitializedReadPanics(t *testing.T) {
	p := NewPalette()

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic reading uninitialized palette")
		}
	}()
	p.Handle()
}

func TestPaletteTryHandle(t *testing.T) {
	p := NewPalette()

	if _, ok := p.TryHandle(); ok {
		t.Errorf("expected TryHandle false before init")
	}

	p.Initialize(3)
	h, ok := p.TryHandle()
	if !ok || h != 3 {
		t.Errorf("expected TryHandle (3, true), got (%d, %v)", h, ok)
	}
}
