package material

import (
	"fmt"
	"sync"
)

// Palette is the shared registry holding the one base material handle
// all sink materials derive from
//
// Lifecycle: created empty, Initialize exactly once during host startup
// before any sink construction, read-only for the rest of the process.
// It is placed in the world's resource store rather than kept as a
// package global so the initialize-before-use ordering is visible at
// the host's wiring site.
type Palette struct {
	mu          sync.RWMutex
	handle      Handle
	initialized bool
}

// NewPalette creates an uninitialized palette registry
func NewPalette() *Palette {
	return &Palette{}
}

// Initialize records the base material handle
// Returns an error on repeat initialization; the palette identity is
// fixed for the process lifetime
func (p *Palette) Initialize(h Handle) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return fmt.Errorf("palette already initialized with handle %d", p.handle)
	}
	if h == HandleNone {
		return fmt.Errorf("palette handle must not be the sentinel")
	}
	p.handle = h
	p.initialized = true
	return nil
}

// Handle returns the base material handle
// Panics when read before Initialize: that is a startup ordering bug in
// the host application and is not locally recoverable
func (p *Palette) Handle() Handle {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.initialized {
		panic("palette registry read before Initialize")
	}
	return p.handle
}

// TryHandle is the non-panicking probe for collaborators that may run
// before startup completes (file watcher, diagnostics)
func (p *Palette) TryHandle() (Handle, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.handle, p.initialized
}

// Initialized reports whether Initialize has run
func (p *Palette) Initialized() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.initialized
}
