package engine

import (
	"github.com/lixenwraith/scenesink/component"
	"github.com/lixenwraith/scenesink/core"
	"github.com/lixenwraith/scenesink/material"
)

// commandType represents the kind of deferred structural operation
type commandType int

const (
	// opReplaceSurface removes the generic surface reference and attaches
	// a shared surface reference in one step
	opReplaceSurface commandType = iota
	// opDestroy removes an entity from all stores
	opDestroy
)

// command is one pending structural operation
type command struct {
	op       commandType
	entity   core.Entity
	material material.Handle
}

// CommandBuffer collects structural mutations produced during traversal
// and applies them at a defined synchronization point. Event handlers run
// under the world update lock, so Apply commits the whole batch before
// any system can observe a half-rewritten subtree.
type CommandBuffer struct {
	commands []command
}

// NewCommandBuffer creates an empty command buffer
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{
		commands: make([]command, 0, 32),
	}
}

// ReplaceSurface queues swapping an entity's generic surface reference
// for the given shared material handle
func (cb *CommandBuffer) ReplaceSurface(e core.Entity, h material.Handle) {
	cb.commands = append(cb.commands, command{op: opReplaceSurface, entity: e, material: h})
}

// Destroy queues removing an entity from all stores
func (cb *CommandBuffer) Destroy(e core.Entity) {
	cb.commands = append(cb.commands, command{op: opDestroy, entity: e})
}

// Len returns the number of pending operations
func (cb *CommandBuffer) Len() int {
	return len(cb.commands)
}

// Apply executes all pending operations in order and clears the buffer
// Returns the number of surface replacements performed
func (cb *CommandBuffer) Apply(w *World) int {
	replaced := 0
	for _, c := range cb.commands {
		switch c.op {
		case opReplaceSurface:
			w.Components.Surface.Remove(c.entity)
			w.Components.Shared.Set(c.entity, component.SharedSurfaceComponent{Material: c.material})
			replaced++
		case opDestroy:
			w.DestroyEntity(c.entity)
		}
	}
	cb.commands = cb.commands[:0]
	return replaced
}
