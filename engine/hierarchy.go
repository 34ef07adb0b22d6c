package engine

import (
	"sync"

	"github.com/lixenwraith/scenesink/component"
	"github.com/lixenwraith/scenesink/core"
)

// Hierarchy is a specialized store for NodeComponent that maintains a
// reverse children index for fast descendant traversal. The index is
// always consistent with the component data: both are updated under one
// lock.
//
// This is the subsystem's entity graph. Traversal order over disjoint
// nodes is unspecified; subtree rewrites commute so consumers must not
// depend on it.
type Hierarchy struct {
	*Store[component.NodeComponent]
	children   map[core.Entity][]core.Entity
	childMutex sync.RWMutex
}

// NewHierarchy creates a hierarchy store with an empty children index
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		Store:    NewStore[component.NodeComponent](),
		children: make(map[core.Entity][]core.Entity),
	}
}

// Set overrides the base Store.Set to keep the children index consistent
func (h *Hierarchy) Set(e core.Entity, node component.NodeComponent) {
	h.childMutex.Lock()
	defer h.childMutex.Unlock()

	// Unlink from previous parent on reparent
	old, existed := h.Store.Get(e)
	if existed && old.Parent != node.Parent {
		h.unlink(old.Parent, e)
	}
	if !existed || old.Parent != node.Parent {
		h.children[node.Parent] = append(h.children[node.Parent], e)
	}
	h.Store.Set(e, node)
}

// Remove overrides the base Store.Remove to unlink from the parent index
// Children of e keep their parent pointer; a destroyed subtree root
// simply stops being reachable from its own parent
func (h *Hierarchy) Remove(e core.Entity) {
	h.childMutex.Lock()
	defer h.childMutex.Unlock()

	if node, exists := h.Store.Get(e); exists {
		h.unlink(node.Parent, e)
	}
	h.Store.Remove(e)
}

// Clear overrides the base Store.Clear to reset the children index
func (h *Hierarchy) Clear() {
	h.childMutex.Lock()
	defer h.childMutex.Unlock()
	h.children = make(map[core.Entity][]core.Entity)
	h.Store.Clear()
}

// Children returns a copy of the direct children of e
func (h *Hierarchy) Children(e core.Entity) []core.Entity {
	h.childMutex.RLock()
	defer h.childMutex.RUnlock()

	kids := h.children[e]
	if len(kids) == 0 {
		return nil
	}
	result := make([]core.Entity, len(kids))
	copy(result, kids)
	return result
}

// Descendants returns every entity below root, breadth-first
// The root itself is not included. The result is a snapshot; structural
// changes after the call are not reflected
func (h *Hierarchy) Descendants(root core.Entity) []core.Entity {
	h.childMutex.RLock()
	defer h.childMutex.RUnlock()

	var result []core.Entity
	queue := append([]core.Entity(nil), h.children[root]...)
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		result = append(result, e)
		queue = append(queue, h.children[e]...)
	}
	return result
}

// unlink removes child from parent's entry; caller holds childMutex
func (h *Hierarchy) unlink(parent, child core.Entity) {
	kids := h.children[parent]
	for i, k := range kids {
		if k == child {
			kids[i] = kids[len(kids)-1]
			h.children[parent] = kids[:len(kids)-1]
			break
		}
	}
	if len(h.children[parent]) == 0 {
		delete(h.children, parent)
	}
}
