// Package stream is the scene streaming collaborator: it parses sub-scene
// manifests and commits their node subtrees into the world in batches
// across scheduler ticks, raising EventSceneReady exactly once per
// instance when the full subtree exists.
package stream

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/scenesink/parameter"
)

// NodeDef describes one node in a sub-scene manifest
// Parent refers to another node by name; empty means a direct child of
// the scene root. Surface marks nodes that carry a material reference.
type NodeDef struct {
	Name    string `toml:"name"`
	Parent  string `toml:"parent"`
	Surface bool   `toml:"surface"`
}

// Manifest is the on-disk sub-scene description
type Manifest struct {
	Name  string    `toml:"name"`
	Nodes []NodeDef `toml:"nodes"`
}

// Validate checks the structural rules the loader relies on: node names
// unique and non-empty, parents resolve to earlier-defined nodes (which
// also rules out cycles), node count capped
func (m *Manifest) Validate() error {
	if len(m.Nodes) == 0 {
		return fmt.Errorf("manifest %q has no nodes", m.Name)
	}
	if len(m.Nodes) > parameter.StreamMaxNodes {
		return fmt.Errorf("manifest %q exceeds %d nodes", m.Name, parameter.StreamMaxNodes)
	}

	seen := make(map[string]struct{}, len(m.Nodes))
	for i, n := range m.Nodes {
		if n.Name == "" {
			return fmt.Errorf("manifest %q: node %d has no name", m.Name, i)
		}
		if _, dup := seen[n.Name]; dup {
			return fmt.Errorf("manifest %q: duplicate node name %q", m.Name, n.Name)
		}
		if n.Parent != "" {
			if _, ok := seen[n.Parent]; !ok {
				return fmt.Errorf("manifest %q: node %q references unknown parent %q", m.Name, n.Name, n.Parent)
			}
		}
		seen[n.Name] = struct{}{}
	}
	return nil
}

// ParseManifest decodes and validates a TOML manifest
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest read: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}
