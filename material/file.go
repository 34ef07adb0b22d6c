package material

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// materialFile is the on-disk palette entry, colors as hex strings
type materialFile struct {
	Name      string  `toml:"name"`
	Base      string  `toml:"base"`
	Emissive  string  `toml:"emissive"`
	Roughness float32 `toml:"roughness"`
	Metallic  float32 `toml:"metallic"`
}

// ParseTOML decodes a material description
// Colors use "#rrggbb" hex notation; omitted colors stay black
func ParseTOML(data []byte) (Material, error) {
	var f materialFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Material{}, fmt.Errorf("material decode: %w", err)
	}

	m := Material{
		Name:      f.Name,
		Roughness: f.Roughness,
		Metallic:  f.Metallic,
	}

	if f.Base != "" {
		c, err := colorful.Hex(f.Base)
		if err != nil {
			return Material{}, fmt.Errorf("material %q: base: %w", f.Name, err)
		}
		m.Base = c
	}
	if f.Emissive != "" {
		c, err := colorful.Hex(f.Emissive)
		if err != nil {
			return Material{}, fmt.Errorf("material %q: emissive: %w", f.Name, err)
		}
		m.Emissive = c
	}

	return m, nil
}

// LoadFile reads and parses a material file
func LoadFile(path string) (Material, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Material{}, fmt.Errorf("material read: %w", err)
	}
	m, err := ParseTOML(data)
	if err != nil {
		return Material{}, fmt.Errorf("material %s: %w", path, err)
	}
	return m, nil
}
