package material

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTOMLValid(t *testing.T) {
	data := `
name = "ocean"
base = "#3366cc"
emissive = "#ffcc00"
roughness = 0.4
metallic = 0.1
`
	m, err := ParseTOML([]byte(data))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if m.Name != "ocean" {
		t.Errorf("expected name ocean, got %q", m.Name)
	}
	if m.Roughness != 0.4 || m.Metallic != 0.1 {
		t.Errorf("unexpected scalar fields: %+v", m)
	}
	r, g, b := m.Base.RGB255()
	if r != 0x33 || g != 0x66 || b != 0xcc {
		t.Errorf("expected base #3366cc, got #%02x%02x%02x", r, g, b)
	}
}

func TestParseTOMLOmittedColors(t *testing.T) {
	m, err := ParseTOML([]byte(`name = "flat"`))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if m.Base.R != 0 || m.Base.G != 0 || m.Base.B != 0 {
		t.Errorf("expected omitted base to stay black, got %+v", m.Base)
	}
}

func TestParseTOMLBadHex(t *testing.T) {
	if _, err := ParseTOML([]byte(`base = "not-a-color"`)); err == nil {
		t.Errorf("expected error for malformed hex color")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.toml")
	if err := os.WriteFile(path, []byte(`name = "disk"`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if m.Name != "disk" {
		t.Errorf("expected name disk, got %q", m.Name)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
