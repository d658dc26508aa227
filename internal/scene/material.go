package scene

import (
	"fmt"

	"github.com/Faultbox/hornview/internal/config"
	"github.com/Faultbox/hornview/internal/engine/color"
)

// MaterialFromConfig parses the configured hex colors.
func MaterialFromConfig(m config.MaterialConfig) (Material, error) {
	var out Material
	fields := []struct {
		name string
		hex  string
		dst  *color.RGB
	}{
		{"surface", m.Surface, &out.Surface},
		{"diffuse", m.Diffuse, &out.Diffuse},
		{"ambient", m.Ambient, &out.Ambient},
		{"specular", m.Specular, &out.Specular},
		{"light", m.Light, &out.Light},
		{"marker", m.Marker, &out.Marker},
		{"background", m.Background, &out.Background},
	}
	for _, f := range fields {
		c, err := color.ParseHex(f.hex)
		if err != nil {
			return Material{}, fmt.Errorf("material %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return out, nil
}
