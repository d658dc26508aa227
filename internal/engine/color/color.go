// Package color parses hex color strings into float colors for shader uniforms.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/hornview/pkg/math"
)

// ErrMalformedHex is returned for strings that are not #RRGGBB.
var ErrMalformedHex = errors.New("malformed hex color")

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float32
}

// Common colors.
var (
	White = RGB{1, 1, 1}
	Black = RGB{0, 0, 0}
)

// ParseHex parses "#RRGGBB" or "RRGGBB", case-insensitive.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrMalformedHex, s)
	}

	var ch [3]float32
	for i := range ch {
		// ParseUint accepts a leading sign; reject anything but hex digits.
		pair := hex[i*2 : i*2+2]
		if !isHexDigit(pair[0]) || !isHexDigit(pair[1]) {
			return RGB{}, fmt.Errorf("%w: %q", ErrMalformedHex, s)
		}
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrMalformedHex, s)
		}
		ch[i] = float32(v) / 255.0
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseHex is ParseHex for literals; it panics on malformed input.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Hex formats the color as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// Vec3 returns the color as a vector for vec3 uniforms.
func (c RGB) Vec3() math.Vec3 {
	return math.Vec3{X: c.R, Y: c.G, Z: c.B}
}

// RGBA returns the components with the given alpha.
func (c RGB) RGBA(alpha float32) [4]float32 {
	return [4]float32{c.R, c.G, c.B, alpha}
}

func to8(f float32) uint8 {
	f = math.Clamp(f, 0, 1)
	return uint8(f*255 + 0.5)
}
