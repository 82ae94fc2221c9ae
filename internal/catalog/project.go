package catalog

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Float returns the colour as 0–1 floats (shader and HSL friendly).
func (c RGB) Float() [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "#rrggbb", "#rgb" or "0xrrggbb".
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = "#" + s[2:]
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Project is one portfolio entry shown behind a portal. A Project is never modified once a
// Catalog holds it.
type Project struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	URL         string
	Position    mgl32.Vec3
	Color       RGB
}

func (p Project) clone() Project {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}
