package css

import (
	"image/color"
	"strconv"
	"strings"

	"portfolio/internal/catalog"
)

// Style is a resolved set of drawing properties.
// LeftPct/TopPct are 0-100 of the free space; -1 means Left/Top are pixels.
type Style struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
}

// DefaultStyle is transparent with white 20px text and 4px padding.
func DefaultStyle() Style {
	return Style{
		Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		LeftPct:  -1,
		TopPct:   -1,
		Padding:  4,
		FontSize: 20,
	}
}

// ParseColor parses a hex colour with an optional alpha suffix: "#335577" or "#33557780".
// "transparent" is the zero colour.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "transparent" {
		return color.RGBA{}, true
	}
	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := catalog.ParseColor(s)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, true
}

// ParsePx parses "12" or "12px".
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in 0-100.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	num, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a Style from merged properties. Unparseable values are ignored.
func ResolveProps(props map[string]string) Style {
	out := DefaultStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}
