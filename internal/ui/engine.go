package ui

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio/internal/ui/css"
)

const lineGap = 4

//go:embed portfolio.css
var defaultCSS string

// Engine holds the stylesheet and nodes, and draws them with raylib in node order.
// Resolved styles are cached until the sheet or node list changes.
// Without a loaded font, raylib's default font is used.
type Engine struct {
	sheet        *css.Stylesheet
	nodes        []*Node
	cachedStyles []css.Style
	cacheValid   bool
	font         rl.Font
}

// New creates an engine with the built-in stylesheet and no nodes.
func New() *Engine {
	sheet, err := css.Parse(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: embedded stylesheet: %v", err))
	}
	return &Engine{sheet: sheet}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	sheet, err := css.Parse(string(data))
	if err != nil {
		return fmt.Errorf("ui: %s: %w", path, err)
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly.
func (e *Engine) SetStylesheet(sheet *css.Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF font for text rendering. Call after the window exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return fmt.Errorf("ui: load font %s: %w", path, os.ErrNotExist)
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

func (e *Engine) refresh() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = make([]css.Style, len(e.nodes))
	for i, n := range e.nodes {
		e.cachedStyles[i] = e.sheet.Resolve(n.Class, n.ID)
	}
	e.cacheValid = true
}

// Style returns the resolved style for n, which must have been added.
func (e *Engine) Style(n *Node) css.Style {
	e.refresh()
	for i, m := range e.nodes {
		if m == n {
			return e.cachedStyles[i]
		}
	}
	return e.sheet.Resolve(n.Class, n.ID)
}

// MeasureText returns the pixel width of a single line at size.
func (e *Engine) MeasureText(text string, size int32) float32 {
	if e.font.Texture.ID != 0 {
		return rl.MeasureTextEx(e.font, text, float32(size), 1).X
	}
	return float32(rl.MeasureText(text, size))
}

// Wrap breaks text into lines no wider than width at size.
func (e *Engine) Wrap(text string, size int32, width float32) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		next := word
		if line != "" {
			next = line + " " + word
		}
		if line != "" && e.MeasureText(next, size) > width {
			lines = append(lines, line)
			next = word
		}
		line = next
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// TextHeight is the height of text with the given number of lines.
func TextHeight(lines int, size int32) float32 {
	if lines <= 0 {
		return 0
	}
	return float32(lines)*float32(size+lineGap) - lineGap
}

// HandleClick calls OnClick on the topmost visible node under p and reports whether one
// was hit.
func (e *Engine) HandleClick(p rl.Vector2) bool {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.OnClick != nil && n.Contains(p) {
			n.OnClick()
			return true
		}
	}
	return false
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func place(n *Node, style css.Style, screenW, screenH int32) {
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	n.Bounds.X = float32(style.Left)
	n.Bounds.Y = float32(style.Top)
	if style.LeftPct >= 0 {
		n.Bounds.X = float32((screenW - int32(n.Bounds.Width)) * style.LeftPct / 100)
	}
	if style.TopPct >= 0 {
		n.Bounds.Y = float32((screenH - int32(n.Bounds.Height)) * style.TopPct / 100)
	}
}

// Draw draws every visible node: background, border, then text.
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	e.refresh()
	for i, n := range e.nodes {
		if n.Hidden {
			continue
		}
		style := e.cachedStyles[i]
		if !n.Manual {
			place(n, style, screenW, screenH)
		}
		b := n.Bounds
		x, y, w, h := int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height)

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, toColor(style.Background))
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, toColor(style.Border))
		}
		if n.Text == "" {
			continue
		}
		tx, ty := x+style.Padding, y+style.Padding
		for _, line := range strings.Split(n.Text, "\n") {
			if e.font.Texture.ID != 0 {
				rl.DrawTextEx(e.font, line, rl.NewVector2(float32(tx), float32(ty)), float32(style.FontSize), 1, toColor(style.Color))
			} else {
				rl.DrawText(line, tx, ty, style.FontSize, toColor(style.Color))
			}
			ty += style.FontSize + lineGap
		}
	}
}
