package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"portfolio/internal/catalog"
	"portfolio/internal/input"
	"portfolio/internal/logger"
	"portfolio/internal/world"
)

// DefaultHold is how long a terminal key press counts as held. Terminals report presses
// and auto-repeats but never releases, so a key is released once no repeat arrives
// within this window.
const DefaultHold = 250 * time.Millisecond

const (
	statusRows = 2
	panelWidth = 42
)

var (
	styleBase   = tcell.StyleDefault
	styleFrame  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x33, 0x55, 0x77))
	styleAvatar = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x7e, 0xf6, 0xff)).Bold(true)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(0x7e, 0xf6, 0xff))
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePanel  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x10, 0x10, 0x24))
)

// Screen is the terminal rendering and display surface: a top-down map of the play area
// with the project panel drawn over its right side.
type Screen struct {
	scr      tcell.Screen
	cat      *catalog.Catalog
	bindings *input.Bindings
	log      *logger.Logger
	bounds   float32

	Hold     time.Duration
	lastDown map[world.Action]time.Time

	current *catalog.Project
	hint    string
	onClose func()
}

// New wraps an initialised tcell screen.
func New(scr tcell.Screen, cat *catalog.Catalog, bindings *input.Bindings, bounds float32, log *logger.Logger) *Screen {
	return &Screen{
		scr:      scr,
		cat:      cat,
		bindings: bindings,
		log:      log,
		bounds:   bounds,
		Hold:     DefaultHold,
		lastDown: make(map[world.Action]time.Time),
	}
}

func (s *Screen) ShowProject(p catalog.Project) {
	s.current = &p
}

func (s *Screen) HideProject() {
	s.current = nil
	if s.onClose != nil {
		s.onClose()
	}
}

func (s *Screen) UpdateInteractionHint(msg string) {
	s.hint = msg
}

func (s *Screen) SetCloseHandler(fn func()) {
	s.onClose = fn
}

// keyName maps a terminal key event onto a binding key name.
func keyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up", true
	case tcell.KeyDown:
		return "down", true
	case tcell.KeyLeft:
		return "left", true
	case tcell.KeyRight:
		return "right", true
	case tcell.KeyEscape:
		return "escape", true
	case tcell.KeyEnter:
		return "enter", true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace", true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "space", true
		}
		return strings.ToLower(string(r)), true
	}
	return "", false
}

// HandleEvent applies one terminal event to in. It reports true when the user asked to
// quit (Ctrl+C). Unbound keys are ignored.
func (s *Screen) HandleEvent(ev tcell.Event, in *world.InputState, now time.Time) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		name, ok := keyName(ev)
		if !ok {
			return false
		}
		action, ok := s.bindings.Action(name)
		if !ok {
			return false
		}
		in.Press(action)
		s.lastDown[action] = now
	case *tcell.EventResize:
		s.scr.Sync()
		w, h := ev.Size()
		s.log.Infof("terminal resized to %dx%d", w, h)
	}
	return false
}

// Expire releases every action whose last press is older than Hold.
func (s *Screen) Expire(in *world.InputState, now time.Time) {
	for action, at := range s.lastDown {
		if now.Sub(at) >= s.Hold {
			in.Release(action)
			delete(s.lastDown, action)
		}
	}
}

// Render draws the map, status line, hint and panel.
func (s *Screen) Render(w *world.World) {
	s.scr.Clear()
	width, height := s.scr.Size()
	mapW, mapH := width, height-statusRows
	if mapW < 3 || mapH < 3 {
		s.scr.Show()
		return
	}

	s.drawFrame(mapW, mapH)
	for _, p := range w.Portals {
		s.drawPortal(p, mapW, mapH)
	}
	s.drawAvatar(w.Avatar, mapW, mapH)

	status := fmt.Sprintf(" %s  x=%.1f z=%.1f  move %s  open %s  close %s  quit ctrl+c",
		w.Mode(), w.Avatar.Position[0], w.Avatar.Position[2],
		s.keysFor(world.ActionForward, world.ActionTurnLeft, world.ActionBackward, world.ActionTurnRight),
		s.keysFor(world.ActionConfirm), s.keysFor(world.ActionCancel))
	drawText(s.scr, 0, height-2, width, styleDim, status)
	if s.hint != "" {
		drawText(s.scr, 1, height-1, width-1, styleHint, " "+s.hint+" ")
	}
	if s.current != nil {
		s.drawPanel(width, mapH)
	}
	s.scr.Show()
}

// cell maps world x/z onto map coordinates; +Z points down the screen.
func (s *Screen) cell(x, z float32, mapW, mapH int) (int, int) {
	fx := (x + s.bounds) / (2 * s.bounds)
	fz := (z + s.bounds) / (2 * s.bounds)
	cx := 1 + int(fx*float32(mapW-3)+0.5)
	cy := 1 + int(fz*float32(mapH-3)+0.5)
	return cx, cy
}

func (s *Screen) drawFrame(mapW, mapH int) {
	for x := 0; x < mapW; x++ {
		s.scr.SetContent(x, 0, '-', nil, styleFrame)
		s.scr.SetContent(x, mapH-1, '-', nil, styleFrame)
	}
	for y := 0; y < mapH; y++ {
		s.scr.SetContent(0, y, '|', nil, styleFrame)
		s.scr.SetContent(mapW-1, y, '|', nil, styleFrame)
	}
	for _, c := range [][2]int{{0, 0}, {mapW - 1, 0}, {0, mapH - 1}, {mapW - 1, mapH - 1}} {
		s.scr.SetContent(c[0], c[1], '+', nil, styleFrame)
	}
}

func (s *Screen) drawPortal(p *world.Portal, mapW, mapH int) {
	x, y := s.cell(p.Position[0], p.Position[2], mapW, mapH)
	style := styleBase
	title := p.ProjectID
	if proj, ok := s.cat.FindByID(p.ProjectID); ok {
		style = style.Foreground(rgb(proj.Color))
		title = proj.Title
	}
	glyph := 'O'
	if p.Scale > 1 {
		glyph = '@'
		style = style.Bold(true)
	}
	s.scr.SetContent(x, y, glyph, nil, style)
	drawText(s.scr, x+2, y, mapW-1, style, title)
}

func (s *Screen) drawAvatar(a world.Avatar, mapW, mapH int) {
	x, y := s.cell(a.Position[0], a.Position[2], mapW, mapH)
	s.scr.SetContent(x, y, heading(a), nil, styleAvatar)
}

// heading picks the arrow closest to the avatar's forward direction on screen.
func heading(a world.Avatar) rune {
	f := a.Forward()
	dx, dy := f[0], f[2]
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return '>'
		}
		return '<'
	}
	if dy > 0 {
		return 'v'
	}
	return '^'
}

type panelLine struct {
	text  string
	style tcell.Style
}

func rgb(c catalog.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *Screen) drawPanel(width, mapH int) {
	p := s.current
	pw := panelWidth
	if pw > width-2 {
		pw = width - 2
	}
	x0 := width - pw - 1
	inner := pw - 4

	lines := []panelLine{
		{p.Title, stylePanel.Foreground(rgb(p.Color)).Bold(true)},
		{"", stylePanel},
	}
	for _, l := range wrap(p.Description, inner) {
		lines = append(lines, panelLine{l, stylePanel})
	}
	tags := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		tags[i] = "[" + t + "]"
	}
	lines = append(lines,
		panelLine{"", stylePanel},
		panelLine{strings.Join(tags, " "), stylePanel.Foreground(tcell.ColorSilver)},
		panelLine{p.URL, stylePanel.Foreground(tcell.ColorSkyblue).Underline(true)},
		panelLine{"", stylePanel},
		panelLine{s.keysFor(world.ActionCancel) + " to close", stylePanel.Foreground(tcell.ColorGray)},
	)

	ph := len(lines) + 2
	if ph > mapH-2 {
		ph = mapH - 2
	}
	for y := 1; y < 1+ph; y++ {
		for x := x0; x < x0+pw; x++ {
			s.scr.SetContent(x, y, ' ', nil, stylePanel)
		}
	}
	for i := 0; i < len(lines) && i < ph-2; i++ {
		drawText(s.scr, x0+2, 2+i, x0+2+inner, lines[i].style, lines[i].text)
	}
}

func (s *Screen) keysFor(actions ...world.Action) string {
	var parts []string
	for _, a := range actions {
		short := ""
		for _, k := range s.bindings.KeysFor(a) {
			if short == "" || len(k) < len(short) {
				short = k
			}
		}
		if short != "" {
			parts = append(parts, short)
		}
	}
	return strings.Join(parts, "/")
}

// drawText writes s from (x, y), clipped before column maxX.
func drawText(scr tcell.Screen, x, y, maxX int, style tcell.Style, s string) {
	for _, r := range s {
		if x >= maxX {
			return
		}
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
