package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio/internal/catalog"
	"portfolio/internal/logger"
	"portfolio/internal/world"
)

const (
	sectionGap  = 16
	tagGap      = 8
	hintBottom  = 72
	buttonWidth = 150
)

// Panel is the raylib project panel and interaction hint. It implements world.Display and
// is drawn as a scene overlay.
type Panel struct {
	engine *Engine
	log    *logger.Logger

	backdrop, box, title, description *Node
	open, close, hint                 *Node
	tags                              []*Node

	current *catalog.Project
	onClose func()

	// OpenURL opens a project link; rl.OpenURL unless replaced.
	OpenURL func(url string)
}

// NewPanel creates the panel nodes on e, hidden until a project is shown.
func NewPanel(e *Engine, log *logger.Logger) *Panel {
	p := &Panel{
		engine:      e,
		log:         log,
		backdrop:    &Node{Type: "panel", Class: "backdrop", Manual: true, Hidden: true},
		box:         &Node{Type: "panel", Class: "panel", Manual: true, Hidden: true},
		title:       &Node{Type: "label", Class: "title", Manual: true, Hidden: true},
		description: &Node{Type: "label", Class: "description", Manual: true, Hidden: true},
		open:        &Node{Type: "button", Class: "button", ID: "open", Text: "Open link", Manual: true, Hidden: true},
		close:       &Node{Type: "button", Class: "button", ID: "close", Text: "Close", Manual: true, Hidden: true},
		hint:        &Node{Type: "label", Class: "hint", Manual: true, Hidden: true},
		OpenURL:     rl.OpenURL,
	}
	p.open.OnClick = p.openLink
	p.close.OnClick = p.HideProject
	p.rebuild()
	return p
}

func (p *Panel) rebuild() {
	nodes := []*Node{p.hint, p.backdrop, p.box, p.title, p.description}
	nodes = append(nodes, p.tags...)
	p.engine.SetNodes(append(nodes, p.open, p.close))
}

func (p *Panel) ShowProject(proj catalog.Project) {
	p.current = &proj
	p.title.Text = proj.Title
	p.tags = p.tags[:0]
	for _, t := range proj.Tags {
		p.tags = append(p.tags, &Node{Type: "label", Class: "tag", Text: t, Manual: true})
	}
	p.open.Hidden = proj.URL == ""
	for _, n := range []*Node{p.backdrop, p.box, p.title, p.description, p.close} {
		n.Hidden = false
	}
	p.rebuild()
}

// HideProject hides the panel and runs the close handler.
func (p *Panel) HideProject() {
	p.current = nil
	for _, n := range []*Node{p.backdrop, p.box, p.title, p.description, p.open, p.close} {
		n.Hidden = true
	}
	p.tags = p.tags[:0]
	p.rebuild()
	if p.onClose != nil {
		p.onClose()
	}
}

func (p *Panel) UpdateInteractionHint(msg string) {
	p.hint.Text = msg
	p.hint.Hidden = msg == ""
}

func (p *Panel) SetCloseHandler(fn func()) {
	p.onClose = fn
}

func (p *Panel) openLink() {
	if p.current == nil || p.current.URL == "" {
		return
	}
	p.log.Infof("opening %s", p.current.URL)
	p.OpenURL(p.current.URL)
}

// Update routes a left click to the panel's buttons. Call once per frame before the
// world ticks.
func (p *Panel) Update() {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p.engine.HandleClick(rl.GetMousePosition())
	}
}

// Draw lays out the panel for the current screen size and draws it.
func (p *Panel) Draw(*world.World) {
	sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	p.layoutHint(sw, sh)
	if p.current != nil {
		p.layoutPanel(sw, sh)
	}
	p.engine.Draw()
}

func (p *Panel) layoutHint(sw, sh float32) {
	if p.hint.Hidden {
		return
	}
	st := p.engine.Style(p.hint)
	w := p.engine.MeasureText(p.hint.Text, st.FontSize) + 2*float32(st.Padding)
	h := float32(st.FontSize + 2*st.Padding)
	p.hint.Bounds = rl.NewRectangle((sw-w)/2, sh-hintBottom-h, w, h)
}

func (p *Panel) layoutPanel(sw, sh float32) {
	p.backdrop.Bounds = rl.NewRectangle(0, 0, sw, sh)

	box := p.engine.Style(p.box)
	w := float32(box.Width)
	if w <= 0 || w > sw-32 {
		w = sw - 32
	}
	pad := float32(box.Padding)
	inner := w - 2*pad

	ts := p.engine.Style(p.title)
	ds := p.engine.Style(p.description)
	lines := p.engine.Wrap(p.current.Description, ds.FontSize, inner)
	p.description.Text = strings.Join(lines, "\n")

	// Measure first; the box is centred on the final height.
	h := pad + TextHeight(1, ts.FontSize) + sectionGap + TextHeight(len(lines), ds.FontSize)
	tagRows := p.flowTags(0, 0, inner)
	if tagRows > 0 {
		h += sectionGap + tagRows
	}
	bs := p.engine.Style(p.close)
	btnH := float32(bs.FontSize + 2*bs.Padding)
	h += sectionGap + btnH + pad

	x, y := (sw-w)/2, (sh-h)/2
	p.box.Bounds = rl.NewRectangle(x, y, w, h)
	cy := y + pad
	p.title.Bounds = rl.NewRectangle(x+pad, cy, inner, TextHeight(1, ts.FontSize))
	cy += TextHeight(1, ts.FontSize) + sectionGap
	p.description.Bounds = rl.NewRectangle(x+pad, cy, inner, TextHeight(len(lines), ds.FontSize))
	cy += TextHeight(len(lines), ds.FontSize)
	if tagRows > 0 {
		cy += sectionGap
		p.flowTags(x+pad, cy, inner)
		cy += tagRows
	}
	cy += sectionGap
	p.open.Bounds = rl.NewRectangle(x+pad, cy, buttonWidth, btnH)
	p.close.Bounds = rl.NewRectangle(x+w-pad-buttonWidth, cy, buttonWidth, btnH)
}

// flowTags places the tag chips left to right from (x, y), wrapping at width, and returns
// the height used.
func (p *Panel) flowTags(x, y, width float32) float32 {
	if len(p.tags) == 0 {
		return 0
	}
	var cx, cy, rowH float32
	for _, t := range p.tags {
		st := p.engine.Style(t)
		tw := p.engine.MeasureText(t.Text, st.FontSize) + 2*float32(st.Padding)
		th := float32(st.FontSize + 2*st.Padding)
		if cx > 0 && cx+tw > width {
			cx = 0
			cy += rowH + tagGap
			rowH = 0
		}
		t.Bounds = rl.NewRectangle(x+cx, y+cy, tw, th)
		cx += tw + tagGap
		if th > rowH {
			rowH = th
		}
	}
	return cy + rowH
}
