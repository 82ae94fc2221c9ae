package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"portfolio/internal/catalog"
	"portfolio/internal/logger"
)

// Display is the panel surface. HideProject must invoke the handler registered with
// SetCloseHandler; an empty hint hides the hint.
type Display interface {
	ShowProject(p catalog.Project)
	HideProject()
	UpdateInteractionHint(msg string)
	SetCloseHandler(fn func())
}

// Config tunes the interactive core. Distances are world units, speeds are per second.
type Config struct {
	Bounds           float32
	InteractDistance float32
	Speed            float32
	RotationSpeed    float32
	HighlightScale   float32
	BobAmplitude     float32
	SpinSpeed        float32
	Hint             string
	Start            mgl32.Vec3
}

// DefaultConfig returns the showcase's stock tuning.
func DefaultConfig() Config {
	return Config{
		Bounds:           25,
		InteractDistance: 3,
		Speed:            6,
		RotationSpeed:    2,
		HighlightScale:   1.05,
		BobAmplitude:     0.05,
		SpinSpeed:        0.2,
		Hint:             "Press E to open the project",
		Start:            mgl32.Vec3{0, 0, 8},
	}
}

// World is all mutable scene state, owned by the frame loop. Hosts write Input between
// frames and read the rest when rendering.
type World struct {
	Avatar  Avatar
	Portals []*Portal
	Active  *Portal
	Input   InputState
	Elapsed float64
	Frames  uint64

	controller Controller
	animator   Animator
	detector   Detector
	gate       *Gate
	display    Display
	hint       string
}

// Build creates the logical scene once: the avatar at cfg.Start and one portal per
// project. The gate's Close is registered as the display's close handler.
func Build(cat *catalog.Catalog, cfg Config, display Display, log *logger.Logger) *World {
	if display == nil {
		display = &nopDisplay{}
	}
	w := &World{
		Avatar:  Avatar{Position: cfg.Start},
		Portals: NewPortals(cat.All()),
		controller: Controller{
			Speed:         cfg.Speed,
			RotationSpeed: cfg.RotationSpeed,
			Bounds:        cfg.Bounds,
		},
		animator: Animator{BobAmplitude: cfg.BobAmplitude, SpinSpeed: cfg.SpinSpeed},
		detector: Detector{
			InteractDistance: cfg.InteractDistance,
			HighlightScale:   cfg.HighlightScale,
			Hint:             cfg.Hint,
		},
		gate:    NewGate(cat, display, log),
		display: display,
	}
	display.SetCloseHandler(w.gate.Close)
	return w
}

// Mode returns the gate's current mode.
func (w *World) Mode() Mode {
	return w.gate.Mode()
}

// Hint returns the hint currently shown, "" when hidden.
func (w *World) Hint() string {
	return w.hint
}

// Tick advances one frame. Pending confirm/cancel edges are handled first, as the input
// handlers that ran since the previous frame, against last frame's active portal. Then
// the avatar moves, portals animate, and proximity is recomputed from the new pose.
func (w *World) Tick(dt float32) {
	if dt < 0 {
		dt = 0
	}

	if w.Input.Consume(ActionCancel) {
		w.display.HideProject()
	}
	if w.Input.Consume(ActionConfirm) {
		w.gate.Confirm(w.Active)
	}

	w.Avatar = w.controller.Step(w.Avatar, &w.Input, dt, w.gate.Mode())

	w.Elapsed += float64(dt)
	w.animator.Step(w.Portals, w.Elapsed, dt)

	active, hint := w.detector.Detect(w.Avatar.Position, w.Portals)
	w.Active = active
	if hint != w.hint {
		w.hint = hint
		w.display.UpdateInteractionHint(hint)
	}
	w.Frames++
}

// nopDisplay shows nothing but still reports closes, so cancel keeps working headless.
type nopDisplay struct{ onClose func() }

func (*nopDisplay) ShowProject(catalog.Project)  {}
func (*nopDisplay) UpdateInteractionHint(string) {}
func (d *nopDisplay) SetCloseHandler(fn func())  { d.onClose = fn }

func (d *nopDisplay) HideProject() {
	if d.onClose != nil {
		d.onClose()
	}
}
