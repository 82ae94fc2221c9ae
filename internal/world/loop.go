package world

// Renderer draws a frame from the world's current state.
type Renderer interface {
	Render(w *World)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(w *World)

// Render calls f(w).
func (f RendererFunc) Render(w *World) { f(w) }

// Loop runs one Tick followed by one Render per frame signal from its host. Hosts
// measure dt; the loop never skips or reorders a step.
type Loop struct {
	World    *World
	Renderer Renderer
}

// Frame advances the world by dt seconds and renders it.
func (l *Loop) Frame(dt float32) {
	l.World.Tick(dt)
	if l.Renderer != nil {
		l.Renderer.Render(l.World)
	}
}
