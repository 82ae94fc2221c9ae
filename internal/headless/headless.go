package headless

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/catalog"
	"portfolio/internal/logger"
	"portfolio/internal/world"
)

// Config controls the no-window runner.
type Config struct {
	Hz    int
	Ticks uint64 // stop after this many frames; 0 runs until ctx is done
}

// Run drives loop from a ticker with a fixed dt of 1/Hz, with no display attached.
func Run(ctx context.Context, loop *world.Loop, cfg Config) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	dt := float32(d.Seconds())

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			loop.Frame(dt)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// Recorder is a display and renderer that writes what a screen would show to the log.
type Recorder struct {
	log     *logger.Logger
	onClose func()
	current *catalog.Project
	hint    string
	frames  uint64
}

// NewRecorder returns a Recorder logging to log.
func NewRecorder(log *logger.Logger) *Recorder {
	return &Recorder{log: log}
}

func (r *Recorder) ShowProject(p catalog.Project) {
	r.current = &p
	r.log.Infof("panel: %s (%s) %v %s", p.Title, p.ID, p.Tags, p.URL)
}

func (r *Recorder) HideProject() {
	if r.current != nil {
		r.log.Infof("panel: hidden")
	}
	r.current = nil
	if r.onClose != nil {
		r.onClose()
	}
}

func (r *Recorder) UpdateInteractionHint(msg string) {
	r.hint = msg
	if msg == "" {
		r.log.Infof("hint: hidden")
		return
	}
	r.log.Infof("hint: %s", msg)
}

func (r *Recorder) SetCloseHandler(fn func()) {
	r.onClose = fn
}

// Render counts frames; the headless host has nothing to draw.
func (r *Recorder) Render(w *world.World) {
	r.frames = w.Frames
}

// Frames returns the last frame number rendered.
func (r *Recorder) Frames() uint64 {
	return r.frames
}

// Current returns the project on the panel, if any.
func (r *Recorder) Current() (catalog.Project, bool) {
	if r.current == nil {
		return catalog.Project{}, false
	}
	return *r.current, true
}
