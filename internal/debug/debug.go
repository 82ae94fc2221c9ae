package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio/internal/logger"
	"portfolio/internal/world"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: text is rebuilt every N frames to limit allocations.
	updateInterval = 30
)

var (
	statColor = rl.Green
	logColor  = rl.NewColor(0x9b, 0x8c, 0xff, 255)
)

// Debug draws runtime overlays. FPS and memory sit at the top right; the world state
// and last log line at the top left. All overlays are off by default.
type Debug struct {
	ShowFPS   bool
	ShowState bool // avatar position, yaw, mode, active portal, last log line

	log        *logger.Logger
	frameCount uint32
	fpsText    string
	memText    string
	stateText  string
	memStats   runtime.MemStats
}

// New returns a Debug with all overlays hidden. log may be nil.
func New(log *logger.Logger) *Debug {
	return &Debug{log: log}
}

// Draw renders the enabled overlays. It is a scene overlay, drawn after the panel.
func (d *Debug) Draw(w *world.World) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || (d.ShowFPS && d.fpsText == "")

	if d.ShowFPS {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		screenW := int32(rl.GetScreenWidth())
		y := int32(padding)
		for _, text := range []string{d.fpsText, d.memText} {
			rl.DrawText(text, screenW-rl.MeasureText(text, fontSize)-padding, y, fontSize, statColor)
			y += lineHeight
		}
	}

	if d.ShowState {
		// Position changes every frame while moving; refresh with the FPS cadence anyway.
		if update || d.stateText == "" {
			d.stateText = stateLine(w)
		}
		rl.DrawText(d.stateText, padding, padding, fontSize, statColor)
		if last := d.log.Last(); last != "" {
			rl.DrawText(last, padding, padding+lineHeight, fontSize, logColor)
		}
	}
}

func stateLine(w *world.World) string {
	active := "-"
	if w.Active != nil {
		active = w.Active.ProjectID
	}
	p := w.Avatar.Position
	return fmt.Sprintf("pos %.1f %.1f %.1f  yaw %.2f  %s  near %s", p[0], p[1], p[2], w.Avatar.Yaw, w.Mode(), active)
}
