package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"portfolio/internal/catalog"
	"portfolio/internal/logger"
)

// recordingDisplay records every call the core makes on its display surface.
type recordingDisplay struct {
	shown   []catalog.Project
	hides   int
	hints   []string
	onClose func()
}

func (d *recordingDisplay) ShowProject(p catalog.Project) { d.shown = append(d.shown, p) }
func (d *recordingDisplay) UpdateInteractionHint(msg string) {
	d.hints = append(d.hints, msg)
}
func (d *recordingDisplay) SetCloseHandler(fn func()) { d.onClose = fn }
func (d *recordingDisplay) HideProject() {
	d.hides++
	if d.onClose != nil {
		d.onClose()
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Project{
		{ID: "near", Title: "Near", Position: mgl32.Vec3{0, 0, 6}},
		{ID: "far", Title: "Far", Position: mgl32.Vec3{20, 0, -20}},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func testWorld(t *testing.T, start mgl32.Vec3) (*World, *recordingDisplay, *logger.Logger) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Start = start
	d := &recordingDisplay{}
	log := logger.New("")
	return Build(testCatalog(t), cfg, d, log), d, log
}

func approx(a, b float32) bool {
	return mgl32.Abs(a-b) < 1e-4
}
