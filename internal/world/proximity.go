package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Detector picks the portal the avatar can interact with.
type Detector struct {
	InteractDistance float32
	HighlightScale   float32
	Hint             string
}

// Detect returns the nearest portal strictly closer than InteractDistance (first in
// order on ties) and the hint to show, or nil and "". Every portal's scale is reset to 1
// and the selected one is set to HighlightScale, so no highlight outlives a frame.
func (d Detector) Detect(pos mgl32.Vec3, portals []*Portal) (*Portal, string) {
	var nearest *Portal
	nearestDist := float32(math.Inf(1))
	for _, p := range portals {
		dist := p.Position.Sub(pos).Len()
		if dist < nearestDist && dist < d.InteractDistance {
			nearestDist = dist
			nearest = p
		}
		p.Scale = 1
	}
	if nearest == nil {
		return nil, ""
	}
	nearest.Scale = d.HighlightScale
	return nearest, d.Hint
}
