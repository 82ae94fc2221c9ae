package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"portfolio/internal/catalog"
)

// Portal is the interactive waypoint for one project. ProjectID is a lookup key into the
// catalog, not an owning reference. Position is where the portal currently is (Base plus
// the idle bob); Scale is the uniform highlight scale.
type Portal struct {
	ProjectID string
	Base      mgl32.Vec3
	Position  mgl32.Vec3
	Yaw       float32
	Scale     float32
	Phase     float32
}

// NewPortals creates one portal per project, in catalog order. Phase is the creation
// index so portals bob out of step with each other.
func NewPortals(projects []catalog.Project) []*Portal {
	portals := make([]*Portal, 0, len(projects))
	for i, p := range projects {
		portals = append(portals, &Portal{
			ProjectID: p.ID,
			Base:      p.Position,
			Position:  p.Position,
			Scale:     1,
			Phase:     float32(i),
		})
	}
	return portals
}

// Animator is the portal idle animation: a vertical sine bob and a slow spin.
type Animator struct {
	BobAmplitude float32
	SpinSpeed    float32 // radians per second
}

// Step poses every portal for the given total elapsed time and frame delta.
func (an Animator) Step(portals []*Portal, elapsed float64, dt float32) {
	for _, p := range portals {
		bob := float32(math.Sin(elapsed+float64(p.Phase))) * an.BobAmplitude
		p.Position = mgl32.Vec3{p.Base[0], p.Base[1] + bob, p.Base[2]}
		p.Yaw += an.SpinSpeed * dt
	}
}
