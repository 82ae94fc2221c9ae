package camera

import (
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"

	"portfolio/internal/world"
)

// Follow is the third-person camera: rigidly attached to the avatar's position at Offset
// in avatar space, with its yaw chasing the avatar's yaw on a critically damped spring.
// It only reads the avatar; nothing it computes flows back into the world.
type Follow struct {
	Offset    mgl32.Vec3
	Frequency float64
	Damping   float64

	yaw, yawVel float64
	primed      bool
	spring      harmonica.Spring
	springDT    float32
}

// NewFollow returns a camera 2 units up and 6 behind, looking along the avatar's -Z.
func NewFollow() *Follow {
	return &Follow{
		Offset:    mgl32.Vec3{0, 2, 6},
		Frequency: 8,
		Damping:   1,
	}
}

// Yaw returns the camera's current, smoothed yaw.
func (f *Follow) Yaw() float32 {
	return float32(f.yaw)
}

// Update advances the spring by dt and returns the eye position and look target. The
// first call snaps to the avatar's yaw.
func (f *Follow) Update(a world.Avatar, dt float32) (eye, target mgl32.Vec3) {
	if !f.primed {
		f.yaw, f.yawVel = float64(a.Yaw), 0
		f.primed = true
	} else if dt > 0 {
		if dt != f.springDT {
			f.spring = harmonica.NewSpring(float64(dt), f.Frequency, f.Damping)
			f.springDT = dt
		}
		f.yaw, f.yawVel = f.spring.Update(f.yaw, f.yawVel, float64(a.Yaw))
	}

	rot := mgl32.Rotate3DY(float32(f.yaw))
	eye = a.Position.Add(rot.Mul3x1(f.Offset))
	target = a.Position.Add(rot.Mul3x1(mgl32.Vec3{0, f.Offset[1], 0}))
	return eye, target
}
