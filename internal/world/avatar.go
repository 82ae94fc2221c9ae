package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Avatar is the player's pose on the ground plane. Y is carried but never simulated.
type Avatar struct {
	Position mgl32.Vec3
	Yaw      float32
}

// Forward is the avatar's local +Z axis projected onto the ground plane.
func (a Avatar) Forward() mgl32.Vec3 {
	s, c := math.Sincos(float64(a.Yaw))
	return mgl32.Vec3{float32(s), 0, float32(c)}
}

// Controller advances the avatar from held input. Speeds are per second.
type Controller struct {
	Speed         float32
	RotationSpeed float32
	Bounds        float32
}

// Step returns the avatar after dt seconds of input. Outside ModeExploring the avatar is
// returned untouched. X and Z are clamped into [-Bounds, Bounds] after moving.
func (c Controller) Step(a Avatar, in *InputState, dt float32, mode Mode) Avatar {
	if mode != ModeExploring {
		return a
	}
	if in.Held(ActionTurnLeft) {
		a.Yaw += c.RotationSpeed * dt
	}
	if in.Held(ActionTurnRight) {
		a.Yaw -= c.RotationSpeed * dt
	}

	dir := a.Forward()
	if in.Held(ActionForward) {
		a.Position = a.Position.Add(dir.Mul(c.Speed * dt))
	}
	if in.Held(ActionBackward) {
		a.Position = a.Position.Add(dir.Mul(-c.Speed * dt))
	}

	a.Position[0] = mgl32.Clamp(a.Position[0], -c.Bounds, c.Bounds)
	a.Position[2] = mgl32.Clamp(a.Position[2], -c.Bounds, c.Bounds)
	return a
}
