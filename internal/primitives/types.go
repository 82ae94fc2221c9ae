package primitives

import "github.com/go-gl/mathgl/mgl32"

// Kind selects a cached mesh.
type Kind int

const (
	Cube     Kind = iota // 1x1x1, centred
	Sphere               // diameter 1, centred
	Cylinder             // diameter 1, height 1, centred
)

// Transform places one primitive instance. Offset is applied in the parent's rotated frame,
// so a portal's inner parts follow its yaw. A zero Scale component is treated as 1.
type Transform struct {
	Position mgl32.Vec3
	Offset   mgl32.Vec3
	Scale    mgl32.Vec3
	Yaw      float32
}

// Material is the per-draw surface: albedo tint plus how much of it glows regardless of
// lighting (0 fully lit, 1 unlit).
type Material struct {
	R, G, B, A uint8
	Emissive   float32
}

// Light is a coloured point light with a linear falloff range.
type Light struct {
	Position  mgl32.Vec3
	R, G, B   uint8
	Intensity float32
	Range     float32
}

// Model returns the model matrix for t: scale, then offset, then yaw, then translate.
func (t Transform) Model(center mgl32.Vec3) mgl32.Mat4 {
	s := t.Scale
	for i := range s {
		if s[i] == 0 {
			s[i] = 1
		}
	}
	return mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(mgl32.HomogRotate3DY(t.Yaw)).
		Mul4(mgl32.Translate3D(t.Offset[0], t.Offset[1], t.Offset[2])).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2])).
		Mul4(mgl32.Translate3D(center[0], center[1], center[2]))
}
