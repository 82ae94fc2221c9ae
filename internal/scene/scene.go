package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio/internal/camera"
	"portfolio/internal/catalog"
	"portfolio/internal/primitives"
	"portfolio/internal/starfield"
	"portfolio/internal/world"
)

const (
	fovy     = 60
	starSize = 1.4

	ambientIntensity = 0.35
	lightIntensity   = 1.5
	lightRange       = 80

	gridMinorAlpha = 40
	gridMajorAlpha = 90
	gridMajorStep  = 5
)

var (
	clearColor   = rl.NewColor(0x00, 0x00, 0x10, 255)
	ambientColor = catalog.RGB{R: 0x33, G: 0x55, B: 0x77}
	lightColors  = []catalog.RGB{
		{R: 0x4f, G: 0xac, B: 0xfe},
		{R: 0x00, G: 0xf5, B: 0xd4},
		{R: 0xff, G: 0x6f, B: 0xd8},
	}
	avatarMaterial = primitives.Material{R: 0x7e, G: 0xf6, B: 0xff, A: 230, Emissive: 0.6}
	portalVoid     = primitives.Material{R: 0x00, G: 0x00, B: 0x10, A: 255, Emissive: 1}
)

// Overlay is 2D content drawn after the 3D pass (panel, debug text).
type Overlay interface {
	Draw(w *world.World)
}

// Options configures what New adds beyond the world's own objects.
type Options struct {
	Stars       []starfield.Star
	Follow      *camera.Follow // nil uses camera.NewFollow()
	GridVisible bool
	Bounds      float32 // half-extent of the floor grid
	Overlays    []Overlay
}

type portalLook struct {
	frame, core primitives.Material
}

// Scene renders a world with raylib: star shell, avatar, portals, then overlays.
// It implements world.Renderer and must be used inside graphics.Run.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	follow     *camera.Follow
	prims      *primitives.Registry
	looks      map[string]portalLook
	starPos    []rl.Vector3
	starColors []rl.Color
	bounds     float32
	overlays   []Overlay
}

// New builds the lights, the star cloud and per-project portal materials. GPU meshes are
// created lazily on the first Render.
func New(w *world.World, cat *catalog.Catalog, opts Options) *Scene {
	s := &Scene{
		GridVisible: opts.GridVisible,
		follow:      opts.Follow,
		looks:       make(map[string]portalLook),
		bounds:      opts.Bounds,
		overlays:    opts.Overlays,
	}
	if s.follow == nil {
		s.follow = camera.NewFollow()
	}

	lights := make([]primitives.Light, len(lightColors))
	for i, c := range lightColors {
		a := float64(i * 2)
		lights[i] = primitives.Light{
			Position:  mgl32.Vec3{float32(20 * math.Cos(a)), float32(10 + 4*i), float32(20 * math.Sin(a))},
			R:         c.R,
			G:         c.G,
			B:         c.B,
			Intensity: lightIntensity,
			Range:     lightRange,
		}
	}
	s.prims = primitives.NewRegistry(ambientColor.R, ambientColor.G, ambientColor.B, ambientIntensity, lights)

	for _, p := range cat.All() {
		s.looks[p.ID] = portalLook{
			frame: primitives.Material{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 255, Emissive: 0.4},
			core:  primitives.Material{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 153, Emissive: 0.8},
		}
	}

	s.starPos = make([]rl.Vector3, len(opts.Stars))
	s.starColors = make([]rl.Color, len(opts.Stars))
	for i, st := range opts.Stars {
		s.starPos[i] = toVector(st.Position)
		s.starColors[i] = rl.NewColor(st.Color.R, st.Color.G, st.Color.B, 230)
	}

	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	s.placeCamera(w.Avatar, 0)
	return s
}

// AddOverlay appends an overlay; overlays draw in insertion order.
func (s *Scene) AddOverlay(o Overlay) {
	s.overlays = append(s.overlays, o)
}

// SetGridVisible sets whether the floor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

func (s *Scene) placeCamera(a world.Avatar, dt float32) {
	eye, target := s.follow.Update(a, dt)
	s.Camera.Position = toVector(eye)
	s.Camera.Target = toVector(target)
	s.prims.SetView(eye)
}

// Render draws one frame. Call between BeginDrawing and EndDrawing.
func (s *Scene) Render(w *world.World) {
	s.placeCamera(w.Avatar, rl.GetFrameTime())

	rl.ClearBackground(clearColor)
	rl.BeginMode3D(s.Camera)
	s.drawStars()
	if s.GridVisible {
		drawFloorGrid(s.bounds)
	}
	for _, p := range w.Portals {
		s.drawPortal(p)
	}
	s.drawAvatar(w.Avatar)
	rl.EndMode3D()

	for _, o := range s.overlays {
		o.Draw(w)
	}
}

func (s *Scene) drawStars() {
	for i, pos := range s.starPos {
		rl.DrawCube(pos, starSize, starSize, starSize, s.starColors[i])
	}
}

// drawAvatar builds the capsule body from a cylinder and two sphere caps, with the head on top.
func (s *Scene) drawAvatar(a world.Avatar) {
	const (
		bodyRadius = 0.7
		bodyLength = 1.6
		bodyY      = 1.2
		headRadius = 0.6
		headY      = 2.5
	)
	t := primitives.Transform{Position: a.Position, Yaw: a.Yaw}

	t.Offset = mgl32.Vec3{0, bodyY, 0}
	t.Scale = mgl32.Vec3{2 * bodyRadius, bodyLength, 2 * bodyRadius}
	s.prims.Draw(primitives.Cylinder, t, avatarMaterial)

	t.Scale = mgl32.Vec3{2 * bodyRadius, 2 * bodyRadius, 2 * bodyRadius}
	for _, dy := range []float32{-bodyLength / 2, bodyLength / 2} {
		t.Offset = mgl32.Vec3{0, bodyY + dy, 0}
		s.prims.Draw(primitives.Sphere, t, avatarMaterial)
	}

	t.Offset = mgl32.Vec3{0, headY, 0}
	t.Scale = mgl32.Vec3{2 * headRadius, 2 * headRadius, 2 * headRadius}
	s.prims.Draw(primitives.Sphere, t, avatarMaterial)
}

func (s *Scene) drawPortal(p *world.Portal) {
	look, ok := s.looks[p.ProjectID]
	if !ok {
		return
	}
	k := p.Scale
	t := primitives.Transform{Position: p.Position, Yaw: p.Yaw}

	t.Scale = mgl32.Vec3{3, 5, 0.3}.Mul(k)
	s.prims.Draw(primitives.Cube, t, look.frame)

	t.Offset = mgl32.Vec3{0, 0, -0.02 * k}
	t.Scale = mgl32.Vec3{2.4, 4.2, 0.35}.Mul(k)
	s.prims.Draw(primitives.Cube, t, portalVoid)

	// The core is a flat slab; raylib planes lie in XZ and the core stands upright.
	t.Offset = mgl32.Vec3{0, 0, -0.16 * k}
	t.Scale = mgl32.Vec3{2.2, 4, 0.01}.Mul(k)
	s.prims.Draw(primitives.Cube, t, look.core)
}

// drawFloorGrid draws the play area on the XZ plane with a brighter line every
// gridMajorStep units and along the boundary.
func drawFloorGrid(bounds float32) {
	if bounds <= 0 {
		return
	}
	minor := rl.NewColor(0x33, 0x55, 0x77, gridMinorAlpha)
	major := rl.NewColor(0x4f, 0xac, 0xfe, gridMajorAlpha)
	n := int(bounds)

	var start, end rl.Vector3
	for i := -n; i <= n; i++ {
		c := minor
		if i%gridMajorStep == 0 || i == -n || i == n {
			c = major
		}
		start.X, start.Y, start.Z = float32(i), 0, -bounds
		end.X, end.Y, end.Z = float32(i), 0, bounds
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -bounds, 0, float32(i)
		end.X, end.Y, end.Z = bounds, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}
}

func toVector(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
