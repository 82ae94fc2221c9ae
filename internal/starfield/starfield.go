package starfield

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"portfolio/internal/catalog"
)

const (
	MinRadius = 120
	MaxRadius = 300

	// Hue range (as a 0–1 turn) of the blue-violet star palette.
	minHue     = 0.55
	maxHue     = 0.75
	saturation = 0.7
	lightness  = 0.8
)

// Star is one point of the background point cloud.
type Star struct {
	Position mgl32.Vec3
	Color    catalog.RGB
}

// Generate scatters count stars over a spherical shell between MinRadius and MaxRadius
// around the origin. The same seed always yields the same field.
func Generate(count int, seed int64) []Star {
	if count <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, count)
	for i := range stars {
		radius := randRange(rng, MinRadius, MaxRadius)
		theta := randRange(rng, 0, 2*math.Pi)
		phi := randRange(rng, 0, math.Pi)

		sinPhi := math.Sin(phi)
		stars[i].Position = mgl32.Vec3{
			float32(radius * sinPhi * math.Cos(theta)),
			float32(radius * sinPhi * math.Sin(theta)),
			float32(radius * math.Cos(phi)),
		}

		c := colorful.Hsl(randRange(rng, minHue, maxHue)*360, saturation, lightness)
		r, g, b := c.Clamped().RGB255()
		stars[i].Color = catalog.RGB{R: r, G: g, B: b}
	}
	return stars
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
