package dust

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Layout is the generated particle set, stored SoA. Positions are mutated
// every frame; Normals and Jitter are fixed at construction. position[i]
// always lies on the ray normal[i]*r for some r > 0.
type Layout struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Jitter    []float32 // uniform in [0,1), desynchronizes per-point pulse
}

// initialShellJitter is the one-time radial perturbation applied at
// construction so the initial shell is not perfectly crystalline.
const initialShellJitter = 0.01

// GenerateLayout distributes count points near-uniformly on a sphere of the
// given radius using the Fibonacci lattice: polar angles equally spaced in
// cumulative area, azimuth advanced by the golden angle per index. count = 0
// yields a valid empty layout.
func GenerateLayout(count int, baseRadius float32, rng *rand.Rand) *Layout {
	l := &Layout{
		Positions: make([]mgl32.Vec3, count),
		Normals:   make([]mgl32.Vec3, count),
		Jitter:    make([]float32, count),
	}

	goldenAngle := math.Pi * (1.0 + math.Sqrt(5.0))

	for i := 0; i < count; i++ {
		k := (float64(i) + 0.5) / float64(count)
		phi := math.Acos(1.0 - 2.0*k)
		theta := goldenAngle * (float64(i) + 0.5)

		sinPhi := math.Sin(phi)
		normal := mgl32.Vec3{
			float32(sinPhi * math.Cos(theta)),
			float32(sinPhi * math.Sin(theta)),
			float32(math.Cos(phi)),
		}

		shell := baseRadius + (rng.Float32()*2.0-1.0)*initialShellJitter
		l.Normals[i] = normal
		l.Positions[i] = normal.Mul(shell)
		l.Jitter[i] = rng.Float32()
	}

	return l
}

func (l *Layout) Count() int {
	return len(l.Positions)
}
