package dust

import (
	"math"
	"math/rand"
)

// Cloud is the animated dust sphere: a fixed layout plus the session's
// animation parameters. Update is a pure function of elapsed time, the fixed
// normals and jitter factors, so a given t always produces the same
// positions regardless of frame-rate history.
type Cloud struct {
	Params Params
	Layout *Layout
}

func NewCloud(p Params, rng *rand.Rand) *Cloud {
	return &Cloud{
		Params: p,
		Layout: GenerateLayout(p.ParticleCount, p.BaseRadius, rng),
	}
}

func (c *Cloud) Count() int {
	return c.Layout.Count()
}

// Update recomputes every position along its fixed normal for elapsed time t
// (seconds). A single shared pulse breathes the whole shell in and out;
// each point scales it by its jitter factor (rescaled to [0.2,1.0] so no
// point goes fully rigid) and adds a small high-frequency wobble whose
// frequency is spread by the same factor and whose phase is offset by index.
func (c *Cloud) Update(t float64) {
	pulse := math.Sin(t*float64(c.Params.PulseSpeed)) * float64(c.Params.PulseAmplitude)
	base := float64(c.Params.BaseRadius)

	for i := range c.Layout.Positions {
		r := float64(c.Layout.Jitter[i])*0.8 + 0.2
		localPulse := pulse * r
		noise := math.Sin(t*(0.7+r*2.0)+float64(i)) * 0.005
		radius := base + localPulse

		c.Layout.Positions[i] = c.Layout.Normals[i].Mul(float32(radius + noise))
	}
}

// RotationAt returns the cloud's absolute rotation angles (radians) for
// elapsed time t. Angles are recomputed from t each frame, never integrated,
// so they carry no drift from frame-rate variance. The X tilt runs at 0.18 of
// the Y spin, which keeps the poles slowly precessing instead of fixed.
func (c *Cloud) RotationAt(t float64) (rotY, rotX float32) {
	rotY = float32(t * float64(c.Params.RotationSpeed))
	rotX = float32(t * float64(c.Params.RotationSpeed) * 0.18)
	return rotY, rotX
}
