package dust

import (
	"encoding/json"
	"fmt"
	"os"
)

// Params configures one activation of the viewer. Immutable for the session:
// changing any value means deactivating and activating again, which rebuilds
// the point cloud and every render resource from scratch.
type Params struct {
	ParticleCount  int     `json:"particle_count"`
	BaseRadius     float32 `json:"base_radius"`
	PulseAmplitude float32 `json:"pulse_amplitude"`
	PulseSpeed     float32 `json:"pulse_speed"`
	RotationSpeed  float32 `json:"rotation_speed"`
}

func DefaultParams() Params {
	return Params{
		ParticleCount:  2000,
		BaseRadius:     5,
		PulseAmplitude: 0.5,
		PulseSpeed:     1.05,
		RotationSpeed:  0.65,
	}
}

// normalized clamps values the animation cannot work with back to defaults.
// A bad count or radius must never corrupt a prior activation, so this runs
// before any resource is allocated.
func (p Params) normalized() Params {
	def := DefaultParams()
	if p.ParticleCount < 0 {
		p.ParticleCount = def.ParticleCount
	}
	if p.BaseRadius <= 0 {
		p.BaseRadius = def.BaseRadius
	}
	if p.PulseSpeed == 0 {
		p.PulseSpeed = def.PulseSpeed
	}
	return p
}

// LoadParams reads a params preset. Fields absent from the file keep their
// defaults.
func LoadParams(filename string) (Params, error) {
	p := DefaultParams()

	bytes, err := os.ReadFile(filename)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(bytes, &p); err != nil {
		return DefaultParams(), fmt.Errorf("parsing params preset %s: %w", filename, err)
	}
	return p.normalized(), nil
}

func SaveParams(filename string, p Params) error {
	bytes, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}
