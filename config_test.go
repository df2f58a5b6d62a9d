package dust

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	assert.Equal(t, 2000, p.ParticleCount)
	assert.Equal(t, float32(5), p.BaseRadius)
	assert.Equal(t, float32(0.5), p.PulseAmplitude)
	assert.Equal(t, float32(1.05), p.PulseSpeed)
	assert.Equal(t, float32(0.65), p.RotationSpeed)
}

func TestParams_normalized(t *testing.T) {
	p := Params{ParticleCount: -5, BaseRadius: 0, PulseSpeed: 0}.normalized()

	assert.Equal(t, 2000, p.ParticleCount)
	assert.Equal(t, float32(5), p.BaseRadius)
	assert.Equal(t, float32(1.05), p.PulseSpeed)

	// Zero particles is a valid (empty) configuration, not a defect.
	empty := Params{ParticleCount: 0, BaseRadius: 1, PulseSpeed: 1}.normalized()
	assert.Equal(t, 0, empty.ParticleCount)
}

func TestParams_SaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	want := Params{
		ParticleCount:  5000,
		BaseRadius:     3,
		PulseAmplitude: 0.6,
		PulseSpeed:     3,
		RotationSpeed:  0.65,
	}

	require.NoError(t, SaveParams(path, want))

	got, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadParams_MissingFile(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadParams_PartialPresetKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"particle_count": 5000}`), 0644))

	got, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, got.ParticleCount)
	assert.Equal(t, DefaultParams().BaseRadius, got.BaseRadius)
	assert.Equal(t, DefaultParams().PulseSpeed, got.PulseSpeed)
}

func TestLoadParams_MalformedPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadParams(path)
	assert.Error(t, err)
}
