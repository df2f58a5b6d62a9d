package dust

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLayout_Counts(t *testing.T) {
	for _, n := range []int{0, 1, 4, 2000} {
		rng := rand.New(rand.NewSource(42))
		l := GenerateLayout(n, 5, rng)

		require.Len(t, l.Positions, n)
		require.Len(t, l.Normals, n)
		require.Len(t, l.Jitter, n)
		assert.Equal(t, n, l.Count())
	}
}

func TestGenerateLayout_UnitNormals(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := GenerateLayout(500, 5, rng)

	for i, n := range l.Normals {
		assert.InDelta(t, 1.0, float64(n.Len()), 1e-4, "normal %d should have unit length", i)
	}
}

func TestGenerateLayout_InitialShell(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	baseRadius := float32(5)
	l := GenerateLayout(200, baseRadius, rng)

	for i, p := range l.Positions {
		assert.InDelta(t, float64(baseRadius), float64(p.Len()), initialShellJitter+1e-4,
			"position %d should sit on the jittered shell", i)
	}
}

func TestGenerateLayout_JitterRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	l := GenerateLayout(1000, 5, rng)

	for i, j := range l.Jitter {
		if j < 0 || j >= 1 {
			t.Errorf("jitter[%d] = %v, want [0,1)", i, j)
		}
	}
}

func TestGenerateLayout_IndependentDraws(t *testing.T) {
	a := GenerateLayout(100, 5, rand.New(rand.NewSource(1)))
	b := GenerateLayout(100, 5, rand.New(rand.NewSource(2)))

	// Same lattice, independent randomness: normals match, jitter does not.
	for i := range a.Normals {
		assert.Equal(t, a.Normals[i], b.Normals[i])
	}
	assert.NotEqual(t, a.Jitter, b.Jitter)
}
