package dust

import (
	"math/rand"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfCheck_NotReadyBeforeInit(t *testing.T) {
	sess := &Session{ID: uuid.New(), Params: DefaultParams()}
	cloud := NewCloud(sess.Params, rand.New(rand.NewSource(1)))
	rState := &pointsRenderState{}

	report := runSelfCheck(sess, cloud, rState)

	assert.False(t, report.Ready)
	assert.False(t, report.OK())
	assert.Contains(t, report.String(), "not ready")
}

func TestSelfCheck_ReportsConfiguredCount(t *testing.T) {
	params := Params{ParticleCount: 2000, BaseRadius: 5, PulseSpeed: 1.05}
	sess := &Session{ID: uuid.New(), Params: params}
	cloud := NewCloud(params, rand.New(rand.NewSource(1)))
	rState := &pointsRenderState{
		ready:        true,
		vertexBuffer: &wgpu.Buffer{},
		vertexCount:  2000,
	}

	report := runSelfCheck(sess, cloud, rState)

	require.True(t, report.Ready)
	assert.Equal(t, 2000, report.PosCount)
	assert.Equal(t, 2000, report.ExpectedCount)
	assert.True(t, report.PointsPresent)
	assert.True(t, report.OK())
	assert.Contains(t, report.String(), "posCount=2000")
	assert.Contains(t, report.String(), "OK")
}

func TestSelfCheck_CountMismatchFails(t *testing.T) {
	sess := &Session{ID: uuid.New(), Params: Params{ParticleCount: 12}}
	cloud := NewCloud(Params{ParticleCount: 10, BaseRadius: 5}, rand.New(rand.NewSource(1)))
	rState := &pointsRenderState{
		ready:        true,
		vertexBuffer: &wgpu.Buffer{},
	}

	report := runSelfCheck(sess, cloud, rState)

	assert.True(t, report.Ready)
	assert.False(t, report.OK())
	assert.Contains(t, report.String(), "FAILED")
}

func TestSelfCheck_MissingPointObject(t *testing.T) {
	sess := &Session{ID: uuid.New(), Params: Params{ParticleCount: 10}}
	cloud := NewCloud(Params{ParticleCount: 10, BaseRadius: 5}, rand.New(rand.NewSource(1)))
	rState := &pointsRenderState{ready: true}

	report := runSelfCheck(sess, cloud, rState)

	assert.False(t, report.PointsPresent)
	assert.False(t, report.OK())
	assert.Contains(t, report.String(), "missing")
}
