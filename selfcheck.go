package dust

import (
	"fmt"

	"github.com/google/uuid"
)

// CheckReport is the result of the consistency self-check: does the live
// position buffer still hold exactly the configured number of points, and is
// the rendered point object present. A mismatch means resource
// initialization went wrong; it is not a recoverable runtime condition.
type CheckReport struct {
	Ready         bool
	SessionID     uuid.UUID
	PosCount      int
	ExpectedCount int
	PointsPresent bool
}

func (r CheckReport) OK() bool {
	return r.Ready && r.PointsPresent && r.PosCount == r.ExpectedCount
}

func (r CheckReport) String() string {
	if !r.Ready {
		return fmt.Sprintf("self-check [%s]: not ready", r.SessionID)
	}
	presence := "present"
	if !r.PointsPresent {
		presence = "missing"
	}
	verdict := "OK"
	if !r.OK() {
		verdict = "FAILED"
	}
	return fmt.Sprintf("self-check [%s]: posCount=%d expected=%d points=%s — %s",
		r.SessionID, r.PosCount, r.ExpectedCount, presence, verdict)
}

// runSelfCheck inspects the live session. Invoked before the render host
// finished initializing, it reports not-ready instead of stale data.
func runSelfCheck(sess *Session, cloud *Cloud, rState *pointsRenderState) CheckReport {
	report := CheckReport{
		SessionID: sess.ID,
	}
	if rState == nil || !rState.ready {
		return report
	}

	report.Ready = true
	report.PosCount = len(cloud.Layout.Positions)
	report.ExpectedCount = sess.Params.ParticleCount
	report.PointsPresent = rState.vertexBuffer != nil
	return report
}
