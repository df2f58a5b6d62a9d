package dust

import (
	"math/rand"
	"time"
)

// DustModule generates the particle set for this activation and keeps it
// animated. Generation happens once, at install; every activation draws from
// a fresh rand source, so two sessions with identical Params share the same
// lattice but not the same jitter.
type DustModule struct {
	Params Params
}

func (mod DustModule) Install(app *App, cmd *Commands) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	cloud := NewCloud(mod.Params, rng)
	cmd.AddResources(cloud)

	app.UseSystem(
		System(dustUpdateSystem).
			InStage(Update),
	)
}

// dustUpdateSystem advances the pulse only while the session is running.
// Pausing leaves the position buffer exactly as the last running tick wrote
// it; elapsed time keeps flowing underneath, it just stops being applied.
func dustUpdateSystem(cloud *Cloud, clock *Clock, sess *Session) {
	if !sess.Running {
		return
	}
	cloud.Update(clock.Elapsed)
}
