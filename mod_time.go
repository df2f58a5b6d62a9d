package dust

import (
	"time"
)

// Clock derives elapsed time from a fixed start timestamp every tick instead
// of accumulating per-frame deltas, so long sessions never drift.
type Clock struct {
	Start   time.Time
	Elapsed float64 // seconds since Start
	Dt      float64 // seconds since the previous tick

	last time.Time
}

type ClockModule struct{}

func (mod ClockModule) Install(app *App, cmd *Commands) {
	now := time.Now()
	cmd.AddResources(&Clock{
		Start: now,
		last:  now,
	})
	app.UseSystem(
		System(clockSystem).
			InStage(PreUpdate),
	)
}

func clockSystem(clock *Clock) {
	now := time.Now()

	clock.Dt = now.Sub(clock.last).Seconds()
	clock.last = now
	clock.Elapsed = now.Sub(clock.Start).Seconds()
}
