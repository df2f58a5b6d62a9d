package dust

import (
	"github.com/google/uuid"
)

// SessionConfig describes one activation. Zero window values fall back to
// defaults; Params are normalized before any resource is allocated.
type SessionConfig struct {
	Params       Params
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
	Debug        bool
}

// Session is one activation of the viewer: a particle set, a window, a GPU
// device and a running flag, all owned by a single App. Nothing survives
// Deactivate; a new Session rebuilds everything from its Params.
type Session struct {
	ID      uuid.UUID
	Params  Params
	Running bool

	app *App
}

// Activate allocates every resource of a session, in order: window, GPU
// state, particle set, render pipeline and buffers. The render loop is not
// started; call Run. Initialization failures panic, per the render stack's
// contract. There is no partially-activated session to recover.
func Activate(cfg SessionConfig) *Session {
	if cfg.WindowWidth <= 0 {
		cfg.WindowWidth = 1280
	}
	if cfg.WindowHeight <= 0 {
		cfg.WindowHeight = 720
	}
	if cfg.WindowTitle == "" {
		cfg.WindowTitle = "dust sphere"
	}
	params := cfg.Params.normalized()

	sess := &Session{
		ID:      uuid.New(),
		Params:  params,
		Running: true,
	}

	app := NewAppBuilder().
		UseModule(
			LoggingModule{Prefix: "dust", Debug: cfg.Debug},
			ClockModule{},
			PointsModule{
				WindowWidth:  cfg.WindowWidth,
				WindowHeight: cfg.WindowHeight,
				WindowTitle:  cfg.WindowTitle,
			},
			InputModule{},
			OrbitCameraModule{
				Distance: 3 * params.BaseRadius,
				Aspect:   float32(cfg.WindowWidth) / float32(cfg.WindowHeight),
			},
			DustModule{Params: params},
			ControlsModule{},
		).
		Build()

	app.addResources(sess)
	sess.app = app

	app.Logger().Infof("Session %s activated: %d points, radius %.2f", sess.ID, params.ParticleCount, params.BaseRadius)
	return sess
}

// Run drives the render loop until the operator quits or the window closes.
// The session is deactivated when Run returns.
func (s *Session) Run() {
	s.app.Run()
}

// Deactivate releases all session resources, in reverse order of
// acquisition. Safe to call more than once and after Run has returned.
func (s *Session) Deactivate() {
	s.app.Shutdown()
	s.app.Logger().Infof("Session %s deactivated", s.ID)
}
