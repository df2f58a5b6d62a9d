package dust

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// OnRelease registers a teardown step. Steps run in reverse registration
// order on Shutdown, so acquisition order doubles as release order.
func (cmd *Commands) OnRelease(name string, fn func()) *Commands {
	cmd.app.onRelease(name, fn)
	return cmd
}

// Quit requests a cooperative stop: the current tick completes in full and
// the loop exits before the next one.
func (cmd *Commands) Quit() {
	cmd.app.quit = true
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
