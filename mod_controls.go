package dust

import (
	"fmt"
)

// ControlsModule is the operator surface: Space toggles the pulse, C runs the
// consistency self-check, Escape ends the session. Status is mirrored into
// the window title.
type ControlsModule struct{}

type controlsState struct {
	lastTitle string
}

func (mod ControlsModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&controlsState{})
	app.UseSystem(
		System(controlsSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(statusTitleSystem).
			InStage(PostUpdate),
	)
}

func controlsSystem(input *Input, sess *Session, cloud *Cloud, rState *pointsRenderState, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		cmd.Quit()
		return
	}

	if input.JustPressed[KeySpace] {
		sess.Running = !sess.Running
		if sess.Running {
			cmd.Logger().Infof("Animation resumed")
		} else {
			cmd.Logger().Infof("Animation paused")
		}
	}

	if input.JustPressed[KeyC] {
		report := runSelfCheck(sess, cloud, rState)
		if report.OK() {
			cmd.Logger().Infof("%s", report)
		} else {
			cmd.Logger().Warnf("%s", report)
		}
	}

	if input.JustPressed[KeyD] {
		logger := cmd.Logger()
		logger.SetDebug(!logger.DebugEnabled())
	}
}

func statusTitleSystem(state *controlsState, sess *Session, rState *pointsRenderState, ws *WindowState) {
	var title string
	if !rState.ready {
		title = fmt.Sprintf("%s — loading", ws.windowTitle)
	} else if sess.Running {
		title = fmt.Sprintf("%s — %d points — running", ws.windowTitle, rState.vertexCount)
	} else {
		title = fmt.Sprintf("%s — %d points — paused", ws.windowTitle, rState.vertexCount)
	}

	if title != state.lastTitle && ws.windowGlfw != nil {
		ws.windowGlfw.SetTitle(title)
		state.lastTitle = title
	}
}
