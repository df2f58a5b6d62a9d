package dust

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeySpace int = iota
	KeyC
	KeyD
	KeyEscape
	MouseButtonLeft
	MouseButtonRight

	inputSlots
)

type InputModule struct{}

type Input struct {
	Pressed [inputSlots]bool

	JustPressed  [inputSlots]bool
	JustReleased [inputSlots]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64

	// ScrollY is the wheel movement accumulated since the previous tick.
	ScrollY float64

	scrollAcc    float64
	callbacksSet bool
	mouseInit    bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input) {
	if !input.callbacksSet {
		s.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
			input.scrollAcc += yoff
		})
		input.callbacksSet = true
	}

	glfw.PollEvents()

	// Update Keyboard
	for key, glfwKey := range keyToGlfw {
		action := s.windowGlfw.GetKey(glfwKey)
		updateButton(input, key, action == glfw.Press)
	}

	// Update Mouse
	mx, my := s.windowGlfw.GetCursorPos()
	if input.mouseInit {
		input.MouseDeltaX = mx - input.MouseX
		input.MouseDeltaY = my - input.MouseY
	} else {
		input.mouseInit = true
	}
	input.MouseX = mx
	input.MouseY = my

	for btn, glfwBtn := range mouseToGlfw {
		action := s.windowGlfw.GetMouseButton(glfwBtn)
		updateButton(input, btn, action == glfw.Press)
	}

	input.ScrollY = input.scrollAcc
	input.scrollAcc = 0
}

func updateButton(input *Input, slot int, down bool) {
	input.JustPressed[slot] = false
	input.JustReleased[slot] = false

	if down {
		if !input.Pressed[slot] {
			input.JustPressed[slot] = true
		}
		input.Pressed[slot] = true
	} else {
		if input.Pressed[slot] {
			input.JustReleased[slot] = true
		}
		input.Pressed[slot] = false
	}
}

var keyToGlfw = map[int]glfw.Key{
	KeySpace:  glfw.KeySpace,
	KeyC:      glfw.KeyC,
	KeyD:      glfw.KeyD,
	KeyEscape: glfw.KeyEscape,
}

var mouseToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:  glfw.MouseButtonLeft,
	MouseButtonRight: glfw.MouseButtonRight,
}
