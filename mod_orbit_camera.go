package dust

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the single view into the scene, always aimed at the origin.
type Camera struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Up       mgl32.Vec3

	Fov    float32 // radians
	Aspect float32
	Near   float32
	Far    float32
}

// OrbitCamera holds the damped drag/zoom state. Drag and wheel input feed
// velocities; every tick the velocities move the orbit angles and then decay,
// so motion coasts to a stop instead of cutting out. Damping keeps running
// while the animation is paused.
type OrbitCamera struct {
	Yaw      float32 // radians around Y
	Pitch    float32 // radians above the equator
	Distance float32

	MinDistance float32
	MaxDistance float32
	Damping     float32
	Sensitivity float32
	ZoomSpeed   float32

	yawVel   float32
	pitchVel float32
	zoomVel  float32
}

type OrbitCameraModule struct {
	Distance float32
	Aspect   float32
}

func (m OrbitCameraModule) Install(app *App, cmd *Commands) {
	cam := &Camera{
		Position: mgl32.Vec3{0, 0, m.Distance},
		LookAt:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Fov:      mgl32.DegToRad(45),
		Aspect:   m.Aspect,
		Near:     0.01,
		Far:      200,
	}
	orbit := &OrbitCamera{
		Distance:    m.Distance,
		MinDistance: m.Distance * 0.2,
		MaxDistance: m.Distance * 4,
		Damping:     0.07,
		Sensitivity: 0.005,
		ZoomSpeed:   0.08,
	}
	cmd.AddResources(cam, orbit)

	app.UseSystem(
		System(orbitCameraInputSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(orbitCameraControlSystem).
			InStage(Update),
	)
}

func orbitCameraInputSystem(input *Input, orbit *OrbitCamera) {
	if input.Pressed[MouseButtonLeft] && !input.JustPressed[MouseButtonLeft] {
		orbit.yawVel += float32(input.MouseDeltaX) * orbit.Sensitivity
		orbit.pitchVel += float32(input.MouseDeltaY) * orbit.Sensitivity
	}
	if input.ScrollY != 0 {
		orbit.zoomVel -= float32(input.ScrollY) * orbit.ZoomSpeed
	}
}

func orbitCameraControlSystem(orbit *OrbitCamera, cam *Camera) {
	orbit.Yaw += orbit.yawVel
	orbit.Pitch += orbit.pitchVel
	orbit.Distance *= 1.0 + orbit.zoomVel

	// Clamp pitch short of the poles so Up never degenerates
	limit := float32(math.Pi/2 - 0.01)
	if orbit.Pitch > limit {
		orbit.Pitch = limit
	}
	if orbit.Pitch < -limit {
		orbit.Pitch = -limit
	}
	if orbit.Distance < orbit.MinDistance {
		orbit.Distance = orbit.MinDistance
	}
	if orbit.Distance > orbit.MaxDistance {
		orbit.Distance = orbit.MaxDistance
	}

	decay := 1.0 - orbit.Damping
	orbit.yawVel *= decay
	orbit.pitchVel *= decay
	orbit.zoomVel *= decay

	cosPitch := float32(math.Cos(float64(orbit.Pitch)))
	cam.Position = mgl32.Vec3{
		orbit.Distance * cosPitch * float32(math.Sin(float64(orbit.Yaw))),
		orbit.Distance * float32(math.Sin(float64(orbit.Pitch))),
		orbit.Distance * cosPitch * float32(math.Cos(float64(orbit.Yaw))),
	}
	cam.LookAt = mgl32.Vec3{0, 0, 0}
	cam.Up = mgl32.Vec3{0, 1, 0}
}

func buildCameraMatrix(c *Camera) mgl32.Mat4 {
	view := mgl32.LookAtV(
		c.Position,
		c.LookAt,
		c.Up,
	)
	projection := mgl32.Perspective(
		c.Fov,
		c.Aspect,
		c.Near,
		c.Far,
	)
	return projection.Mul4(view)
}
