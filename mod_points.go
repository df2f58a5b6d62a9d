package dust

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// PointsModule is the render host: it owns the window, the GPU state and the
// point-list pipeline that draws the dust cloud. All of its resources belong
// to one activation; Shutdown releases them in reverse order of acquisition.
type PointsModule struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

type pointVertex struct {
	pos [3]float32 `dust:"layout" location:"0" format:"float3"`
}

type pointsCameraUniform struct {
	ViewProj mgl32.Mat4
}

type pointsModelUniform struct {
	Model mgl32.Mat4
}

// One ambient and one directional light, fixed and subtle. Packed as vec4s
// for WGSL uniform alignment.
type pointsLightUniform struct {
	Ambient   mgl32.Vec4
	Direction mgl32.Vec4
	Color     mgl32.Vec4
}

type pointsRenderState struct {
	pipeline     *wgpu.RenderPipeline
	vertexBuffer *wgpu.Buffer
	cameraBuffer *wgpu.Buffer
	modelBuffer  *wgpu.Buffer
	lightBuffer  *wgpu.Buffer
	bindGroup    *wgpu.BindGroup

	cameraUniform pointsCameraUniform
	modelUniform  pointsModelUniform
	lightUniform  pointsLightUniform

	vertexCount uint32
	ready       bool
}

func (mod PointsModule) Install(app *App, cmd *Commands) {
	windowState := createWindowState(mod.WindowWidth, mod.WindowHeight, mod.WindowTitle)
	cmd.OnRelease("window", windowState.release)

	gpuState := createGpuState(windowState)
	cmd.OnRelease("gpu", gpuState.release)

	rState := &pointsRenderState{
		cameraUniform: pointsCameraUniform{ViewProj: mgl32.Ident4()},
		modelUniform:  pointsModelUniform{Model: mgl32.Ident4()},
		lightUniform: pointsLightUniform{
			Ambient:   mgl32.Vec4{0.35, 0.35, 0.38, 0},
			Direction: mgl32.Vec4{-0.4, -0.6, -0.7, 0},
			Color:     mgl32.Vec4{0.75, 0.72, 0.68, 0},
		},
	}
	cmd.OnRelease("points", rState.release)

	app.UseSystem(
		System(windowEventsSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(resizeSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(createPointsResources).
			InStage(PreRender),
	)
	app.UseSystem(
		System(uploadPointsSystem).
			InStage(PreRender),
	)
	app.UseSystem(
		System(pointsRendering).
			InStage(Render),
	)

	cmd.AddResources(
		windowState,
		gpuState,
		rState,
	)
}

func windowEventsSystem(state *WindowState, cmd *Commands) {
	if state.windowGlfw == nil || state.windowGlfw.ShouldClose() {
		cmd.Quit()
	}
}

// resizeSystem reacts to viewport changes: reconfigure the swapchain and the
// camera aspect, nothing else. The particle set is untouched.
func resizeSystem(state *WindowState, gpuState *GpuState, cam *Camera, cmd *Commands) {
	if state.windowGlfw == nil {
		return
	}
	w, h := state.windowGlfw.GetSize()
	if w <= 0 || h <= 0 {
		return
	}
	if w == state.WindowWidth && h == state.WindowHeight {
		return
	}

	state.WindowWidth = w
	state.WindowHeight = h
	gpuState.reconfigure(w, h)
	cam.Aspect = float32(w) / float32(h)
	cmd.Logger().Debugf("Surface resized to %dx%d", w, h)
}

// createPointsResources builds the pipeline, the vertex buffer bound to the
// cloud's position array and the uniform buffers, once. Readiness flips only
// after the bind group exists, which is what the self-check consumes.
func createPointsResources(gpuState *GpuState, rState *pointsRenderState, cloud *Cloud, cmd *Commands) {
	if rState.pipeline != nil {
		return
	}

	rState.pipeline = createRenderPipeline("points", pointsShaderCode, pointVertex{}, wgpu.PrimitiveTopologyPointList, gpuState)

	positions := cloud.Layout.Positions
	if len(positions) == 0 {
		// keep at least 1 element to avoid zero-sized buffer
		positions = make([]mgl32.Vec3, 1)
	}
	vertexBuffer, err := gpuState.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Point Vertex Buffer",
		Contents: rawSliceBytes(positions),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	rState.vertexBuffer = vertexBuffer
	rState.vertexCount = uint32(cloud.Count())

	rState.cameraBuffer = createBuffer("camera", rState.cameraUniform, gpuState, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	rState.modelBuffer = createBuffer("model", rState.modelUniform, gpuState, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	rState.lightBuffer = createBuffer("light", rState.lightUniform, gpuState, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)

	bindGroupLayout := rState.pipeline.GetBindGroupLayout(0)
	defer bindGroupLayout.Release()

	bindGroup, err := gpuState.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: rState.cameraBuffer, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: rState.modelBuffer, Size: wgpu.WholeSize},
			{Binding: 2, Buffer: rState.lightBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}
	rState.bindGroup = bindGroup
	rState.ready = true

	cmd.Logger().Infof("Point cloud ready: %d points", rState.vertexCount)
}

// uploadPointsSystem refreshes the per-frame GPU data: the mutated position
// buffer, the camera matrix and the cloud rotation. Rotation is a property of
// the rendered object derived from absolute elapsed time, so it advances even
// while the pulse is paused.
func uploadPointsSystem(gpuState *GpuState, rState *pointsRenderState, cloud *Cloud, cam *Camera, clock *Clock) {
	if !rState.ready {
		return
	}

	if cloud.Count() > 0 {
		err := gpuState.queue.WriteBuffer(rState.vertexBuffer, 0, rawSliceBytes(cloud.Layout.Positions))
		if err != nil {
			panic(err)
		}
	}

	rState.cameraUniform.ViewProj = buildCameraMatrix(cam)

	rotY, rotX := cloud.RotationAt(clock.Elapsed)
	rState.modelUniform.Model = mgl32.HomogRotate3DY(rotY).Mul4(mgl32.HomogRotate3DX(rotX))

	err := gpuState.queue.WriteBuffer(rState.cameraBuffer, 0, toBufferBytes(rState.cameraUniform))
	if err != nil {
		panic(err)
	}
	err = gpuState.queue.WriteBuffer(rState.modelBuffer, 0, toBufferBytes(rState.modelUniform))
	if err != nil {
		panic(err)
	}
}

// renders single frame
func pointsRendering(rState *pointsRenderState, gpuState *GpuState) {
	if !rState.ready {
		return
	}

	nextTexture, err := gpuState.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := gpuState.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0.02, G: 0.02, B: 0.04, A: 1.0},
			},
		},
	})
	defer renderPass.Release()

	renderPass.SetPipeline(rState.pipeline)
	renderPass.SetVertexBuffer(0, rState.vertexBuffer, 0, wgpu.WholeSize)
	renderPass.SetBindGroup(0, rState.bindGroup, nil)
	if rState.vertexCount > 0 {
		renderPass.Draw(rState.vertexCount, 1, 0, 0)
	}

	err = renderPass.End()
	if err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	gpuState.queue.Submit(cmdBuffer)
	gpuState.surface.Present()
}

// release detaches the point cloud's GPU objects and nulls the handles so a
// stale reference can never touch freed memory.
func (rs *pointsRenderState) release() {
	rs.ready = false

	if rs.bindGroup != nil {
		rs.bindGroup.Release()
		rs.bindGroup = nil
	}
	if rs.lightBuffer != nil {
		rs.lightBuffer.Release()
		rs.lightBuffer = nil
	}
	if rs.modelBuffer != nil {
		rs.modelBuffer.Release()
		rs.modelBuffer = nil
	}
	if rs.cameraBuffer != nil {
		rs.cameraBuffer.Release()
		rs.cameraBuffer = nil
	}
	if rs.vertexBuffer != nil {
		rs.vertexBuffer.Release()
		rs.vertexBuffer = nil
	}
	if rs.pipeline != nil {
		rs.pipeline.Release()
		rs.pipeline = nil
	}
}
