package tesseract

import (
	"path/filepath"
	"testing"

	"github.com/gekko3d/tesseract/rt/camera"
	"github.com/gekko3d/tesseract/rt/pick"
	"github.com/gekko3d/tesseract/rt/xform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	input *Input
	rot   *Rotation4D
	ctrl  *camera.Controller
	cam   *camera.Camera
	proj  *camera.Projection
	view  *ViewSettings
	sel   *Selection
	frame *Frame
}

func newTestApp(t *testing.T, extra ...Module) testApp {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 800, 600
	cfg.Preset = filepath.Join(t.TempDir(), "view.json")

	app := NewAppBuilder().
		UseStates(StateRunning, StateExiting).
		UseModule(cfg.Modules()...).
		UseModule(extra...).
		Build()

	ta := testApp{
		App:   app,
		input: Resource[Input](app),
		rot:   Resource[Rotation4D](app),
		ctrl:  Resource[camera.Controller](app),
		cam:   Resource[camera.Camera](app),
		proj:  Resource[camera.Projection](app),
		view:  Resource[ViewSettings](app),
		sel:   Resource[Selection](app),
		frame: Resource[Frame](app),
	}
	require.NotNil(t, ta.input)
	require.NotNil(t, ta.rot)
	require.NotNil(t, ta.ctrl)
	require.NotNil(t, ta.frame)
	return ta
}

// drag presses the right button at from and moves through the points.
func drag(from mgl32.Vec2, through ...mgl32.Vec2) []Event {
	events := []Event{PointerMoved(from.X(), from.Y()), ButtonPressed(MouseButtonRight)}
	for _, p := range through {
		events = append(events, PointerMoved(p.X(), p.Y()))
	}
	return append(events, ButtonReleased(MouseButtonRight))
}

func TestInteraction_OrbitDrag(t *testing.T) {
	app := newTestApp(t)

	app.input.Push(PointerMoved(100, 100), ButtonPressed(MouseButtonRight), PointerMoved(110, 100))
	require.True(t, app.Step())

	assert.Equal(t, ModeOrbit, app.input.Mode())
	assert.InDelta(t, -5, app.ctrl.Yaw, 1e-5)
	assert.Equal(t, mgl32.Ident4(), app.rot.Matrix, "orbit must not touch the 4D rotation")
	assert.Less(t, app.cam.Eye.X(), float32(0))
	assert.Equal(t, -1, app.sel.Hovered, "no hover while orbiting")
}

func TestInteraction_Rotate4DDrag(t *testing.T) {
	app := newTestApp(t)

	app.input.Push(ModifierChanged(true))
	app.input.Push(drag(mgl32.Vec2{100, 100}, mgl32.Vec2{110, 100})...)
	require.True(t, app.Step())

	want := xform.AccumulateRotationScaled(mgl32.Ident4(), 10, 0, xform.DefaultSensitivity)
	assert.True(t, xform.ApproxEqual(want, app.rot.Matrix, 1e-6))
	assert.Equal(t, float32(0), app.ctrl.Yaw, "4D drag must not orbit")
	assert.Equal(t, 1, app.rot.Updates())
	assert.Equal(t, ModeHover, app.input.Mode())
}

func TestInteraction_DragOrderMatters(t *testing.T) {
	xThenY := newTestApp(t)
	xThenY.input.Push(ModifierChanged(true))
	xThenY.input.Push(drag(mgl32.Vec2{100, 100}, mgl32.Vec2{130, 100}, mgl32.Vec2{130, 130})...)
	xThenY.Step()

	yThenX := newTestApp(t)
	yThenX.input.Push(ModifierChanged(true))
	yThenX.input.Push(drag(mgl32.Vec2{100, 100}, mgl32.Vec2{100, 130}, mgl32.Vec2{130, 130})...)
	yThenX.Step()

	s := xform.DefaultSensitivity
	wantXY := xform.AccumulateRotationScaled(xform.AccumulateRotationScaled(mgl32.Ident4(), 30, 0, s), 0, 30, s)
	wantYX := xform.AccumulateRotationScaled(xform.AccumulateRotationScaled(mgl32.Ident4(), 0, 30, s), 30, 0, s)

	assert.True(t, xform.ApproxEqual(wantXY, xThenY.rot.Matrix, 1e-6))
	assert.True(t, xform.ApproxEqual(wantYX, yThenX.rot.Matrix, 1e-6))
	assert.False(t, xform.ApproxEqual(xThenY.rot.Matrix, yThenX.rot.Matrix, 1e-3), "the same total drag in a different order must differ")
}

func TestInteraction_ReleaseStopsDrag(t *testing.T) {
	app := newTestApp(t)

	app.input.Push(drag(mgl32.Vec2{100, 100}, mgl32.Vec2{120, 100})...)
	app.input.Push(PointerMoved(300, 100))
	app.Step()

	assert.InDelta(t, -10, app.ctrl.Yaw, 1e-5)
	assert.Nil(t, app.ctrl.LastMousePos)
	assert.Equal(t, mgl32.Vec2{300, 100}, app.input.Pointer)
}

func TestInteraction_LeftButtonIgnored(t *testing.T) {
	app := newTestApp(t)

	app.input.Push(PointerMoved(100, 100), ButtonPressed(MouseButtonLeft), PointerMoved(150, 100))
	app.Step()

	assert.False(t, app.input.RotateHeld)
	assert.Equal(t, float32(0), app.ctrl.Yaw)
}

func TestInteraction_Scroll(t *testing.T) {
	app := newTestApp(t)

	app.input.Push(Scrolled(2))
	app.Step()
	assert.Equal(t, float32(13), app.ctrl.Distance)

	app.input.Push(Scrolled(-100))
	app.Step()
	assert.Equal(t, camera.MaxDistance, app.ctrl.Distance)
}

func TestInteraction_Keys(t *testing.T) {
	app := newTestApp(t)

	app.input.Push(KeyPressed(Key2))
	app.Step()
	assert.Equal(t, RenderNormals, app.view.RenderMode)

	app.input.Push(KeyPressed(Key3), KeyPressed(KeyRightBracket), KeyPressed(KeyMinus), KeyPressed(KeyB))
	app.Step()
	assert.Equal(t, RenderDepth, app.view.RenderMode)
	assert.InDelta(t, 0.55, app.view.Params.StickerScale, 1e-6)
	assert.InDelta(t, 1.9, app.view.Params.FaceSpacing, 1e-6)
	assert.Equal(t, pick.AABBFace, app.view.AABBMode)

	app.input.Push(KeyPressed(Key1), KeyPressed(KeyLeftBracket), KeyPressed(KeyEqual), KeyPressed(KeyB))
	app.Step()
	assert.Equal(t, RenderStandard, app.view.RenderMode)
	assert.InDelta(t, 0.5, app.view.Params.StickerScale, 1e-6)
	assert.InDelta(t, 2.0, app.view.Params.FaceSpacing, 1e-6)
	assert.Equal(t, pick.AABBSticker, app.view.AABBMode)

	app.input.Push(KeyPressed(KeyUnknown))
	assert.True(t, app.Step())
}

func TestInteraction_ParamsClamp(t *testing.T) {
	app := newTestApp(t)

	app.input.Push(StickerScaleChanged(3), FaceSpacingChanged(-1))
	app.Step()

	assert.Equal(t, float32(1), app.view.Params.StickerScale)
	assert.Equal(t, float32(1), app.view.Params.FaceSpacing)
}

func TestInteraction_Reset(t *testing.T) {
	app := newTestApp(t)

	app.input.Push(drag(mgl32.Vec2{0, 0}, mgl32.Vec2{40, 20})...)
	app.input.Push(ModifierChanged(true))
	app.input.Push(drag(mgl32.Vec2{0, 0}, mgl32.Vec2{40, 20})...)
	app.Step()
	require.NotEqual(t, float32(0), app.ctrl.Yaw)
	require.NotEqual(t, mgl32.Ident4(), app.rot.Matrix)

	app.input.Push(KeyPressed(KeyR))
	app.Step()
	assert.Equal(t, mgl32.Ident4(), app.rot.Matrix)
	assert.Equal(t, float32(0), app.ctrl.Yaw)
	assert.Equal(t, float32(0), app.ctrl.Pitch)
	assert.Equal(t, camera.DefaultDistance, app.ctrl.Distance)
}

func TestInteraction_Resize(t *testing.T) {
	app := newTestApp(t)
	aspect := app.proj.Aspect

	app.input.Push(Resized(0, 0))
	app.Step()
	assert.Equal(t, aspect, app.proj.Aspect)
	assert.Equal(t, float32(800), app.input.Viewport.Width)

	app.input.Push(Resized(400, 200))
	app.Step()
	assert.Equal(t, float32(2), app.proj.Aspect)
	assert.Equal(t, pick.Viewport{Width: 400, Height: 200}, app.input.Viewport)
	assert.Equal(t, app.input.Viewport, app.frame.Viewport)
}

func TestInteraction_CloseRequested(t *testing.T) {
	for _, ev := range []Event{CloseRequested(), KeyPressed(KeyEscape)} {
		app := newTestApp(t)

		assert.True(t, app.Step())
		app.input.Push(ev)
		assert.False(t, app.Step())
		assert.True(t, app.Finished())
		assert.Equal(t, StateExiting, app.State())
	}
}

func TestInteraction_ModeFromHeldState(t *testing.T) {
	in := NewInput(10, 10)
	assert.Equal(t, ModeHover, in.Mode())

	in.ModifierHeld = true
	assert.Equal(t, ModeHover, in.Mode(), "the modifier alone does not rotate")

	in.RotateHeld = true
	assert.Equal(t, ModeRotate4D, in.Mode())

	in.ModifierHeld = false
	assert.Equal(t, ModeOrbit, in.Mode())

	in.Push(ResetView(), ResetView())
	assert.Equal(t, 2, in.Pending())
	assert.Len(t, in.Drain(), 2)
	assert.Equal(t, 0, in.Pending())
}
