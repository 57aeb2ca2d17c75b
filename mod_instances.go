package tesseract

import (
	"github.com/gekko3d/tesseract/rt/camera"
	"github.com/gekko3d/tesseract/rt/geom"
	"github.com/gekko3d/tesseract/rt/pick"
	"github.com/gekko3d/tesseract/rt/xform"
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is everything a presenter needs to draw one frame. It is rebuilt
// in PreRender from the same rotation and params the picker used.
type Frame struct {
	Number         uint64
	Instances      []xform.Instance
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProjection mgl32.Mat4
	Eye            mgl32.Vec3
	Viewport       pick.Viewport
	Params         xform.Params
	Mode           RenderMode
	AABBMode       pick.AABBMode
	Hovered        int
	Debug          []pick.DebugBox
	Interaction    InteractionMode
}

type InstanceModule struct{}

func (m InstanceModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Frame{Hovered: -1})
	app.UseSystem(
		System(instanceSystem).
			InStage(PreRender).
			RunAlways(),
	)
}

func instanceSystem(
	cube *geom.Hypercube,
	rot *Rotation4D,
	cam *camera.Camera,
	proj *camera.Projection,
	view *ViewSettings,
	input *Input,
	sel *Selection,
	frame *Frame,
) {
	frame.Number++
	frame.Instances = xform.GenerateInstances(cube, rot.Matrix, view.Params)
	frame.View = cam.ViewMatrix()
	frame.Projection = proj.Matrix()
	frame.ViewProjection = frame.Projection.Mul4(frame.View)
	frame.Eye = cam.Eye
	frame.Viewport = input.Viewport
	frame.Params = view.Params
	frame.Mode = view.RenderMode
	frame.AABBMode = view.AABBMode
	frame.Hovered = sel.Hovered
	frame.Debug = sel.Debug
	frame.Interaction = input.Mode()
}
