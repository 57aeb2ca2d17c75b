package tesseract

import (
	"github.com/gekko3d/tesseract/rt/camera"
	"github.com/go-gl/mathgl/mgl32"
)

type OrbitCameraModule struct {
	Width, Height int
	Distance      float32
	Yaw, Pitch    float32
	Sensitivity   float32
	Zoom          float32
	FovY          float32
}

func (m OrbitCameraModule) Install(app *App, cmd *Commands) {
	ctrl := camera.NewController()
	if m.Distance > 0 {
		ctrl.Distance = m.Distance
	}
	ctrl.Yaw = finiteOr(m.Yaw, 0)
	ctrl.Pitch = finiteOr(m.Pitch, 0)
	ctrl.ProcessMouseMotion(0, 0) // applies the pitch clamp
	ctrl.ProcessScroll(0)         // and the distance clamp
	if finiteOr(m.Sensitivity, 0) > 0 {
		ctrl.Sensitivity = m.Sensitivity
	}
	if finiteOr(m.Zoom, 0) > 0 {
		ctrl.ZoomSensitivity = m.Zoom
	}

	proj := camera.NewProjection(m.Width, m.Height)
	if fovy := finiteOr(m.FovY, 0); fovy > 0 {
		proj.FovY = mgl32.Clamp(fovy, 10, 120)
	}

	cam := camera.DefaultCamera()
	ctrl.UpdateCamera(cam)

	cmd.AddResources(cam, ctrl, proj)
	app.UseSystem(
		System(orbitCameraSystem).
			InStage(Update).
			RunAlways(),
	)
}

// orbitCameraSystem is the sole writer of the camera.
func orbitCameraSystem(ctrl *camera.Controller, cam *camera.Camera) {
	ctrl.UpdateCamera(cam)
}
