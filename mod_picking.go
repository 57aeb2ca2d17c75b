package tesseract

import (
	"github.com/gekko3d/tesseract/rt/camera"
	"github.com/gekko3d/tesseract/rt/geom"
	"github.com/gekko3d/tesseract/rt/pick"
)

// Selection is the sticker under the pointer, refreshed every frame while
// hovering.
type Selection struct {
	Hovered int
	Face    int
	T       float32
	Debug   []pick.DebugBox
	Err     error
}

func NewSelection() *Selection {
	return &Selection{Hovered: -1, Face: -1}
}

func (s *Selection) Clear() {
	s.Hovered = -1
	s.Face = -1
	s.T = 0
	s.Debug = nil
}

func (s *Selection) HasHover() bool {
	return s.Hovered >= 0
}

type PickingModule struct{}

func (m PickingModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewSelection())
	app.UseSystem(
		System(pickingSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

func pickingSystem(
	input *Input,
	cube *geom.Hypercube,
	rot *Rotation4D,
	cam *camera.Camera,
	proj *camera.Projection,
	view *ViewSettings,
	sel *Selection,
	log Logger,
) {
	if input.Mode() != ModeHover {
		sel.Clear()
		return
	}

	ray, err := pick.MouseRay(input.Pointer, input.Viewport, camera.ViewProjection(cam, proj))
	if err != nil {
		if sel.Err == nil {
			log.Warnf("hover ray: %v", err)
		}
		sel.Err = err
		sel.Clear()
		return
	}
	sel.Err = nil

	res := pick.FindIntersectedSticker(cube, pick.Query{
		Ray:      ray,
		Rotation: rot.Matrix,
		Params:   view.Params,
		AABBMode: view.AABBMode,
		Eye:      cam.Eye,
	})
	if res.Sticker != sel.Hovered {
		log.Debugf("hover: sticker %d face %d", res.Sticker, res.Face)
	}
	sel.Hovered = res.Sticker
	sel.Face = res.Face
	sel.T = res.T
	sel.Debug = res.Debug
}
