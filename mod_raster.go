package tesseract

import (
	"fmt"
	"image"

	"github.com/gekko3d/tesseract/rt/geom"
	"github.com/gekko3d/tesseract/rt/raster"
)

// Canvas is the CPU frame buffer that presenters display or save.
type Canvas struct {
	Image *image.RGBA
}

// RasterModule draws the Frame into the Canvas every frame.
type RasterModule struct {
	Width, Height int
	HUD           bool
}

type rasterState struct {
	renderer *raster.Renderer
	hud      bool
	scene    raster.Scene
}

func (m RasterModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(
		&Canvas{Image: image.NewRGBA(image.Rect(0, 0, max(m.Width, 1), max(m.Height, 1)))},
		&rasterState{renderer: raster.NewRenderer(), hud: m.HUD},
	)
	app.UseSystem(
		System(rasterSystem).
			InStage(Render).
			RunAlways(),
	)
}

func rasterSystem(frame *Frame, canvas *Canvas, state *rasterState, t *Time) {
	w, h := int(frame.Viewport.Width), int(frame.Viewport.Height)
	if w > 0 && h > 0 && (canvas.Image.Bounds().Dx() != w || canvas.Image.Bounds().Dy() != h) {
		canvas.Image = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	s := &state.scene
	s.Instances = frame.Instances
	s.ViewProjection = frame.ViewProjection
	s.Eye = frame.Eye
	s.Hovered = frame.Hovered
	s.Debug = frame.Debug
	s.Shading = frame.Mode.Shading()
	s.HUD = s.HUD[:0]
	if state.hud {
		s.HUD = append(s.HUD, hudLines(frame, t)...)
	}

	state.renderer.Draw(canvas.Image, s)
}

func hudLines(frame *Frame, t *Time) []string {
	hover := "-"
	if frame.Hovered >= 0 {
		hover = fmt.Sprintf("%d (face %d)", frame.Hovered, frame.Hovered/geom.StickersPerFace)
	}
	return []string{
		fmt.Sprintf("%s | %s | aabb %s", frame.Mode, frame.Interaction, frame.AABBMode),
		fmt.Sprintf("scale %.2f  spacing %.2f", frame.Params.StickerScale, frame.Params.FaceSpacing),
		fmt.Sprintf("hover %s", hover),
		fmt.Sprintf("%.0f fps", t.FPS()),
	}
}
