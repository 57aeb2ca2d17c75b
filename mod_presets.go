package tesseract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gekko3d/tesseract/rt/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// ViewPreset is a saved orientation: 4D rotation, orbit and view settings.
type ViewPreset struct {
	Rotation       mgl32.Mat4 `json:"rotation"`
	Distance       float32    `json:"distance"`
	Yaw            float32    `json:"yaw"`
	Pitch          float32    `json:"pitch"`
	StickerScale   float32    `json:"sticker_scale"`
	FaceSpacing    float32    `json:"face_spacing"`
	ViewerDistance float32    `json:"viewer_distance"`
	RenderMode     string     `json:"render_mode"`
}

func CaptureViewPreset(rot *Rotation4D, ctrl *camera.Controller, view *ViewSettings) ViewPreset {
	return ViewPreset{
		Rotation:       rot.Matrix,
		Distance:       ctrl.Distance,
		Yaw:            ctrl.Yaw,
		Pitch:          ctrl.Pitch,
		StickerScale:   view.Params.StickerScale,
		FaceSpacing:    view.Params.FaceSpacing,
		ViewerDistance: view.Params.ViewerDistance,
		RenderMode:     view.RenderMode.String(),
	}
}

// Apply validates the preset and then writes it into the state. Nothing is
// changed when validation fails.
func (p ViewPreset) Apply(rot *Rotation4D, ctrl *camera.Controller, view *ViewSettings) error {
	mode, err := ParseRenderMode(p.RenderMode)
	if err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	candidate := *rot
	if err := candidate.Set(p.Rotation); err != nil {
		return fmt.Errorf("preset: %w", err)
	}

	*rot = candidate
	ctrl.Distance = p.Distance
	ctrl.Yaw = p.Yaw
	ctrl.Pitch = p.Pitch
	ctrl.ProcessMouseMotion(0, 0)
	ctrl.ProcessScroll(0)
	view.Params.StickerScale = p.StickerScale
	view.Params.FaceSpacing = p.FaceSpacing
	view.Params.ViewerDistance = p.ViewerDistance
	view.Params = view.Params.Clamped()
	view.RenderMode = mode
	return nil
}

func WriteViewPreset(filename string, p ViewPreset) error {
	bytes, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}

func ReadViewPreset(filename string) (ViewPreset, error) {
	var p ViewPreset
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(bytes, &p); err != nil {
		return p, fmt.Errorf("preset %s: %w", filename, err)
	}
	return p, nil
}

func SaveViewPreset(app *App, filename string) error {
	rot, ctrl, view := Resource[Rotation4D](app), Resource[camera.Controller](app), Resource[ViewSettings](app)
	if rot == nil || ctrl == nil || view == nil {
		return fmt.Errorf("save preset: hypercube or camera module not installed")
	}
	return WriteViewPreset(filename, CaptureViewPreset(rot, ctrl, view))
}

func LoadViewPreset(app *App, filename string) error {
	rot, ctrl, view := Resource[Rotation4D](app), Resource[camera.Controller](app), Resource[ViewSettings](app)
	if rot == nil || ctrl == nil || view == nil {
		return fmt.Errorf("load preset: hypercube or camera module not installed")
	}
	p, err := ReadViewPreset(filename)
	if err != nil {
		return err
	}
	return p.Apply(rot, ctrl, view)
}

// PresetStore remembers where the F5/F9 presets live.
type PresetStore struct {
	Path string
}

type PresetModule struct {
	Path string
}

func (m PresetModule) Install(app *App, cmd *Commands) {
	path := m.Path
	if path == "" {
		path = "tesseract_view.json"
	}
	cmd.AddResources(&PresetStore{Path: path})
	app.UseSystem(
		System(presetSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

func presetSystem(input *Input, store *PresetStore, rot *Rotation4D, ctrl *camera.Controller, view *ViewSettings, log Logger) {
	if input.SaveRequested {
		input.SaveRequested = false
		if err := WriteViewPreset(store.Path, CaptureViewPreset(rot, ctrl, view)); err != nil {
			log.Errorf("save preset %s: %v", store.Path, err)
		} else {
			log.Infof("saved view preset to %s", store.Path)
		}
	}
	if input.LoadRequested {
		input.LoadRequested = false
		p, err := ReadViewPreset(store.Path)
		if err == nil {
			err = p.Apply(rot, ctrl, view)
		}
		if err != nil {
			log.Errorf("load preset %s: %v", store.Path, err)
			return
		}
		log.Infof("loaded view preset from %s", store.Path)
	}
}
