package tesseract

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/gekko3d/tesseract/rt/camera"
	"github.com/gekko3d/tesseract/rt/pick"
	"github.com/gekko3d/tesseract/rt/xform"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	View     ViewConfig     `yaml:"view"`
	Camera   CameraConfig   `yaml:"camera"`
	Rotation RotationConfig `yaml:"rotation"`
	Logging  LoggingConfig  `yaml:"logging"`
	Preset   string         `yaml:"preset"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	HUD    bool   `yaml:"hud"`
}

type ViewConfig struct {
	StickerScale   float32 `yaml:"sticker_scale"`
	FaceSpacing    float32 `yaml:"face_spacing"`
	ViewerDistance float32 `yaml:"viewer_distance"`
	RenderMode     string  `yaml:"render_mode"`
	AABBMode       string  `yaml:"aabb_mode"`
}

type CameraConfig struct {
	Distance        float32 `yaml:"distance"`
	Yaw             float32 `yaml:"yaw"`
	Pitch           float32 `yaml:"pitch"`
	Sensitivity     float32 `yaml:"sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
	FovY            float32 `yaml:"fovy"`
}

type RotationConfig struct {
	Sensitivity float32 `yaml:"sensitivity"`
}

type LoggingConfig struct {
	Prefix  string `yaml:"prefix"`
	Debug   bool   `yaml:"debug"`
	Backend string `yaml:"backend"`
}

func DefaultConfig() *Config {
	params := xform.DefaultParams()
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Tesseract", HUD: true},
		View: ViewConfig{
			StickerScale:   params.StickerScale,
			FaceSpacing:    params.FaceSpacing,
			ViewerDistance: params.ViewerDistance,
			RenderMode:     RenderStandard.String(),
			AABBMode:       pick.AABBNone.String(),
		},
		Camera: CameraConfig{
			Distance:        camera.DefaultDistance,
			Sensitivity:     0.5,
			ZoomSensitivity: 1,
			FovY:            45,
		},
		Rotation: RotationConfig{Sensitivity: xform.DefaultSensitivity},
		Logging:  LoggingConfig{Prefix: "tesseract", Backend: LogBackendStd},
		Preset:   "tesseract_view.json",
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file is not an
// error; malformed YAML is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps every value into its usable range. Out-of-range values
// are recovered here, never reported.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}

	p := xform.Params{
		StickerScale:   c.View.StickerScale,
		FaceSpacing:    c.View.FaceSpacing,
		ViewerDistance: c.View.ViewerDistance,
	}.Clamped()
	c.View.StickerScale, c.View.FaceSpacing, c.View.ViewerDistance = p.StickerScale, p.FaceSpacing, p.ViewerDistance
	if _, err := ParseRenderMode(c.View.RenderMode); err != nil {
		c.View.RenderMode = def.View.RenderMode
	}
	if _, ok := parseAABBMode(c.View.AABBMode); !ok {
		c.View.AABBMode = def.View.AABBMode
	}

	c.Camera.Distance = finiteOr(c.Camera.Distance, def.Camera.Distance)
	c.Camera.Yaw = finiteOr(c.Camera.Yaw, def.Camera.Yaw)
	c.Camera.Pitch = finiteOr(c.Camera.Pitch, def.Camera.Pitch)
	c.Camera.Sensitivity = finiteOr(c.Camera.Sensitivity, def.Camera.Sensitivity)
	c.Camera.ZoomSensitivity = finiteOr(c.Camera.ZoomSensitivity, def.Camera.ZoomSensitivity)
	c.Camera.FovY = finiteOr(c.Camera.FovY, def.Camera.FovY)
	c.Rotation.Sensitivity = finiteOr(c.Rotation.Sensitivity, def.Rotation.Sensitivity)

	c.Camera.Distance = mgl32.Clamp(c.Camera.Distance, camera.MinDistance, camera.MaxDistance)
	c.Camera.Pitch = mgl32.Clamp(c.Camera.Pitch, camera.MinPitch, camera.MaxPitch)
	if c.Camera.Sensitivity <= 0 {
		c.Camera.Sensitivity = def.Camera.Sensitivity
	}
	if c.Camera.ZoomSensitivity <= 0 {
		c.Camera.ZoomSensitivity = def.Camera.ZoomSensitivity
	}
	c.Camera.FovY = mgl32.Clamp(c.Camera.FovY, 10, 120)

	if c.Rotation.Sensitivity <= 0 {
		c.Rotation.Sensitivity = def.Rotation.Sensitivity
	}
	if c.Logging.Backend != LogBackendZap {
		c.Logging.Backend = LogBackendStd
	}
}

// finiteOr returns v, or def when v is NaN or infinite. Clamp passes NaN
// through, so this has to run first.
func finiteOr(v, def float32) float32 {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return v
}

func parseAABBMode(s string) (pick.AABBMode, bool) {
	for _, m := range []pick.AABBMode{pick.AABBNone, pick.AABBFace, pick.AABBSticker} {
		if m.String() == s {
			return m, true
		}
	}
	return pick.AABBNone, false
}

// Modules returns the core modules configured from c, in install order.
// Presenters (raster, window) are added by the caller.
func (c *Config) Modules() []Module {
	mode, _ := ParseRenderMode(c.View.RenderMode)
	aabb, _ := parseAABBMode(c.View.AABBMode)
	return []Module{
		LoggingModule{Prefix: c.Logging.Prefix, Debug: c.Logging.Debug, Backend: c.Logging.Backend},
		TimeModule{},
		InputModule{Width: c.Window.Width, Height: c.Window.Height},
		HypercubeModule{
			View: xform.Params{
				StickerScale:   c.View.StickerScale,
				FaceSpacing:    c.View.FaceSpacing,
				ViewerDistance: c.View.ViewerDistance,
			},
			Mode:        mode,
			AABBMode:    aabb,
			Sensitivity: c.Rotation.Sensitivity,
		},
		OrbitCameraModule{
			Width:       c.Window.Width,
			Height:      c.Window.Height,
			Distance:    c.Camera.Distance,
			Yaw:         c.Camera.Yaw,
			Pitch:       c.Camera.Pitch,
			Sensitivity: c.Camera.Sensitivity,
			Zoom:        c.Camera.ZoomSensitivity,
			FovY:        c.Camera.FovY,
		},
		InteractionModule{},
		PickingModule{},
		InstanceModule{},
		PresetModule{Path: c.Preset},
	}
}
