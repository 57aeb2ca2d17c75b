package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"runtime"

	"github.com/gekko3d/tesseract"
	"github.com/gekko3d/tesseract/rt/window"
	"github.com/google/uuid"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "tesseract.yaml", "YAML config file; missing means defaults")
	snapshot := flag.String("snapshot", "", "render one frame headless and write it to this PNG")
	snapshotAuto := flag.Bool("snapshot-auto", false, "like -snapshot with a generated file name")
	width := flag.Int("width", 0, "override window width")
	height := flag.Int("height", 0, "override window height")
	dragXW := flag.Float64("drag-xw", 0, "headless: horizontal 4D drag in pixels before the snapshot")
	dragYW := flag.Float64("drag-yw", 0, "headless: vertical 4D drag in pixels before the snapshot")
	mode := flag.String("mode", "", "render mode: standard, normals or depth")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := tesseract.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *mode != "" {
		if _, err := tesseract.ParseRenderMode(*mode); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.View.RenderMode = *mode
	}
	if *debug {
		cfg.Logging.Debug = true
	}
	cfg.Normalize()

	if *snapshotAuto && *snapshot == "" {
		*snapshot = fmt.Sprintf("tesseract-%s.png", uuid.NewString())
	}
	if *snapshot != "" {
		if err := renderSnapshot(cfg, *snapshot, float32(*dragXW), float32(*dragYW)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	app := tesseract.NewAppBuilder().
		UseStates(tesseract.StateRunning, tesseract.StateExiting).
		UseModule(cfg.Modules()...).
		UseModule(
			tesseract.RasterModule{Width: cfg.Window.Width, Height: cfg.Window.Height, HUD: cfg.Window.HUD},
			window.Module{Width: cfg.Window.Width, Height: cfg.Window.Height, Title: cfg.Window.Title},
		).
		Build()
	app.Run()
}

// renderSnapshot steps the app without a window. The drag goes through the
// same event path as a real Shift+right-drag.
func renderSnapshot(cfg *tesseract.Config, path string, dx, dy float32) error {
	app := tesseract.NewAppBuilder().
		UseStates(tesseract.StateRunning, tesseract.StateExiting).
		UseModule(cfg.Modules()...).
		UseModule(tesseract.RasterModule{Width: cfg.Window.Width, Height: cfg.Window.Height, HUD: cfg.Window.HUD}).
		Build()
	log := app.Logger()

	input := tesseract.Resource[tesseract.Input](app)
	cx, cy := float32(cfg.Window.Width)/2, float32(cfg.Window.Height)/2
	if dx != 0 || dy != 0 {
		input.Push(
			tesseract.PointerMoved(cx, cy),
			tesseract.ModifierChanged(true),
			tesseract.ButtonPressed(tesseract.MouseButtonRight),
			tesseract.PointerMoved(cx+dx, cy+dy),
			tesseract.ButtonReleased(tesseract.MouseButtonRight),
			tesseract.ModifierChanged(false),
			tesseract.PointerMoved(cx, cy),
		)
	}
	app.Step()

	canvas := tesseract.Resource[tesseract.Canvas](app)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, canvas.Image); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	log.Infof("wrote %s (%dx%d)", path, canvas.Image.Bounds().Dx(), canvas.Image.Bounds().Dy())

	input.Push(tesseract.CloseRequested())
	app.Step()
	return nil
}
