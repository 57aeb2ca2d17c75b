// Package window hosts the viewer in a GLFW window. Input callbacks are
// queued as tesseract events and the rasterized canvas is blitted to the
// default framebuffer. The caller must keep the main goroutine locked to
// its OS thread.
package window

import (
	"fmt"

	"github.com/gekko3d/tesseract"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Window struct {
	handle  *glfw.Window
	texture uint32
	fbo     uint32
	texW    int
	texH    int
}

// Module opens the window. InputModule must be installed before it.
type Module struct {
	Width  int
	Height int
	Title  string
}

func (m Module) Install(app *tesseract.App, cmd *tesseract.Commands) {
	input := tesseract.Resource[tesseract.Input](app)
	if input == nil {
		panic("window: InputModule must be installed before the window")
	}

	w, err := Open(m.Width, m.Height, m.Title, input)
	if err != nil {
		app.Logger().Errorf("%v", err)
		panic(err)
	}
	app.Logger().Infof("window %dx%d, OpenGL %s", m.Width, m.Height, gl.GoStr(gl.GetString(gl.VERSION)))

	cmd.AddResources(w)
	app.UseSystem(
		tesseract.System(pollSystem).
			InStage(tesseract.Prelude).
			RunAlways(),
	)
	app.UseSystem(
		tesseract.System(presentSystem).
			InStage(tesseract.PostRender).
			RunAlways(),
	)
	app.UseSystem(
		tesseract.System(closeSystem).
			InStage(tesseract.Finale).
			InState(tesseract.OnExit(tesseract.StateExiting)),
	)
}

// Open creates the window and GL objects and routes input into input.
func Open(width, height int, title string, input *tesseract.Input) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	handle, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("opengl init: %w", err)
	}

	w := &Window{handle: handle}
	w.initTarget(width, height)
	w.bindInput(input)
	return w, nil
}

func (w *Window) initTarget(width, height int) {
	gl.GenTextures(1, &w.texture)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	w.texW, w.texH = width, height

	gl.GenFramebuffers(1, &w.fbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, w.texture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

func (w *Window) bindInput(input *tesseract.Input) {
	w.handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		input.Push(tesseract.PointerMoved(float32(x), float32(y)))
	})
	w.handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := mouseButtons[button]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			input.Push(tesseract.ButtonPressed(b))
		case glfw.Release:
			input.Push(tesseract.ButtonReleased(b))
		}
	})
	w.handle.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		input.Push(tesseract.Scrolled(float32(yoff)))
	})
	w.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyLeftShift || key == glfw.KeyRightShift {
			switch action {
			case glfw.Press:
				input.Push(tesseract.ModifierChanged(true))
			case glfw.Release:
				input.Push(tesseract.ModifierChanged(false))
			}
			return
		}
		if action != glfw.Press {
			return
		}
		if k, ok := keys[key]; ok {
			input.Push(tesseract.KeyPressed(k))
		}
	})
	w.handle.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		input.Push(tesseract.Resized(width, height))
	})
	w.handle.SetCloseCallback(func(_ *glfw.Window) {
		input.Push(tesseract.CloseRequested())
	})
}

func pollSystem(w *Window) {
	glfw.PollEvents()
}

func presentSystem(w *Window, canvas *tesseract.Canvas) {
	img := canvas.Image
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if width == 0 || height == 0 {
		return
	}

	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	if width != w.texW || height != w.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		w.texW, w.texH = width, height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}

	fbw, fbh := w.handle.GetFramebufferSize()
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	// Image rows run top-down, GL rows bottom-up.
	gl.BlitFramebuffer(0, 0, int32(width), int32(height), 0, int32(fbh), int32(fbw), 0, gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	w.handle.SwapBuffers()
}

func closeSystem(w *Window, log tesseract.Logger) {
	log.Debugf("closing window")
	gl.DeleteFramebuffers(1, &w.fbo)
	gl.DeleteTextures(1, &w.texture)
	w.handle.Destroy()
	glfw.Terminate()
}
