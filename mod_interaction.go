package tesseract

import (
	"github.com/gekko3d/tesseract/rt/camera"
)

// InteractionModule folds the input queue into the camera, the 4D rotation
// and the view settings once per frame.
type InteractionModule struct{}

func (m InteractionModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(interactionSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func interactionSystem(
	input *Input,
	rot *Rotation4D,
	ctrl *camera.Controller,
	proj *camera.Projection,
	view *ViewSettings,
	cmd *Commands,
	log Logger,
) {
	// Strictly in arrival order: 4D rotations do not commute.
	for _, ev := range input.Drain() {
		applyEvent(ev, input, rot, ctrl, proj, view, cmd, log)
	}
}

func applyEvent(
	ev Event,
	input *Input,
	rot *Rotation4D,
	ctrl *camera.Controller,
	proj *camera.Projection,
	view *ViewSettings,
	cmd *Commands,
	log Logger,
) {
	switch ev.Kind {
	case EventPointerMoved:
		input.Pointer[0], input.Pointer[1] = ev.X, ev.Y
		if !input.RotateHeld {
			return
		}
		dx, dy, ok := ctrl.TrackPointer(ev.X, ev.Y)
		if !ok {
			return
		}
		switch input.Mode() {
		case ModeOrbit:
			ctrl.ProcessMouseMotion(dx, dy)
		case ModeRotate4D:
			rot.Accumulate(dx, dy)
		case ModeHover:
		}

	case EventButtonPressed:
		if ev.Button != MouseButtonRight {
			return
		}
		input.RotateHeld = true
		ctrl.TrackPointer(input.Pointer.X(), input.Pointer.Y())

	case EventButtonReleased:
		if ev.Button != MouseButtonRight {
			return
		}
		input.RotateHeld = false
		ctrl.ReleasePointer()

	case EventScrolled:
		ctrl.ProcessScroll(ev.Y)

	case EventModifierChanged:
		input.ModifierHeld = ev.Held

	case EventResized:
		if !proj.Resize(ev.Width, ev.Height) {
			log.Debugf("ignoring resize to %dx%d", ev.Width, ev.Height)
			return
		}
		input.Viewport.Width = float32(ev.Width)
		input.Viewport.Height = float32(ev.Height)

	case EventCloseRequested:
		cmd.Exit()

	case EventStickerScaleChanged:
		view.SetStickerScale(ev.Value)

	case EventFaceSpacingChanged:
		view.SetFaceSpacing(ev.Value)

	case EventRenderModeChanged:
		view.RenderMode = ev.Mode

	case EventAABBModeChanged:
		view.AABBMode = ev.AABB

	case EventResetView:
		rot.Reset()
		ctrl.Reset()

	case EventKeyPressed:
		if mapped, ok := keyBinding(ev.Key, view); ok {
			applyEvent(mapped, input, rot, ctrl, proj, view, cmd, log)
			return
		}
		switch ev.Key {
		case KeyF5:
			input.SaveRequested = true
		case KeyF9:
			input.LoadRequested = true
		}
	}
}

// keyBinding turns a key into the control event it stands for.
func keyBinding(k Key, view *ViewSettings) (Event, bool) {
	switch k {
	case Key1:
		return RenderModeChanged(RenderStandard), true
	case Key2:
		return RenderModeChanged(RenderNormals), true
	case Key3:
		return RenderModeChanged(RenderDepth), true
	case KeyLeftBracket:
		return StickerScaleChanged(view.Params.StickerScale - stickerScaleStep), true
	case KeyRightBracket:
		return StickerScaleChanged(view.Params.StickerScale + stickerScaleStep), true
	case KeyMinus:
		return FaceSpacingChanged(view.Params.FaceSpacing - faceSpacingStep), true
	case KeyEqual:
		return FaceSpacingChanged(view.Params.FaceSpacing + faceSpacingStep), true
	case KeyB:
		return AABBModeChanged(view.AABBMode.Next()), true
	case KeyR:
		return ResetView(), true
	case KeyEscape:
		return CloseRequested(), true
	}
	return Event{}, false
}
