package tesseract

import (
	"errors"

	"github.com/gekko3d/tesseract/rt/geom"
	"github.com/gekko3d/tesseract/rt/pick"
	"github.com/gekko3d/tesseract/rt/xform"
	"github.com/go-gl/mathgl/mgl32"
)

// RenormalizeEvery is how many drag updates may accumulate before the
// rotation is pulled back onto an exact rotation.
const RenormalizeEvery = 256

var ErrInvalidRotation = errors.New("matrix is not a 4D rotation")

// Rotation4D is the accumulated 4D orientation of the hypercube.
type Rotation4D struct {
	Matrix           mgl32.Mat4
	Sensitivity      float32
	RenormalizeEvery int

	updates int
}

func NewRotation4D() *Rotation4D {
	return &Rotation4D{
		Matrix:           mgl32.Ident4(),
		Sensitivity:      xform.DefaultSensitivity,
		RenormalizeEvery: RenormalizeEvery,
	}
}

// Accumulate composes a drag of (dx, dy) pixels onto the rotation.
func (r *Rotation4D) Accumulate(dx, dy float32) {
	r.Matrix = xform.AccumulateRotationScaled(r.Matrix, dx, dy, r.Sensitivity)
	r.updates++
	if r.RenormalizeEvery > 0 && r.updates%r.RenormalizeEvery == 0 {
		r.Matrix = xform.Orthonormalize(r.Matrix)
	}
}

func (r *Rotation4D) Updates() int {
	return r.updates
}

// Set replaces the rotation, rejecting anything that is not orthogonal
// with determinant 1. The renormalization count restarts.
func (r *Rotation4D) Set(m mgl32.Mat4) error {
	if !xform.IsRotation(m, 1e-3) {
		return ErrInvalidRotation
	}
	r.Matrix = xform.Orthonormalize(m)
	r.updates = 0
	return nil
}

func (r *Rotation4D) Reset() {
	r.Matrix = mgl32.Ident4()
	r.updates = 0
}

// ViewSettings are the user-adjustable presentation parameters.
type ViewSettings struct {
	Params     xform.Params
	RenderMode RenderMode
	AABBMode   pick.AABBMode
}

func DefaultViewSettings() *ViewSettings {
	return &ViewSettings{
		Params:     xform.DefaultParams(),
		RenderMode: RenderStandard,
		AABBMode:   pick.AABBNone,
	}
}

const (
	stickerScaleStep = 0.05
	faceSpacingStep  = 0.1
)

func (v *ViewSettings) SetStickerScale(s float32) {
	v.Params.StickerScale = s
	v.Params = v.Params.Clamped()
}

func (v *ViewSettings) SetFaceSpacing(s float32) {
	v.Params.FaceSpacing = s
	v.Params = v.Params.Clamped()
}

type HypercubeModule struct {
	View     xform.Params
	Mode     RenderMode
	AABBMode pick.AABBMode
	// Sensitivity overrides the 4D drag sensitivity when non-zero.
	Sensitivity float32
}

func (m HypercubeModule) Install(app *App, cmd *Commands) {
	rot := NewRotation4D()
	if finiteOr(m.Sensitivity, 0) > 0 {
		rot.Sensitivity = m.Sensitivity
	}

	view := DefaultViewSettings()
	if m.View != (xform.Params{}) {
		view.Params = m.View.Clamped()
	}
	view.RenderMode = m.Mode
	view.AABBMode = m.AABBMode

	cube := geom.NewHypercube()
	cmd.AddResources(cube, rot, view)
	app.Logger().Debugf("hypercube ready: %d faces, %d stickers", len(cube.Faces), cube.StickerCount())
}
