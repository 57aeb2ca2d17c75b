package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection holds the perspective parameters. FovY is in degrees.
type Projection struct {
	Aspect float32
	FovY   float32
	ZNear  float32
	ZFar   float32
}

func NewProjection(width, height int) *Projection {
	p := &Projection{
		Aspect: 1,
		FovY:   45,
		ZNear:  0.1,
		ZFar:   100,
	}
	p.Resize(width, height)
	return p
}

func (p *Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FovY), p.Aspect, p.ZNear, p.ZFar)
}

// Resize updates the aspect ratio. Empty sizes (minimized windows) are
// ignored and reported as false.
func (p *Projection) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	p.Aspect = float32(width) / float32(height)
	return true
}
