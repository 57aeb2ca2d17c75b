package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultDistance is the starting orbit radius.
const DefaultDistance float32 = 15

type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

func DefaultCamera() *Camera {
	return &Camera{
		Eye:    mgl32.Vec3{0, 0, DefaultDistance},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Forward returns the unit vector from eye to target.
func (c *Camera) Forward() mgl32.Vec3 {
	f := c.Target.Sub(c.Eye)
	if f.Len() == 0 {
		return mgl32.Vec3{0, 0, -1}
	}
	return f.Normalize()
}

// ViewProjection returns projection * view, the matrix rendering and ray
// construction both consume.
func ViewProjection(c *Camera, p *Projection) mgl32.Mat4 {
	return p.Matrix().Mul4(c.ViewMatrix())
}
