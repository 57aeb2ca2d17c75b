package pick

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrSingularViewProjection = errors.New("view-projection matrix is not invertible")
	ErrEmptyViewport          = errors.New("viewport has no area")
)

// parallelEpsilon is the direction component below which a ray counts as
// parallel to an axis slab.
const parallelEpsilon = 1e-12

// Ray is a half-line with a unit Direction. InvDirection is only meaningful
// on axes that are not flagged parallel.
type Ray struct {
	Origin       mgl32.Vec3
	Direction    mgl32.Vec3
	InvDirection mgl32.Vec3
	parallel     [3]bool
}

// NewRay normalizes dir and precomputes the inverse direction.
func NewRay(origin, dir mgl32.Vec3) Ray {
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	r := Ray{Origin: origin, Direction: dir}
	for i := 0; i < 3; i++ {
		if mgl32.Abs(dir[i]) < parallelEpsilon {
			r.parallel[i] = true
			continue
		}
		r.InvDirection[i] = 1 / dir[i]
	}
	return r
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Viewport is the pixel rectangle the scene is drawn into. Pointer
// coordinates grow right and down from the window origin.
type Viewport struct {
	X, Y          float32
	Width, Height float32
}

func (v Viewport) Empty() bool {
	return !(v.Width > 0) || !(v.Height > 0)
}

// ToNDC maps a pointer position to normalized device coordinates, flipping
// Y so that up is positive.
func (v Viewport) ToNDC(pointer mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		2*(pointer.X()-v.X)/v.Width - 1,
		1 - 2*(pointer.Y()-v.Y)/v.Height,
	}
}

// FromNDC is the inverse of ToNDC.
func (v Viewport) FromNDC(ndc mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		v.X + (ndc.X()+1)*0.5*v.Width,
		v.Y + (1-ndc.Y())*0.5*v.Height,
	}
}

// MouseRay unprojects a pointer position through viewProj. The ray starts
// on the near plane and points at the far plane.
func MouseRay(pointer mgl32.Vec2, vp Viewport, viewProj mgl32.Mat4) (Ray, error) {
	if vp.Empty() {
		return Ray{}, ErrEmptyViewport
	}
	det := viewProj.Det()
	if !finite(det) || mgl32.Abs(det) < 1e-12 {
		return Ray{}, ErrSingularViewProjection
	}
	inv := viewProj.Inv()

	ndc := vp.ToNDC(pointer)
	near, ok := unproject(inv, mgl32.Vec4{ndc.X(), ndc.Y(), -1, 1})
	if !ok {
		return Ray{}, ErrSingularViewProjection
	}
	far, ok := unproject(inv, mgl32.Vec4{ndc.X(), ndc.Y(), 1, 1})
	if !ok {
		return Ray{}, ErrSingularViewProjection
	}

	dir := far.Sub(near)
	if !(dir.Len() > 0) {
		return Ray{}, ErrSingularViewProjection
	}
	return NewRay(near, dir), nil
}

func unproject(inv mgl32.Mat4, clip mgl32.Vec4) (mgl32.Vec3, bool) {
	p := inv.Mul4x1(clip)
	if mgl32.Abs(p.W()) < 1e-12 || !finite(p.W()) {
		return mgl32.Vec3{}, false
	}
	return p.Vec3().Mul(1 / p.W()), true
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
