package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane names one of the six coordinate planes of 4D space.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneXW
	PlaneYZ
	PlaneYW
	PlaneZW
)

// DefaultSensitivity converts pointer pixels to radians.
const DefaultSensitivity float32 = 0.5 * 0.01

var planeAxes = [...][2]int{
	PlaneXY: {0, 1},
	PlaneXZ: {0, 2},
	PlaneXW: {0, 3},
	PlaneYZ: {1, 2},
	PlaneYW: {1, 3},
	PlaneZW: {2, 3},
}

var planeNames = [...]string{"XY", "XZ", "XW", "YZ", "YW", "ZW"}

// Axes returns the two coordinate axes spanned by the plane.
func (p Plane) Axes() (a, b int) {
	axes := planeAxes[p]
	return axes[0], axes[1]
}

func (p Plane) String() string {
	if p < 0 || int(p) >= len(planeNames) {
		return "Plane(?)"
	}
	return planeNames[p]
}

// CreateRotation builds an elementary rotation in plane by angle radians.
// The two axes outside the plane are left untouched.
func CreateRotation(plane Plane, angle float32) mgl32.Mat4 {
	a, b := plane.Axes()
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))

	m := mgl32.Ident4()
	m.Set(a, a, c)
	m.Set(a, b, -s)
	m.Set(b, a, s)
	m.Set(b, b, c)
	return m
}

// AccumulateRotation composes a pointer drag onto current using DefaultSensitivity.
func AccumulateRotation(current mgl32.Mat4, dx, dy float32) mgl32.Mat4 {
	return AccumulateRotationScaled(current, dx, dy, DefaultSensitivity)
}

// AccumulateRotationScaled composes R_yw(dy*s) * R_xw(dx*s) * current. The new
// increment is applied after everything accumulated so far, so the result
// depends on the order of the drags, not only on their sum.
func AccumulateRotationScaled(current mgl32.Mat4, dx, dy, sensitivity float32) mgl32.Mat4 {
	if !finite(dx) || !finite(dy) || !finite(sensitivity) {
		return current
	}
	xw := CreateRotation(PlaneXW, dx*sensitivity)
	yw := CreateRotation(PlaneYW, dy*sensitivity)
	return yw.Mul4(xw).Mul4(current)
}

// Orthonormalize pulls a drifted rotation back onto the rotation group with
// Gram-Schmidt over its columns.
func Orthonormalize(m mgl32.Mat4) mgl32.Mat4 {
	var cols [4]mgl32.Vec4
	for j := 0; j < 4; j++ {
		v := m.Col(j)
		for k := 0; k < j; k++ {
			v = v.Sub(cols[k].Mul(v.Dot(cols[k])))
		}
		l := v.Len()
		if l < 1e-6 {
			return mgl32.Ident4()
		}
		cols[j] = v.Mul(1 / l)
	}
	return mgl32.Mat4FromCols(cols[0], cols[1], cols[2], cols[3])
}

// IsRotation reports whether m is orthogonal with determinant 1 within tol.
func IsRotation(m mgl32.Mat4, tol float32) bool {
	for _, v := range m {
		if !finite(v) {
			return false
		}
	}
	if !ApproxEqual(m.Transpose().Mul4(m), mgl32.Ident4(), tol) {
		return false
	}
	return mgl32.Abs(m.Det()-1) <= tol
}

// ApproxEqual compares two matrices element-wise with an absolute tolerance.
func ApproxEqual(a, b mgl32.Mat4, tol float32) bool {
	for i := range a {
		if !(mgl32.Abs(a[i]-b[i]) <= tol) {
			return false
		}
	}
	return true
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
