package pick

import (
	"github.com/go-gl/mathgl/mgl32"
)

const triangleEpsilon = 1e-8

// RayTriangle is the Möller-Trumbore test. Hits at or behind the origin
// are rejected.
func RayTriangle(r Ray, v0, v1, v2 mgl32.Vec3) (float32, bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -triangleEpsilon && a < triangleEpsilon {
		return 0, false
	}

	f := 1 / a
	s := r.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t <= triangleEpsilon {
		return 0, false
	}
	return t, true
}
