package pick

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func AABBFromPoints(points []mgl32.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			box.Min[i] = min(box.Min[i], p[i])
			box.Max[i] = max(box.Max[i], p[i])
		}
	}
	return box
}

func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Union(o AABB) AABB {
	out := b
	for i := 0; i < 3; i++ {
		out.Min[i] = min(out.Min[i], o.Min[i])
		out.Max[i] = max(out.Max[i], o.Max[i])
	}
	return out
}

// Corners returns the eight box corners, indexed like geom.CubeVertices.
func (b AABB) Corners() [8]mgl32.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]mgl32.Vec3{
		{lo.X(), lo.Y(), hi.Z()},
		{hi.X(), lo.Y(), hi.Z()},
		{hi.X(), hi.Y(), hi.Z()},
		{lo.X(), hi.Y(), hi.Z()},
		{lo.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), lo.Z()},
		{hi.X(), hi.Y(), lo.Z()},
		{lo.X(), hi.Y(), lo.Z()},
	}
}

// RayAABB is the slab test. It reports the entry distance, or the exit
// distance when the ray starts inside the box.
func RayAABB(r Ray, b AABB) (float32, bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	for i := 0; i < 3; i++ {
		if r.parallel[i] {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[i] - r.Origin[i]) * r.InvDirection[i]
		t2 := (b.Max[i] - r.Origin[i]) * r.InvDirection[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmin > tmax || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
