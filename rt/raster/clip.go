package raster

import (
	"github.com/go-gl/mathgl/mgl32"
)

// clipPolygon clips a convex polygon to the rectangle [0,w]x[0,h]
// (Sutherland-Hodgman). The result may be empty.
func clipPolygon(poly []mgl32.Vec2, w, h float32) []mgl32.Vec2 {
	edges := []struct {
		inside func(p mgl32.Vec2) bool
		cross  func(a, b mgl32.Vec2) mgl32.Vec2
	}{
		{func(p mgl32.Vec2) bool { return p.X() >= 0 }, func(a, b mgl32.Vec2) mgl32.Vec2 { return atX(a, b, 0) }},
		{func(p mgl32.Vec2) bool { return p.X() <= w }, func(a, b mgl32.Vec2) mgl32.Vec2 { return atX(a, b, w) }},
		{func(p mgl32.Vec2) bool { return p.Y() >= 0 }, func(a, b mgl32.Vec2) mgl32.Vec2 { return atY(a, b, 0) }},
		{func(p mgl32.Vec2) bool { return p.Y() <= h }, func(a, b mgl32.Vec2) mgl32.Vec2 { return atY(a, b, h) }},
	}

	out := poly
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]mgl32.Vec2, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b mgl32.Vec2, x float32) mgl32.Vec2 {
	t := (x - a.X()) / (b.X() - a.X())
	return mgl32.Vec2{x, a.Y() + t*(b.Y()-a.Y())}
}

func atY(a, b mgl32.Vec2, y float32) mgl32.Vec2 {
	t := (y - a.Y()) / (b.Y() - a.Y())
	return mgl32.Vec2{a.X() + t*(b.X()-a.X()), y}
}
