package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"github.com/gekko3d/tesseract/rt/geom"
	"github.com/gekko3d/tesseract/rt/pick"
	"github.com/gekko3d/tesseract/rt/xform"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type Shading int

const (
	ShadeStandard Shading = iota
	ShadeNormals
	ShadeDepth
)

// Scene is one frame of projected sticker geometry.
type Scene struct {
	Instances      []xform.Instance
	ViewProjection mgl32.Mat4
	Eye            mgl32.Vec3
	Hovered        int
	Debug          []pick.DebugBox
	Shading        Shading
	HUD            []string
}

// Renderer draws scenes with a painter's algorithm. It keeps scratch
// buffers between frames and is not safe for concurrent use.
type Renderer struct {
	Background color.RGBA
	LightDir   mgl32.Vec3
	Ambient    float32

	z    *vector.Rasterizer
	tris []triangle
}

type triangle struct {
	screen  [3]mgl32.Vec2
	normal  mgl32.Vec3
	depth   float32
	base    mgl32.Vec4
	hovered bool
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: color.RGBA{R: 25, G: 25, B: 31, A: 255},
		LightDir:   mgl32.Vec3{0.4, 0.7, 1}.Normalize(),
		Ambient:    0.3,
		z:          vector.NewRasterizer(1, 1),
	}
}

const hoverMix = 0.45

// Draw renders s into dst, replacing its contents.
func (r *Renderer) Draw(dst *image.RGBA, s *Scene) {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(r.Background), image.Point{}, draw.Src)

	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	if w <= 0 || h <= 0 {
		return
	}

	r.collect(s, w, h)

	// Farthest first.
	sort.SliceStable(r.tris, func(i, j int) bool {
		return r.tris[i].depth > r.tris[j].depth
	})

	near, far := depthRange(r.tris)
	for _, t := range r.tris {
		r.fill(dst, t.screen[:], r.shade(t, s.Shading, near, far))
	}

	for _, inst := range s.Instances {
		if inst.Sticker == s.Hovered {
			r.drawEdges(dst, inst.Corners, s, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	for _, box := range s.Debug {
		r.drawEdges(dst, box.AABB.Corners(), s, toRGBA(box.Color))
	}

	drawHUD(dst, s.HUD)
}

// collect gathers the front-facing triangles of every instance in screen space.
func (r *Renderer) collect(s *Scene, w, h float32) {
	r.tris = r.tris[:0]
	for _, inst := range s.Instances {
		for i := 0; i+2 < len(geom.CubeIndices); i += 3 {
			a := inst.Corners[geom.CubeIndices[i]]
			b := inst.Corners[geom.CubeIndices[i+1]]
			c := inst.Corners[geom.CubeIndices[i+2]]

			n := b.Sub(a).Cross(c.Sub(a))
			if !(n.Len() > 1e-12) {
				continue
			}
			n = n.Normalize()
			centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
			if n.Dot(centroid.Sub(inst.Position)) < 0 {
				n = n.Mul(-1)
			}
			if n.Dot(s.Eye.Sub(centroid)) <= 0 {
				continue
			}

			var t triangle
			ok := true
			for k, p := range [3]mgl32.Vec3{a, b, c} {
				sp, visible := toScreen(s.ViewProjection, p, w, h)
				if !visible {
					ok = false
					break
				}
				t.screen[k] = sp
			}
			if !ok {
				continue
			}
			t.normal = n
			t.depth = centroid.Sub(s.Eye).Len()
			t.base = inst.Color
			t.hovered = inst.Sticker == s.Hovered
			r.tris = append(r.tris, t)
		}
	}
}

func (r *Renderer) shade(t triangle, shading Shading, near, far float32) color.RGBA {
	switch shading {
	case ShadeNormals:
		n := t.normal.Mul(0.5).Add(mgl32.Vec3{0.5, 0.5, 0.5})
		return toRGBA(n.Vec4(1))
	case ShadeDepth:
		g := float32(1)
		if far > near {
			g = 1 - (t.depth-near)/(far-near)
		}
		g = 0.15 + 0.85*g
		return toRGBA(mgl32.Vec4{g, g, g, 1})
	default:
		light := r.Ambient + (1-r.Ambient)*max(0, t.normal.Dot(r.LightDir))
		c := t.base.Vec3().Mul(light)
		if t.hovered {
			c = c.Mul(1 - hoverMix).Add(mgl32.Vec3{hoverMix, hoverMix, hoverMix})
		}
		return toRGBA(c.Vec4(1))
	}
}

// fill rasterizes a convex polygon given in dst-relative pixel coordinates.
func (r *Renderer) fill(dst *image.RGBA, poly []mgl32.Vec2, c color.RGBA) {
	b := dst.Bounds()
	poly = clipPolygon(poly, float32(b.Dx()), float32(b.Dy()))
	if len(poly) < 3 {
		return
	}

	lo, hi := poly[0], poly[0]
	for _, p := range poly[1:] {
		lo = mgl32.Vec2{min(lo.X(), p.X()), min(lo.Y(), p.Y())}
		hi = mgl32.Vec2{max(hi.X(), p.X()), max(hi.Y(), p.Y())}
	}
	x0, y0 := int(math.Floor(float64(lo.X()))), int(math.Floor(float64(lo.Y())))
	x1, y1 := int(math.Ceil(float64(hi.X()))), int(math.Ceil(float64(hi.Y())))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	rect := image.Rect(x0, y0, x1, y1).Add(b.Min).Intersect(b)
	if rect.Empty() {
		return
	}

	ox, oy := float32(rect.Min.X-b.Min.X), float32(rect.Min.Y-b.Min.Y)
	r.z.Reset(rect.Dx(), rect.Dy())
	r.z.MoveTo(poly[0].X()-ox, poly[0].Y()-oy)
	for _, p := range poly[1:] {
		r.z.LineTo(p.X()-ox, p.Y()-oy)
	}
	r.z.ClosePath()
	r.z.Draw(dst, rect, image.NewUniform(c), image.Point{})
}

const lineWidth = 1.5

// drawEdges outlines a projected cube given by its eight corners.
func (r *Renderer) drawEdges(dst *image.RGBA, corners [8]mgl32.Vec3, s *Scene, c color.RGBA) {
	b := dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	for _, e := range geom.CubeEdges {
		p0, ok0 := toScreen(s.ViewProjection, corners[e[0]], w, h)
		p1, ok1 := toScreen(s.ViewProjection, corners[e[1]], w, h)
		if !ok0 || !ok1 {
			continue
		}
		d := p1.Sub(p0)
		l := d.Len()
		if l < 1e-3 {
			continue
		}
		n := mgl32.Vec2{-d.Y(), d.X()}.Mul(lineWidth / 2 / l)
		r.fill(dst, []mgl32.Vec2{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)}, c)
	}
}

// toScreen maps a world point to pixel coordinates. Points behind the
// camera are reported as not visible.
func toScreen(viewProj mgl32.Mat4, p mgl32.Vec3, w, h float32) (mgl32.Vec2, bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-6 {
		return mgl32.Vec2{}, false
	}
	x := clip.X() / clip.W()
	y := clip.Y() / clip.W()
	return mgl32.Vec2{(x + 1) * 0.5 * w, (1 - y) * 0.5 * h}, true
}

func depthRange(tris []triangle) (near, far float32) {
	if len(tris) == 0 {
		return 0, 0
	}
	near, far = tris[0].depth, tris[0].depth
	for _, t := range tris[1:] {
		near = min(near, t.depth)
		far = max(far, t.depth)
	}
	return near, far
}

// toRGBA converts a straight-alpha float color to premultiplied RGBA.
func toRGBA(v mgl32.Vec4) color.RGBA {
	a := mgl32.Clamp(v[3], 0, 1)
	ch := func(x float32) uint8 {
		return uint8(mgl32.Clamp(x, 0, 1)*a*255 + 0.5)
	}
	return color.RGBA{R: ch(v[0]), G: ch(v[1]), B: ch(v[2]), A: uint8(a*255 + 0.5)}
}

func drawHUD(dst *image.RGBA, lines []string) {
	if len(lines) == 0 {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	b := dst.Bounds()
	for i, line := range lines {
		d.Dot = fixed.P(b.Min.X+8, b.Min.Y+16+i*15)
		d.DrawString(line)
	}
}
