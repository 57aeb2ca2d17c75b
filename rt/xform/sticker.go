package xform

import (
	"github.com/gekko3d/tesseract/rt/geom"
	"github.com/go-gl/mathgl/mgl32"
)

// StickerHalfSize is the half-extent of a sticker cube at scale 1; adjacent
// stickers touch at full scale.
const StickerHalfSize float32 = 1.0 / 3.0

// GridHalfExtent is the offset of the outermost sticker centers.
const GridHalfExtent float32 = 2.0 / 3.0

// Params are the per-frame tunables shared by rendering and ray casting.
type Params struct {
	StickerScale   float32
	FaceSpacing    float32
	ViewerDistance float32
}

func DefaultParams() Params {
	return Params{
		StickerScale:   0.5,
		FaceSpacing:    2.0,
		ViewerDistance: DefaultViewerDistance,
	}
}

// Clamped returns p with every field inside its usable range.
func (p Params) Clamped() Params {
	if !finite(p.StickerScale) {
		p.StickerScale = 0.5
	}
	if !finite(p.FaceSpacing) {
		p.FaceSpacing = 1
	}
	p.StickerScale = mgl32.Clamp(p.StickerScale, 0, 1)
	p.FaceSpacing = mgl32.Clamp(p.FaceSpacing, 1, 5)
	if !finite(p.ViewerDistance) || p.ViewerDistance <= 0 {
		p.ViewerDistance = DefaultViewerDistance
	}
	return p
}

// Embed places a cell-local 3D offset onto the three free axes of a cell
// pinned on fixedDim.
func Embed(local mgl32.Vec3, fixedDim int) mgl32.Vec4 {
	var out mgl32.Vec4
	for n, d := range geom.FreeDims(fixedDim) {
		out[d] = local[n]
	}
	return out
}

// StickerCenter moves a sticker outward with its cell by the face spacing.
func StickerCenter(s geom.Sticker, face *geom.Face, spacing float32) mgl32.Vec4 {
	return s.Position.Add(face.Center.Mul(spacing - 1))
}

// ProjectCubePoint maps a cell-local offset around center4 through the 4D
// rotation and projection.
func ProjectCubePoint(local mgl32.Vec3, center4 mgl32.Vec4, fixedDim int, rotation mgl32.Mat4, viewerDistance float32) (mgl32.Vec3, error) {
	return Project(center4.Add(Embed(local, fixedDim)), rotation, viewerDistance)
}

// StickerCorners returns the projected corners of a sticker cube, indexed
// like geom.CubeVertices.
func StickerCorners(center4 mgl32.Vec4, fixedDim int, rotation mgl32.Mat4, p Params) ([8]mgl32.Vec3, error) {
	return cubeCorners(center4, fixedDim, StickerHalfSize*p.StickerScale, rotation, p.ViewerDistance)
}

// FaceCorners returns the projected corners of the cube that bounds every
// sticker of a face, indexed like geom.CubeVertices.
func FaceCorners(faceID int, rotation mgl32.Mat4, p Params) ([8]mgl32.Vec3, error) {
	center := geom.FaceCenters[faceID].Mul(p.FaceSpacing)
	bound := GridHalfExtent + StickerHalfSize*p.StickerScale
	return cubeCorners(center, geom.FixedDims[faceID], bound, rotation, p.ViewerDistance)
}

func cubeCorners(center4 mgl32.Vec4, fixedDim int, halfSize float32, rotation mgl32.Mat4, viewerDistance float32) ([8]mgl32.Vec3, error) {
	var out [8]mgl32.Vec3
	for n, v := range geom.CubeVertices {
		p, err := ProjectCubePoint(v.Mul(halfSize), center4, fixedDim, rotation, viewerDistance)
		if err != nil {
			return out, err
		}
		out[n] = p
	}
	return out, nil
}
