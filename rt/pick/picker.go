package pick

import (
	"math"

	"github.com/gekko3d/tesseract/rt/geom"
	"github.com/gekko3d/tesseract/rt/xform"
	"github.com/go-gl/mathgl/mgl32"
)

// Query is everything a hit test depends on. The same rotation and params
// must be used for rendering so the ray sees what is on screen.
type Query struct {
	Ray      Ray
	Rotation mgl32.Mat4
	Params   xform.Params
	AABBMode AABBMode
	Eye      mgl32.Vec3
}

type Result struct {
	// Sticker is the global sticker index, or -1 when nothing was hit.
	Sticker int
	Face    int
	T       float32
	Hit     bool
	Debug   []DebugBox
}

// FindIntersectedSticker returns the sticker closest along the ray.
//
// Faces are culled by the 4D visibility test and by their projected bounds.
// Stickers of the remaining faces are bounds-checked, then tested triangle
// by triangle on the projected cube. Ties keep the lower sticker index.
func FindIntersectedSticker(cube *geom.Hypercube, q Query) Result {
	res := Result{Sticker: -1, Face: -1}
	best := float32(math.MaxFloat32)

	for fi := range cube.Faces {
		face := &cube.Faces[fi]
		if !xform.IsFaceVisible(face.ID, q.Rotation, q.Params.ViewerDistance) {
			continue
		}

		// A face whose bounds cannot be projected is not culled.
		if corners, err := xform.FaceCorners(face.ID, q.Rotation, q.Params); err == nil {
			box := AABBFromPoints(corners[:])
			if _, hit := RayAABB(q.Ray, box); !hit {
				continue
			}
			if q.AABBMode == AABBFace {
				res.Debug = append(res.Debug, newDebugBox(box, FaceDebugColor(face.ID), face.ID, -1, q.Eye))
			}
		}

		for si, s := range face.Stickers {
			center := xform.StickerCenter(s, face, q.Params.FaceSpacing)
			corners, err := xform.StickerCorners(center, face.FixedDim, q.Rotation, q.Params)
			if err != nil {
				continue
			}
			box := AABBFromPoints(corners[:])
			if _, hit := RayAABB(q.Ray, box); !hit {
				continue
			}

			index := face.ID*geom.StickersPerFace + si
			if q.AABBMode == AABBSticker {
				res.Debug = append(res.Debug, newDebugBox(box, stickerDebugColor, face.ID, index, q.Eye))
			}

			t, hit := rayCube(q.Ray, &corners)
			if hit && t < best {
				best = t
				res.Sticker = index
				res.Face = face.ID
				res.T = t
				res.Hit = true
			}
		}
	}

	sortBackToFront(res.Debug)
	return res
}

// rayCube returns the nearest hit over the 12 triangles of a projected cube.
func rayCube(r Ray, corners *[8]mgl32.Vec3) (float32, bool) {
	best := float32(math.MaxFloat32)
	found := false
	for i := 0; i+2 < len(geom.CubeIndices); i += 3 {
		v0 := corners[geom.CubeIndices[i]]
		v1 := corners[geom.CubeIndices[i+1]]
		v2 := corners[geom.CubeIndices[i+2]]
		if t, hit := RayTriangle(r, v0, v1, v2); hit && t < best {
			best = t
			found = true
		}
	}
	return best, found
}
