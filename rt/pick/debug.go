package pick

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// AABBMode selects which bounding boxes a query reports for the overlay.
type AABBMode int

const (
	AABBNone AABBMode = iota
	AABBFace
	AABBSticker
)

func (m AABBMode) String() string {
	switch m {
	case AABBNone:
		return "none"
	case AABBFace:
		return "face"
	case AABBSticker:
		return "sticker"
	}
	return "unknown"
}

// Next cycles None -> Face -> Sticker -> None.
func (m AABBMode) Next() AABBMode {
	switch m {
	case AABBNone:
		return AABBFace
	case AABBFace:
		return AABBSticker
	}
	return AABBNone
}

// DebugBox is a box the ray touched, with its overlay color.
type DebugBox struct {
	AABB     AABB
	Color    mgl32.Vec4
	Face     int
	Sticker  int
	Distance float32
}

var faceDebugColors = [...]mgl32.Vec4{
	{1, 0, 0, 0.3},
	{0, 1, 0, 0.3},
	{0, 0, 1, 0.3},
	{1, 1, 0, 0.3},
	{1, 0, 1, 0.3},
	{0, 1, 1, 0.3},
	{0.8, 0.4, 0, 0.3},
	{0.5, 0, 0.8, 0.3},
}

var stickerDebugColor = mgl32.Vec4{1, 1, 0, 0.4}

// FaceDebugColor returns the overlay color of a face box.
func FaceDebugColor(face int) mgl32.Vec4 {
	if face < 0 || face >= len(faceDebugColors) {
		return mgl32.Vec4{0.5, 0.5, 0.5, 0.3}
	}
	return faceDebugColors[face]
}

func newDebugBox(box AABB, color mgl32.Vec4, face, sticker int, eye mgl32.Vec3) DebugBox {
	return DebugBox{
		AABB:     box,
		Color:    color,
		Face:     face,
		Sticker:  sticker,
		Distance: box.Center().Sub(eye).Len(),
	}
}

// sortBackToFront orders boxes farthest first so translucent overlays blend.
func sortBackToFront(boxes []DebugBox) {
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Distance > boxes[j].Distance
	})
}
