package xform

import (
	"github.com/gekko3d/tesseract/rt/geom"
	"github.com/go-gl/mathgl/mgl32"
)

// Instance is one sticker ready for presentation.
type Instance struct {
	Sticker  int
	Face     int
	Position mgl32.Vec3
	Color    mgl32.Vec4
	Corners  [8]mgl32.Vec3
}

// GenerateInstances transforms every sticker of the visible faces. Stickers
// whose projection is degenerate are dropped.
func GenerateInstances(cube *geom.Hypercube, rotation mgl32.Mat4, p Params) []Instance {
	instances := make([]Instance, 0, geom.NumStickers)
	for fi := range cube.Faces {
		face := &cube.Faces[fi]
		if !IsFaceVisible(face.ID, rotation, p.ViewerDistance) {
			continue
		}
		for si, s := range face.Stickers {
			center := StickerCenter(s, face, p.FaceSpacing)
			pos, err := Project(center, rotation, p.ViewerDistance)
			if err != nil {
				continue
			}
			corners, err := StickerCorners(center, face.FixedDim, rotation, p)
			if err != nil {
				continue
			}
			instances = append(instances, Instance{
				Sticker:  face.ID*geom.StickersPerFace + si,
				Face:     face.ID,
				Position: pos,
				Color:    s.Color.RGBA(),
				Corners:  corners,
			})
		}
	}
	return instances
}
