package xform

import (
	"errors"
	"fmt"

	"github.com/gekko3d/tesseract/rt/geom"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultViewerDistance is the W position of the 4D viewer.
	DefaultViewerDistance float32 = 3.0

	// MinWDistance is the smallest viewer-to-point W gap that still projects.
	MinWDistance float32 = 1e-4
)

// ErrDegenerateProjection is returned for points on or behind the viewer's hyperplane.
var ErrDegenerateProjection = errors.New("degenerate 4D projection")

// Project rotates point and projects it into 3D by dividing by its W
// distance from the viewer.
func Project(point mgl32.Vec4, rotation mgl32.Mat4, viewerDistance float32) (mgl32.Vec3, error) {
	return ProjectRotated(rotation.Mul4x1(point), viewerDistance)
}

// ProjectRotated projects an already rotated point.
func ProjectRotated(rotated mgl32.Vec4, viewerDistance float32) (mgl32.Vec3, error) {
	wDistance := viewerDistance - rotated.W()
	if !(wDistance > MinWDistance) {
		return mgl32.Vec3{}, fmt.Errorf("%w: w=%g viewer=%g", ErrDegenerateProjection, rotated.W(), viewerDistance)
	}
	scale := viewerDistance / wDistance
	return rotated.Vec3().Mul(scale), nil
}

// IsFaceVisible is the 4D back-face test used to cull cells. The rotated
// cell center stands in for the outward normal; the cell is kept when it
// points away from the viewer at (0, 0, 0, viewerDistance).
func IsFaceVisible(faceID int, rotation mgl32.Mat4, viewerDistance float32) bool {
	if faceID < 0 || faceID >= geom.NumFaces {
		return false
	}
	c := rotation.Mul4x1(geom.FaceCenters[faceID])
	toViewer := mgl32.Vec4{0, 0, 0, viewerDistance}.Sub(c)
	return c.Dot(toViewer) < 0
}

// VisibleFaces returns the ids of the faces that pass IsFaceVisible.
func VisibleFaces(rotation mgl32.Mat4, viewerDistance float32) []int {
	faces := make([]int, 0, geom.NumFaces)
	for id := 0; id < geom.NumFaces; id++ {
		if IsFaceVisible(id, rotation, viewerDistance) {
			faces = append(faces, id)
		}
	}
	return faces
}
