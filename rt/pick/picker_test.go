package pick

import (
	"testing"

	"github.com/gekko3d/tesseract/rt/camera"
	"github.com/gekko3d/tesseract/rt/geom"
	"github.com/gekko3d/tesseract/rt/xform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scene struct {
	cube     *geom.Hypercube
	cam      *camera.Camera
	viewProj mgl32.Mat4
	viewport Viewport
	params   xform.Params
}

func defaultScene() scene {
	cam := camera.DefaultCamera()
	proj := camera.NewProjection(800, 600)
	return scene{
		cube:     geom.NewHypercube(),
		cam:      cam,
		viewProj: camera.ViewProjection(cam, proj),
		viewport: Viewport{Width: 800, Height: 600},
		params:   xform.DefaultParams(),
	}
}

// screenPos projects a 3D point to pixel coordinates.
func (s scene) screenPos(p mgl32.Vec3) mgl32.Vec2 {
	clip := s.viewProj.Mul4x1(p.Vec4(1))
	ndc := mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}
	return s.viewport.FromNDC(ndc)
}

func (s scene) query(t *testing.T, pixel mgl32.Vec2, mode AABBMode) Result {
	t.Helper()
	r, err := MouseRay(pixel, s.viewport, s.viewProj)
	require.NoError(t, err)
	return FindIntersectedSticker(s.cube, Query{
		Ray:      r,
		Rotation: mgl32.Ident4(),
		Params:   s.params,
		AABBMode: mode,
		Eye:      s.cam.Eye,
	})
}

func TestFindIntersectedSticker_HitsProjectedCenter(t *testing.T) {
	s := defaultScene()
	const target = 185 // face 6, grid (2, 1, 2)

	sticker, face, ok := s.cube.Sticker(target)
	require.True(t, ok)
	center, err := xform.Project(xform.StickerCenter(sticker, face, s.params.FaceSpacing), mgl32.Ident4(), s.params.ViewerDistance)
	require.NoError(t, err)

	res := s.query(t, s.screenPos(center), AABBNone)
	require.True(t, res.Hit)
	assert.Equal(t, target, res.Sticker)
	assert.Equal(t, 6, res.Face)
	assert.Greater(t, res.T, float32(0))
	assert.Less(t, res.T, s.cam.Eye.Sub(center).Len())
	assert.Empty(t, res.Debug)
}

func TestFindIntersectedSticker_CornerMisses(t *testing.T) {
	s := defaultScene()

	for _, px := range []mgl32.Vec2{{0, 0}, {799, 0}, {0, 599}, {799, 599}} {
		res := s.query(t, px, AABBFace)
		assert.False(t, res.Hit, "pixel %v", px)
		assert.Equal(t, -1, res.Sticker)
		assert.Empty(t, res.Debug)
	}
}

func TestFindIntersectedSticker_Deterministic(t *testing.T) {
	s := defaultScene()
	r, err := MouseRay(mgl32.Vec2{430, 290}, s.viewport, s.viewProj)
	require.NoError(t, err)
	q := Query{
		Ray:      r,
		Rotation: xform.AccumulateRotation(mgl32.Ident4(), 60, 35),
		Params:   s.params,
		AABBMode: AABBSticker,
		Eye:      s.cam.Eye,
	}

	first := FindIntersectedSticker(s.cube, q)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FindIntersectedSticker(s.cube, q))
	}
}

func TestFindIntersectedSticker_MatchesBruteForce(t *testing.T) {
	s := defaultScene()
	rot := xform.AccumulateRotation(mgl32.Ident4(), -80, 45)

	for y := float32(150); y <= 450; y += 25 {
		for x := float32(250); x <= 550; x += 25 {
			r, err := MouseRay(mgl32.Vec2{x, y}, s.viewport, s.viewProj)
			require.NoError(t, err)
			got := FindIntersectedSticker(s.cube, Query{Ray: r, Rotation: rot, Params: s.params})

			// Every visible sticker, no bounding boxes.
			want, wantT := -1, float32(0)
			for _, inst := range xform.GenerateInstances(s.cube, rot, s.params) {
				corners := inst.Corners
				if t, hit := rayCube(r, &corners); hit && (want < 0 || t < wantT) {
					want, wantT = inst.Sticker, t
				}
			}
			assert.Equal(t, want, got.Sticker, "pixel (%v, %v)", x, y)
		}
	}
}

func TestFindIntersectedSticker_DebugBoxes(t *testing.T) {
	s := defaultScene()
	sticker, face, ok := s.cube.Sticker(185)
	require.True(t, ok)
	p, err := xform.Project(xform.StickerCenter(sticker, face, s.params.FaceSpacing), mgl32.Ident4(), s.params.ViewerDistance)
	require.NoError(t, err)
	center := s.screenPos(p)

	none := s.query(t, center, AABBNone)
	assert.Empty(t, none.Debug)

	faces := s.query(t, center, AABBFace)
	require.NotEmpty(t, faces.Debug)
	for _, b := range faces.Debug {
		assert.Equal(t, -1, b.Sticker)
		assert.Equal(t, FaceDebugColor(b.Face), b.Color)
	}

	stickers := s.query(t, center, AABBSticker)
	require.NotEmpty(t, stickers.Debug)
	for i, b := range stickers.Debug {
		assert.GreaterOrEqual(t, b.Sticker, 0)
		assert.Equal(t, stickerDebugColor, b.Color)
		if i > 0 {
			assert.GreaterOrEqual(t, stickers.Debug[i-1].Distance, b.Distance, "boxes are sorted back to front")
		}
	}

	// The overlay never changes the hit.
	assert.Equal(t, 185, none.Sticker)
	assert.Equal(t, none.Sticker, faces.Sticker)
	assert.Equal(t, none.Sticker, stickers.Sticker)
}

func TestAABBMode_Next(t *testing.T) {
	assert.Equal(t, AABBFace, AABBNone.Next())
	assert.Equal(t, AABBSticker, AABBFace.Next())
	assert.Equal(t, AABBNone, AABBSticker.Next())
	assert.Equal(t, "sticker", AABBSticker.String())
}
