package geom

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	NumFaces        = 8
	GridSize        = 3
	StickersPerFace = GridSize * GridSize * GridSize
	NumStickers     = NumFaces * StickersPerFace
)

// FaceCenters holds the 4D center of every cell. One coordinate is ±1, the
// rest are zero. Index order is the face id.
var FaceCenters = [NumFaces]mgl32.Vec4{
	{0, 0, 0, -1},
	{0, 0, -1, 0},
	{0, -1, 0, 0},
	{-1, 0, 0, 0},
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// FixedDims holds the axis pinned by each cell (0=X, 1=Y, 2=Z, 3=W).
var FixedDims = [NumFaces]int{3, 2, 1, 0, 0, 1, 2, 3}

// FaceColors is the solved-state color of each cell.
var FaceColors = [NumFaces]Color{White, Yellow, Blue, Green, Red, Orange, Purple, Brown}

// Sticker is one colored unit cell. Position is expressed in the fixed
// hypercube frame and never changes; rotation happens at transform time.
type Sticker struct {
	Color    Color
	Position mgl32.Vec4
}

// Face is one of the eight cubic cells of the tesseract.
type Face struct {
	ID       int
	Stickers []Sticker
	Center   mgl32.Vec4
	FixedDim int
}

// Hypercube is the 8-cell aggregate, built once in the solved state.
type Hypercube struct {
	Faces []Face
}

// GridCoord maps a grid index 0..2 to its offset -2/3, 0, +2/3.
func GridCoord(n int) float32 {
	return (float32(n) - 1.0) * 2.0 / 3.0
}

// StickerIndex returns the global index of the sticker at grid (i, j, k) of face.
func StickerIndex(face, i, j, k int) int {
	return face*StickersPerFace + i*GridSize*GridSize + j*GridSize + k
}

// SplitIndex is the inverse of StickerIndex for the face part.
func SplitIndex(global int) (face, local int) {
	return global / StickersPerFace, global % StickersPerFace
}

// FreeDims lists the three axes a cell with the given fixed axis spans, in
// ascending order.
func FreeDims(fixedDim int) [3]int {
	var dims [3]int
	n := 0
	for d := 0; d < 4; d++ {
		if d == fixedDim {
			continue
		}
		dims[n] = d
		n++
	}
	return dims
}

// NewFace builds the 3x3x3 sticker grid of face id from the fixed tables.
func NewFace(id int) Face {
	center := FaceCenters[id]
	fixed := FixedDims[id]
	free := FreeDims(fixed)
	color := FaceColors[id]

	stickers := make([]Sticker, 0, StickersPerFace)
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			for k := 0; k < GridSize; k++ {
				pos := center
				pos[free[0]] += GridCoord(i)
				pos[free[1]] += GridCoord(j)
				pos[free[2]] += GridCoord(k)
				stickers = append(stickers, Sticker{Color: color, Position: pos})
			}
		}
	}

	return Face{
		ID:       id,
		Stickers: stickers,
		Center:   center,
		FixedDim: fixed,
	}
}

// NewHypercube returns a hypercube in the canonical solved state.
func NewHypercube() *Hypercube {
	faces := make([]Face, NumFaces)
	for id := range faces {
		faces[id] = NewFace(id)
	}
	return &Hypercube{Faces: faces}
}

// StickerCount returns the total number of stickers.
func (h *Hypercube) StickerCount() int {
	n := 0
	for _, f := range h.Faces {
		n += len(f.Stickers)
	}
	return n
}

// Sticker looks up a sticker by global index.
func (h *Hypercube) Sticker(global int) (Sticker, *Face, bool) {
	if global < 0 {
		return Sticker{}, nil, false
	}
	face, local := SplitIndex(global)
	if face >= len(h.Faces) || local >= len(h.Faces[face].Stickers) {
		return Sticker{}, nil, false
	}
	f := &h.Faces[face]
	return f.Stickers[local], f, true
}
