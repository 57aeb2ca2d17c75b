package geom

import "github.com/go-gl/mathgl/mgl32"

// CubeVertices are the corners of the unit sticker cube (half-extent 1).
//
//	0..3 lie on z=+1 (front), 4..7 on z=-1 (back).
var CubeVertices = [8]mgl32.Vec3{
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
}

// CubeIndices lists 12 triangles, two per cube side.
var CubeIndices = [36]uint16{
	0, 1, 2, 2, 3, 0, // front
	1, 5, 6, 6, 2, 1, // right
	5, 4, 7, 7, 6, 5, // back
	4, 0, 3, 3, 7, 4, // left
	3, 2, 6, 6, 7, 3, // top
	4, 5, 1, 1, 0, 4, // bottom
}

// CubeEdges lists the 12 edges of the cube as corner pairs.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
