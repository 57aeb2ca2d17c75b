package geom

import "github.com/go-gl/mathgl/mgl32"

// Color identifies the cell a sticker belongs to in the solved state.
type Color int

const (
	White Color = iota
	Yellow
	Blue
	Green
	Red
	Orange
	Purple
	Brown
)

var colorNames = [...]string{"White", "Yellow", "Blue", "Green", "Red", "Orange", "Purple", "Brown"}

var colorValues = [...]mgl32.Vec4{
	{1.0, 1.0, 1.0, 1.0},
	{1.0, 1.0, 0.0, 1.0},
	{0.1, 0.1, 1.0, 1.0},
	{0.0, 1.0, 0.0, 1.0},
	{1.0, 0.0, 0.0, 1.0},
	{1.0, 0.5, 0.0, 1.0},
	{0.0, 0.5, 1.0, 1.0},
	{0.5, 0.25, 0.0, 1.0},
}

// RGBA returns the linear RGBA quadruple used for rendering.
func (c Color) RGBA() mgl32.Vec4 {
	if c < 0 || int(c) >= len(colorValues) {
		return mgl32.Vec4{0.5, 0.5, 0.5, 1.0}
	}
	return colorValues[c]
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Unknown"
	}
	return colorNames[c]
}
