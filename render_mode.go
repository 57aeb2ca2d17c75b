package tesseract

import (
	"fmt"
	"strings"

	"github.com/gekko3d/tesseract/rt/raster"
)

// RenderMode selects how stickers are shaded.
type RenderMode int

const (
	RenderStandard RenderMode = iota
	RenderNormals
	RenderDepth
)

var renderModeNames = [...]string{
	RenderStandard: "standard",
	RenderNormals:  "normals",
	RenderDepth:    "depth",
}

func (m RenderMode) String() string {
	if m < 0 || int(m) >= len(renderModeNames) {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
	return renderModeNames[m]
}

func ParseRenderMode(s string) (RenderMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range renderModeNames {
		if n == name {
			return RenderMode(i), nil
		}
	}
	return RenderStandard, fmt.Errorf("unknown render mode %q", s)
}

// Shading maps the mode to the rasterizer's shading.
func (m RenderMode) Shading() raster.Shading {
	switch m {
	case RenderNormals:
		return raster.ShadeNormals
	case RenderDepth:
		return raster.ShadeDepth
	default:
		return raster.ShadeStandard
	}
}
