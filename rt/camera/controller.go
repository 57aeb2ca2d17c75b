package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinDistance float32 = 5
	MaxDistance float32 = 50
	MinPitch    float32 = -89
	MaxPitch    float32 = 89
)

// Controller orbits the camera around the origin. Yaw and Pitch are in
// degrees. It is the only writer of Camera.
type Controller struct {
	Distance        float32
	Yaw             float32
	Pitch           float32
	Sensitivity     float32
	ZoomSensitivity float32

	// LastMousePos is nil while no drag is being tracked.
	LastMousePos *mgl32.Vec2
}

func NewController() *Controller {
	return &Controller{
		Distance:        DefaultDistance,
		Sensitivity:     0.5,
		ZoomSensitivity: 1.0,
	}
}

// UpdateCamera recomputes the eye from the spherical state. Call it once
// per frame whether or not input changed.
func (c *Controller) UpdateCamera(cam *Camera) {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	d := float64(c.Distance)

	cam.Eye = mgl32.Vec3{
		float32(d * math.Cos(pitch) * math.Sin(yaw)),
		float32(d * math.Sin(pitch)),
		float32(d * math.Cos(pitch) * math.Cos(yaw)),
	}
	cam.Target = mgl32.Vec3{0, 0, 0}
	cam.Up = mgl32.Vec3{0, 1, 0}
}

func (c *Controller) ProcessMouseMotion(dx, dy float32) {
	if !finite(dx) || !finite(dy) {
		return
	}
	c.Yaw -= dx * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.Sensitivity, MinPitch, MaxPitch)
	c.Yaw = float32(math.Remainder(float64(c.Yaw), 360))
}

func (c *Controller) ProcessScroll(delta float32) {
	if !finite(delta) {
		return
	}
	c.Distance = mgl32.Clamp(c.Distance-delta*c.ZoomSensitivity, MinDistance, MaxDistance)
}

// TrackPointer records the pointer and returns the delta since the previous
// call. ok is false on the first sample of a drag.
func (c *Controller) TrackPointer(x, y float32) (dx, dy float32, ok bool) {
	pos := mgl32.Vec2{x, y}
	if c.LastMousePos != nil {
		dx = x - c.LastMousePos.X()
		dy = y - c.LastMousePos.Y()
		ok = true
	}
	c.LastMousePos = &pos
	return dx, dy, ok
}

func (c *Controller) ReleasePointer() {
	c.LastMousePos = nil
}

// Reset returns the orbit to its starting pose.
func (c *Controller) Reset() {
	c.Distance = DefaultDistance
	c.Yaw = 0
	c.Pitch = 0
	c.LastMousePos = nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
