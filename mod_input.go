package tesseract

import (
	"github.com/gekko3d/tesseract/rt/pick"
	"github.com/go-gl/mathgl/mgl32"
)

type Key int

const (
	KeyUnknown Key = iota
	Key1
	Key2
	Key3
	KeyB
	KeyR
	KeyLeftBracket
	KeyRightBracket
	KeyMinus
	KeyEqual
	KeyF5
	KeyF9
	KeyEscape
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

type EventKind int

const (
	EventPointerMoved EventKind = iota
	EventButtonPressed
	EventButtonReleased
	EventScrolled
	EventModifierChanged
	EventKeyPressed
	EventResized
	EventCloseRequested
	EventStickerScaleChanged
	EventFaceSpacingChanged
	EventRenderModeChanged
	EventAABBModeChanged
	EventResetView
)

// Event is one input occurrence. Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	X, Y   float32
	Button MouseButton
	Key    Key
	Held   bool
	Value  float32
	Mode   RenderMode
	AABB   pick.AABBMode
	Width  int
	Height int
}

func PointerMoved(x, y float32) Event {
	return Event{Kind: EventPointerMoved, X: x, Y: y}
}

func ButtonPressed(b MouseButton) Event {
	return Event{Kind: EventButtonPressed, Button: b}
}

func ButtonReleased(b MouseButton) Event {
	return Event{Kind: EventButtonReleased, Button: b}
}

func Scrolled(delta float32) Event {
	return Event{Kind: EventScrolled, Y: delta}
}

func ModifierChanged(held bool) Event {
	return Event{Kind: EventModifierChanged, Held: held}
}

func KeyPressed(k Key) Event {
	return Event{Kind: EventKeyPressed, Key: k}
}

func Resized(width, height int) Event {
	return Event{Kind: EventResized, Width: width, Height: height}
}

func CloseRequested() Event {
	return Event{Kind: EventCloseRequested}
}

func StickerScaleChanged(v float32) Event {
	return Event{Kind: EventStickerScaleChanged, Value: v}
}

func FaceSpacingChanged(v float32) Event {
	return Event{Kind: EventFaceSpacingChanged, Value: v}
}

func RenderModeChanged(m RenderMode) Event {
	return Event{Kind: EventRenderModeChanged, Mode: m}
}

func AABBModeChanged(m pick.AABBMode) Event {
	return Event{Kind: EventAABBModeChanged, AABB: m}
}

func ResetView() Event {
	return Event{Kind: EventResetView}
}

// InteractionMode is derived from the pointer buttons and modifier.
type InteractionMode int

const (
	ModeHover InteractionMode = iota
	ModeOrbit
	ModeRotate4D
)

func (m InteractionMode) String() string {
	switch m {
	case ModeHover:
		return "hover"
	case ModeOrbit:
		return "orbit"
	case ModeRotate4D:
		return "rotate-4d"
	}
	return "unknown"
}

// Input is the per-frame event queue plus the state derived from events
// already folded. Hosts push events; the interaction system drains them.
type Input struct {
	events []Event

	Pointer      mgl32.Vec2
	Viewport     pick.Viewport
	RotateHeld   bool
	ModifierHeld bool

	SaveRequested bool
	LoadRequested bool
}

func NewInput(width, height int) *Input {
	return &Input{
		Viewport: pick.Viewport{Width: float32(width), Height: float32(height)},
	}
}

func (in *Input) Push(events ...Event) {
	in.events = append(in.events, events...)
}

// Drain returns the queued events in arrival order and empties the queue.
func (in *Input) Drain() []Event {
	events := in.events
	in.events = nil
	return events
}

func (in *Input) Pending() int {
	return len(in.events)
}

func (in *Input) Mode() InteractionMode {
	switch {
	case in.RotateHeld && in.ModifierHeld:
		return ModeRotate4D
	case in.RotateHeld:
		return ModeOrbit
	default:
		return ModeHover
	}
}

type InputModule struct {
	Width, Height int
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewInput(mod.Width, mod.Height))
}
