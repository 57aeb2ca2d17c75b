package window

import (
	"github.com/gekko3d/tesseract"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keys = map[glfw.Key]tesseract.Key{
	glfw.Key1:            tesseract.Key1,
	glfw.Key2:            tesseract.Key2,
	glfw.Key3:            tesseract.Key3,
	glfw.KeyB:            tesseract.KeyB,
	glfw.KeyR:            tesseract.KeyR,
	glfw.KeyLeftBracket:  tesseract.KeyLeftBracket,
	glfw.KeyRightBracket: tesseract.KeyRightBracket,
	glfw.KeyMinus:        tesseract.KeyMinus,
	glfw.KeyEqual:        tesseract.KeyEqual,
	glfw.KeyKPSubtract:   tesseract.KeyMinus,
	glfw.KeyKPAdd:        tesseract.KeyEqual,
	glfw.KeyF5:           tesseract.KeyF5,
	glfw.KeyF9:           tesseract.KeyF9,
	glfw.KeyEscape:       tesseract.KeyEscape,
}

var mouseButtons = map[glfw.MouseButton]tesseract.MouseButton{
	glfw.MouseButtonLeft:   tesseract.MouseButtonLeft,
	glfw.MouseButtonRight:  tesseract.MouseButtonRight,
	glfw.MouseButtonMiddle: tesseract.MouseButtonMiddle,
}
