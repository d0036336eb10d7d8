package game

import "github.com/go-gl/glfw/v3.3/glfw"

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// ActionPressed reports a new flap/shoot/start press: Space, Up, W or a
// left click. Every source is polled so edge state stays current.
func (in *Input) ActionPressed(window *glfw.Window) bool {
	space := in.JustPressed(window, glfw.KeySpace)
	up := in.JustPressed(window, glfw.KeyUp)
	w := in.JustPressed(window, glfw.KeyW)
	click := in.JustClicked(window, glfw.MouseButtonLeft)
	return space || up || w || click
}

// ThemeDelta is -1/+1 on a new Left/Right press, else 0.
func (in *Input) ThemeDelta(window *glfw.Window) int {
	left := in.JustPressed(window, glfw.KeyLeft)
	right := in.JustPressed(window, glfw.KeyRight)
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	}
	return 0
}
