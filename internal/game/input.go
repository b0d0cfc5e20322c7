package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/sim"
)

// PressedDirections samples the directional keys held down this frame.
// Arrow keys and WASD are equivalent; conflict resolution between multiple
// held directions happens inside the simulation.
func PressedDirections(window *glfw.Window) sim.DirectionSet {
	var set sim.DirectionSet
	if window.GetKey(glfw.KeyLeft) == glfw.Press || window.GetKey(glfw.KeyA) == glfw.Press {
		set = set.With(sim.Left)
	}
	if window.GetKey(glfw.KeyUp) == glfw.Press || window.GetKey(glfw.KeyW) == glfw.Press {
		set = set.With(sim.Up)
	}
	if window.GetKey(glfw.KeyRight) == glfw.Press || window.GetKey(glfw.KeyD) == glfw.Press {
		set = set.With(sim.Right)
	}
	if window.GetKey(glfw.KeyDown) == glfw.Press || window.GetKey(glfw.KeyS) == glfw.Press {
		set = set.With(sim.Down)
	}
	return set
}
