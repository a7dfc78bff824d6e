package main // import "github.com/tonobo/snake-autopilot"

import "github.com/joonazan/vec2"

// Screen coordinates: y grows downwards.
var Direction2Vector = map[string]vec2.Vector{
	"up":    vec2.Vector{X: 0, Y: -1},
	"down":  vec2.Vector{X: 0, Y: 1},
	"left":  vec2.Vector{X: -1, Y: 0},
	"right": vec2.Vector{X: 1, Y: 0},
}

var Opposite = map[string]string{
	"up":    "down",
	"down":  "up",
	"left":  "right",
	"right": "left",
}

// DirectionTo returns the heading that moves from towards to. Horizontal
// offsets win over vertical ones.
func DirectionTo(from, to Point) string {
	d := to.Vec().Minus(from.Vec())
	switch {
	case d.X > 0:
		return "right"
	case d.X < 0:
		return "left"
	case d.Y > 0:
		return "down"
	case d.Y < 0:
		return "up"
	}
	return ""
}

type Movement struct {
	Direction string
	Target    Point
}

func (m *Movement) X() int {
	return m.Target.X
}

func (m *Movement) Y() int {
	return m.Target.Y
}
