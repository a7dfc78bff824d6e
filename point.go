package main // import "github.com/tonobo/snake-autopilot"

import (
	"math"

	"github.com/joonazan/vec2"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Vec() vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

func VecPoint(v vec2.Vector) Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Manhattan returns |dx| + |dy| between p and o, scaled by unit and floored.
func (p Point) Manhattan(o Point, unit int) int {
	d := o.Vec().Minus(p.Vec())
	return int(math.Floor((math.Abs(d.X) + math.Abs(d.Y)) * float64(unit)))
}

func (p Point) Adjacent(o Point) bool {
	return p.Manhattan(o, 1) == 1
}

type Path []Point

// Next is the cell the snake moves to on the coming tick.
func (p Path) Next() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1], true
}

const noParent = -1

type Cell struct {
	Point
	Occupied bool

	parent int
	gScore int
	fScore int
}

func (c *Cell) Discovered() bool {
	return c.gScore >= 0
}

// Grid is a square arena of cells indexed by y*Rows + x.
type Grid struct {
	Rows  int
	Cells []Cell
}

func NewGrid(rows int, occupied []Point) *Grid {
	g := &Grid{Rows: rows, Cells: make([]Cell, rows*rows)}
	for y := 0; y < rows; y++ {
		for x := 0; x < rows; x++ {
			g.Cells[g.Index(Point{x, y})] = Cell{
				Point:  Point{X: x, Y: y},
				parent: noParent,
				gScore: -1,
				fScore: -1,
			}
		}
	}
	for _, p := range occupied {
		if g.Inside(p) {
			g.Cells[g.Index(p)].Occupied = true
		}
	}
	return g
}

func (g *Grid) Index(p Point) int {
	return p.Y*g.Rows + p.X
}

func (g *Grid) Inside(p Point) bool {
	return p.X >= 0 && p.X < g.Rows && p.Y >= 0 && p.Y < g.Rows
}

func (g *Grid) Cell(p Point) *Cell {
	return &g.Cells[g.Index(p)]
}
