package main // import "github.com/tonobo/snake-autopilot"

import (
	"errors"
	"fmt"

	"github.com/joonazan/vec2"
)

// ErrNoMove is returned when the search closed fewer than two cells: the
// snake has no legal move at all and the game has to be restarted.
var ErrNoMove = errors.New("no viable move")

// Route is a single A* search from the snake's head to a target. From and
// To are read only; Steps, Closed and Fallback are filled by Resolve.
type Route struct {
	From  *Snake
	To    Point
	Board *Board

	// LastWriterWins overwrites parent and scores of an open cell every time
	// it is rediscovered instead of only on a shorter tentative path.
	LastWriterWins bool

	// Steps is goal first, the start cell excluded.
	Steps    Path
	Closed   int
	Fallback bool
	Info     string
}

func (r *Route) Resolve() error {
	b := r.Board
	unit := b.CellSize
	start := b.Cell(r.From.Head())
	goal := b.Cell(r.To)
	rear := b.Cell(r.From.Rear(unit))

	occupied := make([]Point, 0, len(r.From.Body))
	for _, p := range r.From.Segments() {
		occupied = append(occupied, b.Cell(p))
	}
	grid := NewGrid(b.Rows(), occupied)

	first := grid.Index(start)
	grid.Cells[first].gScore = 0
	grid.Cells[first].fScore = start.Manhattan(goal, unit)

	open := []int{first}
	inOpen := make([]bool, len(grid.Cells))
	closed := make([]bool, len(grid.Cells))
	inOpen[first] = true
	last := noParent

	r.Steps, r.Closed, r.Fallback = nil, 0, false
	for len(open) > 0 {
		best := 0
		for i := 1; i < len(open); i++ {
			if grid.Cells[open[i]].fScore < grid.Cells[open[best]].fScore {
				best = i
			}
		}
		cur := open[best]
		open = append(open[:best], open[best+1:]...)
		inOpen[cur] = false
		current := &grid.Cells[cur]

		if current.Point == goal {
			r.Steps = grid.path(cur, start)
			return nil
		}
		closed[cur] = true
		r.Closed++
		last = cur

		// The cell behind the start heading may be entered while it is free
		// but is never expanded, on any step of the search.
		if current.Point == rear {
			continue
		}

		for i := -1; i < 2; i++ {
			for j := -1; j < 2; j++ {
				next, ok := admissible(grid, current.Point, vec2.Vector{X: float64(j), Y: float64(i)})
				if !ok {
					continue
				}
				n := grid.Index(next)
				if closed[n] {
					continue
				}
				// One step costs a cell in pixels rather than 1 so g and the
				// pixel heuristic share a unit.
				tentative := current.gScore + unit
				neighbor := &grid.Cells[n]
				if !inOpen[n] {
					open = append(open, n)
					inOpen[n] = true
				} else if !r.LastWriterWins && tentative >= neighbor.gScore {
					continue
				}
				neighbor.parent = cur
				neighbor.gScore = tentative
				neighbor.fScore = tentative + next.Manhattan(goal, unit)
			}
		}
	}

	if r.Closed < 2 {
		r.Info += "F"
		return ErrNoMove
	}
	// Target unreachable: head for the region explored last.
	r.Info += "U"
	r.Fallback = true
	r.Steps = grid.path(last, start)
	return nil
}

// admissible applies the neighbor filter to the cell at p minus step. The
// whole 3x3 block is scanned and the center and diagonals are rejected here.
func admissible(g *Grid, p Point, step vec2.Vector) (Point, bool) {
	next := VecPoint(p.Vec().Minus(step))
	if !g.Inside(next) {
		return next, false
	}
	if step.Length() == 0 {
		return next, false
	}
	if step.Length() > 1 {
		return next, false
	}
	if g.Cell(next).Occupied {
		return next, false
	}
	return next, true
}

func (g *Grid) path(idx int, start Point) Path {
	p := Path{}
	for ; idx != noParent; idx = g.Cells[idx].parent {
		p = append(p, g.Cells[idx].Point)
	}
	if len(p) > 0 && p[len(p)-1] == start {
		p = p[:len(p)-1]
	}
	return p
}

func (r *Route) Print() {
	head := r.From.Head()
	fmt.Fprintf(r.Board.LogFile(),
		"%s: from x: %d, y: %d to x: %d, y: %d, heading: %s, steps: %d,"+
			" closed: %d, fallback: %t, info: %s\n",
		r.From.Name, head.X, head.Y, r.To.X, r.To.Y, r.From.Heading,
		len(r.Steps), r.Closed, r.Fallback, r.Info)
}
