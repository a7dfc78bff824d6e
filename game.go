package main // import "github.com/tonobo/snake-autopilot"

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrCollision = errors.New("collision")

// Game is a headless snake game. Every call to Step is one tick.
type Game struct {
	Board  *Board
	Score  int
	Eaten  int
	Resets int
	Ticks  int

	rand *rand.Rand
}

func NewGame(size, cellSize int, seed int64) *Game {
	g := &Game{
		Board: &Board{Size: size, CellSize: cellSize, GameID: fmt.Sprintf("play-%d", seed)},
		rand:  rand.New(rand.NewSource(seed)),
	}
	g.place()
	return g
}

func (g *Game) place() {
	b := g.Board
	head := b.Pixel(Point{X: g.rand.Intn(b.Rows()), Y: g.rand.Intn(b.Rows())})
	b.Snake = &Snake{Name: "autopilot", Heading: "right", Body: []Point{head}}
	g.Score = 0
	g.spawnFood()
}

func (g *Game) spawnFood() {
	free := g.Board.Free()
	if len(free) == 0 {
		g.Board.Food = &Food{g.Board.Snake.Head()}
		return
	}
	g.Board.Food = &Food{free[g.rand.Intn(len(free))]}
}

func (g *Game) Reset() {
	g.Resets++
	g.place()
}

// Step applies m to the snake. It reports whether food was eaten and
// returns ErrCollision when the head left the board or hit the body.
func (g *Game) Step(m *Movement) (bool, error) {
	g.Ticks++
	if m == nil {
		return false, nil
	}
	b := g.Board
	if b.Outside(m.Target) {
		return false, fmt.Errorf("%w: wall at %d,%d", ErrCollision, m.Target.X, m.Target.Y)
	}
	body := b.Snake.Body
	// The tail tip moves away on this tick.
	for i := 1; i < len(body)-1; i++ {
		if p := body[i]; p == m.Target {
			return false, fmt.Errorf("%w: body at %d,%d", ErrCollision, p.X, p.Y)
		}
	}
	ate := m.Target == b.Food.Point
	b.Snake.Advance(m.Target, ate)
	if ate {
		g.Score++
		g.Eaten++
		g.spawnFood()
	}
	return ate, nil
}

// Play runs the pilot for the given number of ticks and restarts the game
// whenever the pilot gives up or the snake crashes.
func (g *Game) Play(p *Pilot, ticks int) {
	out := g.Board.LogFile()
	for i := 0; i < ticks; i++ {
		m, err := p.Tick(g.Board)
		if err == nil {
			var ate bool
			ate, err = g.Step(m)
			if ate {
				p.Invalidate()
			}
		}
		if err != nil {
			fmt.Fprintf(out, "tick %d: score %d: %v, restarting\n", g.Ticks, g.Score, err)
			p.Invalidate()
			g.Reset()
		}
	}
	PrintGrid(out, g.Board, p.Path)
	fmt.Fprintf(out, "ticks: %d, score: %d, eaten: %d, resets: %d, searches: %d\n",
		g.Ticks, g.Score, g.Eaten, g.Resets, p.Searches)
}
