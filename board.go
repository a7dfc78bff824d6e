package main // import "github.com/tonobo/snake-autopilot"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrSnapshot = errors.New("invalid snapshot")

// Board is one snapshot of the game in pixel coordinates. Size is the side
// length of the square board, CellSize the side length of a cell.
type Board struct {
	Size     int    `json:"size"`
	CellSize int    `json:"cell_size"`
	Snake    *Snake `json:"-"`
	Food     *Food  `json:"-"`

	GameID string `json:"-"`
	debug  bool
	logDir string
	log    io.Writer
}

func (b *Board) Rows() int {
	return b.Size / b.CellSize
}

// Cell converts a pixel position into grid coordinates.
func (b *Board) Cell(p Point) Point {
	return Point{X: p.X / b.CellSize, Y: p.Y / b.CellSize}
}

func (b *Board) Pixel(c Point) Point {
	return Point{X: c.X * b.CellSize, Y: c.Y * b.CellSize}
}

func (b *Board) Outside(p Point) bool {
	return p.X < 0 || p.X > b.Size-1 || p.Y < 0 || p.Y > b.Size-1
}

func (b *Board) aligned(p Point) bool {
	return p.X%b.CellSize == 0 && p.Y%b.CellSize == 0
}

func (b *Board) Validate() error {
	if b.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrSnapshot, b.CellSize)
	}
	if b.Size <= 0 || b.Size%b.CellSize != 0 {
		return fmt.Errorf("%w: board size %d is not a multiple of cell size %d", ErrSnapshot, b.Size, b.CellSize)
	}
	if b.Snake == nil || len(b.Snake.Body) == 0 {
		return fmt.Errorf("%w: snake has no body", ErrSnapshot)
	}
	if _, ok := Direction2Vector[b.Snake.Heading]; !ok {
		return fmt.Errorf("%w: unknown heading %q", ErrSnapshot, b.Snake.Heading)
	}
	for i, p := range b.Snake.Body {
		if b.Outside(p) || !b.aligned(p) {
			return fmt.Errorf("%w: body[%d] at %d,%d is off grid", ErrSnapshot, i, p.X, p.Y)
		}
	}
	if b.Food == nil {
		return fmt.Errorf("%w: no food", ErrSnapshot)
	}
	if b.Outside(b.Food.Point) || !b.aligned(b.Food.Point) {
		return fmt.Errorf("%w: food at %d,%d is off grid", ErrSnapshot, b.Food.X, b.Food.Y)
	}
	return nil
}

// Free lists every cell, in pixel coordinates, not covered by the snake.
func (b *Board) Free() []Point {
	free := []Point{}
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Rows(); x++ {
			p := b.Pixel(Point{x, y})
			if !b.Snake.Covers(p) {
				free = append(free, p)
			}
		}
	}
	return free
}

func (b *Board) LogFile() io.Writer {
	if b.log != nil {
		return b.log
	}
	switch {
	case b.debug:
		b.log = os.Stdout
	case b.logDir == "":
		b.log = io.Discard
	default:
		name := filepath.Join(b.logDir, fmt.Sprintf("snake-%s.log", b.GameID))
		f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log %s: %v\n", name, err)
			b.log = io.Discard
			break
		}
		b.log = f
	}
	return b.log
}

func (b *Board) Close() error {
	if c, ok := b.log.(io.Closer); ok && b.log != os.Stdout {
		b.log = nil
		return c.Close()
	}
	return nil
}

func (b *Board) Route() *Route {
	return &Route{
		From:  b.Snake,
		To:    b.Food.Point,
		Board: b,
	}
}

// Move resolves route and returns the heading of its first step. An empty
// route keeps the current heading.
func (b *Board) Move(route *Route) (string, error) {
	if err := route.Resolve(); err != nil {
		return "", err
	}
	route.Print()
	PrintGrid(b.LogFile(), b, route.Steps)
	next, ok := route.Steps.Next()
	if !ok {
		return b.Snake.Heading, nil
	}
	return DirectionTo(b.Cell(b.Snake.Head()), next), nil
}
