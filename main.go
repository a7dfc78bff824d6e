package main // import "github.com/tonobo/snake-autopilot"

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	DefaultBoardSize = 500
	DefaultCellSize  = 5
	Color            = "#ff00ff"
)

type Request struct {
	Game  *GameInfo `json:"game"`
	Turn  int       `json:"turn"`
	Board *Board    `json:"board"`
	Self  *Snake    `json:"you"`
	Food  *Food     `json:"food"`

	// Overwrite rediscovered cells as the first implementation did.
	LastWriterWins bool `json:"last_writer_wins"`
}

type GameInfo struct {
	ID string `json:"id"`
}

// Init wires the snapshot into the board and checks the preconditions
// of the search.
func (r *Request) Init() error {
	if r.Board == nil {
		r.Board = &Board{}
	}
	if r.Board.Size == 0 {
		r.Board.Size = DefaultBoardSize
	}
	if r.Board.CellSize == 0 {
		r.Board.CellSize = DefaultCellSize
	}
	r.Board.Snake = r.Self
	r.Board.Food = r.Food
	if r.Game != nil {
		r.Board.GameID = r.Game.ID
	}
	if err := r.Board.Validate(); err != nil {
		return fmt.Errorf("turn %d: %w", r.Turn, err)
	}
	return nil
}

func (r *Request) Route() *Route {
	route := r.Board.Route()
	route.LastWriterWins = r.LastWriterWins
	return route
}

// PrintGrid draws the board with the snake, the food and the cells of a
// pending path (in grid coordinates).
func PrintGrid(file io.Writer, b *Board, path Path) {
	onPath := make(map[Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	head := b.Cell(b.Snake.Head())
	body := make(map[Point]bool, len(b.Snake.Body))
	for _, p := range b.Snake.Segments() {
		body[b.Cell(p)] = true
	}
	food := b.Cell(b.Food.Point)
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Rows(); x++ {
			p := Point{X: x, Y: y}
			switch {
			case p == head:
				fmt.Fprint(file, "H")
			case body[p]:
				fmt.Fprint(file, "s")
			case p == food:
				fmt.Fprint(file, "F")
			case onPath[p]:
				fmt.Fprint(file, "*")
			default:
				fmt.Fprint(file, "-")
			}
		}
		fmt.Fprint(file, "\n")
	}
	fmt.Fprint(file, "\n")
}

var (
	move   = flag.Bool("move", false, "Read a snapshot from stdin and print the next move")
	path   = flag.Bool("path", false, "Read a snapshot from stdin and print the route")
	play   = flag.Int("play", 0, "Run the autopilot headless for the given number of ticks")
	size   = flag.Int("size", 100, "Board size in pixels for -play")
	cell   = flag.Int("cell", 5, "Cell size in pixels for -play")
	seed   = flag.Int64("seed", 1, "Random seed for -play")
	addr   = flag.String("addr", ":8080", "Listen address")
	debug  = flag.Bool("debug", false, "Log boards and routes to stdout")
	logDir = flag.String("logdir", "", "Directory for per-game log files")
)

func readRequest(in io.Reader) (*Request, error) {
	var j Request
	if err := json.NewDecoder(in).Decode(&j); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := j.Init(); err != nil {
		return nil, err
	}
	j.Board.debug = *debug
	j.Board.logDir = *logDir
	return &j, nil
}

func run() error {
	switch {
	case *play > 0:
		g := NewGame(*size, *cell, *seed)
		g.Board.debug = true
		g.Play(&Pilot{}, *play)
		return nil
	case *move:
		j, err := readRequest(os.Stdin)
		if err != nil {
			return err
		}
		defer j.Board.Close()
		m, err := j.Board.Move(j.Route())
		if err != nil {
			return err
		}
		fmt.Println(m)
		return nil
	case *path:
		j, err := readRequest(os.Stdin)
		if err != nil {
			return err
		}
		defer j.Board.Close()
		route := j.Route()
		if err := route.Resolve(); err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(newPathResponse(route))
	}
	r := gin.Default()
	NewServer(*debug, *logDir).Register(r)
	return r.Run(*addr)
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, ErrNoMove) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
