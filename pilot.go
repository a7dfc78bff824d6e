package main // import "github.com/tonobo/snake-autopilot"

import "fmt"

// Pilot steers the snake along a route, one cell per tick. A new route is
// only searched once the pending one has been consumed or invalidated.
type Pilot struct {
	Path     Path
	Searches int

	LastWriterWins bool
}

func (p *Pilot) Invalidate() {
	p.Path = nil
}

// Tick returns the movement for the coming tick in pixel coordinates. On
// ErrNoMove the pending path is dropped and the caller has to restart.
func (p *Pilot) Tick(b *Board) (*Movement, error) {
	if len(p.Path) == 0 {
		route := b.Route()
		route.LastWriterWins = p.LastWriterWins
		p.Searches++
		if err := route.Resolve(); err != nil {
			p.Path = nil
			return nil, fmt.Errorf("search %d: %w", p.Searches, err)
		}
		route.Print()
		p.Path = route.Steps
	}
	next, ok := p.Path.Next()
	if !ok {
		return nil, nil
	}
	p.Path = p.Path[:len(p.Path)-1]
	target := b.Pixel(next)
	return &Movement{
		Direction: DirectionTo(b.Snake.Head(), target),
		Target:    target,
	}, nil
}
