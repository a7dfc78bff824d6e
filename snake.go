package main // import "github.com/tonobo/snake-autopilot"

// Snake is the agent. Body[0] is the head, Body[1] the segment right
// behind it, the last element the tail tip.
type Snake struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Heading string  `json:"heading"`
	Body    []Point `json:"body"`
}

func (s *Snake) Head() Point {
	return s.Body[0]
}

func (s *Snake) Segments() []Point {
	return s.Body[1:]
}

// Rear is the position one unit behind the head when looking along the
// heading. unit is the cell size for pixel positions and 1 for cells.
func (s *Snake) Rear(unit int) Point {
	back := VecPoint(Direction2Vector[Opposite[s.Heading]])
	head := s.Head()
	return Point{X: head.X + back.X*unit, Y: head.Y + back.Y*unit}
}

// Advance moves the head onto to. The body follows and the tail tip is
// vacated unless grow is set.
func (s *Snake) Advance(to Point, grow bool) {
	if dir := DirectionTo(s.Head(), to); dir != "" {
		s.Heading = dir
	}
	if grow {
		s.Body = append(s.Body, Point{})
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = to
}

func (s *Snake) Covers(p Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

func (s *Snake) Copy() *Snake {
	c := *s
	c.Body = append([]Point(nil), s.Body...)
	return &c
}

type Food struct {
	Point
}
