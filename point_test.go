package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManhattan(t *testing.T) {
	assert.Equal(t, 7, Point{0, 0}.Manhattan(Point{3, 4}, 1))
	assert.Equal(t, 35, Point{0, 0}.Manhattan(Point{3, 4}, 5))
	assert.Equal(t, 7, Point{3, 4}.Manhattan(Point{0, 0}, 1))
	assert.Equal(t, 0, Point{2, 2}.Manhattan(Point{2, 2}, 5))
	assert.True(t, Point{2, 2}.Adjacent(Point{2, 3}))
	assert.False(t, Point{2, 2}.Adjacent(Point{3, 3}))
	assert.False(t, Point{2, 2}.Adjacent(Point{2, 2}))
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(4, []Point{{1, 2}, {3, 3}, {7, 7}})
	require.Len(t, g.Cells, 16)
	for i, c := range g.Cells {
		assert.Equal(t, i, g.Index(c.Point))
		assert.False(t, c.Discovered())
		assert.Equal(t, noParent, c.parent)
		assert.Equal(t, -1, c.fScore)
	}
	assert.True(t, g.Cell(Point{1, 2}).Occupied)
	assert.True(t, g.Cell(Point{3, 3}).Occupied)
	assert.False(t, g.Cell(Point{2, 1}).Occupied)
	assert.Equal(t, 9, g.Index(Point{1, 2}))
	assert.False(t, g.Inside(Point{4, 0}))
	assert.False(t, g.Inside(Point{0, -1}))
	assert.True(t, g.Inside(Point{3, 3}))
}

func TestPathNext(t *testing.T) {
	_, ok := Path{}.Next()
	assert.False(t, ok)
	next, ok := Path{{3, 0}, {2, 0}, {1, 0}}.Next()
	require.True(t, ok)
	assert.Equal(t, Point{1, 0}, next)
}

func TestDirectionTo(t *testing.T) {
	from := Point{5, 5}
	assert.Equal(t, "right", DirectionTo(from, Point{6, 5}))
	assert.Equal(t, "left", DirectionTo(from, Point{4, 5}))
	assert.Equal(t, "down", DirectionTo(from, Point{5, 6}))
	assert.Equal(t, "up", DirectionTo(from, Point{5, 4}))
	assert.Equal(t, "", DirectionTo(from, from))
	for dir, opposite := range Opposite {
		v := VecPoint(Direction2Vector[dir])
		assert.Equal(t, opposite, DirectionTo(from, Point{from.X - v.X, from.Y - v.Y}))
	}
}

func TestSnakeAdvance(t *testing.T) {
	s := &Snake{Heading: "right", Body: []Point{{2, 2}, {1, 2}, {0, 2}}}
	assert.Equal(t, Point{1, 2}, s.Rear(1))

	s.Advance(Point{2, 3}, false)
	assert.Equal(t, []Point{{2, 3}, {2, 2}, {1, 2}}, s.Body)
	assert.Equal(t, "down", s.Heading)
	assert.Equal(t, Point{2, 2}, s.Rear(1))

	s.Advance(Point{3, 3}, true)
	assert.Equal(t, []Point{{3, 3}, {2, 3}, {2, 2}, {1, 2}}, s.Body)
	assert.True(t, s.Covers(Point{2, 2}))
	assert.False(t, s.Covers(Point{0, 2}))

	px := &Snake{Heading: "up", Body: []Point{{10, 10}}}
	assert.Equal(t, Point{10, 15}, px.Rear(5))
}

func TestBoardValidate(t *testing.T) {
	valid := func() *Board {
		return &Board{
			Size:     50,
			CellSize: 5,
			Snake:    &Snake{Heading: "up", Body: []Point{{10, 10}, {10, 15}}},
			Food:     &Food{Point{45, 0}},
		}
	}
	require.NoError(t, valid().Validate())

	testCases := []struct {
		name   string
		mutate func(b *Board)
	}{
		{"zero cell size", func(b *Board) { b.CellSize = 0 }},
		{"size not a multiple", func(b *Board) { b.Size = 52 }},
		{"no snake", func(b *Board) { b.Snake = nil }},
		{"empty body", func(b *Board) { b.Snake.Body = nil }},
		{"diagonal heading", func(b *Board) { b.Snake.Heading = "up-left" }},
		{"head off board", func(b *Board) { b.Snake.Body[0] = Point{50, 0} }},
		{"head between cells", func(b *Board) { b.Snake.Body[0] = Point{12, 10} }},
		{"no food", func(b *Board) { b.Food = nil }},
		{"food off board", func(b *Board) { b.Food.Y = -5 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := valid()
			tc.mutate(b)
			assert.ErrorIs(t, b.Validate(), ErrSnapshot)
		})
	}
}

func TestBoardConversions(t *testing.T) {
	b := &Board{Size: 500, CellSize: 5}
	assert.Equal(t, 100, b.Rows())
	assert.Equal(t, Point{3, 7}, b.Cell(Point{15, 35}))
	assert.Equal(t, Point{15, 35}, b.Pixel(Point{3, 7}))
	assert.True(t, b.Outside(Point{500, 0}))
	assert.False(t, b.Outside(Point{495, 495}))
}
