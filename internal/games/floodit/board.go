package floodit

import (
	"fmt"
	"math/rand"
)

// Board dimensions. Width and Height are the largest valid column and row
// indices, so the grid holds Cols x Rows cells.
const (
	Width  = 16
	Height = 14
	Cols   = Width + 1
	Rows   = Height + 1
)

// smearPasses is the number of copy-right passes applied after the random fill.
const smearPasses = Width*Height + 1

// Coord addresses a board cell. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// OriginCoord is the cell every move is anchored at.
var OriginCoord = C(0, 0)

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// InBounds reports whether c addresses a board cell.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X <= Width && c.Y >= 0 && c.Y <= Height
}

// Neighbors returns the in-bounds orthogonal neighbors of c
// in left, up, right, down order.
func (c Coord) Neighbors() []Coord {
	out := make([]Coord, 0, 4)
	if c.X > 0 {
		out = append(out, C(c.X-1, c.Y))
	}
	if c.Y > 0 {
		out = append(out, C(c.X, c.Y-1))
	}
	if c.X < Width {
		out = append(out, C(c.X+1, c.Y))
	}
	if c.Y < Height {
		out = append(out, C(c.X, c.Y+1))
	}
	return out
}

// Board is the dense tile grid, stored row-major.
type Board struct {
	cells [Rows][Cols]Tile
}

// NewBoard generates a random board. Each cell gets a uniformly random tile,
// then random cells are copied onto their right neighbor to grow clusters.
// The result is not guaranteed to be solvable within MoveLimit.
func NewBoard(rng *rand.Rand) *Board {
	b := &Board{}
	for y := range Rows {
		for x := range Cols {
			b.cells[y][x] = TileForColor(Color(rng.Intn(NumKinds)))
		}
	}

	for range smearPasses {
		x := rng.Intn(Width - 2)
		y := rng.Intn(Height - 1)
		b.cells[y][x+1] = b.cells[y][x]
	}

	return b
}

// NewUniformBoard returns a board with every cell set to t.
func NewUniformBoard(t Tile) *Board {
	b := &Board{}
	for y := range Rows {
		for x := range Cols {
			b.cells[y][x] = t
		}
	}
	return b
}

// mustInBounds panics on coordinates outside the grid.
// The board never hands out such coordinates, so reaching this is a bug.
func mustInBounds(c Coord) {
	if !c.InBounds() {
		panic(fmt.Sprintf("floodit: coordinate %v out of bounds", c))
	}
}

// At returns the tile at c.
func (b *Board) At(c Coord) Tile {
	mustInBounds(c)
	return b.cells[c.Y][c.X]
}

// Set replaces the tile at c.
func (b *Board) Set(c Coord, t Tile) {
	mustInBounds(c)
	b.cells[c.Y][c.X] = t
}

// Origin returns the tile at the origin cell.
func (b *Board) Origin() Tile {
	return b.cells[0][0]
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Rows][Cols]Tile {
	return b.cells
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// FillColor recolors the region connected to the origin by color.
// Every cell reachable from the origin through cells of the origin's
// original color becomes the canonical tile for target. Returns the
// number of converted cells; 0 when the origin already has target.
func (b *Board) FillColor(target Color) int {
	return b.fill(TileForColor(target), func(x, y Tile) bool {
		return x.Color == y.Color
	})
}

// FillShape is FillColor keyed by shape.
func (b *Board) FillShape(target Shape) int {
	return b.fill(TileForShape(target), func(x, y Tile) bool {
		return x.Shape == y.Shape
	})
}

// fill converts the origin region using an explicit stack. A cell is
// rewritten before its neighbors are examined, so it never matches the
// original value again and is never pushed twice.
func (b *Board) fill(target Tile, same func(x, y Tile) bool) int {
	orig := b.Origin()
	if same(orig, target) {
		return 0
	}

	b.Set(OriginCoord, target)
	converted := 1
	stack := []Coord{OriginCoord}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range c.Neighbors() {
			if !same(b.At(n), orig) {
				continue
			}
			b.Set(n, target)
			converted++
			stack = append(stack, n)
		}
	}

	return converted
}

// Uniform reports whether every cell equals the origin tile.
// Both shape and color are compared regardless of what is displayed.
func (b *Board) Uniform() bool {
	orig := b.Origin()
	for y := range Rows {
		for x := range Cols {
			if b.cells[y][x] != orig {
				return false
			}
		}
	}
	return true
}

// Region returns the cells connected to the origin through tiles equal
// to the origin tile, in breadth-first order.
func (b *Board) Region() []Coord {
	var seen [Rows][Cols]bool
	orig := b.Origin()

	queue := []Coord{OriginCoord}
	seen[0][0] = true
	region := make([]Coord, 0, Rows*Cols)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		region = append(region, c)

		for _, n := range c.Neighbors() {
			if seen[n.Y][n.X] || b.cells[n.Y][n.X] != orig {
				continue
			}
			seen[n.Y][n.X] = true
			queue = append(queue, n)
		}
	}

	return region
}

// Counts returns how many cells hold each tile, indexed by Color.
func (b *Board) Counts() [NumKinds]int {
	var counts [NumKinds]int
	for y := range Rows {
		for x := range Cols {
			counts[b.cells[y][x].Color]++
		}
	}
	return counts
}
