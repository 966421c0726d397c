// Package floodit implements the flood-it puzzle: a grid of shape/color tiles
// unified by repeatedly refilling the region connected to the top-left cell.
package floodit

// Shape is the symbol carried by a tile.
type Shape uint8

const (
	Heart Shape = iota
	Triangle
	Diamond
	Ball
	Club
	Spade
	// Block is drawn in place of the shape when shapes are hidden.
	// It never appears on a board.
	Block
)

// Color is the color carried by a tile.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
	Yellow
	Cyan
	Magenta
)

// NumKinds is the number of distinct tiles a board can hold.
const NumKinds = 6

// Tile is a board cell value. Shape and color are always paired
// (Heart/Red, Triangle/Green, Diamond/Blue, Ball/Yellow, Club/Cyan,
// Spade/Magenta), so either field identifies the tile.
type Tile struct {
	Shape Shape
	Color Color
}

// TileForColor returns the canonical tile carrying c.
func TileForColor(c Color) Tile {
	if c >= NumKinds {
		panic("floodit: invalid color")
	}
	return Tile{Shape: Shape(c), Color: c}
}

// TileForShape returns the canonical tile carrying s.
func TileForShape(s Shape) Tile {
	if s >= NumKinds {
		panic("floodit: invalid shape")
	}
	return Tile{Shape: s, Color: Color(s)}
}

// Tiles returns the six canonical tiles in enumeration order.
func Tiles() []Tile {
	tiles := make([]Tile, NumKinds)
	for i := range tiles {
		tiles[i] = TileForColor(Color(i))
	}
	return tiles
}

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Heart:
		return "Heart"
	case Triangle:
		return "Triangle"
	case Diamond:
		return "Diamond"
	case Ball:
		return "Ball"
	case Club:
		return "Club"
	case Spade:
		return "Spade"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// Letter returns the key used to pick this shape.
func (s Shape) Letter() rune {
	return []rune("HTDBCS?")[min(int(s), NumKinds)]
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	case Cyan:
		return "Cyan"
	case Magenta:
		return "Magenta"
	default:
		return "Unknown"
	}
}

// Letter returns the key used to pick this color.
func (c Color) Letter() rune {
	return []rune("RGBYCM?")[min(int(c), NumKinds)]
}

// String returns "Shape/Color", e.g. "Heart/Red".
func (t Tile) String() string {
	return t.Shape.String() + "/" + t.Color.String()
}
