package t2048

import "fmt"

// DefaultBoardSize is the default board dimension.
const DefaultBoardSize = 4

// Coord is a cell coordinate. Y grows downward; row 0 is the top edge.
type Coord struct {
	X, Y int
}

// Add returns c offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// TileID is a stable tile identifier. It never changes across moves.
type TileID uint64

// Tile is a scored game piece.
type Tile struct {
	ID    TileID
	Score uint64
}

// Grid is an N×N occupancy table. Slots are indexed x + N*y.
type Grid struct {
	size   int
	slots  []*Tile
	nextID TileID
}

// NewGrid creates an empty grid of the given dimension.
func NewGrid(size int) *Grid {
	if size <= 0 {
		panic(fmt.Sprintf("t2048: invalid grid size %d", size))
	}
	return &Grid{
		size:   size,
		slots:  make([]*Tile, size*size),
		nextID: 1,
	}
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// index returns the slot index of c, panicking when c is off the grid.
func (g *Grid) index(c Coord) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("t2048: coordinate (%d,%d) outside %dx%d grid", c.X, c.Y, g.size, g.size))
	}
	return c.X + g.size*c.Y
}

// Add places t at c, overwriting the slot. Panics if c is off the grid.
func (g *Grid) Add(c Coord, t *Tile) {
	g.slots[g.index(c)] = t
}

// Spawn allocates a new tile with the given score and places it at c.
func (g *Grid) Spawn(c Coord, score uint64) *Tile {
	t := &Tile{ID: g.nextID, Score: score}
	g.nextID++
	g.Add(c, t)
	return t
}

// Get returns the tile at c. Off-grid and empty cells return false.
func (g *Grid) Get(c Coord) (*Tile, bool) {
	if !g.InBounds(c) {
		return nil, false
	}
	t := g.slots[c.X+g.size*c.Y]
	return t, t != nil
}

// Take removes and returns the tile at c.
func (g *Grid) Take(c Coord) (*Tile, bool) {
	t, ok := g.Get(c)
	if ok {
		g.slots[c.X+g.size*c.Y] = nil
	}
	return t, ok
}

// Move places t at c. The old slot is not cleared; Take it first.
func (g *Grid) Move(t *Tile, c Coord) {
	g.Add(c, t)
}

// IsFilled reports whether c holds a tile.
func (g *Grid) IsFilled(c Coord) bool {
	_, ok := g.Get(c)
	return ok
}

// Neighbors returns the tiles right, left, below and above c.
// Missing entries are nil.
func (g *Grid) Neighbors(c Coord) [4]*Tile {
	var out [4]*Tile
	for i, d := range [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		if t, ok := g.Get(c.Add(d)); ok {
			out[i] = t
		}
	}
	return out
}

// Clear empties every slot. Tile IDs keep counting up.
func (g *Grid) Clear() {
	clear(g.slots)
}

// Len returns the number of tiles on the grid.
func (g *Grid) Len() int {
	n := 0
	for _, t := range g.slots {
		if t != nil {
			n++
		}
	}
	return n
}

// Full reports whether every cell holds a tile.
func (g *Grid) Full() bool {
	return g.Len() == len(g.slots)
}

// PlacedTile is a tile together with its coordinate.
type PlacedTile struct {
	At   Coord
	Tile Tile
}

// Tiles lists every tile in row-major order.
func (g *Grid) Tiles() []PlacedTile {
	var out []PlacedTile
	for y := range g.size {
		for x := range g.size {
			if t := g.slots[x+g.size*y]; t != nil {
				out = append(out, PlacedTile{At: Coord{X: x, Y: y}, Tile: *t})
			}
		}
	}
	return out
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Coord {
	var cells []Coord
	for y := range g.size {
		for x := range g.size {
			if g.slots[x+g.size*y] == nil {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// MaxScore returns the highest tile score on the grid.
func (g *Grid) MaxScore() uint64 {
	var best uint64
	for _, t := range g.slots {
		if t != nil && t.Score > best {
			best = t.Score
		}
	}
	return best
}

// Scores returns the score table as rows; empty cells are 0.
func (g *Grid) Scores() [][]uint64 {
	rows := make([][]uint64, g.size)
	for y := range g.size {
		rows[y] = make([]uint64, g.size)
		for x := range g.size {
			if t := g.slots[x+g.size*y]; t != nil {
				rows[y][x] = t.Score
			}
		}
	}
	return rows
}

// Load replaces the grid contents with a score table; 0 leaves a cell empty.
// Rows shorter than the grid leave the remaining cells empty.
func (g *Grid) Load(rows [][]uint64) {
	g.Clear()
	for y, row := range rows {
		for x, score := range row {
			if score == 0 || !g.InBounds(Coord{X: x, Y: y}) {
				continue
			}
			g.Spawn(Coord{X: x, Y: y}, score)
		}
	}
}
