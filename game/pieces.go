package game

import (
	"fmt"
	"math/bits"
	"sort"
)

// NumPieces is the number of distinct piece shapes per color.
const NumPieces = 21

// TotalPieceCells is the combined cell count of a full inventory
// (1 + 2 + 2*3 + 5*4 + 12*5).
const TotalPieceCells = 89

// PieceID identifies one of the 21 canonical shapes, in [0, NumPieces).
type PieceID int

// Cell is a board coordinate or a shape offset.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Shape is a normalized set of cell offsets: sorted row-major, shifted so the
// minimum row and minimum column are both 0.
type Shape []Cell

// shapes holds the canonical form of every piece, indexed by PieceID.
// Built once at init and never mutated.
var shapes [NumPieces]Shape

// orientationTable caches the distinct rotations/flips of every shape.
var orientationTable [NumPieces][]Shape

func init() {
	cells := [NumPieces][]Cell{
		// monomino
		{{0, 0}},
		// domino
		{{0, 0}, {0, 1}},
		// trominoes: I3, V3
		{{0, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}},
		// tetrominoes: T4, L4, S4, O4, I4
		{{0, 0}, {0, 1}, {0, 2}, {1, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		// pentominoes: F, I, L, P, N, T, U, V, W, X, Y, Z
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {3, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}},
	}
	for id, c := range cells {
		shapes[id] = normalize(c)
		orientationTable[id] = buildOrientations(shapes[id])
	}
}

// ShapeOf returns the canonical form of the given piece.
func ShapeOf(id PieceID) Shape {
	return shapes[id]
}

// Orientations returns every distinct rotation/flip of the given piece,
// between 1 (fully symmetric) and 8. The returned slices are shared
// constants; callers must not modify them.
func Orientations(id PieceID) []Shape {
	return orientationTable[id]
}

// CellCount returns the number of cells in the piece's shape.
func CellCount(id PieceID) int {
	return len(shapes[id])
}

// buildOrientations applies the two symmetry generators: rotate 90 degrees
// clockwise four times, taking the horizontal flip after every rotation, and
// deduplicates the normalized results.
func buildOrientations(s Shape) []Shape {
	seen := map[string]Shape{}
	current := s
	for i := 0; i < 4; i++ {
		current = rotate(current)
		seen[current.key()] = current
		flipped := flip(current)
		seen[flipped.key()] = flipped
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Shape, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}

// rotate maps (r,c) -> (c,-r) and renormalizes.
func rotate(s Shape) Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Col, Col: -c.Row}
	}
	return normalize(out)
}

// flip maps (r,c) -> (r,-c) and renormalizes.
func flip(s Shape) Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Row, Col: -c.Col}
	}
	return normalize(out)
}

// normalize shifts the cells so the minimum row and column are 0 and sorts
// them row-major, giving every congruent offset set one canonical value.
func normalize(cells []Cell) Shape {
	minRow, minCol := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
	}
	out := make(Shape, len(cells))
	for i, c := range cells {
		out[i] = Cell{Row: c.Row - minRow, Col: c.Col - minCol}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Bounds returns the maximum row and column offset of the shape.
func (s Shape) Bounds() (maxRow, maxCol int) {
	for _, c := range s {
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if c.Col > maxCol {
			maxCol = c.Col
		}
	}
	return maxRow, maxCol
}

func (s Shape) key() string {
	return fmt.Sprint([]Cell(s))
}

// PieceSet is a bitmask over piece ids, one bit per piece.
type PieceSet uint32

// FullPieceSet has every piece still in hand.
const FullPieceSet PieceSet = 1<<NumPieces - 1

// Has reports whether the piece is in the set.
func (ps PieceSet) Has(id PieceID) bool {
	return ps&(1<<uint(id)) != 0
}

// Remove returns the set without the given piece.
func (ps PieceSet) Remove(id PieceID) PieceSet {
	return ps &^ (1 << uint(id))
}

// Count returns the number of pieces in the set.
func (ps PieceSet) Count() int {
	return bits.OnesCount32(uint32(ps))
}

// Pieces lists the ids in the set in ascending order.
func (ps PieceSet) Pieces() []PieceID {
	out := make([]PieceID, 0, ps.Count())
	for id := PieceID(0); id < NumPieces; id++ {
		if ps.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// CellSum returns the combined cell count of every piece in the set.
func (ps PieceSet) CellSum() int {
	sum := 0
	for id := PieceID(0); id < NumPieces; id++ {
		if ps.Has(id) {
			sum += CellCount(id)
		}
	}
	return sum
}
