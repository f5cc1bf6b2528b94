package burrow

import (
	"fmt"
	"strings"

	"github.com/go-ricrob/amphisolver/internal/packed"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/slices"
)

// Burrow widths (number of hallway cells).
const (
	StandardWidth = 11
	WideWidth     = 12
)

// elbow columns are open in the room rows below row 2 of wide burrows.
var elbowColumns = [2]int{0, 10}

var roomColumnSet = mapset.New[int]()

func init() {
	for _, c := range RoomColumns {
		roomColumnSet.Put(c)
	}
}

// IsRoomColumn reports whether col is the column of a room.
func IsRoomColumn(col int) bool { return roomColumnSet.Has(col) }

// stopColumns returns the hallway columns a piece may stop at: every column which is not a
// room entrance.
func stopColumns(width int) []int {
	stops := make([]int, 0, width-len(RoomColumns))
	for col := 0; col < width; col++ {
		if !IsRoomColumn(col) {
			stops = append(stops, col)
		}
	}
	return stops
}

// Grid is the cell layout of a burrow: the hallway in row 0 and the rooms in rows 1..Depth.
// A grid is never modified once it is handed out.
type Grid struct {
	width, depth int
	stops        []int  // shared between clones
	cells        []Cell // row major, (depth+1)*width
}

// newTemplate returns a grid with an empty hallway, empty rooms and walls and void around.
func newTemplate(width, depth int) (*Grid, error) {
	if width != StandardWidth && width != WideWidth {
		return nil, fmt.Errorf("%w: hallway width %d, expected %d or %d", ErrMalformed, width, StandardWidth, WideWidth)
	}
	if depth < 1 {
		return nil, fmt.Errorf("%w: room depth %d", ErrMalformed, depth)
	}

	g := &Grid{
		width: width,
		depth: depth,
		stops: stopColumns(width),
		cells: make([]Cell, (depth+1)*width),
	}
	for row := 1; row <= depth; row++ {
		for col := 0; col < width; col++ {
			switch {
			case IsRoomColumn(col):
				g.set(row, col, Empty)
			case row == 1 || (col > 0 && col < RoomColumns[NumKind-1]+2):
				g.set(row, col, Wall)
			default:
				g.set(row, col, Void)
			}
		}
	}
	if width == WideWidth {
		for row := 3; row <= depth; row++ {
			for _, col := range elbowColumns {
				g.set(row, col, Empty)
			}
		}
	}
	return g, nil
}

// NewGrid returns a grid with an empty hallway and the rooms filled top down with the kinds
// in rooms. All rooms need to have the same depth.
func NewGrid(width int, rooms [NumKind][]Kind) (*Grid, error) {
	depth := len(rooms[0])
	g, err := newTemplate(width, depth)
	if err != nil {
		return nil, err
	}
	for i, room := range rooms {
		if len(room) != depth {
			return nil, fmt.Errorf("%w: room %d has depth %d, expected %d", ErrMalformed, i, len(room), depth)
		}
		for row, k := range room {
			if k >= NumKind {
				return nil, fmt.Errorf("%w: invalid kind %d", ErrMalformed, k)
			}
			g.set(row+1, RoomColumns[i], Occupied(k))
		}
	}
	return g, nil
}

// Width returns the number of hallway cells.
func (g *Grid) Width() int { return g.width }

// Depth returns the number of room rows.
func (g *Grid) Depth() int { return g.depth }

// At returns the cell at row and col. Positions outside the grid are Void.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row > g.depth || col < 0 || col >= g.width {
		return Void
	}
	return g.cells[row*g.width+col]
}

func (g *Grid) set(row, col int, c Cell) { g.cells[row*g.width+col] = c }

func (g *Grid) clone() *Grid {
	c := *g
	c.cells = slices.Clone(g.cells)
	return &c
}

// Key returns the canonical key of the grid layout.
func (g *Grid) Key() packed.Key { return packed.Pack(g.cells) }

// Equal reports whether g and o have identical cells.
func (g *Grid) Equal(o *Grid) bool {
	return g.width == o.width && g.depth == o.depth && slices.Equal(g.cells, o.cells)
}

// IsSolved reports whether every room is completely filled with its own kind.
func (g *Grid) IsSolved() bool {
	for _, k := range Kinds {
		col := k.Column()
		for row := 1; row <= g.depth; row++ {
			if g.At(row, col) != Occupied(k) {
				return false
			}
		}
	}
	return true
}

// Census returns the number of pieces per kind.
func (g *Grid) Census() map[Kind]int {
	m := make(map[Kind]int, NumKind)
	for _, c := range g.cells {
		if k, ok := c.Kind(); ok {
			m[k]++
		}
	}
	return m
}

// String renders the grid as burrow diagram.
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString(strings.Repeat("#", g.width+2))
	b.WriteByte('\n')
	for row := 0; row <= g.depth && row < 2; row++ {
		b.WriteByte('#')
		for col := 0; col < g.width; col++ {
			b.WriteByte(g.At(row, col).Byte())
		}
		b.WriteString("#\n")
	}
	last := RoomColumns[NumKind-1] + 1
	for row := 2; row <= g.depth; row++ {
		b.WriteString("  ")
		for col := 1; col <= last; col++ {
			b.WriteByte(g.At(row, col).Byte())
		}
		b.WriteByte('\n')
	}
	b.WriteString("  ")
	b.WriteString(strings.Repeat("#", last))
	b.WriteByte('\n')
	return b.String()
}

// State is a grid together with the energy spent to reach it.
type State struct {
	Grid   *Grid
	Energy int
}

func (s State) String() string { return fmt.Sprintf("energy %d\n%s", s.Energy, s.Grid) }
