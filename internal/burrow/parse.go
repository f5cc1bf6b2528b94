package burrow

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrMalformed is returned for diagrams which do not describe a valid burrow.
	ErrMalformed = errors.New("malformed burrow")
	// ErrUnfoldDepth is returned when unfolding a burrow which is not two rows deep.
	ErrUnfoldDepth = errors.New("only two row burrows can be unfolded")
)

// unfoldRows are inserted between the first and the second room row by Unfold.
var unfoldRows = [2][NumKind]Kind{
	{Desert, Copper, Bronze, Amber},
	{Desert, Bronze, Amber, Copper},
}

func malformed(lineNo int, format string, a ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, lineNo+1, fmt.Sprintf(format, a...))
}

func isWallLine(s string) bool {
	return s != "" && strings.Trim(s, "#") == ""
}

// Parse reads a burrow diagram:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The number of room rows is taken from the diagram; the hallway may be 11 or 12 cells wide.
// Hallway and room cells are either '.' or one of the letters A-D, every kind has to occur
// once per room row. Pieces never stop above a room entrance, so these hallway cells must
// be empty. The returned state has energy 0.
func Parse(text string) (State, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	if len(lines) < 4 {
		return State{}, fmt.Errorf("%w: %d lines, expected at least 4", ErrMalformed, len(lines))
	}

	if !isWallLine(lines[0]) {
		return State{}, malformed(0, "border expected, got %q", lines[0])
	}
	width := len(lines[0]) - 2
	depth := len(lines) - 3

	g, err := newTemplate(width, depth)
	if err != nil {
		return State{}, err
	}

	hallway := lines[1]
	if len(hallway) != width+2 || hallway[0] != '#' || hallway[width+1] != '#' {
		return State{}, malformed(1, "hallway of width %d expected, got %q", width, hallway)
	}
	for col := 0; col < width; col++ {
		c, err := parseCell(hallway[col+1])
		if err != nil {
			return State{}, malformed(1, "column %d: %s", col+2, err)
		}
		if c.IsOccupied() && IsRoomColumn(col) {
			return State{}, malformed(1, "column %d: piece %s above a room entrance", col+2, c)
		}
		g.set(0, col, c)
	}

	last := RoomColumns[NumKind-1] + 2 // minimum room row length
	for row := 1; row <= depth; row++ {
		lineNo := row + 1
		line := lines[lineNo]
		if row == 1 && len(line) != width+2 {
			return State{}, malformed(lineNo, "room row of length %d expected, got %q", width+2, line)
		}
		if len(line) < last || len(line) > width+2 {
			return State{}, malformed(lineNo, "room row length %d out of range", len(line))
		}
		for pos := 0; pos < len(line); pos++ {
			col := pos - 1
			if IsRoomColumn(col) {
				c, err := parseCell(line[pos])
				if err != nil {
					return State{}, malformed(lineNo, "column %d: %s", pos+1, err)
				}
				g.set(row, col, c)
				continue
			}
			if line[pos] != '#' && line[pos] != ' ' {
				return State{}, malformed(lineNo, "column %d: unexpected %q", pos+1, line[pos])
			}
		}
	}

	lineNo := len(lines) - 1
	if bottom := strings.TrimLeft(lines[lineNo], " "); !isWallLine(bottom) {
		return State{}, malformed(lineNo, "closing border expected, got %q", lines[lineNo])
	}

	if err := checkCensus(g); err != nil {
		return State{}, err
	}
	return State{Grid: g}, nil
}

func parseCell(b byte) (Cell, error) {
	if b == '.' {
		return Empty, nil
	}
	k, ok := ParseKind(b)
	if !ok {
		return 0, fmt.Errorf("unknown piece %q", b)
	}
	return Occupied(k), nil
}

func checkCensus(g *Grid) error {
	census := g.Census()
	for _, k := range Kinds {
		if census[k] != g.depth {
			kinds := maps.Keys(census)
			slices.Sort(kinds)
			parts := make([]string, len(kinds))
			for i, k := range kinds {
				parts[i] = fmt.Sprintf("%s=%d", k, census[k])
			}
			return fmt.Errorf("%w: expected %d pieces of each kind, got %s", ErrMalformed, g.depth, strings.Join(parts, " "))
		}
	}
	return nil
}

// Unfold returns s with the two folded room rows inserted between its first and second room
// row. Hallway content and energy are kept.
func Unfold(s State) (State, error) {
	if s.Grid.depth != 2 {
		return State{}, fmt.Errorf("%w: depth %d", ErrUnfoldDepth, s.Grid.depth)
	}
	g, err := newTemplate(s.Grid.width, 4)
	if err != nil {
		return State{}, err
	}
	copy(g.cells[:g.width], s.Grid.cells[:s.Grid.width])
	for i, col := range RoomColumns {
		g.set(1, col, s.Grid.At(1, col))
		g.set(2, col, Occupied(unfoldRows[0][i]))
		g.set(3, col, Occupied(unfoldRows[1][i]))
		g.set(4, col, s.Grid.At(2, col))
	}
	return State{Grid: g, Energy: s.Energy}, nil
}
