package burrow

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pos is a position in a grid.
type Pos struct {
	Row, Col int
}

// Move is the movement of one piece from a room into the hallway or from the hallway into
// its room.
type Move struct {
	Kind     Kind
	From, To Pos
	Steps    int
}

// Energy returns the energy spent by m.
func (m Move) Energy() int { return m.Steps * m.Kind.Energy() }

func (m Move) String() string {
	return fmt.Sprintf("%s (%d,%d)->(%d,%d) %d steps, energy %d", m.Kind, m.From.Row, m.From.Col, m.To.Row, m.To.Col, m.Steps, m.Energy())
}

func absDiff[T constraints.Integer](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}

// hallwayClear reports whether every hallway cell between from and to is empty, from
// excluded and to included.
func (g *Grid) hallwayClear(from, to int) bool {
	if from < to {
		for col := from + 1; col <= to; col++ {
			if g.At(0, col) != Empty {
				return false
			}
		}
		return true
	}
	for col := to; col < from; col++ {
		if g.At(0, col) != Empty {
			return false
		}
	}
	return true
}

// roomClear reports whether the room cells of col are empty from row 1 down to row.
func (g *Grid) roomClear(col, row int) bool {
	for r := 1; r <= row; r++ {
		if g.At(r, col) != Empty {
			return false
		}
	}
	return true
}

// roomAccepts reports whether the room in col holds no piece of another kind than k.
func (g *Grid) roomAccepts(col int, k Kind) bool {
	for row := 1; row <= g.depth; row++ {
		c := g.At(row, col)
		if c == Empty {
			continue
		}
		if c != Occupied(k) {
			return false
		}
	}
	return true
}

// settled reports whether the piece of kind k at row in col is in its own room with only its
// own kind below.
func (g *Grid) settled(row, col int, k Kind) bool {
	if col != k.Column() {
		return false
	}
	for r := row; r <= g.depth; r++ {
		if g.At(r, col) != Occupied(k) {
			return false
		}
	}
	return true
}

// Moves returns all legal moves of s: hallway to room moves first, room to hallway moves
// afterwards.
func (s State) Moves() []Move {
	g := s.Grid
	var moves []Move

	for col := 0; col < g.width; col++ {
		k, ok := g.At(0, col).Kind()
		if !ok {
			continue
		}
		target := k.Column()
		if !g.hallwayClear(col, target) || !g.roomAccepts(target, k) {
			continue
		}
		for row := g.depth; row >= 1; row-- {
			if g.roomClear(target, row) {
				moves = append(moves, Move{
					Kind:  k,
					From:  Pos{0, col},
					To:    Pos{row, target},
					Steps: row + absDiff(col, target),
				})
				break
			}
		}
	}

	for row := 1; row <= g.depth; row++ {
		for _, col := range RoomColumns {
			k, ok := g.At(row, col).Kind()
			if !ok || g.settled(row, col, k) || !g.roomClear(col, row-1) || g.At(0, col) != Empty {
				continue
			}
			for _, stop := range g.stops {
				if g.hallwayClear(col, stop) {
					moves = append(moves, Move{
						Kind:  k,
						From:  Pos{row, col},
						To:    Pos{0, stop},
						Steps: row + absDiff(col, stop),
					})
				}
			}
		}
	}

	return moves
}

// Apply returns the state reached by m. m needs to be one of s.Moves().
func (s State) Apply(m Move) State {
	g := s.Grid.clone()
	g.set(m.From.Row, m.From.Col, Empty)
	g.set(m.To.Row, m.To.Col, Occupied(m.Kind))
	return State{Grid: g, Energy: s.Energy + m.Energy()}
}

// Next returns all states reachable from s by one legal move.
func (s State) Next() []State {
	moves := s.Moves()
	next := make([]State, len(moves))
	for i, m := range moves {
		next[i] = s.Apply(m)
	}
	return next
}
