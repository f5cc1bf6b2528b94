// Package burrow provides the amphipod burrow model: piece kinds, grids, states and the
// legal moves between them.
package burrow

import "fmt"

// Kind is an amphipod kind.
type Kind uint8

// Kinds.
const (
	Amber Kind = iota
	Bronze
	Copper
	Desert
	NumKind
)

// Kinds lists all kinds in room order.
var Kinds = [NumKind]Kind{Amber, Bronze, Copper, Desert}

// RoomColumns are the hallway columns of the room entrances, indexed by kind.
var RoomColumns = [NumKind]int{2, 4, 6, 8}

var energies = [NumKind]int{1, 10, 100, 1000}

const kindLetters = "ABCD"

// ParseKind returns the kind of letter b.
func ParseKind(b byte) (Kind, bool) {
	switch b {
	case 'A':
		return Amber, true
	case 'B':
		return Bronze, true
	case 'C':
		return Copper, true
	case 'D':
		return Desert, true
	}
	return 0, false
}

// Column returns the destination room column of k.
func (k Kind) Column() int { return RoomColumns[k] }

// Energy returns the energy k spends per step.
func (k Kind) Energy() int { return energies[k] }

// Letter returns the diagram letter of k.
func (k Kind) Letter() byte { return kindLetters[k] }

func (k Kind) String() string {
	if k >= NumKind {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return string(kindLetters[k])
}
