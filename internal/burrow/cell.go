package burrow

// Cell is the content of one burrow position.
//
// Values from occupied upwards encode a piece: occupied+kind.
type Cell uint8

// Cell values.
const (
	Empty Cell = iota
	Wall
	Void
	occupied
)

// Occupied returns the cell holding a piece of kind k.
func Occupied(k Kind) Cell { return occupied + Cell(k) }

// Kind returns the kind of the piece in c.
func (c Cell) Kind() (Kind, bool) {
	if !c.IsOccupied() {
		return 0, false
	}
	return Kind(c - occupied), true
}

// IsOccupied reports whether c holds a piece.
func (c Cell) IsOccupied() bool { return c >= occupied }

// Byte returns the diagram character of c.
func (c Cell) Byte() byte {
	switch c {
	case Empty:
		return '.'
	case Wall:
		return '#'
	case Void:
		return ' '
	}
	k, _ := c.Kind()
	return k.Letter()
}

func (c Cell) String() string { return string(c.Byte()) }
