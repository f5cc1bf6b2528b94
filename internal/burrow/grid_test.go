package burrow

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, text string) State {
	t.Helper()
	s, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestKinds(t *testing.T) {
	columns := map[int]bool{}
	for _, k := range Kinds {
		if columns[k.Column()] {
			t.Fatalf("column %d used twice", k.Column())
		}
		columns[k.Column()] = true
		if !IsRoomColumn(k.Column()) {
			t.Fatalf("%s: column %d is no room column", k, k.Column())
		}
		if p, ok := ParseKind(k.Letter()); !ok || p != k {
			t.Fatalf("%s: parse letter %c: %v %v", k, k.Letter(), p, ok)
		}
	}
	if Desert.Energy() != 1000 || Amber.Energy() != 1 {
		t.Fatalf("unexpected energies %d %d", Amber.Energy(), Desert.Energy())
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		text         string
		width, depth int
	}{
		{Example, StandardWidth, 2},
		{ExampleUnfolded, StandardWidth, 4},
		{ExampleDeep, WideWidth, 6},
	}

	for _, test := range tests {
		s := mustParse(t, test.text)
		if s.Energy != 0 {
			t.Fatalf("energy %d, expected 0", s.Energy)
		}
		if s.Grid.Width() != test.width || s.Grid.Depth() != test.depth {
			t.Fatalf("got %dx%d, expected %dx%d", s.Grid.Width(), s.Grid.Depth(), test.width, test.depth)
		}
		if got := s.Grid.String(); got != test.text {
			t.Fatalf("render mismatch\ngot:\n%s\nexpected:\n%s", got, test.text)
		}
	}
}

func TestParseTrailingSpaces(t *testing.T) {
	text := "#############\r\n#...........#\r\n###B#C#B#D###\r\n  #A#D#C#A#  \r\n  #########  \r\n"
	s := mustParse(t, text)
	if !s.Grid.Equal(mustParse(t, Example).Grid) {
		t.Fatalf("unexpected grid\n%s", s.Grid)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"too few lines": "#############\n#...........#\n  #########\n",
		"no border":     "#####.#######\n#...........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n",
		"narrow":        "##########\n#........#\n###B#C#B#D\n  #A#D#C#A#\n  #########\n",
		"hallway width": "#############\n#..........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n",
		"hallway char":  "#############\n#....x......#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n",
		"unknown piece": "#############\n#...........#\n###B#C#E#D###\n  #A#D#C#A#\n  #########\n",
		"wall char":     "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#A#x\n  #########\n",
		"short row":     "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#\n  #########\n",
		"no bottom":     "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#A#\n  #A#D#C#A#\n",
		"census":        "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#D#\n  #########\n",
		"missing piece": "#############\n#...........#\n###B#C#.#D###\n  #A#D#C#A#\n  #########\n",
		"entrance":      "#############\n#....B......#\n###.#C#B#D###\n  #A#D#C#A#\n  #########\n",
	}

	for name, text := range tests {
		if _, err := Parse(text); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected malformed error, got %v", name, err)
		}
	}
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(StandardWidth, [NumKind][]Kind{
		{Bronze, Amber},
		{Copper, Desert},
		{Bronze, Copper},
		{Desert, Amber},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(mustParse(t, Example).Grid) {
		t.Fatalf("unexpected grid\n%s", g)
	}

	if _, err := NewGrid(StandardWidth, [NumKind][]Kind{{Amber}, {Bronze}, {Copper}, {}}); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected malformed error for ragged rooms, got %v", err)
	}
	if _, err := NewGrid(13, [NumKind][]Kind{{Amber}, {Bronze}, {Copper}, {Desert}}); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected malformed error for width, got %v", err)
	}
}

func TestTemplate(t *testing.T) {
	g := mustParse(t, ExampleDeep).Grid
	for row := 3; row <= g.Depth(); row++ {
		for _, col := range elbowColumns {
			if g.At(row, col) != Empty {
				t.Fatalf("elbow (%d,%d) is %q", row, col, g.At(row, col))
			}
		}
		if g.At(row, 11) != Void {
			t.Fatalf("(%d,11) is %q", row, g.At(row, 11))
		}
	}
	for _, col := range elbowColumns {
		if g.At(2, col) == Empty || g.At(1, col) != Wall {
			t.Fatalf("column %d: unexpected cells %q %q", col, g.At(1, col), g.At(2, col))
		}
	}

	g = mustParse(t, ExampleUnfolded).Grid
	for row := 1; row <= g.Depth(); row++ {
		for _, col := range elbowColumns {
			if g.At(row, col) == Empty {
				t.Fatalf("standard burrow has open elbow (%d,%d)", row, col)
			}
		}
	}
}

func TestUnfold(t *testing.T) {
	s := mustParse(t, Example)
	s.Energy = 42
	u, err := Unfold(s)
	if err != nil {
		t.Fatal(err)
	}
	if u.Energy != 42 {
		t.Fatalf("energy %d, expected 42", u.Energy)
	}
	if got := u.Grid.String(); got != ExampleUnfolded {
		t.Fatalf("got:\n%s\nexpected:\n%s", got, ExampleUnfolded)
	}
	if !u.Grid.Equal(mustParse(t, ExampleUnfolded).Grid) {
		t.Fatal("unfolded grid differs from parsed grid")
	}

	if _, err := Unfold(u); !errors.Is(err, ErrUnfoldDepth) {
		t.Fatalf("expected unfold depth error, got %v", err)
	}
}

const solved = `#############
#...........#
###A#B#C#D###
  #A#B#C#D#
  #########
`

func TestIsSolved(t *testing.T) {
	tests := []struct {
		text   string
		solved bool
	}{
		{solved, true},
		{Example, false},
		{"#############\n#A..........#\n###.#B#C#D###\n  #A#B#C#D#\n  #########\n", false},
		{"#############\n#...........#\n###B#A#C#D###\n  #A#B#C#D#\n  #########\n", false},
	}

	for _, test := range tests {
		g := mustParse(t, test.text).Grid
		for i := 0; i < 2; i++ {
			if g.IsSolved() != test.solved {
				t.Fatalf("IsSolved() = %v, expected %v\n%s", !test.solved, test.solved, g)
			}
		}
	}
}

func TestKey(t *testing.T) {
	a := mustParse(t, Example)
	b := mustParse(t, Example)
	b.Energy = 1000
	if a.Grid.Key() != b.Grid.Key() {
		t.Fatal("identical layouts with different energies have different keys")
	}

	seen := map[string]bool{}
	for _, next := range a.Next() {
		k := string(next.Grid.Key())
		if seen[k] {
			t.Fatalf("different layouts share a key\n%s", next.Grid)
		}
		seen[k] = true
		if next.Grid.Key() == a.Grid.Key() {
			t.Fatal("successor has the key of its predecessor")
		}
	}
}
