package solver

import "github.com/go-ricrob/amphisolver/internal/burrow"

// search is a depth first branch-and-bound over burrow states. Each goroutine owns one
// search; bound and memo live in shared.
type search struct {
	*shared
	path        []burrow.Move // moves leading to the current state
	numExpanded int
}

func (sh *shared) newSearch(path []burrow.Move) *search {
	return &search{shared: sh, path: path}
}

// flush adds the local counters to shared.
func (s *search) flush() {
	s.expanded.Add(int64(s.numExpanded))
	s.numExpanded = 0
}

// dfs returns the minimum energy of a solved burrow reachable from state, or noSolution if
// the subtree is pruned or contains no solved burrow.
func (s *search) dfs(state burrow.State) int {
	if int64(state.Energy) > s.bound.Load() {
		return noSolution
	}

	if state.Grid.IsSolved() {
		s.tighten(state.Energy, s.path)
		return state.Energy
	}

	// store before expanding, so revisits at the same or a higher energy are cut
	if !s.memo.Improve(state.Grid.Key(), state.Energy) {
		return noSolution
	}

	s.numExpanded++
	min := noSolution
	for _, move := range state.Moves() {
		s.path = append(s.path, move)
		if energy := s.dfs(state.Apply(move)); energy < min {
			min = energy
		}
		s.path = s.path[:len(s.path)-1]
	}
	return min
}
