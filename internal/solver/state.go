package solver

import (
	"errors"
	"math"
	"sync/atomic"

	"github.com/go-ricrob/amphisolver/internal/burrow"
	"github.com/go-ricrob/amphisolver/internal/packed"
	"github.com/go-ricrob/amphisolver/internal/spinlock"
	"golang.org/x/exp/slices"
)

// Resulter is the result of a solver run.
type Resulter interface {
	Energy() (int, error)
	Moves() ([]burrow.Move, error)
	NumCalcState() int
	NumExpanded() int
}

var _ Resulter = (*result)(nil)

// ErrNoSolution is returned by a result when no solved burrow was reachable.
var ErrNoSolution = errors.New("no solution found")

// noSolution is the energy of a branch without any solved burrow.
const noSolution = math.MaxInt

// memo keeps the lowest energy a layout was reached with.
type memo interface {
	// Improve stores energy for k and returns true, unless an energy <= energy is stored.
	Improve(k packed.Key, energy int) bool
	Size() int
}

type mapMemo map[packed.Key]int

func (m mapMemo) Improve(k packed.Key, energy int) bool {
	if v, ok := m[k]; ok && v <= energy {
		return false
	}
	m[k] = energy
	return true
}

func (m mapMemo) Size() int { return len(m) }

// shared is the state all searches of one run have in common.
type shared struct {
	memo     memo
	bound    atomic.Int64 // lowest energy of a solved burrow found so far
	expanded atomic.Int64
	onBound  func(energy int)

	mu    spinlock.Mutex // guards moves and found
	moves []burrow.Move
	found bool
}

func newShared(memo memo, onBound func(energy int)) *shared {
	sh := &shared{memo: memo, onBound: onBound}
	sh.bound.Store(noSolution)
	return sh
}

// tighten lowers the bound to energy with path as solution. The bound is never raised.
func (sh *shared) tighten(energy int, path []burrow.Move) {
	for {
		bound := sh.bound.Load()
		if int64(energy) >= bound {
			return
		}
		if sh.bound.CompareAndSwap(bound, int64(energy)) {
			break
		}
	}

	sh.mu.Lock()
	// a concurrent search might have stored a better solution in between
	if int64(energy) == sh.bound.Load() {
		sh.moves = slices.Clone(path)
		sh.found = true
		if sh.onBound != nil {
			sh.onBound(energy)
		}
	}
	sh.mu.Unlock()
}

func (sh *shared) result() *result {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return &result{
		energy:       int(sh.bound.Load()),
		found:        sh.found,
		moves:        sh.moves,
		numCalcState: sh.memo.Size(),
		numExpanded:  int(sh.expanded.Load()),
	}
}

type result struct {
	energy       int
	found        bool
	moves        []burrow.Move
	numCalcState int
	numExpanded  int
}

// Energy returns the minimum energy needed to solve the burrow.
func (r *result) Energy() (int, error) {
	if !r.found {
		return 0, ErrNoSolution
	}
	return r.energy, nil
}

// Moves returns a move sequence of minimum energy.
func (r *result) Moves() ([]burrow.Move, error) {
	if !r.found {
		return nil, ErrNoSolution
	}
	return r.moves, nil
}

// NumCalcState returns the number of memoised layouts.
func (r *result) NumCalcState() int { return r.numCalcState }

// NumExpanded returns the number of states whose moves were generated.
func (r *result) NumExpanded() int { return r.numExpanded }
