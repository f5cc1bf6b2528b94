// Package solver implements the minimum energy search for amphipod burrows.
package solver

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/go-ricrob/amphisolver/internal/burrow"
	"github.com/go-ricrob/amphisolver/internal/partmap"
	"golang.org/x/exp/slices"
)

const (
	numCh   = 1000
	numPart = 1024

	// frontier expansion for the parallel search
	frontierFactor   = 8
	maxFrontierLevel = 4
)

// DefaultNumWorker is the number of workers used by a parallel search without explicit count.
var DefaultNumWorker = runtime.NumCPU()

// Options configures a solver.
type Options struct {
	// Parallel enables the parallel search.
	Parallel bool
	// NumWorker is the number of parallel workers. Values < 1 mean DefaultNumWorker.
	NumWorker int
	// OnBound is called whenever a cheaper solved burrow was found. Calls are serialized
	// and see strictly decreasing energies.
	OnBound func(energy int)
}

// DefaultOptions returns the options of a sequential search.
func DefaultOptions() *Options {
	return &Options{}
}

// Runner runs a search.
type Runner interface {
	Run() Resulter
}

var (
	_ Runner = (*sequential)(nil)
	_ Runner = (*parallel)(nil)
)

// New returns a runner searching the minimum energy to solve start.
func New(start burrow.State, options *Options) Runner {
	if options == nil {
		options = DefaultOptions()
	}
	if !options.Parallel {
		return &sequential{start: start, options: options}
	}
	numWorker := options.NumWorker
	if numWorker < 1 {
		numWorker = DefaultNumWorker
	}
	return &parallel{start: start, options: options, numWorker: numWorker}
}

type sequential struct {
	start   burrow.State
	options *Options
}

func (s *sequential) Run() Resulter {
	start := time.Now()

	sh := newShared(make(mapMemo), s.options.OnBound)
	search := sh.newSearch(nil)
	energy := search.dfs(s.start)
	search.flush()

	r := sh.result()
	if energy != noSolution && energy != r.energy {
		panic("should never happen")
	}
	log.Printf("sequential search: %d states expanded, %d layouts memoised in %s", r.numExpanded, r.numCalcState, time.Since(start))
	return r
}

type item struct {
	state burrow.State
	path  []burrow.Move
}

type parallel struct {
	start     burrow.State
	options   *Options
	numWorker int
}

// frontier expands the start state breadth first until there is enough work for all workers.
// Solved states are kept, dead ends dropped.
func (p *parallel) frontier(sh *shared) []item {
	items := []item{{state: p.start}}
	for level := 0; level < maxFrontierLevel && len(items) < p.numWorker*frontierFactor; level++ {
		var next []item
		expanded := false
		for _, it := range items {
			if it.state.Grid.IsSolved() {
				next = append(next, it)
				continue
			}
			expanded = true
			sh.expanded.Add(1)
			for _, move := range it.state.Moves() {
				next = append(next, item{
					state: it.state.Apply(move),
					path:  slices.Insert(slices.Clone(it.path), len(it.path), move),
				})
			}
		}
		items = next
		if !expanded {
			break
		}
	}
	return items
}

func (p *parallel) worker(sh *shared, wg *sync.WaitGroup, workerCh <-chan item) {
	defer wg.Done()

	for it := range workerCh {
		search := sh.newSearch(it.path)
		search.dfs(it.state)
		search.flush()
	}
}

func (p *parallel) Run() Resulter {
	start := time.Now()

	pm := partmap.New(numPart)
	sh := newShared(pm, p.options.OnBound)
	items := p.frontier(sh)

	// spin up workers
	workerWg := new(sync.WaitGroup)
	workerWg.Add(p.numWorker)
	workerCh := make(chan item, numCh)
	for i := 0; i < p.numWorker; i++ {
		go p.worker(sh, workerWg, workerCh)
	}

	for _, it := range items {
		workerCh <- it
	}
	close(workerCh)
	workerWg.Wait()

	r := sh.result()
	log.Printf("parallel search (%d workers, %d frontier states): %d states expanded, %d layouts memoised in %d partitions in %s", p.numWorker, len(items), r.numExpanded, r.numCalcState, pm.NumPart(), time.Since(start))
	return r
}
