package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/go-ricrob/amphisolver/internal/burrow"
	"github.com/go-ricrob/amphisolver/internal/solver"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type config struct {
	example  bool
	noUnfold bool
	part3    bool
	trace    bool
	verbose  bool
	pprof    bool
	workers  int
}

func newRootCmd() *cobra.Command {
	cfg := new(config)

	cmd := &cobra.Command{
		Use:   "amphisolver [input]",
		Short: "Sort amphipods into their rooms spending the least energy",
		Long: `Solve an amphipod burrow diagram and print the minimum energy.

A two row burrow is solved as is (Part1) and unfolded to four rows (Part2).

Examples:
  amphisolver input.txt
  amphisolver --example --trace
  amphisolver -j 8 --part3 input.txt`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args)
		},
	}

	cmd.Flags().BoolVar(&cfg.example, "example", false, "Solve the bundled example instead of an input file")
	cmd.Flags().BoolVar(&cfg.noUnfold, "no-unfold", false, "Do not solve the unfolded burrow")
	cmd.Flags().BoolVar(&cfg.part3, "part3", false, "Also solve the bundled six row burrow")
	cmd.Flags().BoolVar(&cfg.trace, "trace", false, "Print the moves of a cheapest solution")
	cmd.Flags().BoolVarP(&cfg.verbose, "verbose", "v", false, "Enable logging")
	cmd.Flags().BoolVarP(&cfg.pprof, "pprof", "p", false, "Write a CPU profile")
	cmd.Flags().IntVarP(&cfg.workers, "workers", "j", 0, "Number of parallel workers (0 = sequential search, -1 = one per CPU)")

	return cmd
}

func run(out, errOut io.Writer, cfg *config, args []string) error {
	log.SetOutput(io.Discard)
	if cfg.verbose {
		log.SetOutput(errOut)
	}
	if cfg.pprof {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	start := time.Now()

	text := burrow.Example
	if !cfg.example {
		file := "input.txt"
		if len(args) > 0 {
			file = args[0]
		}
		b, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		text = string(b)
	}

	state, err := burrow.Parse(text)
	if err != nil {
		return err
	}

	options := &solver.Options{
		Parallel:  cfg.workers != 0,
		NumWorker: cfg.workers,
		OnBound:   func(energy int) { log.Printf("found solution with energy %d", energy) },
	}

	if err := solve(out, "Part1", state, options, cfg.trace); err != nil {
		return err
	}

	if state.Grid.Depth() == 2 && !cfg.noUnfold {
		unfolded, err := burrow.Unfold(state)
		if err != nil {
			return err
		}
		if err := solve(out, "Part2", unfolded, options, cfg.trace); err != nil {
			return err
		}
	}

	if cfg.part3 {
		deep, err := burrow.Parse(burrow.ExampleDeep)
		if err != nil {
			return err
		}
		if err := solve(out, "Part3", deep, options, cfg.trace); err != nil {
			return err
		}
	}

	log.Printf("global execution time (incl. parsing): %s", time.Since(start))
	return nil
}

func solve(out io.Writer, name string, state burrow.State, options *solver.Options, trace bool) error {
	log.Printf("%s: solving burrow of depth %d\n%s", name, state.Grid.Depth(), state.Grid)

	result := solver.New(state, options).Run()
	energy, err := result.Energy()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Printf("%s: %d layouts memoised, %d states expanded", name, result.NumCalcState(), result.NumExpanded())

	if trace {
		moves, err := result.Moves()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		for i, move := range moves {
			state = state.Apply(move)
			fmt.Fprintf(out, "%s move %d: %s\n%s", name, i+1, move, state.Grid)
		}
	}

	fmt.Fprintf(out, "%s: %d\n", name, energy)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
