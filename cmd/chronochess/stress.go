package main

import (
	"context"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/board"
)

type stressOptions struct {
	Duration       time.Duration
	Seed           uint64
	GCPauseMetrics bool
}

func newStressCmd(a *App) *cobra.Command {
	var opts stressOptions

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Drive a session with random input and report frame times",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := a.newState()
			if err != nil {
				return err
			}
			log := a.logger.Sugar()
			log.Infow("starting stress run", "duration", opts.Duration, "seed", opts.Seed)

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Duration)
			defer cancel()
			report := runStress(ctx, app.NewLoop(state), opts)

			log.Infow("stress run finished", "frames", report.TotalUpdates)
			return report.Generate(cmd.OutOrStdout())
		},
	}
	cmd.Flags().DurationVar(&opts.Duration, "duration", 10*time.Second, "how long to run")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 1, "random seed for the generated input")
	cmd.Flags().BoolVar(&opts.GCPauseMetrics, "gc-pause-metrics", false, "include GC pause totals in the report")
	return cmd
}

// runStress steps loop with random input until ctx is done.
func runStress(ctx context.Context, loop *app.Loop, opts stressOptions) *Report {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	state := loop.State()

	report := &Report{
		Duration:       opts.Duration,
		Seed:           opts.Seed,
		GCPauseMetrics: opts.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	start := time.Now()
	last := start
	for ctx.Err() == nil {
		randomInput(rng, state)

		now := time.Now()
		dt := now.Sub(last)
		last = now

		stepStart := time.Now()
		loop.Step(dt.Seconds())
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(stepStart))
		report.TotalUpdates++
	}

	report.TotalTime = time.Since(start)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	tree := state.Tree()
	report.Nodes = tree.NodeCount()
	report.Branches = tree.TotalBranches()
	report.MaxDepth = tree.MaxDepth()
	report.Commits = state.CommitStats()
	report.Systems = loop.Stats().Systems
	return report
}

// randomInput applies one random interaction, weighted towards moves so the
// timeline keeps growing.
func randomInput(rng *rand.Rand, state *app.State) {
	switch n := rng.IntN(100); {
	case n < 55:
		live := state.Live()
		from := rng.IntN(board.Size)
		for tries := 0; live.At(from).IsEmpty() && tries < board.Size; tries++ {
			from = (from + 1) % board.Size
		}
		state.CommitMove(from, rng.IntN(board.Size))
	case n < 75:
		state.Prev()
	case n < 85:
		state.Next()
	case n < 92:
		state.Sibling()
	default:
		state.JumpToTimestamp(rng.IntN(state.Tree().MaxDepth()))
	}
}
