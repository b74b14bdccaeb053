package main

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aocgrid/cycle"
	"github.com/katalvlaran/aocgrid/parallel"
	"github.com/katalvlaran/aocgrid/point"
	"github.com/katalvlaran/aocgrid/puzzles/crucible"
	"github.com/katalvlaran/aocgrid/puzzles/lavabeam"
	"github.com/katalvlaran/aocgrid/puzzles/patrol"
	"github.com/katalvlaran/aocgrid/puzzles/ramrun"
	"github.com/katalvlaran/aocgrid/puzzles/reindeer"
	"github.com/katalvlaran/aocgrid/puzzles/springs"
	"github.com/katalvlaran/aocgrid/puzzles/tilt"
	"github.com/katalvlaran/aocgrid/search"
)

// answers are the two printable results of a puzzle.
type answers struct {
	Part1, Part2 string
}

// env carries what every solver may need besides its input.
type env struct {
	cfg *config
	log logrus.FieldLogger
}

func (e env) searchOpts() []search.Option {
	return []search.Option{search.WithLogger(e.log)}
}

func (e env) parallelOpts() []parallel.Option {
	opts := []parallel.Option{parallel.WithLogger(e.log)}
	if e.cfg.Workers > 0 {
		opts = append(opts, parallel.WithWorkers(e.cfg.Workers))
	}
	return opts
}

type solver func(ctx context.Context, input string, e env) (answers, error)

var solvers = map[string]solver{
	"reindeer": solveReindeer,
	"lavabeam": solveLavabeam,
	"ramrun":   solveRamrun,
	"tilt":     solveTilt,
	"crucible": solveCrucible,
	"patrol":   solvePatrol,
	"springs":  solveSprings,
}

func itoa[N int | int64](n N) string { return strconv.FormatInt(int64(n), 10) }

func solveReindeer(_ context.Context, input string, e env) (answers, error) {
	m, err := reindeer.Parse(input)
	if err != nil {
		return answers{}, err
	}
	cost, err := m.MinCost(e.searchOpts()...)
	if err != nil {
		return answers{}, err
	}
	tiles, err := m.CountOptimalTiles(e.searchOpts()...)
	if err != nil {
		return answers{}, err
	}
	return answers{itoa(cost), itoa(tiles)}, nil
}

func solveLavabeam(ctx context.Context, input string, e env) (answers, error) {
	c, err := lavabeam.Parse(input)
	if err != nil {
		return answers{}, err
	}
	first, err := c.Energize(point.Zero, point.East)
	if err != nil {
		return answers{}, err
	}
	best, err := c.MaxEnergized(ctx, e.parallelOpts()...)
	if err != nil {
		return answers{}, err
	}
	return answers{itoa(first), itoa(best)}, nil
}

func solveRamrun(_ context.Context, input string, e env) (answers, error) {
	m, err := ramrun.Parse(input, e.cfg.Width, e.cfg.Height)
	if err != nil {
		return answers{}, err
	}
	steps, err := m.ShortestPath(e.cfg.Blocks, e.searchOpts()...)
	if err != nil {
		return answers{}, err
	}
	block, err := m.FirstBlocking(e.cfg.Blocks)
	if err != nil {
		return answers{}, err
	}
	return answers{itoa(steps), block.String()}, nil
}

// billion is the spin count asked for; approxSpins stands in for it when
// the driver runs with -approx.
const (
	billion     = 1_000_000_000
	approxSpins = 1000
)

func solveTilt(_ context.Context, input string, e env) (answers, error) {
	p, err := tilt.Parse(input)
	if err != nil {
		return answers{}, err
	}
	var load int
	if e.cfg.Approx {
		load, err = p.SpinLoadNaive(approxSpins)
	} else {
		var info cycle.Info
		load, info, err = p.SpinLoad(billion)
		e.log.WithFields(logrus.Fields{
			"start":  info.Start,
			"length": info.Length,
			"found":  info.Found,
		}).Debug("tilt: spin cycle")
	}
	if err != nil {
		return answers{}, err
	}
	return answers{itoa(p.NorthLoad()), itoa(load)}, nil
}

func solveCrucible(_ context.Context, input string, e env) (answers, error) {
	c, err := crucible.Parse(input)
	if err != nil {
		return answers{}, err
	}
	normal, err := c.MinHeatLoss(crucible.Normal, e.searchOpts()...)
	if err != nil {
		return answers{}, err
	}
	ultra, err := c.MinHeatLoss(crucible.Ultra, e.searchOpts()...)
	if err != nil {
		return answers{}, err
	}
	return answers{itoa(normal), itoa(ultra)}, nil
}

func solvePatrol(ctx context.Context, input string, e env) (answers, error) {
	l, err := patrol.Parse(input)
	if err != nil {
		return answers{}, err
	}
	tiles, err := l.Visited()
	if err != nil {
		return answers{}, err
	}
	loops, err := l.LoopingObstacles(ctx, e.parallelOpts()...)
	if err != nil {
		return answers{}, err
	}
	return answers{itoa(tiles.Size()), itoa(loops)}, nil
}

func solveSprings(ctx context.Context, input string, e env) (answers, error) {
	recs, err := springs.Parse(input)
	if err != nil {
		return answers{}, err
	}
	folded, err := springs.Total(ctx, recs, 1, e.parallelOpts()...)
	if err != nil {
		return answers{}, err
	}
	unfolded, err := springs.Total(ctx, recs, 5, e.parallelOpts()...)
	if err != nil {
		return answers{}, err
	}
	return answers{itoa(folded), itoa(unfolded)}, nil
}
