package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// errUsage is returned for flag values that make no sense together.
var errUsage = errors.New("aocgrid: invalid usage")

// config holds everything the driver reads from the command line.
type config struct {
	Puzzle   string
	Input    string
	Approx   bool
	Want1    string
	Want2    string
	Workers  int
	LogLevel logrus.Level

	// falling-block memory size and the block count for part 1
	Width, Height, Blocks int
}

// parseConfig reads flags from args. Usage text goes to errOut.
func parseConfig(args []string, errOut io.Writer) (*config, error) {
	cfg := &config{}
	var level string

	fs := flag.NewFlagSet("aocgrid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.Puzzle, "puzzle", "", "puzzle to run: "+strings.Join(puzzleNames(), ", "))
	fs.StringVar(&cfg.Input, "input", "-", "input file; - reads standard input")
	fs.BoolVar(&cfg.Approx, "approx", false, "tilt: run 1000 spin cycles instead of extrapolating to 1e9")
	fs.StringVar(&cfg.Want1, "want1", "", "expected part 1 answer; mismatch exits 1")
	fs.StringVar(&cfg.Want2, "want2", "", "expected part 2 answer; mismatch exits 1")
	fs.IntVar(&cfg.Workers, "workers", 0, "goroutines for parallel trials; 0 means one per CPU")
	fs.StringVar(&level, "log-level", "info", "log level: debug, info, warn, error")
	fs.IntVar(&cfg.Width, "width", 71, "ramrun: memory width")
	fs.IntVar(&cfg.Height, "height", 71, "ramrun: memory height")
	fs.IntVar(&cfg.Blocks, "blocks", 1024, "ramrun: bytes fallen for part 1")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg.LogLevel = lvl

	return cfg, cfg.validate()
}

func (c *config) validate() error {
	switch {
	case c.Puzzle == "":
		return fmt.Errorf("%w: -puzzle is required", errUsage)
	case !slices.Contains(puzzleNames(), c.Puzzle):
		return fmt.Errorf("%w: unknown puzzle %q", errUsage, c.Puzzle)
	case c.Workers < 0:
		return fmt.Errorf("%w: -workers must not be negative", errUsage)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: -width and -height must be positive", errUsage)
	case c.Blocks < 0:
		return fmt.Errorf("%w: -blocks must not be negative", errUsage)
	}
	return nil
}

func puzzleNames() []string {
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newLogger writes text logs to out at the configured level.
func newLogger(cfg *config, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(cfg.LogLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return l
}
