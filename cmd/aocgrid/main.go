// Command aocgrid runs one grid puzzle on an input file and prints both answers.
//
// Usage:
//
//	aocgrid -puzzle reindeer -input day16.txt
//	aocgrid -puzzle ramrun -width 7 -height 7 -blocks 12 < sample.txt
//	aocgrid -puzzle tilt -approx -want2 64 -input sample.txt
//
// With -want1 / -want2 the answers are checked and a mismatch exits 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process plumbing; it returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log := newLogger(cfg, stderr)

	input, err := readInput(cfg.Input, stdin)
	if err != nil {
		log.WithError(err).Error("reading input")
		return 1
	}

	fields := logrus.Fields{"puzzle": cfg.Puzzle, "input": cfg.Input}
	start := time.Now()
	ans, err := solvers[cfg.Puzzle](ctx, input, env{cfg: cfg, log: log.WithFields(fields)})
	if err != nil {
		log.WithFields(fields).WithError(err).Error("solving")
		return 1
	}
	log.WithFields(fields).WithField("elapsed", time.Since(start).Round(time.Microsecond)).Info("solved")

	fmt.Fprintf(stdout, "Part 1: %s\n", ans.Part1)
	fmt.Fprintf(stdout, "Part 2: %s\n", ans.Part2)

	code := 0
	for _, c := range []struct {
		part      int
		got, want string
	}{{1, ans.Part1, cfg.Want1}, {2, ans.Part2, cfg.Want2}} {
		if c.want != "" && c.got != c.want {
			log.WithFields(fields).WithFields(logrus.Fields{
				"part": c.part,
				"got":  c.got,
				"want": c.want,
			}).Error("wrong answer")
			code = 1
		}
	}
	return code
}

func readInput(name string, stdin io.Reader) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
