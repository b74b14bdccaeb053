// Package springs counts the arrangements of damaged springs consistent with
// a partially unknown condition record and its run-length checksum.
package springs

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aocgrid/gridgraph"
	"github.com/katalvlaran/aocgrid/parallel"
)

const (
	operational = '.'
	damaged     = '#'
	unknown     = '?'
)

// Record is one row: the springs and the sizes of each contiguous damaged group.
type Record struct {
	Springs string
	Groups  []int
}

// Parse reads lines of the form "???.### 1,1,3".
func Parse(text string) ([]Record, error) {
	var out []Record
	for i, line := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		springs, sums, ok := strings.Cut(line, " ")
		if !ok || strings.Trim(springs, ".#?") != "" {
			return nil, fmt.Errorf("springs: %w: line %d: %q", gridgraph.ErrMalformedInput, i+1, line)
		}
		r := Record{Springs: springs}
		for _, f := range strings.Split(sums, ",") {
			n, err := strconv.Atoi(f)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("springs: %w: line %d: bad group %q", gridgraph.ErrMalformedInput, i+1, f)
			}
			r.Groups = append(r.Groups, n)
		}
		out = append(out, r)
	}
	return out, nil
}

// Unfold repeats the record n times, joining the springs with '?'.
func (r Record) Unfold(n int) Record {
	parts := make([]string, n)
	groups := make([]int, 0, n*len(r.Groups))
	for i := range parts {
		parts[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Record{Springs: strings.Join(parts, string(unknown)), Groups: groups}
}

// Arrangements counts the ways to resolve every '?' consistently with Groups.
func (r Record) Arrangements() int {
	return Count(r.Springs, r.Groups)
}

// key is a memo entry: position in the springs, index of the current
// group and length of the damaged run in progress.
type key struct {
	pos, group, run int
}

// Count counts the arrangements of springs matching groups.
func Count(springs string, groups []int) int {
	c := counter{springs: springs, groups: slices.Clone(groups), memo: make(map[key]int)}
	return c.count(key{})
}

type counter struct {
	springs string
	groups  []int
	memo    map[key]int
}

func (c *counter) count(k key) int {
	if k.pos == len(c.springs) {
		switch {
		case k.group == len(c.groups) && k.run == 0:
			return 1
		case k.group == len(c.groups)-1 && k.run == c.groups[k.group]:
			return 1
		default:
			return 0
		}
	}
	if v, ok := c.memo[k]; ok {
		return v
	}

	total := 0
	ch := c.springs[k.pos]
	if ch == damaged || ch == unknown {
		// extend the current run if a group still needs cells
		if k.group < len(c.groups) && k.run < c.groups[k.group] {
			total += c.count(key{k.pos + 1, k.group, k.run + 1})
		}
	}
	if ch == operational || ch == unknown {
		switch {
		case k.run == 0:
			total += c.count(key{k.pos + 1, k.group, 0})
		case k.run == c.groups[k.group]:
			total += c.count(key{k.pos + 1, k.group + 1, 0})
		}
	}
	c.memo[k] = total
	return total
}

// Total sums the arrangements of every record, each unfolded n times
// (n == 1 leaves them as they are), evaluating records in parallel.
func Total(ctx context.Context, records []Record, n int, opts ...parallel.Option) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("springs: unfold factor %d must be at least 1", n)
	}
	sum, err := parallel.Sum(ctx, records, func(r Record) int {
		return r.Unfold(n).Arrangements()
	}, opts...)
	if err != nil {
		return 0, fmt.Errorf("springs: %w", err)
	}
	return sum, nil
}
