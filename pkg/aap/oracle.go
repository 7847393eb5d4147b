// Package aap provides counterexample search infrastructure.
// This file implements the backtracking oracle that decides, for a range
// size n, whether some two-coloring of {0, ..., n-1} avoids both forbidden
// patterns.
//
// # How the search works
//
// Indices are assigned in increasing order. At each index the oracle tries
// both colors in the order chosen by the branch policy; a color is rejected
// immediately if it completes a forbidden pattern ending at that index
// (checked by the detector). When both colors fail the search backtracks,
// optionally recording the assigned prefix as dead so it is never explored
// again.
//
// The search uses an explicit frame stack rather than recursion: the depth
// equals the range size, which is caller-controlled, and an explicit stack
// bounds memory deterministically.
package aap

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidLength reports a pattern length below 1.
var ErrInvalidLength = errors.New("pattern length must be at least 1")

// Oracle answers counterexample queries. It owns the coloring buffer and
// memo table used during search.
//
// Thread safety: an Oracle is NOT safe for concurrent use. For parallel
// search, create one Oracle per worker; oracles share no state.
type Oracle struct {
	// config holds search policy settings (read-only during search)
	config *OracleConfig

	// monitor collects statistics (optional, may be nil)
	monitor *SearchMonitor

	// memo retains dead prefixes across calls when ReuseMemo is set.
	// Valid only for (memoK1, memoK2) and range sizes >= memoN.
	memo   *PrefixMemo
	memoK1 int
	memoK2 int
	memoN  int
}

// NewOracle creates an oracle with the default (optimized) configuration.
func NewOracle() *Oracle {
	return NewOracleWithConfig(nil)
}

// NewOracleWithConfig creates an oracle with custom configuration.
// A nil config selects DefaultOracleConfig.
func NewOracleWithConfig(config *OracleConfig) *Oracle {
	if config == nil {
		config = DefaultOracleConfig()
	}
	return &Oracle{config: config}
}

// SetMonitor enables statistics collection during search.
func (o *Oracle) SetMonitor(monitor *SearchMonitor) {
	o.monitor = monitor
}

// Config returns the oracle's configuration.
func (o *Oracle) Config() *OracleConfig {
	return o.config
}

// ExistsCounterexample reports whether some coloring of {0, ..., n-1}
// contains no red AAP of length k1 and no blue AAP of length k2.
//
// n <= 0 is vacuously true: the empty coloring avoids both patterns.
// The search can be cancelled via the context; a cancelled search returns
// the context's error and no answer.
func (o *Oracle) ExistsCounterexample(ctx context.Context, n, k1, k2 int) (bool, error) {
	if k1 < 1 || k2 < 1 {
		return false, fmt.Errorf("%w: k1=%d, k2=%d", ErrInvalidLength, k1, k2)
	}
	if n <= 0 {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	o.monitor.StartCall()
	defer o.monitor.FinishCall()

	memo := o.memoFor(n, k1, k2)
	coloring := NewColoring(n)

	start := 0
	red, blue := 0, 0
	if o.config.SymmetryBreaking && k1 == k2 {
		// With equal lengths a global color swap maps counterexamples to
		// counterexamples, so index 0 can be pinned to red, halving the
		// search space. Unequal lengths break the symmetry; no pinning.
		coloring[0] = ColorRed
		red = 1
		start = 1
	}
	if start == n {
		// A single pinned index cannot complete any pattern.
		return true, nil
	}

	if memo != nil && memo.Seen(memo.Key(coloring, start)) {
		// Only possible with a retained memo: the root prefix was proven
		// dead at a smaller range size, which transfers to this one.
		o.monitor.RecordMemoHit()
		return false, nil
	}

	return o.search(ctx, coloring, memo, start, n, k1, k2, red, blue)
}

// oracleFrame is one level of the explicit search stack: the index being
// assigned, the color order chosen for it, and how many colors were tried.
type oracleFrame struct {
	idx   int
	order [2]Color
	next  int
}

func (o *Oracle) search(ctx context.Context, coloring Coloring, memo *PrefixMemo, start, n, k1, k2, red, blue int) (bool, error) {
	checkInterval := o.config.cancelCheckInterval()
	sinceCheck := 0

	stack := make([]oracleFrame, 0, n-start)
	stack = append(stack, oracleFrame{idx: start, order: o.branchOrder(red, blue)})

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if f.next >= len(f.order) {
			// Both colors failed below this index: the assigned prefix
			// admits no valid completion.
			if memo != nil {
				memo.Add(memo.Key(coloring, f.idx))
				o.monitor.RecordMemoEntries(memo.Len())
			}
			switch coloring[f.idx] {
			case ColorRed:
				red--
			case ColorBlue:
				blue--
			}
			coloring[f.idx] = ColorNone
			stack = stack[:len(stack)-1]
			o.monitor.RecordBacktrack()
			continue
		}

		c := f.order[f.next]
		f.next++

		sinceCheck++
		if sinceCheck >= checkInterval {
			sinceCheck = 0
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}

		// Replace any earlier attempt at this index.
		switch coloring[f.idx] {
		case ColorRed:
			red--
		case ColorBlue:
			blue--
		}
		coloring[f.idx] = c
		if c == ColorRed {
			red++
		} else {
			blue++
		}

		o.monitor.RecordNode()
		o.monitor.RecordDepth(len(stack))

		target := k1
		if c == ColorBlue {
			target = k2
		}
		if CreatesAAP(coloring, f.idx, target, c) {
			continue
		}

		next := f.idx + 1
		if next == n {
			// Full assignment reached: a counterexample coloring exists.
			o.monitor.RecordColoring()
			return true, nil
		}

		if memo != nil && memo.Seen(memo.Key(coloring, next)) {
			o.monitor.RecordMemoHit()
			continue
		}

		stack = append(stack, oracleFrame{idx: next, order: o.branchOrder(red, blue)})
	}

	return false, nil
}

// branchOrder applies the configured ordering policy given the running
// red/blue assignment counts.
func (o *Oracle) branchOrder(red, blue int) [2]Color {
	if o.config.Ordering == OrderBalanced && blue < red {
		return [2]Color{ColorBlue, ColorRed}
	}
	return [2]Color{ColorRed, ColorBlue}
}

// memoFor returns the memo table for a call, honoring the configured
// lifetime. A retained table is discarded whenever the pattern lengths
// change or the range size shrinks below what the entries were proven for.
func (o *Oracle) memoFor(n, k1, k2 int) *PrefixMemo {
	if !o.config.UseMemo {
		return nil
	}
	if !o.config.ReuseMemo {
		return NewPrefixMemo()
	}
	if o.memo == nil || o.memoK1 != k1 || o.memoK2 != k2 || n < o.memoN {
		o.memo = NewPrefixMemo()
		o.memoK1, o.memoK2 = k1, k2
	}
	o.memoN = n
	return o.memo
}
