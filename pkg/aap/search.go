// Package aap provides threshold search infrastructure.
// This file turns single-range counterexample decisions into minimal
// threshold computations.
//
// The correctness basis is monotonicity: if no counterexample exists at N,
// none exists at any larger N, because a counterexample of a larger range
// restricts to one of the smaller range. Once the predicate "every coloring
// is forced" becomes true it stays true, so the minimal threshold can be
// bracketed by exponential doubling and pinned down by binary search.
package aap

import (
	"context"
	"errors"
	"fmt"
)

// Unresolved is returned by threshold searches when no qualifying range
// size exists within the cap.
const Unresolved = -1

// ErrInvalidCap reports a search cap below 1.
var ErrInvalidCap = errors.New("search cap must be at least 1")

// MinimalThreshold returns the least N in [1, nmax] such that every
// two-coloring of {0, ..., N-1} contains a red AAP of length k1 or a blue
// AAP of length k2, or Unresolved if no such N exists within the cap.
//
// The oracle is evaluated O(log nmax) times: a doubling phase brackets the
// threshold, then binary search locates it.
func (o *Oracle) MinimalThreshold(ctx context.Context, k1, k2, nmax int) (int, error) {
	if err := validateParams(k1, k2, nmax); err != nil {
		return Unresolved, err
	}

	// Doubling phase: grow hi until the predicate holds there or the cap
	// is exhausted. A counterexample at hi means the threshold is larger.
	hi := 1
	for {
		ce, err := o.ExistsCounterexample(ctx, hi, k1, k2)
		if err != nil {
			return Unresolved, err
		}
		if !ce {
			break
		}
		if hi == nmax {
			return Unresolved, nil
		}
		hi = min(hi*2, nmax)
	}

	return o.binarySearchMin(ctx, 1, hi, k1, k2)
}

// LinearThreshold is the basic variant of MinimalThreshold: it scans
// N = 1, 2, ... up to nmax and returns the first N with no counterexample.
// Retained as the reference implementation the optimized searches are
// validated against.
func (o *Oracle) LinearThreshold(ctx context.Context, k1, k2, nmax int) (int, error) {
	if err := validateParams(k1, k2, nmax); err != nil {
		return Unresolved, err
	}
	for n := 1; n <= nmax; n++ {
		ce, err := o.ExistsCounterexample(ctx, n, k1, k2)
		if err != nil {
			return Unresolved, err
		}
		if !ce {
			return n, nil
		}
	}
	return Unresolved, nil
}

// ComputeThreshold computes B(k, l) for possibly unequal lengths using a
// two-stage search.
//
// Stage 1 computes the symmetric anchor B(k, k), which is usually close to
// the asymmetric value. Stage 2 tests the asymmetric predicate at the
// anchor: if it already holds, the true threshold is at most the anchor and
// binary search descends from it; otherwise the threshold is larger and a
// doubling phase above the anchor brackets it first.
func (o *Oracle) ComputeThreshold(ctx context.Context, k, l, nmax int) (int, error) {
	if err := validateParams(k, l, nmax); err != nil {
		return Unresolved, err
	}

	anchor, err := o.MinimalThreshold(ctx, k, k, nmax)
	if err != nil || anchor == Unresolved {
		return Unresolved, err
	}
	if l == k {
		// Stage 1 already answered the symmetric case.
		return anchor, nil
	}

	ce, err := o.ExistsCounterexample(ctx, anchor, k, l)
	if err != nil {
		return Unresolved, err
	}
	if !ce {
		// The asymmetric predicate holds at the anchor; the true threshold
		// is in [1, anchor].
		return o.binarySearchMin(ctx, 1, anchor, k, l)
	}

	// The asymmetric threshold exceeds the anchor. Expand upward by
	// doubling until the predicate holds; unresolved only once hi has
	// reached the cap with the predicate still failing there.
	if anchor == nmax {
		return Unresolved, nil
	}
	lo := anchor + 1
	hi := min(2*anchor, nmax)
	for {
		ce, err := o.ExistsCounterexample(ctx, hi, k, l)
		if err != nil {
			return Unresolved, err
		}
		if !ce {
			break
		}
		if hi == nmax {
			return Unresolved, nil
		}
		lo = hi + 1
		hi = min(hi*2, nmax)
	}

	return o.binarySearchMin(ctx, lo, hi, k, l)
}

// binarySearchMin locates the least N in [lo, hi] where the forcing
// predicate holds. The caller guarantees it holds at hi.
func (o *Oracle) binarySearchMin(ctx context.Context, lo, hi, k1, k2 int) (int, error) {
	ans := hi
	for lo <= hi {
		mid := lo + (hi-lo)/2
		ce, err := o.ExistsCounterexample(ctx, mid, k1, k2)
		if err != nil {
			return Unresolved, err
		}
		if !ce {
			ans = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return ans, nil
}

func validateParams(k1, k2, nmax int) error {
	if k1 < 1 || k2 < 1 {
		return fmt.Errorf("%w: k1=%d, k2=%d", ErrInvalidLength, k1, k2)
	}
	if nmax < 1 {
		return fmt.Errorf("%w: nmax=%d", ErrInvalidCap, nmax)
	}
	return nil
}
