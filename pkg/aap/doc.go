// Package aap computes two-color threshold numbers for almost-arithmetic
// progressions (AAPs).
//
// An AAP of length k is a strictly increasing sequence of k integers whose
// consecutive gaps take exactly two distinct positive values a < b, each
// occurring at least once. The threshold B(k, l) is the least N such that
// every red/blue coloring of {0, ..., N-1} contains a red AAP of length k or
// a blue AAP of length l.
//
// # Architecture Overview
//
// The package separates the problem into three layers:
//
//	Detector (pure function):
//	  Decides whether assigning a color to an index completes a forbidden
//	  AAP ending at that index. Because indices are assigned in increasing
//	  order, every new pattern must end at the most recent index.
//
//	Oracle (backtracking search):
//	  Attempts to build a full coloring of {0, ..., n-1} that avoids both
//	  forbidden patterns. Uses an explicit frame stack instead of recursion,
//	  a pluggable branch-ordering policy, optional dead-prefix memoization,
//	  and optional symmetry breaking.
//
//	Threshold search (monotone driver):
//	  The predicate "no counterexample exists at N" is monotone in N, so the
//	  minimal threshold is located by exponential bound-finding followed by
//	  binary search, or anchored via the symmetric value B(k, k) when the
//	  target is asymmetric.
//
// # Basic Usage
//
//	oracle := aap.NewOracle()
//	b, err := oracle.ComputeThreshold(context.Background(), 3, 3, 200)
//	if err != nil {
//	    // invalid parameters or cancelled context
//	}
//	if b == aap.Unresolved {
//	    // no threshold found within the cap
//	}
//
// Thread safety: an Oracle is not safe for concurrent use; it owns a memo
// table that persists across calls when ReuseMemo is enabled. For concurrent
// evaluation of independent queries, use a Prober, which gives every probe a
// private Oracle.
package aap
