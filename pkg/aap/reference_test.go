package aap

// reference_test.go: pruning-free brute-force implementations used to
// cross-check the incremental detector and the backtracking oracle. These
// deliberately use a different formulation (enumerate index tuples and
// inspect the gap multiset) rather than the backward {a, b} walk, so the
// two implementations share no code path.

// gapValues returns the distinct consecutive gap values of an increasing
// tuple.
func gapValues(tuple []int) map[int]int {
	gaps := make(map[int]int)
	for i := 1; i < len(tuple); i++ {
		gaps[tuple[i]-tuple[i-1]]++
	}
	return gaps
}

// isAAPTuple reports whether an increasing tuple is an AAP: its gaps take
// exactly two distinct values. Each value necessarily occurs at least once.
func isAAPTuple(tuple []int) bool {
	return len(gapValues(tuple)) == 2
}

// bruteAAPEndsAt reports whether some increasing tuple of `length`
// same-colored indices ending exactly at idx is an AAP, by enumerating
// every such tuple.
func bruteAAPEndsAt(c Coloring, idx, length int, color Color) bool {
	if length <= 2 || c[idx] != color {
		return false
	}
	var positions []int
	for i := 0; i < idx; i++ {
		if c[i] == color {
			positions = append(positions, i)
		}
	}
	tuple := make([]int, length)
	tuple[length-1] = idx

	var choose func(start, depth int) bool
	choose = func(start, depth int) bool {
		if depth == length-1 {
			return isAAPTuple(tuple)
		}
		for i := start; i <= len(positions)-(length-1-depth); i++ {
			tuple[depth] = positions[i]
			if choose(i+1, depth+1) {
				return true
			}
		}
		return false
	}
	return choose(0, 0)
}

// bruteColorHasAAP reports whether the color class of a full coloring
// contains any AAP of the given length, anywhere.
func bruteColorHasAAP(c Coloring, length int, color Color) bool {
	for idx := range c {
		if bruteAAPEndsAt(c, idx, length, color) {
			return true
		}
	}
	return false
}

// bruteExistsCounterexample enumerates all 2^n colorings and reports
// whether any avoids both a red k1-AAP and a blue k2-AAP.
func bruteExistsCounterexample(n, k1, k2 int) bool {
	if n <= 0 {
		return true
	}
	for mask := 0; mask < 1<<uint(n); mask++ {
		c := colorFromMask(mask, n)
		if !bruteColorHasAAP(c, k1, ColorRed) && !bruteColorHasAAP(c, k2, ColorBlue) {
			return true
		}
	}
	return false
}

// colorFromMask builds a full coloring from a bitmask (set bit = blue).
func colorFromMask(mask, n int) Coloring {
	c := make(Coloring, n)
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			c[i] = ColorBlue
		} else {
			c[i] = ColorRed
		}
	}
	return c
}
