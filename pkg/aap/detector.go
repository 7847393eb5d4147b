package aap

// detector.go: tests whether a tentative color assignment completes an
// almost-arithmetic progression ending at the assigned index.

// CreatesAAP reports whether the coloring, with index idx most recently
// assigned to color, contains an AAP of the given color and target length
// ending exactly at idx. Entries 0..idx must be assigned.
//
// Indices are assigned in increasing order during search, so checking only
// patterns that end at idx is sufficient to catch every pattern as soon as
// it appears.
//
// The function is a pure read of the coloring; it never mutates it.
func CreatesAAP(c Coloring, idx, targetLength int, color Color) bool {
	// Two points have a single gap; no AAP of length < 3 exists.
	if targetLength <= 2 {
		return false
	}
	if targetLength == 3 {
		return createsAAP3(c, idx, color)
	}
	return createsAAPGeneral(c, idx, targetLength, color)
}

// createsAAP3 is the fast path for target length 3.
//
// A 3-AAP ending at idx needs j < m < idx, all on color, with
// (m-j) != (idx-m). For a fixed middle m the only j giving equal gaps is
// jAP = 2m - idx, so any same-color j < m other than jAP completes the
// pattern.
func createsAAP3(c Coloring, idx int, color Color) bool {
	for m := 1; m < idx; m++ {
		if c[m] != color {
			continue
		}
		jAP := 2*m - idx
		for j := 0; j < m; j++ {
			if c[j] != color {
				continue
			}
			if j != jAP {
				return true
			}
		}
	}
	return false
}

// createsAAPGeneral handles target lengths >= 4 by searching for a backward
// chain of targetLength-1 steps from idx with step sizes drawn from a pair
// {a, b}, 1 <= a < b, both sizes used at least once, every stop on color.
//
// Candidate pairs are bounded by feasibility: with need steps, all-a chains
// require need*a <= idx, and a chain using at least one b requires
// (need-1)*a + b <= idx.
func createsAAPGeneral(c Coloring, idx, targetLength int, color Color) bool {
	need := targetLength - 1
	maxA := idx / need
	for a := 1; a <= maxA; a++ {
		bMax := idx - (need-1)*a
		if bMax <= a {
			continue
		}
		for b := a + 1; b <= bMax; b++ {
			if walkChain(c, idx, color, need, a, b, false, false) {
				return true
			}
		}
	}
	return false
}

// walkChain walks backward from pos taking need steps of size a or b,
// requiring both sizes to appear and every visited index to hold color.
// Depth is bounded by the target length, which is small in practice, so
// plain recursion is fine here.
func walkChain(c Coloring, pos int, color Color, need, a, b int, usedA, usedB bool) bool {
	if need == 0 {
		return usedA && usedB
	}
	if p := pos - a; p >= 0 && c[p] == color {
		if walkChain(c, p, color, need-1, a, b, true, usedB) {
			return true
		}
	}
	if p := pos - b; p >= 0 && c[p] == color {
		if walkChain(c, p, color, need-1, a, b, usedA, true) {
			return true
		}
	}
	return false
}
