package aap

// Color is the label assigned to an index during search.
// ColorNone marks an index not yet reached by the search.
type Color int8

const (
	ColorNone Color = iota - 1
	ColorRed
	ColorBlue
)

// String returns a human-readable representation.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	default:
		return "none"
	}
}

// Opposite returns the other color. Opposite of ColorNone is ColorNone.
func (c Color) Opposite() Color {
	switch c {
	case ColorRed:
		return ColorBlue
	case ColorBlue:
		return ColorRed
	default:
		return ColorNone
	}
}

// Coloring is a buffer of color assignments over {0, ..., n-1}.
// During search, entries below the current depth are ColorRed or ColorBlue
// and entries at or above it are ColorNone. The buffer is owned by a single
// oracle call and mutated in place as the search assigns and backtracks.
type Coloring []Color

// NewColoring returns a coloring of length n with every entry unassigned.
func NewColoring(n int) Coloring {
	c := make(Coloring, n)
	for i := range c {
		c[i] = ColorNone
	}
	return c
}

// Len returns the number of indices covered by the coloring.
func (c Coloring) Len() int { return len(c) }

// packPrefixBits is the longest prefix packPrefix can encode: one bit per
// index, with the top 7 bits of the word reserved for a length tag.
const packPrefixBits = 57

// packPrefix encodes the assigned prefix c[0:idx] as one bit per index
// (ColorBlue = 1). The second return is false when the prefix does not fit;
// callers must then fall back to hashed keys.
func (c Coloring) packPrefix(idx int) (uint64, bool) {
	if idx > packPrefixBits {
		return 0, false
	}
	var bits uint64
	for i := 0; i < idx; i++ {
		if c[i] == ColorBlue {
			bits |= 1 << uint(i)
		}
	}
	return bits, true
}
