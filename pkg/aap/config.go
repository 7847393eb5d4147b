package aap

// BranchOrdering selects the order in which the oracle tries the two colors
// at each index. The policy is explicit so it can be tuned or disabled when
// validating the oracle against a brute-force reference.
type BranchOrdering int

const (
	// OrderFixed tries red then blue at every index.
	OrderFixed BranchOrdering = iota

	// OrderBalanced tries the color with fewer assignments so far first,
	// biasing the search toward balanced colorings, which tend to fail
	// faster and prune more.
	OrderBalanced
)

// String returns a human-readable representation.
func (b BranchOrdering) String() string {
	switch b {
	case OrderFixed:
		return "fixed"
	case OrderBalanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// OracleConfig configures the counterexample oracle's search behavior.
// All settings preserve the oracle's answer; they only change how fast it
// is reached. Tests exercise every combination against the plain search.
type OracleConfig struct {
	// Ordering is the branch-ordering policy applied at each index.
	Ordering BranchOrdering

	// UseMemo enables the dead-prefix table. Subtrees proven to admit no
	// valid completion are never re-explored.
	UseMemo bool

	// ReuseMemo retains the dead-prefix table across oracle calls that
	// share the same pattern lengths, as long as the range size does not
	// shrink. Requires UseMemo.
	ReuseMemo bool

	// SymmetryBreaking pins index 0 to red, halving the search space.
	// Only applied when the two pattern lengths are equal; with unequal
	// lengths a global color swap changes which pattern each class must
	// avoid, so the pinned search could miss counterexamples.
	SymmetryBreaking bool

	// CancelCheckInterval is the number of search nodes between context
	// cancellation checks. Zero or negative selects the default.
	CancelCheckInterval int
}

const defaultCancelCheckInterval = 1024

// DefaultOracleConfig returns the configuration of the optimized search:
// balanced ordering, memoization, and symmetry breaking.
func DefaultOracleConfig() *OracleConfig {
	return &OracleConfig{
		Ordering:            OrderBalanced,
		UseMemo:             true,
		SymmetryBreaking:    true,
		CancelCheckInterval: defaultCancelCheckInterval,
	}
}

// BasicOracleConfig returns the configuration of the plain search used as a
// reference: fixed red-then-blue ordering, no memoization, no symmetry
// breaking.
func BasicOracleConfig() *OracleConfig {
	return &OracleConfig{
		Ordering:            OrderFixed,
		CancelCheckInterval: defaultCancelCheckInterval,
	}
}

func (c *OracleConfig) cancelCheckInterval() int {
	if c.CancelCheckInterval <= 0 {
		return defaultCancelCheckInterval
	}
	return c.CancelCheckInterval
}
