package aap

// memo.go: dead-prefix memoization for the counterexample oracle.

// FNV-1a constants, used for the hashed key lanes.
const (
	fnvOffset = 0xcbf29ce484222325
	fnvPrime  = 0x100000001b3

	// Offset basis for the second hash lane, chosen independently of the
	// FNV basis so the two lanes do not collide together.
	altOffset = 0x9e3779b97f4a7c15
)

// prefixKey identifies an assigned coloring prefix. Two independent 64-bit
// lanes are stored: lane one is an FNV-1a hash over (position, color)
// tokens mixed with the prefix length; lane two is the exact packed prefix
// for prefixes of at most 64 indices, or a second independent hash beyond
// that.
type prefixKey struct {
	hash  uint64
	exact uint64
}

// PrefixMemo records coloring prefixes proven to admit no valid completion
// ("dead prefixes") so the search never re-explores them.
//
// Validity: a prefix proven dead for lengths (k1, k2) at range size n stays
// dead for every larger n, because a valid completion of a larger range
// restricts to a valid completion of the smaller one. The memo may therefore
// be retained while n grows but must be discarded when n shrinks or the
// lengths change; the oracle enforces this.
//
// Collision behavior: for prefixes of at most 57 indices the key is exact
// and lookups cannot false-positive. Longer prefixes rely on two independent
// 64-bit hash lanes; a collision would prune a live subtree, with
// probability around 2^-128 per pair of distinct prefixes.
type PrefixMemo struct {
	seen map[prefixKey]struct{}
}

// NewPrefixMemo returns an empty memo table.
func NewPrefixMemo() *PrefixMemo {
	return &PrefixMemo{seen: make(map[prefixKey]struct{})}
}

// Key fingerprints the assigned prefix c[0:idx].
func (m *PrefixMemo) Key(c Coloring, idx int) prefixKey {
	var h uint64 = fnvOffset
	for i := 0; i < idx; i++ {
		// Assigned entries are 0 or 1; shift to 1 or 2 so a token is never zero.
		tok := uint64(c[i]+1) ^ uint64(i)<<2
		h ^= tok
		h *= fnvPrime
	}
	h ^= uint64(idx)
	h *= fnvPrime

	if bits, ok := c.packPrefix(idx); ok {
		// Exact lane: packed colors in the low bits, prefix length in the
		// top 7 bits. Distinct prefixes of at most packPrefixBits indices
		// always get distinct keys.
		return prefixKey{hash: h, exact: bits | uint64(idx)<<packPrefixBits}
	}

	var h2 uint64 = altOffset
	for i := 0; i < idx; i++ {
		h2 = h2*fnvPrime + (uint64(c[i]+1) | uint64(i)<<2)
	}
	h2 = h2*fnvPrime + uint64(idx)
	return prefixKey{hash: h, exact: h2}
}

// Seen reports whether the key was previously marked dead.
func (m *PrefixMemo) Seen(k prefixKey) bool {
	_, ok := m.seen[k]
	return ok
}

// Add marks the key dead.
func (m *PrefixMemo) Add(k prefixKey) {
	m.seen[k] = struct{}{}
}

// Len returns the number of dead prefixes recorded.
func (m *PrefixMemo) Len() int { return len(m.seen) }
