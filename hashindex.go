// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

// hashIndex is the chained hash mapping 2-byte prefixes to positions in the
// history ring (spec component 4.3): one head table plus one per-slot
// next-link table, avoiding any pointer chasing or heap allocation.
//
// head[h] holds the most recent ring position whose 2-byte prefix hashes to
// h; next[pos] links a ring position to the previous position sharing its
// hash. noPosition denotes "none" in both tables.
type hashIndex struct {
	head [hashIndexSize]uint16
	next [windowSize]uint16
}

// hashPair computes the 12-bit hash of two bytes: ((a<<4) ^ b) mod 4096.
func hashPair(a, b byte) uint16 {
	return (uint16(a)<<4 ^ uint16(b)) & (hashIndexSize - 1)
}

// resetQuick leaves the tables as-is. Any stale or zero-valued entry is
// rendered harmless by the caller's historyLen bound check and the
// monotonicity guard in the match search: a false hit is simply verified by
// direct byte comparison and costs nothing but a wasted probe.
func (idx *hashIndex) resetQuick() {}

// resetFull zeroes both tables to the sentinel, so every lookup starts from
// a clean "no entry" state instead of relying on the bound check. Costs an
// O(windowSize + hashIndexSize) pass; useful when deterministic first-match
// timing matters more than avoiding the clear.
func (idx *hashIndex) resetFull() {
	for i := range idx.head {
		idx.head[i] = noPosition
	}
	for i := range idx.next {
		idx.next[i] = noPosition
	}
}

// insert records that the 2-byte prefix (a, b) starts at ring position pos,
// pushing pos onto the front of that prefix's hash chain.
func (idx *hashIndex) insert(pos uint16, a, b byte) {
	h := hashPair(a, b)
	idx.next[pos] = idx.head[h]
	idx.head[h] = pos
}

// chainHead returns the most recent ring position recorded for the 2-byte
// prefix (a, b), or noPosition if none.
func (idx *hashIndex) chainHead(a, b byte) uint16 {
	return idx.head[hashPair(a, b)]
}

// chainNext follows the hash chain from pos to the next older position
// sharing its hash, or noPosition if pos is the end of its chain.
func (idx *hashIndex) chainNext(pos uint16) uint16 {
	return idx.next[pos]
}
