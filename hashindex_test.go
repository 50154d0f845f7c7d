// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

import "testing"

func TestHashIndex_InsertAndChainHead(t *testing.T) {
	var h hashIndex
	h.resetFull()

	if got := h.chainHead('a', 'b'); got != noPosition {
		t.Fatalf("chainHead on empty index = %d, want noPosition", got)
	}

	h.insert(5, 'a', 'b')
	if got := h.chainHead('a', 'b'); got != 5 {
		t.Fatalf("chainHead after insert = %d, want 5", got)
	}
}

func TestHashIndex_ChainOrdersNewestFirst(t *testing.T) {
	var h hashIndex
	h.resetFull()

	h.insert(3, 'x', 'y')
	h.insert(20, 'x', 'y')
	h.insert(100, 'x', 'y')

	head := h.chainHead('x', 'y')
	if head != 100 {
		t.Fatalf("chainHead = %d, want 100 (most recent insert)", head)
	}
	next := h.chainNext(head)
	if next != 20 {
		t.Fatalf("chainNext(100) = %d, want 20", next)
	}
	next = h.chainNext(next)
	if next != 3 {
		t.Fatalf("chainNext(20) = %d, want 3", next)
	}
	if h.chainNext(next) != noPosition {
		t.Fatalf("chainNext(3) = %d, want noPosition (end of chain)", h.chainNext(next))
	}
}

func TestHashIndex_DistinctPrefixesDoNotCollideInChains(t *testing.T) {
	var h hashIndex
	h.resetFull()

	h.insert(1, 'a', 'a')
	h.insert(2, 'z', 'z')

	if hashPair('a', 'a') != hashPair('z', 'z') {
		// Different buckets: each chain should hold exactly its own entry.
		if got := h.chainHead('a', 'a'); got != 1 {
			t.Fatalf("chainHead('a','a') = %d, want 1", got)
		}
		if got := h.chainHead('z', 'z'); got != 2 {
			t.Fatalf("chainHead('z','z') = %d, want 2", got)
		}
	}
}
