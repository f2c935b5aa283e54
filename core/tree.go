package core

import "cmp"

// Tree is the contract every engine exposes to the benchmark harness.
// Insert is a no-op for a key already present and Delete is a no-op for
// an absent key. Search reports membership only; it may restructure the
// tree internally (splay) without changing observable membership.
type Tree[K cmp.Ordered] interface {
	Insert(key K)
	Search(key K) bool
	Delete(key K)
	Size() int
}
