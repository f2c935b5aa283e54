// Package avl implements a height-balanced binary search tree. Every
// node keeps its subtree height and the balance factor (left height
// minus right height) stays in {-1, 0, 1} after each insert and delete.
package avl

import "cmp"

type node[K cmp.Ordered] struct {
	key    K
	left   *node[K]
	right  *node[K]
	height int
}

// Tree is an ordered set of unique keys. The zero value is an empty
// tree ready to use. Not safe for concurrent use.
type Tree[K cmp.Ordered] struct {
	root *node[K]
	size int
}

func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

func height[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balance[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func (n *node[K]) updateHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// rotateRight lifts n's left child over n and returns it as the new
// subtree root. Only the two pivot heights are recomputed; ancestors
// are fixed on the caller's unwind.
func rotateRight[K cmp.Ordered](n *node[K]) *node[K] {
	l := n.left
	n.left = l.right
	l.right = n

	n.updateHeight()
	l.updateHeight()
	return l
}

func rotateLeft[K cmp.Ordered](n *node[K]) *node[K] {
	r := n.right
	n.right = r.left
	r.left = n

	n.updateHeight()
	r.updateHeight()
	return r
}

// Insert adds key to the set. Inserting a key already present leaves
// the tree untouched.
func (t *Tree[K]) Insert(key K) {
	var inserted bool
	t.root, inserted = insert(t.root, key)
	if inserted {
		t.size++
	}
}

func insert[K cmp.Ordered](n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return &node[K]{key: key, height: 1}, true
	}

	var inserted bool
	switch {
	case key < n.key:
		n.left, inserted = insert(n.left, key)
	case key > n.key:
		n.right, inserted = insert(n.right, key)
	default:
		return n, false
	}

	n.updateHeight()

	// On insert the inserted key disambiguates the four rotation cases.
	switch b := balance(n); {
	case b > 1 && key < n.left.key:
		// left left
		return rotateRight(n), inserted
	case b < -1 && key > n.right.key:
		// right right
		return rotateLeft(n), inserted
	case b > 1 && key > n.left.key:
		// left right
		n.left = rotateLeft(n.left)
		return rotateRight(n), inserted
	case b < -1 && key < n.right.key:
		// right left
		n.right = rotateRight(n.right)
		return rotateLeft(n), inserted
	}
	return n, inserted
}

// Search reports whether key is present.
func (t *Tree[K]) Search(key K) bool {
	return search(t.root, key)
}

func search[K cmp.Ordered](n *node[K], key K) bool {
	if n == nil {
		return false
	}
	switch {
	case key < n.key:
		return search(n.left, key)
	case key > n.key:
		return search(n.right, key)
	default:
		return true
	}
}

func minNode[K cmp.Ordered](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Delete removes key from the set. Deleting an absent key is a no-op.
func (t *Tree[K]) Delete(key K) {
	var removed bool
	t.root, removed = remove(t.root, key)
	if removed {
		t.size--
	}
}

func remove[K cmp.Ordered](n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < n.key:
		n.left, removed = remove(n.left, key)
	case key > n.key:
		n.right, removed = remove(n.right, key)
	default:
		removed = true
		if n.left == nil {
			return n.right, removed
		}
		if n.right == nil {
			return n.left, removed
		}
		// Two children: overwrite with the in-order successor's key and
		// splice the successor out of the right subtree.
		succ := minNode(n.right)
		n.key = succ.key
		n.right, _ = remove(n.right, succ.key)
	}

	n.updateHeight()

	// Unlike insert, the removed key cannot break ties, so the cases
	// key off the child's balance factor sign.
	switch b := balance(n); {
	case b > 1 && balance(n.left) >= 0:
		return rotateRight(n), removed
	case b > 1:
		n.left = rotateLeft(n.left)
		return rotateRight(n), removed
	case b < -1 && balance(n.right) <= 0:
		return rotateLeft(n), removed
	case b < -1:
		n.right = rotateRight(n.right)
		return rotateLeft(n), removed
	}
	return n, removed
}

// Size returns the number of keys currently stored.
func (t *Tree[K]) Size() int {
	return t.size
}
