// Package splay implements a self-adjusting binary search tree. No
// balance metadata is stored; every access rotates the touched node to
// the root, which gives O(m log n) amortized cost over a sequence of m
// operations even though a single operation may cost O(n).
package splay

import "cmp"

type node[K cmp.Ordered] struct {
	key    K
	left   *node[K]
	right  *node[K]
	parent *node[K]
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

func (t *Tree[K]) rotateRight(x *node[K]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}

	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.right = x
	x.parent = y
}

func (t *Tree[K]) rotateLeft(x *node[K]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// splay rotates x to the root with zig, zig-zig, and zig-zag steps.
func (t *Tree[K]) splay(x *node[K]) {
	for x.parent != nil {
		p := x.parent
		g := p.parent
		switch {
		case g == nil:
			// zig: parent is the root
			if x == p.left {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
		case x == p.left && p == g.left:
			// zig-zig: rotate the grandparent first
			t.rotateRight(g)
			t.rotateRight(p)
		case x == p.right && p == g.right:
			t.rotateLeft(g)
			t.rotateLeft(p)
		case x == p.right && p == g.left:
			// zig-zag
			t.rotateLeft(p)
			t.rotateRight(g)
		default:
			t.rotateRight(p)
			t.rotateLeft(g)
		}
	}
}

// Insert adds key to the set. An already-present key is splayed to the
// root but not inserted again.
func (t *Tree[K]) Insert(key K) {
	n := &node[K]{key: key}

	if t.root == nil {
		t.root = n
		t.size++
		return
	}

	var parent *node[K]
	cur := t.root
	for cur != nil {
		parent = cur
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			t.splay(cur)
			return
		}
	}

	n.parent = parent
	if key < parent.key {
		parent.left = n
	} else {
		parent.right = n
	}
	t.size++
	t.splay(n)
}

// Search reports whether key is present. The found node, or the last
// node visited on a failed descent, is splayed to the root.
func (t *Tree[K]) Search(key K) bool {
	cur := t.root
	for cur != nil {
		switch {
		case key == cur.key:
			t.splay(cur)
			return true
		case key < cur.key:
			if cur.left == nil {
				t.splay(cur)
				return false
			}
			cur = cur.left
		default:
			if cur.right == nil {
				t.splay(cur)
				return false
			}
			cur = cur.right
		}
	}
	return false
}

func subtreeMaximum[K cmp.Ordered](n *node[K]) *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Delete removes key from the set. Deleting an absent key is a no-op.
// The search splays the target to the root; the left subtree's maximum
// is then splayed to its root and the right subtree reattached there.
func (t *Tree[K]) Delete(key K) {
	if !t.Search(key) {
		return
	}

	switch {
	case t.root.left == nil:
		t.root = t.root.right
		if t.root != nil {
			t.root.parent = nil
		}
	case t.root.right == nil:
		t.root = t.root.left
		t.root.parent = nil
	default:
		left, right := t.root.left, t.root.right
		right.parent = nil
		left.parent = nil

		t.root = left
		t.splay(subtreeMaximum(left))

		// the left-subtree maximum has no right child; join here
		t.root.right = right
		right.parent = t.root
	}
	t.size--
}

// Size returns the number of keys currently stored.
func (t *Tree[K]) Size() int {
	return t.size
}
