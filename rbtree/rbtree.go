// Package rbtree implements a red-black binary search tree. Balance is
// maintained by color invariants: the root is black, a red node has
// black children, and every root-to-leaf path carries the same number
// of black nodes. All absent-child positions point at one shared black
// sentinel, so the fixup walks never branch on nil.
package rbtree

import "cmp"

type color uint8

const (
	red color = iota
	black
)

type node[K cmp.Ordered] struct {
	key    K
	color  color
	left   *node[K]
	right  *node[K]
	parent *node[K]
}

// Tree is an ordered set of unique keys. Use New; the sentinel must be
// allocated before any operation. Not safe for concurrent use.
type Tree[K cmp.Ordered] struct {
	root     *node[K]
	sentinel *node[K]
	size     int
}

func New[K cmp.Ordered]() *Tree[K] {
	s := &node[K]{color: black}
	s.left, s.right = s, s
	return &Tree[K]{root: s, sentinel: s}
}

// rotateLeft pivots x's right child above x. The root pointer moves
// when x had no parent.
func (t *Tree[K]) rotateLeft(x *node[K]) {
	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
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

func (t *Tree[K]) rotateRight(y *node[K]) {
	x := y.left
	y.left = x.right
	if x.right != t.sentinel {
		x.right.parent = y
	}

	x.parent = y.parent
	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.right:
		y.parent.right = x
	default:
		y.parent.left = x
	}

	x.right = y
	y.parent = x
}

// Insert adds key to the set. Inserting a key already present leaves
// the tree untouched.
func (t *Tree[K]) Insert(key K) {
	z := &node[K]{key: key, color: red, left: t.sentinel, right: t.sentinel}

	var parent *node[K]
	cur := t.root
	for cur != t.sentinel {
		parent = cur
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			return
		}
	}

	z.parent = parent
	switch {
	case parent == nil:
		t.root = z
	case key < parent.key:
		parent.left = z
	default:
		parent.right = z
	}

	t.size++
	t.insertFixup(z)
}

// insertFixup restores the color invariants after attaching the red
// node z, walking up while z's parent is red and resolving each level
// by the uncle's color.
func (t *Tree[K]) insertFixup(z *node[K]) {
	for z.parent != nil && z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == red {
				// uncle red: push blackness down from the grandparent
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					// uncle black, z far child: rotate into the near case
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

// Search reports whether key is present.
func (t *Tree[K]) Search(key K) bool {
	return t.lookup(key) != t.sentinel
}

func (t *Tree[K]) lookup(key K) *node[K] {
	cur := t.root
	for cur != t.sentinel && key != cur.key {
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return cur
}

// transplant replaces the subtree rooted at u with the one rooted at v.
// v may be the sentinel; its parent pointer is still set so delete
// fixup can navigate upward from it.
func (t *Tree[K]) transplant(u, v *node[K]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree[K]) minimum(n *node[K]) *node[K] {
	for n.left != t.sentinel {
		n = n.left
	}
	return n
}

// Delete removes key from the set. Deleting an absent key is a no-op.
func (t *Tree[K]) Delete(key K) {
	z := t.lookup(key)
	if z == t.sentinel {
		return
	}
	t.size--

	y := z
	removedColor := y.color
	var x *node[K]

	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
	default:
		// Two children: the in-order successor takes z's place and
		// color; its original right child is what actually moves.
		y = t.minimum(z.right)
		removedColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if removedColor == black {
		t.deleteFixup(x)
	}
}

// deleteFixup rebalances after a black node was removed; x carries the
// extra blackness up until it can be discharged against a sibling.
func (t *Tree[K]) deleteFixup(x *node[K]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				// red sibling: rotate to expose black-sibling cases
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					// near child red: convert to the far-red case
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

// Size returns the number of keys currently stored.
func (t *Tree[K]) Size() int {
	return t.size
}
