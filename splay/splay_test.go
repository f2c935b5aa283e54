package splay

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dina-adel/Advanced-Data-Structures-Analysis/core"
)

var _ core.Tree[int64] = (*Tree[int64])(nil)

func inorder(n *node[int64], keys *[]int64) {
	if n == nil {
		return
	}
	inorder(n.left, keys)
	*keys = append(*keys, n.key)
	inorder(n.right, keys)
}

// checkInvariants verifies BST order, parent links, and the size
// counter. Splay trees carry no balance metadata to check.
func checkInvariants(t require.TestingT, tr *Tree[int64]) {
	if tr.root != nil {
		require.Nil(t, tr.root.parent)
	}
	var walk func(n *node[int64])
	walk = func(n *node[int64]) {
		if n == nil {
			return
		}
		if n.left != nil {
			require.Equal(t, n, n.left.parent, "broken parent link below key %d", n.key)
			walk(n.left)
		}
		if n.right != nil {
			require.Equal(t, n, n.right.parent, "broken parent link below key %d", n.key)
			walk(n.right)
		}
	}
	walk(tr.root)

	var keys []int64
	inorder(tr.root, &keys)
	require.Len(t, keys, tr.size)
	require.True(t, slices.IsSorted(keys), "in-order traversal not sorted: %v", keys)
	for i := 1; i < len(keys); i++ {
		require.NotEqual(t, keys[i-1], keys[i], "duplicate key in traversal")
	}
}

// lastOnPath reports the key of the node a BST descent for key ends on,
// without mutating the tree. After a search this must be the root.
func lastOnPath(tr *Tree[int64], key int64) int64 {
	cur := tr.root
	for {
		switch {
		case key < cur.key:
			if cur.left == nil {
				return cur.key
			}
			cur = cur.left
		case key > cur.key:
			if cur.right == nil {
				return cur.key
			}
			cur = cur.right
		default:
			return cur.key
		}
	}
}

func TestScenario(t *testing.T) {
	tr := New[int64]()
	for _, k := range []int64{10, 20, 30, 40, 50} {
		tr.Insert(k)
		checkInvariants(t, tr)
		require.Equal(t, k, tr.root.key, "inserted key must be splayed to the root")
	}
	require.True(t, tr.Search(30))
	require.Equal(t, int64(30), tr.root.key)

	tr.Delete(20)
	checkInvariants(t, tr)
	tr.Delete(40)
	checkInvariants(t, tr)

	require.False(t, tr.Search(20))
	require.False(t, tr.Search(40))
	require.True(t, tr.Search(10))
	require.True(t, tr.Search(30))
	require.True(t, tr.Search(50))
	require.Equal(t, 3, tr.Size())

	for i := 0; i < 5; i++ {
		require.True(t, tr.Search(30))
	}
	require.Equal(t, int64(30), tr.root.key)
}

func TestDuplicateInsertSplaysExisting(t *testing.T) {
	tr := New[int64]()
	tr.Insert(10)
	tr.Insert(20)
	tr.Insert(10)
	require.Equal(t, 2, tr.Size())
	require.Equal(t, int64(10), tr.root.key)
	checkInvariants(t, tr)
}

func TestFailedSearchSplaysLastVisited(t *testing.T) {
	tr := New[int64]()
	for _, k := range []int64{50, 20, 80, 10, 30, 70, 90} {
		tr.Insert(k)
	}
	for _, absent := range []int64{0, 25, 45, 65, 100} {
		want := lastOnPath(tr, absent)
		require.False(t, tr.Search(absent))
		require.Equal(t, want, tr.root.key)
		checkInvariants(t, tr)
	}
}

func TestDeleteAbsentKeepsSize(t *testing.T) {
	tr := New[int64]()
	tr.Insert(1)
	tr.Insert(2)
	tr.Delete(99)
	require.Equal(t, 2, tr.Size())
	checkInvariants(t, tr)
}

func TestDeleteJoinsSubtrees(t *testing.T) {
	tr := New[int64]()
	for _, k := range []int64{50, 20, 80, 10, 30, 70, 90} {
		tr.Insert(k)
	}
	tr.Delete(50)
	checkInvariants(t, tr)
	// the left subtree's maximum becomes the join root
	require.Equal(t, int64(30), tr.root.key)
	require.False(t, tr.Search(50))
	require.Equal(t, 6, tr.Size())
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	keys := rng.Perm(500)

	tr := New[int64]()
	for _, k := range keys {
		tr.Insert(int64(k))
	}
	require.Equal(t, 500, tr.Size())

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, k := range keys {
		tr.Delete(int64(k))
		checkInvariants(t, tr)
	}
	require.Equal(t, 0, tr.Size())
	require.Nil(t, tr.root)
}

func TestTreeSims(t *testing.T) {
	rapid.Check(t, testTreeSims)
}

func testTreeSims(t *rapid.T) {
	tr := New[int64]()
	ref := map[int64]struct{}{}
	key := rapid.Int64Range(0, 128)

	t.Repeat(map[string]func(*rapid.T){
		"insert": func(t *rapid.T) {
			k := key.Draw(t, "key")
			tr.Insert(k)
			ref[k] = struct{}{}
		},
		"delete": func(t *rapid.T) {
			k := key.Draw(t, "key")
			tr.Delete(k)
			delete(ref, k)
		},
		"search": func(t *rapid.T) {
			k := key.Draw(t, "key")
			_, want := ref[k]
			require.Equal(t, want, tr.Search(k))
			if want {
				require.Equal(t, k, tr.root.key)
			}
		},
		"": func(t *rapid.T) {
			require.Equal(t, len(ref), tr.Size())
			checkInvariants(t, tr)
		},
	})
}
