package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dina-adel/Advanced-Data-Structures-Analysis/core"
)

func TestNewTree(t *testing.T) {
	for _, kind := range TreeKinds {
		tree, err := NewTree(kind)
		require.NoError(t, err)
		require.NotNil(t, tree)
		require.Equal(t, 0, tree.Size())
	}

	_, err := NewTree("treap")
	require.Error(t, err)
}

// TestEnginesAgree replays one random operation stream against all
// three engines and a reference map; membership and size must match at
// every step.
func TestEnginesAgree(t *testing.T) {
	rapid.Check(t, testEnginesAgree)
}

func testEnginesAgree(t *rapid.T) {
	trees := map[string]core.Tree[int64]{}
	for _, kind := range TreeKinds {
		tree, err := NewTree(kind)
		require.NoError(t, err)
		trees[kind] = tree
	}
	ref := map[int64]struct{}{}
	key := rapid.Int64Range(0, 256)

	t.Repeat(map[string]func(*rapid.T){
		"insert": func(t *rapid.T) {
			k := key.Draw(t, "key")
			for _, tree := range trees {
				tree.Insert(k)
			}
			ref[k] = struct{}{}
		},
		"delete": func(t *rapid.T) {
			k := key.Draw(t, "key")
			for _, tree := range trees {
				tree.Delete(k)
			}
			delete(ref, k)
		},
		"search": func(t *rapid.T) {
			k := key.Draw(t, "key")
			_, want := ref[k]
			for kind, tree := range trees {
				require.Equal(t, want, tree.Search(k), "engine %s disagrees on key %d", kind, k)
			}
		},
		"": func(t *rapid.T) {
			for kind, tree := range trees {
				require.Equal(t, len(ref), tree.Size(), "engine %s size drifted", kind)
			}
		},
	})
}
