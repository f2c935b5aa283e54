package bench

import (
	"fmt"

	"github.com/dina-adel/Advanced-Data-Structures-Analysis/avl"
	"github.com/dina-adel/Advanced-Data-Structures-Analysis/core"
	"github.com/dina-adel/Advanced-Data-Structures-Analysis/rbtree"
	"github.com/dina-adel/Advanced-Data-Structures-Analysis/splay"
)

const (
	TreeAVL      = "avl"
	TreeRedBlack = "rbtree"
	TreeSplay    = "splay"
)

// TreeKinds lists the engines in report order.
var TreeKinds = []string{TreeAVL, TreeRedBlack, TreeSplay}

// NewTree returns a fresh engine of the given kind so the runner never
// branches on concrete tree types.
func NewTree(kind string) (core.Tree[int64], error) {
	switch kind {
	case TreeAVL:
		return avl.New[int64](), nil
	case TreeRedBlack:
		return rbtree.New[int64](), nil
	case TreeSplay:
		return splay.New[int64](), nil
	default:
		return nil, fmt.Errorf("unknown tree kind %q", kind)
	}
}
