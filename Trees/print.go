package Trees

import (
	"fmt"
	"io"
	"strings"
)

// fprint renders the subtree at cur sideways: right subtree first, then the
// node itself as key:value (h:height b:balance), then the left subtree,
// indented four spaces per depth level. Rotate the output 90 degrees
// clockwise in your head to see the usual tree picture.
func fprint[K, V any](w io.Writer, cur *node[K, V], depth int) {
	if cur == nil {
		return
	}
	fprint(w, cur.r, depth+1)
	fmt.Fprintf(w, "%s%v:%v (h:%d b:%+d)\n", strings.Repeat("    ", depth), cur.k, cur.v, cur.h, cur.bf())
	fprint(w, cur.l, depth+1)
}

// Fprint writes a sideways rendering of the tree to w. The output is for
// diagnostics only; its exact spacing is not a stable format.
func (u *AVLTree[K, V]) Fprint(w io.Writer) {
	fprint(w, u.root, 0)
}

// Fprint writes a sideways rendering of the tree to w, see [AVLTree.Fprint].
func (u *CAVLTree[K, V]) Fprint(w io.Writer) {
	fprint(w, u.root, 0)
}
