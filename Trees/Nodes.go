package Trees

// A node in the AVLTree.
// The zero value is meaningless; nodes are only created by insertion with
// h=1. A nil *node is the empty subtree and has height 0 by convention.
type node[K, V any] struct {
	k    K
	v    V
	h    int
	l, r *node[K, V]
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.h
}

// update recomputes the cached height of n from its children:
// 1+max(height(l), height(r)).
func (n *node[K, V]) update() {
	if lh, rh := height(n.l), height(n.r); lh > rh {
		n.h = lh + 1
	} else {
		n.h = rh + 1
	}
}

// bf is the balance factor height(l)-height(r). The AVL property requires
// it to be in {-1,0,1} on every node after a mutation completes.
func (n *node[K, V]) bf() int {
	return height(n.l) - height(n.r)
}

// rotateLeft performs a left rotation around n and returns the new root of
// the subtree. n's right child is promoted; its former left subtree becomes
// n's right subtree. Heights are recomputed child first, new root second.
// Time: O(1); Space: O(1)
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	r := n.r
	n.r = r.l
	r.l = n
	n.update()
	r.update()
	return r
}

// rotateRight is the mirror image of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	l := n.l
	n.l = l.r
	l.r = n
	n.update()
	l.update()
	return l
}

// balance restores the AVL property at n, assuming both subtrees already
// satisfy it and n.update() has run. A left-heavy n with a non right-heavy
// left child takes a single right rotation, otherwise a left-right double
// rotation; right-heavy is the mirror. The >=0/<=0 comparisons decide
// single vs double rotation when the child is exactly balanced and must not
// be tightened to strict inequalities.
// Time: O(1); Space: O(1)
func balance[K, V any](n *node[K, V]) *node[K, V] {
	if b := n.bf(); b > 1 {
		if n.l.bf() >= 0 {
			return rotateRight(n)
		}
		n.l = rotateLeft(n.l)
		return rotateRight(n)
	} else if b < -1 {
		if n.r.bf() <= 0 {
			return rotateLeft(n)
		}
		n.r = rotateRight(n.r)
		return rotateLeft(n)
	}
	return n
}

// copyNodes deep copies the subtree rooted at n: new nodes, same keys,
// values, and heights, fully independent ownership. Recursive.
func copyNodes[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	return &node[K, V]{n.k, n.v, n.h, copyNodes(n.l), copyNodes(n.r)}
}
