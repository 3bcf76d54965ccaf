package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree mapping unique keys to values. It
// maintains balance through rotations by checking the cached heights of
// subtrees, keeping the height difference of any two sibling subtrees
// within 1. Each node stores its own height (1 for a leaf; an absent
// subtree counts as 0), so the additional memory cost is one int per pair.
// The worst case height of the tree is less than 1.44*log2(n+2), so every
// point operation is O(log n) even for adversarial insertion orders.
// Insert and Remove are implemented recursively; the recursion depth is
// bounded by the tree height.
// An AVLTree is not safe for concurrent mutation; wrap it with a lock if
// multiple goroutines mutate it.
type AVLTree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size uint
}

// New returns an empty AVLTree. AVLTree shouldn't be created directly
// using struct literal.
func New[K constraints.Ordered, V any]() *AVLTree[K, V] {
	return &AVLTree[K, V]{}
}

// insert the pair (k,v) to the subtree rooting at cur recursively,
// returning the new root of that subtree and whether a node was created.
// Callers replace their child slot with the returned root. A failed
// insertion happens when k is already in u, in which case nothing on the
// path is modified. On every successful unwind the current node's height
// is recomputed and the node rebalanced before returning.
func (u *AVLTree[K, V]) insert(cur *node[K, V], k K, v V) (*node[K, V], bool) {
	if cur == nil {
		return &node[K, V]{k: k, v: v, h: 1}, true
	}
	inserted := false
	if k < cur.k {
		cur.l, inserted = u.insert(cur.l, k, v)
	} else if k > cur.k {
		cur.r, inserted = u.insert(cur.r, k, v)
	} else {
		return cur, false
	}
	if inserted {
		cur.update()
		cur = balance(cur)
	}
	return cur, inserted
}

// Insert [Map.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(log n)
func (u *AVLTree[K, V]) Insert(k K, v V) bool {
	var inserted bool
	u.root, inserted = u.insert(u.root, k, v)
	if inserted {
		u.size++
	}
	return inserted
}

// remove the pair keyed by k from the subtree rooting at cur recursively,
// returning the new root of that subtree and whether a node was removed.
// A leaf is dropped; a node with one child is replaced by that child; a
// node with two children takes over the key and value of its in-order
// successor (the minimum of the right subtree), and the successor is then
// removed from the right subtree, which is guaranteed to hit the leaf or
// one-child case. Every node on a successful unwind has its height
// recomputed and is rebalanced.
func (u *AVLTree[K, V]) remove(cur *node[K, V], k K) (*node[K, V], bool) {
	if cur == nil {
		return nil, false
	}
	removed := false
	if k < cur.k {
		cur.l, removed = u.remove(cur.l, k)
	} else if k > cur.k {
		cur.r, removed = u.remove(cur.r, k)
	} else {
		if cur.l == nil {
			return cur.r, true
		} else if cur.r == nil {
			return cur.l, true
		}
		s := cur.r
		for s.l != nil {
			s = s.l
		}
		cur.k, cur.v = s.k, s.v
		cur.r, removed = u.remove(cur.r, s.k)
	}
	if removed {
		cur.update()
		cur = balance(cur)
	}
	return cur, removed
}

// Remove [Map.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(log n)
func (u *AVLTree[K, V]) Remove(k K) bool {
	var removed bool
	u.root, removed = u.remove(u.root, k)
	if removed {
		u.size--
	}
	return removed
}

func (u *AVLTree[K, V]) getNode(k K) *node[K, V] {
	for cur := u.root; cur != nil; {
		if k < cur.k {
			cur = cur.l
		} else if k > cur.k {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has [Map.Has]
// Time: O(log n); Space: O(1)
func (u *AVLTree[K, V]) Has(k K) bool {
	return u.getNode(k) != nil
}

// Get [Map.Get]
// Time: O(log n); Space: O(1)
func (u *AVLTree[K, V]) Get(k K) (V, bool) {
	if n := u.getNode(k); n != nil {
		return n.v, true
	}
	return *new(V), false
}

// ValPtr [Map.ValPtr]. The returned pointer aliases the node holding k, so
// writes through it update the stored value in place; it must not be kept
// across Insert/Remove calls.
// Time: O(log n); Space: O(1)
func (u *AVLTree[K, V]) ValPtr(k K) *V {
	if n := u.getNode(k); n != nil {
		return &n.v
	}
	return nil
}

// GetOrInsert [Map.GetOrInsert]
// Time: O(log n)
func (u *AVLTree[K, V]) GetOrInsert(k K) *V {
	if n := u.getNode(k); n != nil {
		return &n.v
	}
	u.Insert(k, *new(V))
	return &u.getNode(k).v
}

// Range [Map.Range]. Recursive. Only descends into a subtree when it can
// still contain qualifying keys: left if the node's key exceeds lo, right
// if the node's key is below hi.
// Time: O(log n + m) where m is the number of qualifying pairs.
func (u *AVLTree[K, V]) Range(lo, hi K) []V {
	vs := []V{}
	var walk func(*node[K, V])
	walk = func(cur *node[K, V]) {
		if cur == nil {
			return
		}
		if cur.k > lo {
			walk(cur.l)
		}
		if lo <= cur.k && cur.k <= hi {
			vs = append(vs, cur.v)
		}
		if cur.k < hi {
			walk(cur.r)
		}
	}
	walk(u.root)
	return vs
}

// Keys [Map.Keys]. Recursive.
// Time: O(n)
func (u *AVLTree[K, V]) Keys() []K {
	ks := make([]K, 0, u.size)
	var walk func(*node[K, V])
	walk = func(cur *node[K, V]) {
		if cur == nil {
			return
		}
		walk(cur.l)
		ks = append(ks, cur.k)
		walk(cur.r)
	}
	walk(u.root)
	return ks
}

// Size [Map.Size]
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V]) Size() uint {
	return u.size
}

// Height [Map.Height]
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V]) Height() int {
	return height(u.root)
}

// Min returns the smallest key in the tree.
// Time: O(log n); Space: O(1)
func (u *AVLTree[K, V]) Min() (K, bool) {
	if cur := u.root; cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.k, true
	}
	return *new(K), false
}

// Max returns the greatest key in the tree.
// Time: O(log n); Space: O(1)
func (u *AVLTree[K, V]) Max() (K, bool) {
	if cur := u.root; cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.k, true
	}
	return *new(K), false
}

// Clone returns a deep structural copy of u: new nodes with the same keys,
// values, and heights. The clone and u share nothing, so mutating one
// never affects the other. Recursive.
// Time: O(n)
func (u *AVLTree[K, V]) Clone() *AVLTree[K, V] {
	return &AVLTree[K, V]{copyNodes(u.root), u.size}
}

// Clear drops every pair. The nodes are released to the garbage collector.
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

// InOrder [Map.InOrder]. Uses morris traversal, so iterating f temporarily
// threads right pointers through the tree; exhaust f (or stop reading it
// before any mutation) to leave the tree untouched.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *AVLTree[K, V]) InOrder() func() (K, V, bool) {
	cur := u.root
	return func() (k K, v V, has bool) {
		for cur != nil {
			if cur.l == nil {
				k, v, has = cur.k, cur.v, true
				cur = cur.r
				break
			} else {
				p := cur.l
				for p.r != nil && p.r != cur {
					p = p.r
				}
				if p.r != cur {
					p.r = cur
					cur = cur.l
				} else {
					p.r = nil
					k, v, has = cur.k, cur.v, true
					cur = cur.r
					break
				}
			}
		}
		return
	}
}
