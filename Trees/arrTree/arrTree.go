package Trees

import (
	"cmp"
	"fmt"
	"golang.org/x/exp/constraints"
	"io"
	"strings"
)

// Tree is the index arena variant of the AVL ordered map: nodes live in a
// growable table and children are referenced by index instead of pointer,
// so rotations are plain index reassignment and removal never frees
// individual allocations. Index 0 is the shared nil; entry i of ks/vs
// corresponds to ifs[i+1]. Removed slots are threaded onto a free list and
// reused by later insertions, so ks/vs may hold stale pairs in holes;
// traversals follow the tree structure and never see them.
// K is the type of keys, V the type of values, and S the unsigned type
// used for indexes; S must be wide enough for the maximum number of pairs
// plus one. The observable behavior is identical to AVLTree; the mutation
// paths are iterative with an explicit ancestor stack instead of recursive.
// Not safe for concurrent mutation.
type Tree[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	base[S]
	ks   []K //ks[i] corresponds to ifs[i+1]
	vs   []V
	size S
}

// New returns an empty Tree with capacity hint.
func New[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *Tree[K, V, S] {
	return &Tree[K, V, S]{base[S]{ifs: make([]info[S], 1, hint+1)}, make([]K, 0, hint), make([]V, 0, hint), 0}
}

// Add the pair (k,v) to the tree, rejecting duplicate keys without
// overwriting. st is a reusable stack buffer for the ancestor path; pass
// the returned slice back in to avoid reallocating it. Add guarantees that
// holes are filled first before appending to the underlying arrays.
// Time: O(log n)
func (u *Tree[K, V, S]) Add(k K, v V, st []S) (bool, []S) {
	st = st[:0]
	for curI := u.root; curI != 0; {
		st = append(st, curI)
		if k < u.ks[curI-1] {
			curI = u.ifs[curI].l
		} else if k > u.ks[curI-1] {
			curI = u.ifs[curI].r
		} else {
			return false, st
		}
	}
	ni := u.popFree()
	if ni == 0 {
		u.ifs = append(u.ifs, info[S]{0, 0, 1})
		u.ks = append(u.ks, k)
		u.vs = append(u.vs, v)
		ni = S(len(u.ifs) - 1)
	} else {
		u.ifs[ni] = info[S]{0, 0, 1}
		u.ks[ni-1], u.vs[ni-1] = k, v
	}
	prev := ni
	for i := len(st) - 1; i > -1; i-- {
		index := st[i]
		if k < u.ks[index-1] {
			u.ifs[index].l = prev
		} else {
			u.ifs[index].r = prev
		}
		u.update(index)
		u.balance(&index) //index now holds the subtree root after any rotation
		prev = index
	}
	u.root = prev
	u.size++
	return true, st
}

// Insert [Add] without a reusable stack buffer.
func (u *Tree[K, V, S]) Insert(k K, v V) bool {
	a, _ := u.Add(k, v, nil)
	return a
}

// Del removes the pair keyed by k. A matched index with two children takes
// over the key and value of its in-order successor and the successor's
// index is the one physically recycled, which always sits in the leaf or
// one-child case. Every ancestor is then re-heighted and rebalanced bottom
// up. st is a reusable stack buffer as in Add.
// Time: O(log n)
func (u *Tree[K, V, S]) Del(k K, st []S) (bool, []S) {
	st = st[:0]
	curI := u.root
	for curI != 0 {
		if k < u.ks[curI-1] {
			st = append(st, curI)
			curI = u.ifs[curI].l
		} else if k > u.ks[curI-1] {
			st = append(st, curI)
			curI = u.ifs[curI].r
		} else {
			break
		}
	}
	if curI == 0 {
		return false, st
	}
	if u.ifs[curI].l != 0 && u.ifs[curI].r != 0 {
		st = append(st, curI)
		s := u.ifs[curI].r
		for u.ifs[s].l != 0 {
			st = append(st, s)
			s = u.ifs[s].l
		}
		u.ks[curI-1], u.vs[curI-1] = u.ks[s-1], u.vs[s-1]
		curI = s
	}
	child := u.ifs[curI].l
	if child == 0 {
		child = u.ifs[curI].r
	}
	u.addFree(curI)
	prev, oldI := child, curI
	for i := len(st) - 1; i > -1; i-- {
		index := st[i]
		if u.ifs[index].l == oldI {
			u.ifs[index].l = prev
		} else {
			u.ifs[index].r = prev
		}
		u.update(index)
		oldI = index
		u.balance(&index)
		prev = index
	}
	u.root = prev
	u.size--
	return true, st
}

// Remove [Del] without a reusable stack buffer.
func (u *Tree[K, V, S]) Remove(k K) bool {
	a, _ := u.Del(k, nil)
	return a
}

func (u *Tree[K, V, S]) getI(k K) S {
	for curI := u.root; curI != 0; {
		if k < u.ks[curI-1] {
			curI = u.ifs[curI].l
		} else if k > u.ks[curI-1] {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Has key k.
// Time: O(log n); Space: O(1)
func (u *Tree[K, V, S]) Has(k K) bool {
	return u.getI(k) != 0
}

// Get the value keyed by k.
// Time: O(log n); Space: O(1)
func (u *Tree[K, V, S]) Get(k K) (V, bool) {
	if i := u.getI(k); i != 0 {
		return u.vs[i-1], true
	}
	return *new(V), false
}

// ValPtr returns a pointer to the value keyed by k, nil if k isn't
// present. The pointer points into the value array, so it is invalidated
// by any Add that grows the arrays; don't keep it across mutations.
// Time: O(log n); Space: O(1)
func (u *Tree[K, V, S]) ValPtr(k K) *V {
	if i := u.getI(k); i != 0 {
		return &u.vs[i-1]
	}
	return nil
}

// GetOrInsert returns a pointer to the value keyed by k, first inserting
// the zero value of V if k isn't present. Same aliasing caveat as ValPtr.
// Time: O(log n)
func (u *Tree[K, V, S]) GetOrInsert(k K) *V {
	if i := u.getI(k); i != 0 {
		return &u.vs[i-1]
	}
	u.Insert(k, *new(V))
	return &u.vs[u.getI(k)-1]
}

// Range gives the values of all pairs whose keys lie in [lo,hi], ascending
// by key. Recursive; only descends into subtrees that can still hold
// qualifying keys.
// Time: O(log n + m) where m is the number of qualifying pairs.
func (u *Tree[K, V, S]) Range(lo, hi K) []V {
	vs := []V{}
	var walk func(S)
	walk = func(curI S) {
		if curI == 0 {
			return
		}
		if u.ks[curI-1] > lo {
			walk(u.ifs[curI].l)
		}
		if lo <= u.ks[curI-1] && u.ks[curI-1] <= hi {
			vs = append(vs, u.vs[curI-1])
		}
		if u.ks[curI-1] < hi {
			walk(u.ifs[curI].r)
		}
	}
	walk(u.root)
	return vs
}

// Keys currently stored, in ascending order.
// Time: O(n)
func (u *Tree[K, V, S]) Keys() []K {
	ks := make([]K, 0, u.size)
	u.InOrder(func(k K, _ *V) bool {
		ks = append(ks, k)
		return true
	}, nil)
	return ks
}

// InOrder traversal of the tree using an explicit stack; st is a reusable
// stack buffer returned for the next call. f is called with each key and a
// pointer to its value until it returns false. The tree must not be
// mutated during the traversal.
// Time: O(n)
func (u *Tree[K, V, S]) InOrder(f func(K, *V) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(u.ks[curI-1], &u.vs[curI-1]) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *Tree[K, V, S]) Size() uint {
	return uint(u.size)
}

// Min returns the smallest key in the tree.
// Time: O(log n); Space: O(1)
func (u *Tree[K, V, S]) Min() (K, bool) {
	if curI := u.root; curI != 0 {
		for u.ifs[curI].l != 0 {
			curI = u.ifs[curI].l
		}
		return u.ks[curI-1], true
	}
	return *new(K), false
}

// Max returns the greatest key in the tree.
// Time: O(log n); Space: O(1)
func (u *Tree[K, V, S]) Max() (K, bool) {
	if curI := u.root; curI != 0 {
		for u.ifs[curI].r != 0 {
			curI = u.ifs[curI].r
		}
		return u.ks[curI-1], true
	}
	return *new(K), false
}

// Clone returns a deep copy of u; the arena representation makes this a
// plain copy of the three arrays.
// Time: O(n)
func (u *Tree[K, V, S]) Clone() *Tree[K, V, S] {
	c := &Tree[K, V, S]{base[S]{u.root, u.free, make([]info[S], len(u.ifs))}, make([]K, len(u.ks)), make([]V, len(u.vs)), u.size}
	copy(c.ifs, u.ifs)
	copy(c.ks, u.ks)
	copy(c.vs, u.vs)
	return c
}

// Clear the tree. O(1); doesn't release the underlying arrays, truncates
// them for reuse.
func (u *Tree[K, V, S]) Clear() {
	u.root, u.free, u.size = 0, 0, 0
	u.ifs = u.ifs[:1]
	u.ks, u.vs = u.ks[:0], u.vs[:0]
}

// Fprint writes a sideways rendering of the tree to w: right subtree, the
// node as key:value (h:height b:balance), left subtree, four spaces of
// indent per level. Diagnostic only.
func (u *Tree[K, V, S]) Fprint(w io.Writer) {
	var walk func(S, int)
	walk = func(curI S, depth int) {
		if curI == 0 {
			return
		}
		walk(u.ifs[curI].r, depth+1)
		fmt.Fprintf(w, "%s%v:%v (h:%d b:%+d)\n", strings.Repeat("    ", depth), u.ks[curI-1], u.vs[curI-1], u.ifs[curI].h, u.bf(curI))
		walk(u.ifs[curI].l, depth+1)
	}
	walk(u.root, 0)
}
