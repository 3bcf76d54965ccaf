package Trees

// CAVLTree is the version of AVLTree for user-defined key types satisfying
// a total order given by two functions. All methods are implemented exactly
// as AVLTree except for using lt and eq for comparisons. Arguments passed
// to lt and eq will always be type K so no type checks are needed.
type CAVLTree[K, V any] struct {
	root   *node[K, V]
	size   uint
	lt, eq func(K, K) bool
}

// New1 is the CAVLTree equivalence of New.
func New1[K, V any](lessThan, equals func(K, K) bool) *CAVLTree[K, V] {
	return &CAVLTree[K, V]{lt: lessThan, eq: equals}
}

func (u *CAVLTree[K, V]) insert(cur *node[K, V], k K, v V) (*node[K, V], bool) {
	if cur == nil {
		return &node[K, V]{k: k, v: v, h: 1}, true
	}
	inserted := false
	if u.lt(k, cur.k) {
		cur.l, inserted = u.insert(cur.l, k, v)
	} else if u.eq(k, cur.k) {
		return cur, false
	} else {
		cur.r, inserted = u.insert(cur.r, k, v)
	}
	if inserted {
		cur.update()
		cur = balance(cur)
	}
	return cur, inserted
}

// Insert [Map.Insert]. Recursive.
func (u *CAVLTree[K, V]) Insert(k K, v V) bool {
	var inserted bool
	u.root, inserted = u.insert(u.root, k, v)
	if inserted {
		u.size++
	}
	return inserted
}

func (u *CAVLTree[K, V]) remove(cur *node[K, V], k K) (*node[K, V], bool) {
	if cur == nil {
		return nil, false
	}
	removed := false
	if u.lt(k, cur.k) {
		cur.l, removed = u.remove(cur.l, k)
	} else if u.eq(k, cur.k) {
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
	} else {
		cur.r, removed = u.remove(cur.r, k)
	}
	if removed {
		cur.update()
		cur = balance(cur)
	}
	return cur, removed
}

// Remove [Map.Remove]. Recursive.
func (u *CAVLTree[K, V]) Remove(k K) bool {
	var removed bool
	u.root, removed = u.remove(u.root, k)
	if removed {
		u.size--
	}
	return removed
}

func (u *CAVLTree[K, V]) getNode(k K) *node[K, V] {
	for cur := u.root; cur != nil; {
		if u.lt(k, cur.k) {
			cur = cur.l
		} else if u.eq(k, cur.k) {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Has [Map.Has]
func (u *CAVLTree[K, V]) Has(k K) bool {
	return u.getNode(k) != nil
}

// Get [Map.Get]
func (u *CAVLTree[K, V]) Get(k K) (V, bool) {
	if n := u.getNode(k); n != nil {
		return n.v, true
	}
	return *new(V), false
}

// ValPtr [Map.ValPtr]
func (u *CAVLTree[K, V]) ValPtr(k K) *V {
	if n := u.getNode(k); n != nil {
		return &n.v
	}
	return nil
}

// GetOrInsert [Map.GetOrInsert]
func (u *CAVLTree[K, V]) GetOrInsert(k K) *V {
	if n := u.getNode(k); n != nil {
		return &n.v
	}
	u.Insert(k, *new(V))
	return &u.getNode(k).v
}

// Range [Map.Range]. Recursive.
func (u *CAVLTree[K, V]) Range(lo, hi K) []V {
	vs := []V{}
	var walk func(*node[K, V])
	walk = func(cur *node[K, V]) {
		if cur == nil {
			return
		}
		if u.lt(lo, cur.k) {
			walk(cur.l)
		}
		if !u.lt(cur.k, lo) && !u.lt(hi, cur.k) {
			vs = append(vs, cur.v)
		}
		if u.lt(cur.k, hi) {
			walk(cur.r)
		}
	}
	walk(u.root)
	return vs
}

// Keys [Map.Keys]. Recursive.
func (u *CAVLTree[K, V]) Keys() []K {
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
func (u *CAVLTree[K, V]) Size() uint {
	return u.size
}

// Height [Map.Height]
func (u *CAVLTree[K, V]) Height() int {
	return height(u.root)
}

// Clone returns a deep structural copy of u sharing the comparison
// functions but no nodes. Recursive.
func (u *CAVLTree[K, V]) Clone() *CAVLTree[K, V] {
	return &CAVLTree[K, V]{copyNodes(u.root), u.size, u.lt, u.eq}
}

// Clear drops every pair.
func (u *CAVLTree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

// InOrder [Map.InOrder]. Uses morris traversal like [AVLTree.InOrder] with
// the same caveat about mutating during iteration.
func (u *CAVLTree[K, V]) InOrder() func() (K, V, bool) {
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
