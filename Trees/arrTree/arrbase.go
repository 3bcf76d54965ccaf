package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the Tree.
// The zero value is meaningful: ifs[0] is the shared loopback nil whose
// height stays 0, so height reads never branch on absent children.
type info[S constraints.Unsigned] struct {
	l, r, h S
}

type base[S constraints.Unsigned] struct {
	root, free S         //free is the beginning of the linked list that contains all the free indexes, in which case we use l as next.
	ifs        []info[S] //0 is loopback nil. all index are based on ifs.
}

// update recomputes the cached height of ifs[i] from its children:
// 1+max(height(l), height(r)).
func (u *base[S]) update(i S) {
	if lh, rh := u.ifs[u.ifs[i].l].h, u.ifs[u.ifs[i].r].h; lh > rh {
		u.ifs[i].h = lh + 1
	} else {
		u.ifs[i].h = rh + 1
	}
}

// bf is the balance factor height(l)-height(r) of ifs[i].
func (u *base[S]) bf(i S) int {
	return int(u.ifs[u.ifs[i].l].h) - int(u.ifs[u.ifs[i].r].h)
}

// rotateLeft performs a left rotation on index ni. ni is passed by
// reference in order to modify its content; heights are recomputed for the
// demoted index first, the promoted one second.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateLeft(ni *S) {
	n := &u.ifs[*ni]
	rci := n.r

	n.r = u.ifs[rci].l
	u.ifs[rci].l = *ni
	u.update(*ni)
	u.update(rci)
	*ni = rci
}

// rotateRight performs a right rotation on index ni, mirror of rotateLeft.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateRight(ni *S) {
	n := &u.ifs[*ni]
	lci := n.l

	n.l = u.ifs[lci].r
	u.ifs[lci].r = *ni
	u.update(*ni)
	u.update(lci)
	*ni = lci
}

// balance restores the AVL property at index ni after update, rewriting
// *ni to the new subtree root. Left-heavy with a non right-heavy left
// child takes a single right rotation, otherwise a double rotation;
// right-heavy is the mirror. The >=0/<=0 tie-breaks on the child pick
// single over double when the child is exactly balanced.
// Time: O(1); Space: O(1)
func (u *base[S]) balance(ni *S) {
	if b := u.bf(*ni); b > 1 {
		if u.bf(u.ifs[*ni].l) >= 0 {
			u.rotateRight(ni)
		} else {
			u.rotateLeft(&u.ifs[*ni].l)
			u.rotateRight(ni)
		}
	} else if b < -1 {
		if u.bf(u.ifs[*ni].r) <= 0 {
			u.rotateLeft(ni)
		} else {
			u.rotateRight(&u.ifs[*ni].r)
			u.rotateLeft(ni)
		}
	}
}

// addFree index once.
func (u *base[S]) addFree(a S) {
	u.ifs[a].l = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[b].l
	return b
}

// Height of the tree; 0 when empty.
// Time: O(1); Space: O(1)
func (u *base[S]) Height() int {
	return int(u.ifs[u.root].h)
}
