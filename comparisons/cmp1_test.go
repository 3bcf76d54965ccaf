package comparisons

import (
	"math/rand"
	"testing"

	"github.com/WSU-janderson/project5-avltree-Nikhitha158/Trees"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with the other ordered containers of the module's dependency
// set: https://github.com/emirpasic/gods (red-black tree),
// https://github.com/google/btree, and https://github.com/petar/GoLLRB.
// All of them keep keys sorted; none of them has the AVL height guarantee.
const benchmarkItemCount = 1 << 14

var perm = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

func setupAVL(b *testing.B) *Trees.AVLTree[int, int] {
	b.Helper()
	m := Trees.New[int, int]()
	for _, i := range perm {
		m.Insert(i, i)
	}
	return m
}

func setupRBT(b *testing.B) *redblacktree.Tree {
	b.Helper()
	m := redblacktree.NewWithIntComparator()
	for _, i := range perm {
		m.Put(i, i)
	}
	return m
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	m := btree.NewOrderedG[int](32)
	for _, i := range perm {
		m.ReplaceOrInsert(i)
	}
	return m
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	m := llrb.New()
	for _, i := range perm {
		m.ReplaceOrInsert(llrb.Int(i))
	}
	return m
}

func Benchmark1ReadAVL(b *testing.B) {
	m := setupAVL(b)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := 0; i < benchmarkItemCount; i++ {
				if j, _ := m.Get(i); j != i {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark1ReadRBT(b *testing.B) {
	m := setupRBT(b)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := 0; i < benchmarkItemCount; i++ {
				if j, _ := m.Get(i); j != i {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark1ReadBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := 0; i < benchmarkItemCount; i++ {
				if j, _ := m.Get(i); j != i {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark1ReadLLRB(b *testing.B) {
	m := setupLLRB(b)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := 0; i < benchmarkItemCount; i++ {
				if !m.Has(llrb.Int(i)) {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark2WriteAVL(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := Trees.New[int, int]()
		for _, j := range perm {
			m.Insert(j, j)
		}
	}
}

func Benchmark2WriteRBT(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := redblacktree.NewWithIntComparator()
		for _, j := range perm {
			m.Put(j, j)
		}
	}
}

func Benchmark2WriteBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := btree.NewOrderedG[int](32)
		for _, j := range perm {
			m.ReplaceOrInsert(j)
		}
	}
}

func Benchmark2WriteLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := llrb.New()
		for _, j := range perm {
			m.ReplaceOrInsert(llrb.Int(j))
		}
	}
}

func Benchmark3DeleteAVL(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := setupAVL(b)
		b.StartTimer()
		for j := 0; j < benchmarkItemCount; j++ {
			m.Remove(j)
		}
	}
}

func Benchmark3DeleteRBT(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := setupRBT(b)
		b.StartTimer()
		for j := 0; j < benchmarkItemCount; j++ {
			m.Remove(j)
		}
	}
}

func Benchmark3DeleteBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := setupBTree(b)
		b.StartTimer()
		for j := 0; j < benchmarkItemCount; j++ {
			m.Delete(j)
		}
	}
}

func Benchmark3DeleteLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := setupLLRB(b)
		b.StartTimer()
		for j := 0; j < benchmarkItemCount; j++ {
			m.Delete(llrb.Int(j))
		}
	}
}

var rangeLen int

func Benchmark4RangeAVL(b *testing.B) {
	m := setupAVL(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := i % (benchmarkItemCount / 2)
		rangeLen = len(m.Range(lo, lo+benchmarkItemCount/8))
	}
}

func Benchmark4RangeBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo, n := i%(benchmarkItemCount/2), 0
		m.AscendRange(lo, lo+benchmarkItemCount/8+1, func(int) bool {
			n++
			return true
		})
		rangeLen = n
	}
}

func Benchmark4RangeLLRB(b *testing.B) {
	m := setupLLRB(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo, n := i%(benchmarkItemCount/2), 0
		m.AscendRange(llrb.Int(lo), llrb.Int(lo+benchmarkItemCount/8+1), func(llrb.Item) bool {
			n++
			return true
		})
		rangeLen = n
	}
}

func Benchmark5IterateAVL(b *testing.B) {
	m := setupAVL(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		next := m.InOrder()
		for _, _, ok := next(); ok; _, _, ok = next() {
			n++
		}
		rangeLen = n
	}
}

func Benchmark5IterateRBT(b *testing.B) {
	m := setupRBT(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for it := m.Iterator(); it.Next(); {
			n++
		}
		rangeLen = n
	}
}

func Benchmark5IterateBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		m.Ascend(func(int) bool {
			n++
			return true
		})
		rangeLen = n
	}
}
