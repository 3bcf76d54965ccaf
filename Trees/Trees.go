package Trees

// Map represents an ordered key-value mapping implemented using a tree
// like structure. Keys are unique; the mapping keeps them in ascending
// order. Receivers that have A bool as A second return value indicates
// whether the first return value is defined. For example, calling Get
// with a key not in the Map returns (x V, false bool); in this case the
// value of x should be undefined. However, depending on specific
// implementations, the value of x might have A meaning, but it's advised
// that x not to be used.
// If an implementation didn't specify anything special, then the
// implemented receivers follows the behaviors defined here. Methods
// implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Map[K, V any] interface {
	//Insert the pair (k,v) to the Map. Returning true if k wasn't present,
	//false otherwise. A rejected Insert never overwrites the stored value.
	Insert(k K, v V) bool
	//Remove the pair keyed by k from the Map. Returning true if successful,
	//false if k wasn't present.
	Remove(k K) bool
	//Has key k. Note that even though by utilizing the second return value
	//of other methods achieves the same functionality as Has, it is
	//encouraged to use Has for the purposes of checking if some key exists,
	//as Has should be optimized for this purpose in implementations.
	Has(k K) bool
	//Get the value keyed by k.
	Get(k K) (V, bool)
	//ValPtr returns a pointer to the value keyed by k, nil if k isn't
	//present. The pointer is valid until the next structural change to the
	//Map; callers wanting the unchecked access semantic dereference it
	//without testing for nil.
	ValPtr(k K) *V
	//GetOrInsert returns a pointer to the value keyed by k, first inserting
	//the zero value of V if k isn't present.
	GetOrInsert(k K) *V
	//Range gives the values of all pairs whose keys lie in [lo,hi], in
	//ascending key order. Empty when no keys qualify.
	Range(lo, hi K) []V
	//Keys currently stored, in ascending order.
	Keys() []K
	//Size of the Map.
	Size() uint
	//Height of the tree backing the Map; 0 when empty, 1 for a single pair.
	Height() int
	//InOrder returns A closure function f acting like an iterator. f
	//gives pairs in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: k, v, valid=f()
	//k and v are meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f, otherwise
	//it could corrupt the tree. There will be no panic if such cases
	//happens so design the algorithm with this in mind.
	InOrder() func() (K, V, bool)
}
