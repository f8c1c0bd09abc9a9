// Package iterator provides pre-order and post-order iterators
// over trees of tree.Node, for use by tree implementations.
package iterator

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.PreorderIterator()
//	for i.Next() {
//		e := i.Item()
//		... do stuff with e, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Remover is an Iterator that can detach the node it is
// positioned at. Remove may be called at most once after
// each successful Next, and the iteration then carries on
// over the tree without the removed subtree.
//
// Mutating the tree other than through Remove while
// iterating over it gives undefined results.
type Remover[T any] interface {
	Iterator[T]
	HasNext() bool
	Remove() error
}
