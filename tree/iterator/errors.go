package iterator

import "errors"

var (
	// ErrNoCurrent is returned by Remove when the iterator is not
	// positioned at a node: Next was never called, returned false,
	// or Remove was already called since.
	ErrNoCurrent = errors.New("iterator: cannot remove without calling Next immediately before")
	// ErrExhausted is the panic value of Item when the iterator
	// is not positioned at a node.
	ErrExhausted = errors.New("iterator: no current element")
)
