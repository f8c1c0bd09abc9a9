package tree

import "errors"

var (
	// ErrNilElement is returned when a nil element is given
	// where a node needs to wrap it.
	ErrNilElement = errors.New("tree: element must not be nil")
	// ErrNilNode is returned when a nil *Node is given as an argument.
	ErrNilNode = errors.New("tree: node must not be nil")
	// ErrNotChild is returned by the Replace methods when the node
	// to be replaced is not a child of the receiver.
	ErrNotChild = errors.New("tree: node is not a child")
	// ErrCycle is returned when a node would be attached under itself
	// or one of its own descendants.
	ErrCycle = errors.New("tree: node cannot be its own descendant")
)
