package iterator

import (
	"go.lepak.sg/arbor/tree"
)

var _ Remover[int] = (*Postorder[int])(nil)

// Postorder is an iterator object over an n-ary tree that yields
// every node after all of its children, children left to right.
// If the root is a holder node, the holder itself is not yielded
// and its children are iterated as a forest.
type Postorder[E comparable] struct {
	root    *tree.Node[E]
	stack   []postorderFrame[E]
	at      *tree.Node[E]
	started bool
	removed bool
}

// Recursive post-order iteration looks like this:
//
//	func visit(n *Node, f func(*Node)) {
//		for _, c := range n.Children() {
//			visit(c, f)		--(1)
//		}
//		f(n)
//	}
//
// Each frame on the stack stands for one call of visit, and
// next is the index of the child that (1) will descend into
// when the frame is resumed. A frame is popped, and its node
// yielded, once next has run past the last child.
//
// When the yielded node is removed, it has already been popped.
// Its parent's frame is on top, and that frame's next points
// just past the removed node. Detaching shifts the later
// siblings left by one, so next has to follow them.
type postorderFrame[E comparable] struct {
	node *tree.Node[E]
	next int
}

// NewPostorder returns a new Postorder iterator over the tree rooted at root.
// root may be nil.
// Note: This is meant to be called by other tree implementations.
func NewPostorder[E comparable](root *tree.Node[E]) *Postorder[E] {
	return &Postorder[E]{
		root: root,
	}
}

// HasNext reports whether Next would return true, without advancing.
func (i *Postorder[E]) HasNext() bool {
	if !i.started {
		if i.root == nil {
			return false
		}
		return !i.root.IsHolder() || i.root.NumChildren() > 0
	}

	switch len(i.stack) {
	case 0:
		return false
	case 1:
		// only a holder frame can be left with nothing to yield
		f := i.stack[0]
		return !f.node.IsHolder() || f.next < f.node.NumChildren()
	default:
		return true
	}
}

// Next moves to the next node in post-order and returns true,
// or returns false if there are no more nodes.
func (i *Postorder[E]) Next() bool {
	if !i.started {
		i.started = true
		if i.root != nil {
			i.stack = append(i.stack, postorderFrame[E]{node: i.root})
		}
	}

	i.removed = false

	for len(i.stack) > 0 {
		top := &i.stack[len(i.stack)-1]

		if top.next < top.node.NumChildren() {
			child := top.node.Child(top.next)
			top.next++
			i.stack = append(i.stack, postorderFrame[E]{node: child})
			continue
		}

		n := top.node
		i.stack[len(i.stack)-1] = postorderFrame[E]{}
		i.stack = i.stack[:len(i.stack)-1]

		if n.IsHolder() {
			continue
		}

		i.at = n
		return true
	}

	i.at = nil
	return false
}

// Item returns the element of the current node.
// It panics with ErrExhausted if Next has not returned true.
// After Remove, Item still returns the removed element.
func (i *Postorder[E]) Item() E {
	if i.at == nil {
		panic(ErrExhausted)
	}
	return i.at.Element()
}

// Node returns the current node, or nil before the first call to Next,
// after Next returned false, or after Remove.
func (i *Postorder[E]) Node() *tree.Node[E] {
	if i.removed {
		return nil
	}
	return i.at
}

// Remove detaches the current node from its parent. Its descendants
// have all been yielded already, and they leave the tree with it.
// It fails with ErrNoCurrent unless the last call to Next returned
// true and Remove has not been called since.
func (i *Postorder[E]) Remove() error {
	if i.at == nil || i.removed {
		return ErrNoCurrent
	}

	var parent *postorderFrame[E]
	if len(i.stack) > 0 {
		top := &i.stack[len(i.stack)-1]
		if top.next > 0 && top.node.Child(top.next-1) == i.at {
			parent = top
		}
	}

	i.at.Detach()
	if parent != nil {
		parent.next--
	}
	i.removed = true

	return nil
}
