package iterator

import (
	"go.lepak.sg/arbor/tree"
)

var _ Remover[int] = (*Preorder[int])(nil)

// Preorder is an iterator object over an n-ary tree that yields
// every node before its children, children left to right.
// If the root is a holder node, the holder itself is not yielded
// and its children are iterated as a forest.
type Preorder[E comparable] struct {
	// pending siblings, the next node to yield on top
	stack []*tree.Node[E]
	at    *tree.Node[E]

	// removed is set by Remove and cleared by Next
	removed bool
}

// Recursive pre-order iteration looks like this:
//
//	func visit(n *Node, f func(*Node)) {
//		f(n)
//		for _, c := range n.Children() {
//			visit(c, f)
//		}
//	}
//
// The children of a node are only pushed onto the stack when
// Next moves past that node, not when it is yielded. So if the
// node is removed in between, none of its descendants were ever
// queued, and there is nothing to take back off the stack.

// NewPreorder returns a new Preorder iterator over the tree rooted at root.
// root may be nil.
// Note: This is meant to be called by other tree implementations.
func NewPreorder[E comparable](root *tree.Node[E]) *Preorder[E] {
	i := &Preorder[E]{}

	if root == nil {
		return i
	}

	if root.IsHolder() {
		i.pushChildren(root)
	} else {
		i.stack = append(i.stack, root)
	}

	return i
}

// HasNext reports whether Next would return true, without advancing.
func (i *Preorder[E]) HasNext() bool {
	if len(i.stack) > 0 {
		return true
	}

	return i.at != nil && !i.removed && i.at.NumChildren() > 0
}

// Next moves to the next node in pre-order and returns true,
// or returns false if there are no more nodes.
func (i *Preorder[E]) Next() bool {
	if i.at != nil && !i.removed {
		i.pushChildren(i.at)
	}

	i.removed = false

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	top := len(i.stack) - 1
	i.at = i.stack[top]
	i.stack[top] = nil
	i.stack = i.stack[:top]

	return true
}

// Item returns the element of the current node.
// It panics with ErrExhausted if Next has not returned true.
// After Remove, Item still returns the removed element.
func (i *Preorder[E]) Item() E {
	if i.at == nil {
		panic(ErrExhausted)
	}
	return i.at.Element()
}

// Node returns the current node, or nil before the first call to Next,
// after Next returned false, or after Remove.
func (i *Preorder[E]) Node() *tree.Node[E] {
	if i.removed {
		return nil
	}
	return i.at
}

// Remove detaches the current node, together with its subtree,
// from its parent. None of the detached descendants are yielded.
// It fails with ErrNoCurrent unless the last call to Next returned
// true and Remove has not been called since.
func (i *Preorder[E]) Remove() error {
	if i.at == nil || i.removed {
		return ErrNoCurrent
	}

	i.at.Detach()
	i.removed = true

	return nil
}

func (i *Preorder[E]) pushChildren(n *tree.Node[E]) {
	// reverse order, so the leftmost child is popped first
	for c := n.NumChildren() - 1; c >= 0; c-- {
		i.stack = append(i.stack, n.Child(c))
	}
}
