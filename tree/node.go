// Package tree provides the multi-child Node that the traversal
// iterators and the nary.Tree collection are built on.
package tree

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/slices"
)

// Node is a node of an n-ary tree. It wraps an element and keeps an
// ordered list of children plus a back-reference to its parent.
//
// Two nodes are Equal when their elements are equal, wherever they sit
// in the tree. Lookups by element (RemoveElement, ReplaceElement, Find)
// rely on this and are linear scans.
//
// Node does not enforce element uniqueness; nary.Tree does that.
// Node is not safe for concurrent use.
type Node[E comparable] struct {
	element E

	// parent is only used to navigate upwards and to detach.
	// The children slice of the parent owns the node.
	parent   *Node[E]
	children []*Node[E]

	// holder nodes carry no element. They sit above the top-level
	// nodes of a forest.
	holder bool
}

// NewNode returns a node wrapping element with no parent.
// It fails with ErrNilElement if element is a nil pointer,
// channel or interface.
func NewNode[E comparable](element E) (*Node[E], error) {
	if isNil(element) {
		return nil, ErrNilElement
	}

	return &Node[E]{
		element: element,
	}, nil
}

// NewChild is like NewNode, but the new node is also appended
// to the children of parent.
func NewChild[E comparable](element E, parent *Node[E]) (*Node[E], error) {
	if parent == nil {
		return nil, ErrNilNode
	}

	return parent.AddElement(element)
}

// NodeOf is NewNode for elements known to be non-nil.
// It panics otherwise.
func NodeOf[E comparable](element E) *Node[E] {
	n, err := NewNode(element)
	if err != nil {
		panic(err)
	}
	return n
}

// NewHolder returns an elementless node whose children are the
// top-level nodes of a forest. Children of a holder report a nil
// Parent, and iterators skip the holder itself.
func NewHolder[E comparable]() *Node[E] {
	return &Node[E]{
		holder: true,
	}
}

// Element returns the wrapped element.
// For a holder node this is the zero E.
func (n *Node[E]) Element() E {
	return n.element
}

// Parent returns the node that n is a child of, or nil if n is
// detached or at the top level of a forest.
func (n *Node[E]) Parent() *Node[E] {
	if n.parent == nil || n.parent.holder {
		return nil
	}
	return n.parent
}

// IsHolder reports whether n was created by NewHolder.
func (n *Node[E]) IsHolder() bool {
	return n.holder
}

// Children returns a copy of the children of n, in insertion order.
// Changing the returned slice does not change n.
func (n *Node[E]) Children() []*Node[E] {
	return slices.Clone(n.children)
}

// NumChildren returns the number of direct children of n.
func (n *Node[E]) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th child of n. It panics if i is out of range.
func (n *Node[E]) Child(i int) *Node[E] {
	return n.children[i]
}

// AddChild appends child to the children of n.
// If child is attached somewhere else, it is detached from there first.
// Attaching n under itself or one of its descendants fails with ErrCycle.
func (n *Node[E]) AddChild(child *Node[E]) error {
	if child == nil {
		return ErrNilNode
	}

	if child.holder {
		panic("cannot attach a holder node")
	}

	if child.isAncestorOf(n) {
		return ErrCycle
	}

	child.Detach()
	child.parent = n
	n.children = append(n.children, child)

	return nil
}

// AddElement wraps element in a new node and appends it to the
// children of n. The new node is returned.
func (n *Node[E]) AddElement(element E) (*Node[E], error) {
	if isNil(element) {
		return nil, ErrNilElement
	}

	child := &Node[E]{
		element: element,
		parent:  n,
	}
	n.children = append(n.children, child)

	return child, nil
}

// RemoveChild removes the first child of n that is Equal to child
// and clears its parent. Nothing happens if there is no such child.
func (n *Node[E]) RemoveChild(child *Node[E]) error {
	if child == nil {
		return ErrNilNode
	}

	n.removeAt(n.indexOf(child))
	return nil
}

// RemoveElement removes the first child of n wrapping element.
// Nothing happens if there is no such child.
func (n *Node[E]) RemoveElement(element E) error {
	if isNil(element) {
		return ErrNilElement
	}

	n.removeAt(n.indexOfElement(element))
	return nil
}

// ReplaceChild puts replacement where the child Equal to old is.
// The old child is detached along with its subtree.
// If old is not a child of n, ErrNotChild is returned.
//
// If replacement is Equal to the existing child, nothing changes:
// the existing child node stays where it is.
func (n *Node[E]) ReplaceChild(old, replacement *Node[E]) error {
	if old == nil || replacement == nil {
		return ErrNilNode
	}

	i := n.indexOf(old)
	if i < 0 {
		return ErrNotChild
	}

	if n.children[i].Equal(replacement) {
		return nil
	}

	if replacement.holder {
		panic("cannot attach a holder node")
	}

	if replacement.isAncestorOf(n) {
		return ErrCycle
	}

	if replacement.parent != nil {
		replacement.Detach()
		// replacement may have been a sibling before old
		i = n.indexOf(old)
	}

	n.children[i].parent = nil
	n.children[i] = replacement
	replacement.parent = n

	return nil
}

// ReplaceElement replaces the child wrapping old with a new leaf
// wrapping replacement, and returns the node now in that position.
// The child wrapping old is detached along with its subtree.
// If old == replacement, the existing child is kept and returned.
func (n *Node[E]) ReplaceElement(old, replacement E) (*Node[E], error) {
	if isNil(old) || isNil(replacement) {
		return nil, ErrNilElement
	}

	i := n.indexOfElement(old)
	if i < 0 {
		return nil, ErrNotChild
	}

	if old == replacement {
		return n.children[i], nil
	}

	n.children[i].parent = nil
	n.children[i] = &Node[E]{
		element: replacement,
		parent:  n,
	}

	return n.children[i], nil
}

// ClearChildren detaches every child of n.
func (n *Node[E]) ClearChildren() {
	for i, c := range n.children {
		c.parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
}

// Detach removes n from the children of its parent, if it has one.
// The subtree rooted at n stays attached to n.
// Detach returns true if n had a parent.
func (n *Node[E]) Detach() bool {
	p := n.parent
	if p == nil {
		return false
	}

	// look for n itself, not something Equal to it
	i := slices.Index(p.children, n)
	if i < 0 {
		panic("node is not among the children of its parent")
	}
	p.removeAt(i)

	return true
}

// Find searches the subtree rooted at n in pre-order and returns the
// first node wrapping element, or nil. This is a linear scan.
func (n *Node[E]) Find(element E) *Node[E] {
	if !n.holder && n.element == element {
		return n
	}

	for _, c := range n.children {
		if found := c.Find(element); found != nil {
			return found
		}
	}

	return nil
}

// Len returns the number of nodes in the subtree rooted at n,
// including n unless it is a holder.
func (n *Node[E]) Len() int {
	count := 1
	if n.holder {
		count = 0
	}

	for _, c := range n.children {
		count += c.Len()
	}

	return count
}

// Equal reports whether n and o wrap equal elements.
// A holder is only Equal to itself.
func (n *Node[E]) Equal(o *Node[E]) bool {
	if n == nil || o == nil {
		return n == o
	}

	if n.holder || o.holder {
		return n == o
	}

	return n.element == o.element
}

// String returns the string form of the element.
func (n *Node[E]) String() string {
	if n.holder {
		return ""
	}
	return fmt.Sprint(n.element)
}

func (n *Node[E]) indexOf(child *Node[E]) int {
	return slices.IndexFunc(n.children, child.Equal)
}

func (n *Node[E]) indexOfElement(element E) int {
	return slices.IndexFunc(n.children, func(c *Node[E]) bool {
		return c.element == element
	})
}

func (n *Node[E]) removeAt(i int) {
	if i < 0 {
		return
	}

	n.children[i].parent = nil

	// order matters, so shift instead of swapping with the last child.
	// clearing the last slot keeps the backing array from holding
	// on to the removed child
	last := len(n.children) - 1
	copy(n.children[i:], n.children[i+1:])
	n.children[last] = nil
	n.children = n.children[:last]
}

func (n *Node[E]) isAncestorOf(o *Node[E]) bool {
	for ; o != nil; o = o.parent {
		if o == n {
			return true
		}
	}
	return false
}

// isNil reports whether e is a nil pointer, channel or interface.
// Value types are never nil.
func isNil[E any](e E) bool {
	rv := reflect.ValueOf(any(e))
	if !rv.IsValid() {
		// untyped nil through an interface-typed E
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
