// Package nary provides Tree, a collection of unique elements
// arranged as an ordered n-ary forest.
package nary

import (
	"fmt"
	"strings"

	"go.lepak.sg/arbor/must"
	"go.lepak.sg/arbor/tree"
	"go.lepak.sg/arbor/tree/iterator"
	"golang.org/x/exp/slices"
)

// Tree is a collection of unique elements arranged as a forest of
// ordered n-ary trees. It is not safe for concurrent use.
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// Add puts an element at the top level, after the ones already there.
// AddChild puts an element under another one. Removing an element
// removes the whole subtree under it.
//
// Invariants:
//
//   - No two nodes in the tree wrap equal elements
//   - Len is the number of nodes reachable from the top level
//
// Looking up an element is a linear scan of the whole tree.
type Tree[E comparable] struct {
	// top-level nodes are children of this holder.
	// don't hand out the holder - client could attach anything to it!
	root *tree.Node[E]
}

// New returns a Tree with elements added to it in order.
// Duplicates after the first occurrence are dropped.
func New[E comparable](elements ...E) *Tree[E] {
	t := &Tree[E]{}
	t.AddAll(elements...)
	return t
}

func (t *Tree[E]) holder() *tree.Node[E] {
	if t.root == nil {
		t.root = tree.NewHolder[E]()
	}
	return t.root
}

// Len returns the number of elements in the tree.
func (t *Tree[E]) Len() int {
	if t.root == nil {
		return 0
	}
	return t.root.Len()
}

// IsEmpty returns true if the tree has no elements.
func (t *Tree[E]) IsEmpty() bool {
	return t.root == nil || t.root.NumChildren() == 0
}

// Clear removes every element from the tree.
func (t *Tree[E]) Clear() {
	if t.root != nil {
		t.root.ClearChildren()
	}
}

// Contains returns true if some node in the tree wraps e.
func (t *Tree[E]) Contains(e E) bool {
	return t.find(e) != nil
}

// Add puts e at the top level of the tree, after the existing
// top-level elements. If e is already in the tree, Add returns false.
// Add panics if e is a nil pointer or interface.
func (t *Tree[E]) Add(e E) bool {
	if t.Contains(e) {
		return false
	}

	must.Value(t.holder().AddElement(e))
	return true
}

// AddChild puts child under parent, after the existing children of
// parent. It returns false if parent is not in the tree, or if child
// is already in the tree anywhere.
// AddChild panics if child is a nil pointer or interface.
func (t *Tree[E]) AddChild(parent, child E) bool {
	p := t.find(parent)
	if p == nil || t.Contains(child) {
		return false
	}

	must.Value(p.AddElement(child))
	return true
}

// Remove removes e, and everything under it, from the tree.
// If e is not in the tree, Remove returns false.
func (t *Tree[E]) Remove(e E) bool {
	n := t.find(e)
	if n == nil {
		return false
	}

	n.Detach()
	return true
}

// AddAll calls Add for each element in order, and returns true
// if any of them was added.
func (t *Tree[E]) AddAll(elements ...E) bool {
	changed := false
	for _, e := range elements {
		if t.Add(e) {
			changed = true
		}
	}
	return changed
}

// RemoveAll calls Remove for each element in order, and returns true
// if any of them was removed.
func (t *Tree[E]) RemoveAll(elements ...E) bool {
	changed := false
	for _, e := range elements {
		if t.Remove(e) {
			changed = true
		}
	}
	return changed
}

// RetainAll removes every element of the tree that is not in elements,
// and returns true if the tree changed. Because removing an element
// removes its subtree, a retained element goes too if it sits under
// one that is not retained.
func (t *Tree[E]) RetainAll(elements ...E) bool {
	changed := false
	i := t.PreorderIterator()
	for i.Next() {
		if !slices.Contains(elements, i.Item()) {
			must.OK(i.Remove())
			changed = true
		}
	}
	return changed
}

// ContainsAll returns true if the tree contains every one of elements.
func (t *Tree[E]) ContainsAll(elements ...E) bool {
	for _, e := range elements {
		if !t.Contains(e) {
			return false
		}
	}
	return true
}

// Elements returns the elements of the tree in pre-order.
func (t *Tree[E]) Elements() []E {
	out := make([]E, 0, t.Len())
	t.PreOrder(func(e E) bool {
		out = append(out, e)
		return true
	})
	return out
}

// PreOrder applies f to each element in the tree in pre-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[E]) PreOrder(f func(e E) bool) {
	if t.root == nil {
		return
	}

	for _, c := range t.root.Children() {
		if !visitPreOrder(c, f) {
			return
		}
	}
}

func visitPreOrder[E comparable](n *tree.Node[E], f func(e E) bool) bool {
	// Classic recursive pre-order iteration.
	// Compare this to iterator.Preorder which is not recursive
	if !f(n.Element()) {
		return false
	}

	for i := 0; i < n.NumChildren(); i++ {
		if !visitPreOrder(n.Child(i), f) {
			return false
		}
	}

	return true
}

// PostOrder applies f to each element in the tree in post-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[E]) PostOrder(f func(e E) bool) {
	i := t.PostorderIterator()
	for i.Next() {
		if !f(i.Item()) {
			return
		}
	}
}

// PreorderIterator returns an iterator object that yields
// elements from the tree in pre-order.
func (t *Tree[E]) PreorderIterator() *iterator.Preorder[E] {
	return iterator.NewPreorder(t.root)
}

// PostorderIterator returns an iterator object that yields
// elements from the tree in post-order.
func (t *Tree[E]) PostorderIterator() *iterator.Postorder[E] {
	return iterator.NewPostorder(t.root)
}

// PreorderCoroutine starts coroutine-style pre-order iteration.
// The usage is as follows:
//
//	co := t.PreorderCoroutine()
//	for e := range co.Items() {
//		... do stuff with e ...
//		if e meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: PreorderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
func (t *Tree[E]) PreorderCoroutine() iterator.Coroutine[E] {
	return iterator.Co[E](t.PreorderIterator())
}

// String returns the elements in pre-order, like [F, B, A].
func (t *Tree[E]) String() string {
	var sb strings.Builder

	sb.WriteRune('[')
	first := true
	t.PreOrder(func(e E) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(fmt.Sprint(e))
		return true
	})
	sb.WriteRune(']')

	return sb.String()
}

// Outline returns a drawing of the tree, one element per line.
// A tree with two top-level elements would look like this:
//
//	F
//	├─B
//	│ ├─A
//	│ └─D
//	└─O
//	X
//	└─Y
func (t *Tree[E]) Outline() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	for i := 0; i < t.root.NumChildren(); i++ {
		printvisit(&sb, t.root.Child(i), "", true, false)
	}

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeMidContinue  = "│ "
	treeLastContinue = "  "
)

func printvisit[E comparable](
	sb *strings.Builder, n *tree.Node[E], prefix string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
	}
	sb.WriteString(n.String())
	sb.WriteRune('\n')

	last := n.NumChildren() - 1
	for i := 0; i <= last; i++ {
		printvisit(sb, n.Child(i), prefix, false, i < last)
	}
}

func (t *Tree[E]) find(e E) *tree.Node[E] {
	if t.root == nil {
		return nil
	}
	return t.root.Find(e)
}
