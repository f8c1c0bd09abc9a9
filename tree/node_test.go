package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elements[E comparable](nodes []*Node[E]) []E {
	out := make([]E, len(nodes))
	for i, n := range nodes {
		out[i] = n.Element()
	}
	return out
}

func TestNewNode(t *testing.T) {
	n, err := NewNode("a")
	require.NoError(t, err)
	assert.Equal(t, "a", n.Element())
	assert.Nil(t, n.Parent())
	assert.Empty(t, n.Children())

	// zero values are fine, they are not nil
	_, err = NewNode(0)
	assert.NoError(t, err)
	_, err = NewNode("")
	assert.NoError(t, err)

	_, err = NewNode[*int](nil)
	assert.ErrorIs(t, err, ErrNilElement)

	_, err = NewNode[any](nil)
	assert.ErrorIs(t, err, ErrNilElement)

	_, err = NewNode[error](nil)
	assert.ErrorIs(t, err, ErrNilElement)

	var ch chan int
	_, err = NewNode(ch)
	assert.ErrorIs(t, err, ErrNilElement)

	assert.Panics(t, func() { NodeOf[*int](nil) })
}

func TestNewChild(t *testing.T) {
	p := NodeOf("p")

	c, err := NewChild("c", p)
	require.NoError(t, err)
	assert.Same(t, p, c.Parent())
	assert.Equal(t, []string{"c"}, elements(p.Children()))

	_, err = NewChild("c", (*Node[string])(nil))
	assert.ErrorIs(t, err, ErrNilNode)

	_, err = NewChild[*int](nil, NodeOf(new(int)))
	assert.ErrorIs(t, err, ErrNilElement)
}

func TestNode_Children_Copy(t *testing.T) {
	p := NodeOf(1)
	_, _ = p.AddElement(2)
	_, _ = p.AddElement(3)

	cs := p.Children()
	cs[0] = NodeOf(100)
	_ = append(cs[:1], NodeOf(200))

	assert.Equal(t, []int{2, 3}, elements(p.Children()))
	assert.Equal(t, 2, p.NumChildren())
	assert.Equal(t, 3, p.Child(1).Element())
}

func TestNode_AddChild(t *testing.T) {
	p := NodeOf("p")
	a, b := NodeOf("a"), NodeOf("b")

	require.NoError(t, p.AddChild(a))
	require.NoError(t, p.AddChild(b))
	assert.Equal(t, []string{"a", "b"}, elements(p.Children()))
	assert.Same(t, p, a.Parent())
	assert.Same(t, p, b.Parent())

	assert.ErrorIs(t, p.AddChild(nil), ErrNilNode)

	_, err := p.AddElement("")
	assert.NoError(t, err)

	_, err = NodeOf(new(int)).AddElement(nil)
	assert.ErrorIs(t, err, ErrNilElement)
}

func TestNode_AddChild_Reparent(t *testing.T) {
	p, q := NodeOf("p"), NodeOf("q")
	c, err := p.AddElement("c")
	require.NoError(t, err)

	require.NoError(t, q.AddChild(c))

	// c must only be listed under one parent
	assert.Empty(t, p.Children())
	assert.Equal(t, []string{"c"}, elements(q.Children()))
	assert.Same(t, q, c.Parent())
}

func TestNode_AddChild_Cycle(t *testing.T) {
	p := NodeOf("p")
	c, _ := p.AddElement("c")
	gc, _ := c.AddElement("gc")

	assert.ErrorIs(t, p.AddChild(p), ErrCycle)
	assert.ErrorIs(t, gc.AddChild(p), ErrCycle)
	assert.Equal(t, 3, p.Len())
	assert.Nil(t, p.Parent())

	assert.Panics(t, func() { _ = p.AddChild(NewHolder[string]()) })
}

func TestNode_RemoveChild(t *testing.T) {
	tests := []struct {
		name   string
		remove func(p *Node[string]) error
		want   []string
	}{
		{
			name: "by node",
			remove: func(p *Node[string]) error {
				return p.RemoveChild(p.Child(1))
			},
			want: []string{"a", "c"},
		},
		{
			name: "by equal node",
			remove: func(p *Node[string]) error {
				return p.RemoveChild(NodeOf("b"))
			},
			want: []string{"a", "c"},
		},
		{
			name: "by element",
			remove: func(p *Node[string]) error {
				return p.RemoveElement("b")
			},
			want: []string{"a", "c"},
		},
		{
			name: "absent node",
			remove: func(p *Node[string]) error {
				return p.RemoveChild(NodeOf("z"))
			},
			want: []string{"a", "b", "c"},
		},
		{
			name: "absent element",
			remove: func(p *Node[string]) error {
				return p.RemoveElement("z")
			},
			want: []string{"a", "b", "c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NodeOf("p")
			_, _ = p.AddElement("a")
			b, _ := p.AddElement("b")
			_, _ = p.AddElement("c")

			require.NoError(t, tt.remove(p))
			assert.Equal(t, tt.want, elements(p.Children()))

			if len(tt.want) == 2 {
				assert.Nil(t, b.Parent(), "removed child keeps its parent")
			} else {
				assert.Same(t, p, b.Parent())
			}
		})
	}

	p := NodeOf(new(int))
	assert.ErrorIs(t, p.RemoveChild(nil), ErrNilNode)
	assert.ErrorIs(t, p.RemoveElement(nil), ErrNilElement)
}

func TestNode_ReplaceChild(t *testing.T) {
	p := NodeOf("p")
	a, _ := p.AddElement("a")
	b, _ := p.AddElement("b")
	_, _ = b.AddElement("b1")
	c, _ := p.AddElement("c")

	x := NodeOf("x")
	require.NoError(t, p.ReplaceChild(NodeOf("b"), x))
	assert.Equal(t, []string{"a", "x", "c"}, elements(p.Children()))
	assert.Same(t, p, x.Parent())
	assert.Nil(t, b.Parent())
	// the old subtree went with it
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 4, p.Len())

	// a sibling can be moved into the slot
	require.NoError(t, p.ReplaceChild(a, c))
	assert.Equal(t, []string{"c", "x"}, elements(p.Children()))
	assert.Nil(t, a.Parent())
	assert.Same(t, p, c.Parent())

	assert.ErrorIs(t, p.ReplaceChild(NodeOf("zz"), NodeOf("y")), ErrNotChild)
	assert.ErrorIs(t, p.ReplaceChild(nil, x), ErrNilNode)
	assert.ErrorIs(t, p.ReplaceChild(x, nil), ErrNilNode)
	assert.ErrorIs(t, x.ReplaceChild(x, p), ErrNotChild)

	gc, _ := x.AddElement("gc")
	assert.ErrorIs(t, gc.ReplaceChild(gc, x), ErrNotChild)
	y, _ := gc.AddElement("y")
	assert.ErrorIs(t, gc.ReplaceChild(y, p), ErrCycle)
}

func TestNode_ReplaceChild_Equal(t *testing.T) {
	p := NodeOf("p")
	a, _ := p.AddElement("a")
	_, _ = a.AddElement("a1")

	other := NodeOf("a")
	require.NoError(t, p.ReplaceChild(a, other))

	// the existing child is kept, with its subtree
	assert.Same(t, a, p.Child(0))
	assert.Same(t, p, a.Parent())
	assert.Nil(t, other.Parent())
	assert.Equal(t, 3, p.Len())

	require.NoError(t, p.ReplaceChild(a, a))
	assert.Same(t, a, p.Child(0))
	assert.Equal(t, 3, p.Len())
}

func TestNode_ReplaceElement(t *testing.T) {
	p := NodeOf("p")
	a, _ := p.AddElement("a")
	_, _ = a.AddElement("a1")
	_, _ = p.AddElement("b")

	same, err := p.ReplaceElement("a", "a")
	require.NoError(t, err)
	assert.Same(t, a, same)
	assert.Equal(t, 4, p.Len())

	x, err := p.ReplaceElement("a", "x")
	require.NoError(t, err)
	assert.Equal(t, "x", x.Element())
	assert.Same(t, p, x.Parent())
	assert.Nil(t, a.Parent())
	assert.Equal(t, []string{"x", "b"}, elements(p.Children()))
	assert.Equal(t, 3, p.Len())

	_, err = p.ReplaceElement("zz", "y")
	assert.ErrorIs(t, err, ErrNotChild)

	ptr := NodeOf(new(int))
	_, err = ptr.ReplaceElement(nil, new(int))
	assert.ErrorIs(t, err, ErrNilElement)
	_, err = ptr.ReplaceElement(new(int), nil)
	assert.ErrorIs(t, err, ErrNilElement)
}

func TestNode_ClearChildren(t *testing.T) {
	p := NodeOf(0)
	var cs []*Node[int]
	for i := 1; i <= 3; i++ {
		c, err := p.AddElement(i)
		require.NoError(t, err)
		cs = append(cs, c)
	}

	p.ClearChildren()

	assert.Empty(t, p.Children())
	assert.Equal(t, 1, p.Len())
	for _, c := range cs {
		assert.Nil(t, c.Parent())
	}

	// still usable afterwards
	_, err := p.AddElement(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, elements(p.Children()))
}

func TestNode_Detach(t *testing.T) {
	p := NodeOf("p")
	_, _ = p.AddElement("a")
	dup1, _ := p.AddElement("dup")
	dup2, _ := p.AddElement("dup")

	// Node does not stop equal siblings, and Detach takes out
	// the node itself, not the first one Equal to it.
	assert.True(t, dup2.Detach())
	assert.Same(t, dup1, p.Child(1))
	assert.Nil(t, dup2.Parent())
	assert.False(t, dup2.Detach())
	assert.Equal(t, 2, p.NumChildren())
}

func TestNode_Holder(t *testing.T) {
	h := NewHolder[int]()
	assert.True(t, h.IsHolder())
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, "", h.String())

	top, err := h.AddElement(0)
	require.NoError(t, err)
	assert.Nil(t, top.Parent(), "holder is not reported as a parent")
	assert.Equal(t, 1, h.Len())

	// the holder has the zero element but does not wrap it
	assert.False(t, h.Equal(top))
	assert.Same(t, top, h.Find(0))

	assert.True(t, top.Detach())
	assert.Equal(t, 0, h.NumChildren())
}

func TestNode_Find(t *testing.T) {
	root := NodeOf("F")
	b, _ := root.AddElement("B")
	d, _ := b.AddElement("D")
	_, _ = root.AddElement("O")

	assert.Same(t, root, root.Find("F"))
	assert.Same(t, d, root.Find("D"))
	assert.Same(t, d, b.Find("D"))
	assert.Nil(t, b.Find("O"))
	assert.Nil(t, root.Find("Z"))
	assert.Equal(t, 4, root.Len())
	assert.Equal(t, 2, b.Len())
}

func TestNode_EqualString(t *testing.T) {
	a1, a2, b := NodeOf("a"), NodeOf("a"), NodeOf("b")
	_, _ = a1.AddElement("child")

	assert.True(t, a1.Equal(a2), "structure does not matter")
	assert.False(t, a1.Equal(b))
	assert.False(t, a1.Equal(nil))
	assert.True(t, (*Node[string])(nil).Equal(nil))
	assert.Equal(t, "a", a1.String())

	type point struct{ X, Y int }
	assert.Equal(t, "{1 2}", NodeOf(point{1, 2}).String())
}
