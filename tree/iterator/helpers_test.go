package iterator

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.lepak.sg/arbor/tree"
)

// newLetterTree builds this tree:
//
//	F
//	├─B
//	│ ├─A
//	│ └─D
//	│   ├─C
//	│   └─E
//	├─O
//	└─G
//	  └─I
//	    └─H
func newLetterTree(t *testing.T) *tree.Node[string] {
	t.Helper()

	f := tree.NodeOf("F")
	add := func(parent *tree.Node[string], e string) *tree.Node[string] {
		n, err := parent.AddElement(e)
		require.NoError(t, err)
		return n
	}

	b := add(f, "B")
	add(f, "O")
	g := add(f, "G")
	add(b, "A")
	d := add(b, "D")
	add(d, "C")
	add(d, "E")
	i := add(g, "I")
	add(i, "H")

	return f
}

// newLetterForest holds the letter tree under a holder node,
// with a second top-level tree X(Y) after it.
func newLetterForest(t *testing.T) *tree.Node[string] {
	t.Helper()

	h := tree.NewHolder[string]()
	require.NoError(t, h.AddChild(newLetterTree(t)))
	x, err := h.AddElement("X")
	require.NoError(t, err)
	_, err = x.AddElement("Y")
	require.NoError(t, err)

	return h
}

func collect[E any](it Iterator[E]) []E {
	var out []E
	for it.Next() {
		out = append(out, it.Item())
	}
	return out
}
