package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.lepak.sg/arbor/tree/iterator"
	"go.lepak.sg/arbor/tree/nary"
	"golang.org/x/exp/slices"
)

// parseOutline reads one element per line. Each level of nesting is
// either indent spaces or one tab. A line that repeats an element
// already in the tree is skipped, and so is everything nested under it.
func parseOutline(r io.Reader, indent int, log logrus.FieldLogger) (*nary.Tree[string], error) {
	if indent <= 0 {
		return nil, errors.Errorf("indent must be positive, got %d", indent)
	}

	tr := &nary.Tree[string]{}
	// path[d] is the element at depth d above the current line
	var path []string
	skipBelow := -1

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}

		depth, err := depthOf(line, indent)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		element := strings.TrimSpace(line)

		if skipBelow >= 0 {
			if depth > skipBelow {
				log.WithFields(logrus.Fields{
					"line":    lineNo,
					"element": element,
				}).Debug("skipped under duplicate")
				continue
			}
			skipBelow = -1
		}

		if depth > len(path) {
			return nil, errors.Errorf("line %d: %q is nested %d levels under %d",
				lineNo, element, depth, len(path))
		}
		path = path[:depth]

		var added bool
		if depth == 0 {
			added = tr.Add(element)
		} else {
			added = tr.AddChild(path[depth-1], element)
		}

		if !added {
			log.WithFields(logrus.Fields{
				"line":    lineNo,
				"element": element,
			}).Warn("duplicate element skipped")
			skipBelow = depth
			continue
		}

		path = append(path, element)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading outline")
	}

	return tr, nil
}

func depthOf(line string, indent int) (int, error) {
	depth, spaces := 0, 0
	for _, r := range line {
		switch r {
		case '\t':
			depth++
		case ' ':
			spaces++
		default:
			if spaces%indent != 0 {
				return 0, errors.Errorf("%d spaces is not a multiple of %d", spaces, indent)
			}
			return depth + spaces/indent, nil
		}
	}
	return depth + spaces/indent, nil
}

// prune walks the tree in the given order and removes every element
// in remove as it is reached. It returns the number of elements that
// left the tree, including those under removed ones.
func prune(tr *nary.Tree[string], order string, remove []string, log logrus.FieldLogger) int {
	if len(remove) == 0 {
		return 0
	}

	var it iterator.Remover[string]
	if order == orderPost {
		it = tr.PostorderIterator()
	} else {
		it = tr.PreorderIterator()
	}

	before := tr.Len()
	for it.Next() {
		if !slices.Contains(remove, it.Item()) {
			continue
		}

		if err := it.Remove(); err != nil {
			// Next just returned true, so this cannot happen
			panic(err)
		}
		log.WithField("element", it.Item()).Debug("removed")
	}

	return before - tr.Len()
}
