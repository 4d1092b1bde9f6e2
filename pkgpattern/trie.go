package pkgpattern

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// node is one namespace segment. A terminal node ends a namespace that was
// inserted as a whole; nodes that only lead to deeper namespaces are not
// terminal and never match on their own.
type node struct {
	name     string
	depth    int
	terminal bool
	children map[string]*node
}

func newNode(name string, depth int) *node {
	return &node{name: name, depth: depth, children: map[string]*node{}}
}

// insert adds the segments below n, marking the last one terminal.
func (n *node) insert(segments []string) {
	cur := n
	for _, seg := range segments {
		child, ok := cur.children[seg]
		if !ok {
			child = newNode(seg, cur.depth+1)
			cur.children[seg] = child
		}
		cur = child
	}
	cur.terminal = true
}

// write serializes the subtree rooted at n. Children are visited in
// lexicographic order and a terminal node with children gets an empty
// first alternative, which makes its group optional.
func (n *node) write(sb *strings.Builder) {
	if n.depth > 1 {
		sb.WriteString(`\.`)
	}
	sb.WriteString(regexp.QuoteMeta(n.name))
	if len(n.children) == 0 {
		return
	}
	sb.WriteString("(?:")
	if n.terminal {
		sb.WriteString("|")
	}
	n.writeChildren(sb)
	sb.WriteString(")")
}

func (n *node) writeChildren(sb *strings.Builder) {
	for i, name := range slices.Sorted(maps.Keys(n.children)) {
		if i > 0 {
			sb.WriteString("|")
		}
		n.children[name].write(sb)
	}
}
