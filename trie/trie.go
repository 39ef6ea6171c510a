// Package trie implements a 26-slot prefix tree over a corpus of uppercase
// A-Z junction strings. Each node owns at most one child per letter; every
// corpus index lives at exactly the node reached by spelling its junction
// from the root. The trie is built once at load time and never mutated
// afterward, so it is safe for any number of concurrent readers.
package trie

import "github.com/tcrtrie/tcrtrie/corpus"

const alphabetSize = 26

// node is owned by exactly one parent's child slot (or by the Trie itself,
// for the root). A deep copy walks the whole subtree; there is no way to
// alias a child between two parents.
type node struct {
	children [alphabetSize]*node
	indices  []int
}

func slot(c byte) (int, bool) {
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return int(c - 'A'), true
}

// Trie is a prefix tree over a Corpus's junctions. Construct it with Build.
type Trie struct {
	root *node
}

// Build descends from the root for every record in the corpus, creating a
// new node for each missing letter slot, and appends the record's corpus
// index at the terminal node. Non-A-Z bytes cannot appear here because
// corpus.New already stripped them; Build still skips any it sees defensively
// rather than panicking.
func Build(c *corpus.Corpus) *Trie {
	t := &Trie{root: &node{}}
	for i := 0; i < c.Len(); i++ {
		t.insert(c.Junction(i), i)
	}
	return t
}

func (t *Trie) insert(junction string, idx int) {
	n := t.root
	for i := 0; i < len(junction); i++ {
		s, ok := slot(junction[i])
		if !ok {
			continue
		}
		if n.children[s] == nil {
			n.children[s] = &node{}
		}
		n = n.children[s]
	}
	n.indices = append(n.indices, idx)
}

// Root returns the trie's root as a Walker, the read-only traversal handle
// used by the search package. It is the only exported way to inspect trie
// structure; nothing outside this package can mutate a node.
func (t *Trie) Root() Walker {
	return Walker{n: t.root}
}

// Clone performs a deep structural copy: the returned Trie shares no node
// with t, and mutating one trie's ownership (there is none, post-Build, but
// Clone exists to satisfy the documented ownership contract) never affects
// the other.
func (t *Trie) Clone() *Trie {
	return &Trie{root: cloneNode(t.root)}
}

func cloneNode(n *node) *node {
	if n == nil {
		return nil
	}
	cp := &node{}
	if len(n.indices) > 0 {
		cp.indices = append([]int(nil), n.indices...)
	}
	for i, child := range n.children {
		cp.children[i] = cloneNode(child)
	}
	return cp
}

// Take transfers ownership of t's root to a new Trie and leaves t empty,
// modeling the source's move constructor: a Trie that has been Taken from
// behaves like a freshly built empty trie.
func (t *Trie) Take() *Trie {
	moved := &Trie{root: t.root}
	t.root = &node{}
	return moved
}

// Walker is a read-only handle to a single trie node, used by the search
// package to drive a DP-row traversal without exposing node internals.
type Walker struct {
	n *node
}

// Indices returns the corpus indices, if any, terminating at this node.
func (w Walker) Indices() []int {
	return w.n.indices
}

// Any reports whether any corpus index terminates at this node or any
// descendant, via a single boolean test rather than looping over indices
// whose presence alone already answers the question.
func (w Walker) Any() bool {
	if len(w.n.indices) > 0 {
		return true
	}
	for _, child := range w.n.children {
		if child != nil && (Walker{n: child}).Any() {
			return true
		}
	}
	return false
}

// Children calls fn for each populated child in letter order A-Z, passing
// the 0-indexed letter offset and the child Walker.
func (w Walker) Children(fn func(letter int, child Walker)) {
	for i, child := range w.n.children {
		if child != nil {
			fn(i, Walker{n: child})
		}
	}
}
