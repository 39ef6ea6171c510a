// Package search implements the trie-walking half of the engine: the
// unit-cost Levenshtein walker, the per-operation decomposer, and the
// weighted-cost walker. The two walkers share the same traversal shape — a
// stack of (trie node, DP row) frames, descended in letter order, pruned the
// moment no extension of the current path can satisfy the budget. The
// decomposer does not walk the trie; it fills one DP table per candidate.
package search

import (
	"sync"

	"github.com/tcrtrie/tcrtrie/errs"
	"github.com/tcrtrie/tcrtrie/trie"
)

// DefaultMaxQueryLength is used when an Engine is not configured with an
// explicit limit.
const DefaultMaxQueryLength = 32

// Match is one (corpus index, distance) pair returned by a Levenshtein
// search.
type Match struct {
	Index    int
	Distance int
}

// rowPool hands out scratch []int rows sized for queries up to a generous
// default, growing on demand, and reused across queries to avoid
// reallocating a fresh DP row on every trie node visited.
var rowPool = sync.Pool{
	New: func() interface{} {
		r := make([]int, DefaultMaxQueryLength+1)
		return &r
	},
}

func getRow(n int) []int {
	p := rowPool.Get().(*[]int)
	row := *p
	if cap(row) < n {
		row = make([]int, n)
	} else {
		row = row[:n]
	}
	return row
}

func putRow(row []int) {
	if cap(row) <= 4*DefaultMaxQueryLength {
		rowPool.Put(&row)
	}
}

// ValidateQuery checks the length bound and rejects non-A-Z characters
// rather than silently treating them as a guaranteed mismatch.
func ValidateQuery(query string, maxQueryLength int) error {
	if len(query) > maxQueryLength {
		return errs.New(errs.InputSize, "query length exceeds maxQueryLength")
	}
	for i := 0; i < len(query); i++ {
		if query[i] < 'A' || query[i] > 'Z' {
			return errs.New(errs.InputFormat, "query contains a non-A-Z character")
		}
	}
	return nil
}

// Levenshtein runs the unit-cost DP-row walk over the given trie root,
// returning every candidate corpus index whose distance from query is at
// most maxEdits and whose V/J tags pass filter. tags(i) must return the
// (vTag, jTag) pair for corpus index i.
func Levenshtein(root trie.Walker, query string, maxEdits int, filter Filter, tags func(i int) (string, string)) []Match {
	L := len(query)
	row := getRow(L + 1)
	defer putRow(row)
	for j := 0; j <= L; j++ {
		row[j] = j
	}

	var results []Match
	var walk func(w trie.Walker, row []int)
	walk = func(w trie.Walker, row []int) {
		if minInt(row) > maxEdits {
			return
		}
		if row[L] <= maxEdits {
			for _, idx := range w.Indices() {
				v, j := tags(idx)
				if filter.Allows(v, j) {
					results = append(results, Match{Index: idx, Distance: row[L]})
				}
			}
		}
		w.Children(func(letter int, child trie.Walker) {
			next := getRow(L + 1)
			ch := byte('A' + letter)
			next[0] = row[0] + 1
			for j := 1; j <= L; j++ {
				sub := row[j-1]
				if query[j-1] != ch {
					sub++
				}
				del := row[j] + 1
				ins := next[j-1] + 1
				next[j] = minOf3(del, ins, sub)
			}
			walk(child, next)
			putRow(next)
		})
	}
	walk(root, row)
	return results
}

// SearchAny reports whether any corpus record is within maxEdits of query,
// short-circuiting as soon as one is found. It does not build a result
// slice.
func SearchAny(root trie.Walker, query string, maxEdits int, filter Filter, tags func(i int) (string, string)) bool {
	L := len(query)
	row := getRow(L + 1)
	defer putRow(row)
	for j := 0; j <= L; j++ {
		row[j] = j
	}

	var walk func(w trie.Walker, row []int) bool
	walk = func(w trie.Walker, row []int) bool {
		if minInt(row) > maxEdits {
			return false
		}
		if row[L] <= maxEdits {
			for _, idx := range w.Indices() {
				v, j := tags(idx)
				if filter.Allows(v, j) {
					return true
				}
			}
		}
		found := false
		w.Children(func(letter int, child trie.Walker) {
			if found {
				return
			}
			next := getRow(L + 1)
			ch := byte('A' + letter)
			next[0] = row[0] + 1
			for j := 1; j <= L; j++ {
				sub := row[j-1]
				if query[j-1] != ch {
					sub++
				}
				del := row[j] + 1
				ins := next[j-1] + 1
				next[j] = minOf3(del, ins, sub)
			}
			if walk(child, next) {
				found = true
			}
			putRow(next)
		})
		return found
	}
	return walk(root, row)
}

func minInt(row []int) int {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func minOf3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
