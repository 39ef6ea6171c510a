package search

import (
	"sync"

	"github.com/tcrtrie/tcrtrie/matrix"
	"github.com/tcrtrie/tcrtrie/trie"
)

// WeightedMatch is one (corpus index, cost) pair returned by a matrix-driven
// search.
type WeightedMatch struct {
	Index int
	Cost  float64
}

var weightedRowPool = sync.Pool{
	New: func() interface{} {
		r := make([]float64, DefaultMaxQueryLength+1)
		return &r
	},
}

func getWeightedRow(n int) []float64 {
	p := weightedRowPool.Get().(*[]float64)
	row := *p
	if cap(row) < n {
		row = make([]float64, n)
	} else {
		row = row[:n]
	}
	return row
}

func putWeightedRow(row []float64) {
	if cap(row) <= 4*DefaultMaxQueryLength {
		weightedRowPool.Put(&row)
	}
}

// Weighted runs a real-valued DP-row walk structurally identical to
// Levenshtein but with each cell updated via m's substitution/gap costs
// instead of unit costs.
func Weighted(root trie.Walker, query string, maxCost float64, m *matrix.Matrix, filter Filter, tags func(i int) (string, string)) []WeightedMatch {
	L := len(query)
	row := getWeightedRow(L + 1)
	defer putWeightedRow(row)
	row[0] = 0
	for j := 1; j <= L; j++ {
		row[j] = row[j-1] + m.Cost(matrix.Gap, query[j-1])
	}

	var results []WeightedMatch
	var walk func(w trie.Walker, row []float64)
	walk = func(w trie.Walker, row []float64) {
		if minFloat(row) > maxCost {
			return
		}
		if row[L] <= maxCost {
			for _, idx := range w.Indices() {
				v, j := tags(idx)
				if filter.Allows(v, j) {
					results = append(results, WeightedMatch{Index: idx, Cost: row[L]})
				}
			}
		}
		w.Children(func(letter int, child trie.Walker) {
			next := getWeightedRow(L + 1)
			ch := byte('A' + letter)
			next[0] = row[0] + m.Cost(matrix.Gap, ch)
			for j := 1; j <= L; j++ {
				del := row[j] + m.Cost(matrix.Gap, ch)
				ins := next[j-1] + m.Cost(matrix.Gap, query[j-1])
				sub := row[j-1] + m.Cost(query[j-1], ch)
				next[j] = minOf3Float(del, ins, sub)
			}
			walk(child, next)
			putWeightedRow(next)
		})
	}
	walk(root, row)
	return results
}

func minFloat(row []float64) float64 {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func minOf3Float(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
