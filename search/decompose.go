package search

import "golang.org/x/exp/slices"

// OpTuple is one candidate (distance, insertions, deletions, substitutions)
// point on a Wagner-Fischer cell's Pareto front.
type OpTuple struct {
	Distance      int
	Insertions    int
	Deletions     int
	Substitutions int
}

// dominates reports whether a dominates b: every component of a is <= the
// corresponding component of b. A dominated tuple can never be the unique
// best choice for any (S, I, D) bound, so it is dropped from the front.
func (a OpTuple) dominates(b OpTuple) bool {
	return a.Distance <= b.Distance &&
		a.Insertions <= b.Insertions &&
		a.Deletions <= b.Deletions &&
		a.Substitutions <= b.Substitutions
}

// paretoPrune drops every tuple dominated by another tuple in the set,
// leaving only the Pareto front.
func paretoPrune(tuples []OpTuple) []OpTuple {
	front := make([]OpTuple, 0, len(tuples))
	for i, t := range tuples {
		dominated := false
		for j, other := range tuples {
			if i == j {
				continue
			}
			if other.dominates(t) && !(t.dominates(other) && j < i) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, t)
		}
	}
	slices.SortFunc(front, func(a, b OpTuple) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		if a.Substitutions != b.Substitutions {
			return a.Substitutions - b.Substitutions
		}
		return a.Insertions - b.Insertions
	})
	return slices.CompactFunc(front, func(a, b OpTuple) bool { return a == b })
}

// Decompose computes the Pareto front of (distance, insertions, deletions,
// substitutions) tuples transforming s into t: extended Wagner-Fischer
// where each DP[i][j] cell holds a pruned tuple set rather than a single
// scalar. Only tuples with distance <= maxS+maxI+maxD are retained, since
// anything larger can never satisfy any per-operation bound the caller
// cares about.
func Decompose(s, t string, maxS, maxI, maxD int) []OpTuple {
	budget := maxS + maxI + maxD
	n, m := len(s), len(t)
	dp := make([][][]OpTuple, n+1)
	for i := range dp {
		dp[i] = make([][]OpTuple, m+1)
	}
	dp[0][0] = []OpTuple{{}}
	for i := 1; i <= n; i++ {
		dp[i][0] = capTuples([]OpTuple{{Distance: i, Deletions: i}}, budget)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = capTuples([]OpTuple{{Distance: j, Insertions: j}}, budget)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			var candidates []OpTuple
			for _, prev := range dp[i-1][j] {
				candidates = append(candidates, OpTuple{
					Distance:      prev.Distance + 1,
					Insertions:    prev.Insertions,
					Deletions:     prev.Deletions + 1,
					Substitutions: prev.Substitutions,
				})
			}
			for _, prev := range dp[i][j-1] {
				candidates = append(candidates, OpTuple{
					Distance:      prev.Distance + 1,
					Insertions:    prev.Insertions + 1,
					Deletions:     prev.Deletions,
					Substitutions: prev.Substitutions,
				})
			}
			cost := 0
			if s[i-1] != t[j-1] {
				cost = 1
			}
			for _, prev := range dp[i-1][j-1] {
				candidates = append(candidates, OpTuple{
					Distance:      prev.Distance + cost,
					Insertions:    prev.Insertions,
					Deletions:     prev.Deletions,
					Substitutions: prev.Substitutions + cost,
				})
			}
			dp[i][j] = paretoPrune(capTuples(candidates, budget))
		}
	}
	return dp[n][m]
}

func capTuples(tuples []OpTuple, budget int) []OpTuple {
	out := tuples[:0:0]
	for _, t := range tuples {
		if t.Distance <= budget {
			out = append(out, t)
		}
	}
	return out
}

// MatchesOps reports whether any tuple on the Pareto front satisfies
// s <= maxS, i <= maxI, d <= maxD.
func MatchesOps(front []OpTuple, maxS, maxI, maxD int) bool {
	for _, t := range front {
		if t.Substitutions <= maxS && t.Insertions <= maxI && t.Deletions <= maxD {
			return true
		}
	}
	return false
}
