package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecomposeBothParetoAlternativesSatisfyDistinctBounds(t *testing.T) {
	// s = query, t = "ABCDE" (the candidate already indexed).
	front := Decompose("ABXDE", "ABCDE", 1, 0, 0)
	require.True(t, MatchesOps(front, 1, 0, 0), "one substitution should satisfy (S=1,I=0,D=0)")

	front2 := Decompose("ABXDE", "ABCDE", 0, 1, 1)
	require.True(t, MatchesOps(front2, 0, 1, 1), "delete X, insert C should satisfy (S=0,I=1,D=1)")
}

func TestDecomposeSelfIsZero(t *testing.T) {
	front := Decompose("ABCDE", "ABCDE", 0, 0, 0)
	require.True(t, MatchesOps(front, 0, 0, 0))
	for _, f := range front {
		require.Equal(t, 0, f.Distance)
	}
}

func TestDecomposeAggregateMatchesLevenshtein(t *testing.T) {
	cases := []struct{ s, t string }{
		{"kitten", "sitting"},
		{"ABCDE", "ABXDE"},
		{"AAAA", "AAA"},
		{"", "ABC"},
	}
	for _, c := range cases {
		front := Decompose(c.s, c.t, 10, 10, 10)
		best := -1
		for _, f := range front {
			if best == -1 || f.Distance < best {
				best = f.Distance
			}
		}
		require.Equal(t, naiveLevenshtein(c.s, c.t), best, "s=%q t=%q", c.s, c.t)
	}
}

func TestDecomposeParetoFrontIsNonDominated(t *testing.T) {
	front := Decompose("ABXDE", "ABCDE", 3, 3, 3)
	for i, a := range front {
		for j, b := range front {
			if i == j {
				continue
			}
			require.False(t, a.dominates(b), "front should contain no tuple dominated by another: %+v dominates %+v", a, b)
		}
	}
}

func TestMatchesOpsRespectsBounds(t *testing.T) {
	front := Decompose("ABXDE", "ABCDE", 3, 3, 3)
	require.False(t, MatchesOps(front, 0, 0, 0), "no zero-edit script exists between differing strings")
}
