package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tcrtrie/tcrtrie/corpus"
	"github.com/tcrtrie/tcrtrie/trie"
)

func levTags(c *corpus.Corpus) func(int) (string, string) {
	return func(i int) (string, string) { return c.VTag(i), c.JTag(i) }
}

func naiveLevenshtein(a, b string) int {
	n, m := len(a), len(b)
	row := make([]int, m+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= m; j++ {
			tmp := row[j]
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			del := row[j] + 1
			ins := row[j-1] + 1
			sub := prev + cost
			row[j] = minOf3(del, ins, sub)
			prev = tmp
		}
	}
	return row[m]
}

func TestLevenshteinMatchesNaiveScanner(t *testing.T) {
	junctions := []string{
		"CASSLGQETQYF", "CASSLRQETVYGYTF", "CASRLGQETQYF", "AAAA", "ABCDE", "ABXDE",
	}
	c := corpus.FromJunctions(junctions)
	tr := trie.Build(c)
	tags := levTags(c)

	queries := []string{"CASSLGQETQYF", "AAA", "ABCDE", "ZZZZ"}
	for _, q := range queries {
		for e := 0; e <= 3; e++ {
			got := Levenshtein(tr.Root(), q, e, Filter{}, tags)
			gotSet := map[int]int{}
			for _, m := range got {
				gotSet[m.Index] = m.Distance
			}
			for i, j := range junctions {
				want := naiveLevenshtein(q, j)
				_, inGot := gotSet[i]
				if want <= e {
					require.True(t, inGot, "query=%q edits=%d junction=%q should match", q, e, j)
					require.Equal(t, want, gotSet[i])
				} else {
					require.False(t, inGot, "query=%q edits=%d junction=%q should not match", q, e, j)
				}
			}
		}
	}
}

func TestLevenshteinMonotonicity(t *testing.T) {
	c := corpus.FromJunctions([]string{"CASSLGQETQYF", "CASSLRQETVYGYTF", "CASRLGQETQYF"})
	tr := trie.Build(c)
	tags := levTags(c)

	lowSet := func(e int) map[int]bool {
		s := map[int]bool{}
		for _, m := range Levenshtein(tr.Root(), "CASSLGQETQYF", e, Filter{}, tags) {
			s[m.Index] = true
		}
		return s
	}
	for e := 0; e < 5; e++ {
		lo, hi := lowSet(e), lowSet(e+1)
		for idx := range lo {
			require.True(t, hi[idx], "E=%d subset of E=%d should hold for index %d", e, e+1, idx)
		}
	}
}

func TestLevenshteinFilterLaw(t *testing.T) {
	c := corpus.New([]corpus.Record{
		{Junction: "CASSLGQETQYF", VTag: "V1", JTag: "J1"},
		{Junction: "CASRLGQETQYF", VTag: "V2", JTag: "J1"},
	})
	tr := trie.Build(c)
	tags := levTags(c)

	unfiltered := Levenshtein(tr.Root(), "CASSLGQETQYF", 2, Filter{}, tags)
	v1 := "V1"
	filtered := Levenshtein(tr.Root(), "CASSLGQETQYF", 2, Filter{VGene: &v1}, tags)

	var want []Match
	for _, m := range unfiltered {
		v, _ := tags(m.Index)
		if v == v1 {
			want = append(want, m)
		}
	}
	require.ElementsMatch(t, want, filtered)
}

func TestLevenshteinExactMatchOnly(t *testing.T) {
	c := corpus.FromJunctions([]string{"CASSLGQETQYF", "CASSLRQETVYGYTF", "CASRLGQETQYF"})
	tr := trie.Build(c)
	matches := Levenshtein(tr.Root(), "CASSLGQETQYF", 0, Filter{}, levTags(c))
	require.Len(t, matches, 1)
	require.Equal(t, "CASSLGQETQYF", c.Junction(matches[0].Index))
}

func TestLevenshteinOneSubstitution(t *testing.T) {
	c := corpus.FromJunctions([]string{"CASSLGQETQYF", "CASSLRQETVYGYTF", "CASRLGQETQYF"})
	tr := trie.Build(c)
	matches := Levenshtein(tr.Root(), "CASSLGQETQYF", 1, Filter{}, levTags(c))
	got := map[string]bool{}
	for _, m := range matches {
		got[c.Junction(m.Index)] = true
	}
	require.Equal(t, map[string]bool{"CASSLGQETQYF": true, "CASRLGQETQYF": true}, got)
}

func TestLevenshteinOneInsertion(t *testing.T) {
	c := corpus.FromJunctions([]string{"AAAA"})
	tr := trie.Build(c)
	matches := Levenshtein(tr.Root(), "AAA", 1, Filter{}, levTags(c))
	require.Len(t, matches, 1)
	require.Equal(t, "AAAA", c.Junction(matches[0].Index))
}

func TestLevenshteinEmptyCorpus(t *testing.T) {
	c := corpus.FromJunctions(nil)
	tr := trie.Build(c)
	matches := Levenshtein(tr.Root(), "ANYTHING", 5, Filter{}, levTags(c))
	require.Empty(t, matches)
}

func TestValidateQueryLengthExceeded(t *testing.T) {
	err := ValidateQuery("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", 32) // 33 chars
	require.Error(t, err)
}

func TestValidateQueryRejectsNonAlpha(t *testing.T) {
	err := ValidateQuery("ABC123", 32)
	require.Error(t, err)
}

func TestSearchAnyAgreesWithSearch(t *testing.T) {
	c := corpus.FromJunctions([]string{"CASSLGQETQYF", "CASSLRQETVYGYTF", "CASRLGQETQYF"})
	tr := trie.Build(c)
	tags := levTags(c)
	for e := 0; e <= 2; e++ {
		for _, q := range []string{"CASSLGQETQYF", "ZZZZZZZZ"} {
			got := SearchAny(tr.Root(), q, e, Filter{}, tags)
			want := len(Levenshtein(tr.Root(), q, e, Filter{}, tags)) > 0
			require.Equal(t, want, got, "query=%q e=%d", q, e)
		}
	}
}
