package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tcrtrie/tcrtrie/corpus"
	"github.com/tcrtrie/tcrtrie/engine"
	"github.com/tcrtrie/tcrtrie/search"
)

func testEngine() *engine.Engine {
	records := []corpus.Record{
		{Junction: "CASSLGQETQYF"},
		{Junction: "CASSLRQETVYGYTF"},
		{Junction: "CASRLGQETQYF"},
	}
	return engine.New(records)
}

func TestRunJoinsByQuery(t *testing.T) {
	e := testEngine()
	queries := []Query{
		{Query: "CASSLGQETQYF", Budget: search.Edits(0)},
		{Query: "CASSLGQETQYF", Budget: search.Edits(1)},
		{Query: "ZZZZZZZZZZZZ", Budget: search.Edits(1)},
	}
	out := Run(context.Background(), e, queries, 10)
	require.Len(t, out, 2, "duplicate query strings collapse to one entry")
	require.Contains(t, out, "CASSLGQETQYF")
	require.Contains(t, out, "ZZZZZZZZZZZZ")
	require.Empty(t, out["ZZZZZZZZZZZZ"].Matches)
}

func TestRunPerQueryErrorDoesNotAbortBatch(t *testing.T) {
	e := testEngine()
	tooLong := strings.Repeat("A", search.DefaultMaxQueryLength+1)
	queries := []Query{
		{Query: tooLong, Budget: search.Edits(1)},
		{Query: "CASSLGQETQYF", Budget: search.Edits(0)},
	}
	out := Run(context.Background(), e, queries, 10)
	require.Error(t, out[tooLong].Err)
	require.NoError(t, out["CASSLGQETQYF"].Err)
	require.Len(t, out["CASSLGQETQYF"].Matches, 1)
}

func TestRunEmptyBatch(t *testing.T) {
	e := testEngine()
	out := Run(context.Background(), e, nil, 10)
	require.Empty(t, out)
}

func TestConcurrencyCapPositiveForNonPositiveMultiplier(t *testing.T) {
	require.GreaterOrEqual(t, concurrencyCap(0), 1)
	require.GreaterOrEqual(t, concurrencyCap(-5), 1)
}
