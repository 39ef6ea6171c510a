package airr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCorpusColumnOrderNotFixed(t *testing.T) {
	src := "v_call\tjunction_aa\tj_call\nTRBV1\tCASSLGQETQYF\tTRBJ1\n"
	records, err := ParseCorpus(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "CASSLGQETQYF", records[0].Junction)
	require.Equal(t, "TRBV1", records[0].VTag)
	require.Equal(t, "TRBJ1", records[0].JTag)
}

func TestParseCorpusSkipsEmptyJunction(t *testing.T) {
	src := "junction_aa\tv_call\nCASSLGQETQYF\tTRBV1\n\tTRBV2\n"
	records, err := ParseCorpus(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestParseCorpusMissingJunctionColumn(t *testing.T) {
	_, err := ParseCorpus(strings.NewReader("v_call\tj_call\nTRBV1\tTRBJ1\n"))
	require.Error(t, err)
}

func TestParseCorpusEmptyFile(t *testing.T) {
	_, err := ParseCorpus(strings.NewReader(""))
	require.Error(t, err)
}

func TestParseQueries(t *testing.T) {
	src := "CASSLGQETQYF\tTRBV1\tTRBJ1\nCASRLGQETQYF\n"
	qs, err := ParseQueries(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, qs, 2)
	require.True(t, qs[0].HasV)
	require.False(t, qs[1].HasV)
}
