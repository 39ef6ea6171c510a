package corpus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSkipsEmptyAfterStripping(t *testing.T) {
	c := New([]Record{
		{Junction: "CASSLGQETQYF", VTag: "TRBV1", JTag: "TRBJ1"},
		{Junction: "123"}, // all non-A-Z, stripped to empty, skipped
		{Junction: "CAS1SL", VTag: "", JTag: ""},
	})
	require.Equal(t, 2, c.Len())
	require.Equal(t, "CASSLGQETQYF", c.Junction(0))
	require.Equal(t, "TRBV1", c.VTag(0))
	require.Equal(t, "CASSL", c.Junction(1))
}

func TestFromJunctions(t *testing.T) {
	c := FromJunctions([]string{"ABCDE", "FGHIJ"})
	require.Equal(t, 2, c.Len())
	require.Equal(t, "", c.VTag(0))
	require.Equal(t, "", c.JTag(1))
}

func TestNewEmpty(t *testing.T) {
	c := New(nil)
	require.Equal(t, 0, c.Len())
}
