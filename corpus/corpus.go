// Package corpus owns the immutable arrays of immune-receptor junction
// sequences and their associated V/J tags. A Corpus is built once and never
// mutated afterward, so concurrent readers need no locking.
package corpus

import (
	"strings"
)

// Record is a single immutable (junction, vTag, jTag) triple. Junction is
// expected to be non-empty; vTag and jTag are opaque and may be empty.
type Record struct {
	Junction string
	VTag     string
	JTag     string
}

// Corpus holds three parallel ordered sequences of equal length: the
// junction, V-tag and J-tag of each record. The index into these slices is
// the record's stable corpus index.
type Corpus struct {
	junctions []string
	vTags     []string
	jTags     []string
}

// New builds a Corpus from a list of records in order. Non-A-Z characters in
// each Junction are silently dropped, per the documented loss-of-information
// behavior; records whose Junction is empty after stripping are skipped
// rather than rejected, matching the AIRR loader's "skip empty junction_aa"
// rule (airr.ParseCorpus) so the two entry points behave identically.
func New(records []Record) *Corpus {
	c := &Corpus{
		junctions: make([]string, 0, len(records)),
		vTags:     make([]string, 0, len(records)),
		jTags:     make([]string, 0, len(records)),
	}
	for _, r := range records {
		j := stripNonAlpha(r.Junction)
		if j == "" {
			continue
		}
		c.junctions = append(c.junctions, j)
		c.vTags = append(c.vTags, r.VTag)
		c.jTags = append(c.jTags, r.JTag)
	}
	return c
}

// FromJunctions builds a Corpus from raw junction strings; V/J tags default
// to empty.
func FromJunctions(junctions []string) *Corpus {
	records := make([]Record, len(junctions))
	for i, j := range junctions {
		records[i] = Record{Junction: j}
	}
	return New(records)
}

func stripNonAlpha(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Len returns the number of records in the corpus.
func (c *Corpus) Len() int {
	return len(c.junctions)
}

// Junction returns the junction string at corpus index i.
func (c *Corpus) Junction(i int) string {
	return c.junctions[i]
}

// VTag returns the V-tag at corpus index i.
func (c *Corpus) VTag(i int) string {
	return c.vTags[i]
}

// JTag returns the J-tag at corpus index i.
func (c *Corpus) JTag(i int) string {
	return c.jTags[i]
}
