// Package airr parses the AIRR-format tab-delimited corpus file and the
// tab-delimited batch-query file used by the CLI.
package airr

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/tcrtrie/tcrtrie/corpus"
	"github.com/tcrtrie/tcrtrie/errs"
)

const (
	colJunction = "junction_aa"
	colVCall    = "v_call"
	colJCall    = "j_call"
)

func newTabReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// ParseCorpus reads an AIRR TSV file and returns the records it names.
// Column order is not fixed: the header line maps names to indices. A
// missing junction_aa column is an Input-format error; v_call/j_call are
// optional and default to empty tags. Rows whose junction_aa is empty are
// skipped, not rejected.
func ParseCorpus(r io.Reader) ([]corpus.Record, error) {
	cr := newTabReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errs.New(errs.InputFormat, "corpus file is empty")
	}
	if err != nil {
		return nil, errs.Wrap(errs.InputFormat, err, "reading corpus header")
	}

	cols := indexHeader(header)
	jIdx, ok := cols[colJunction]
	if !ok {
		return nil, errs.New(errs.InputFormat, "corpus file is missing a junction_aa column")
	}
	vIdx, hasV := cols[colVCall]
	jCallIdx, hasJ := cols[colJCall]

	var records []corpus.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.InputFormat, err, "reading corpus row")
		}
		junction := field(row, jIdx)
		if junction == "" {
			continue
		}
		rec := corpus.Record{Junction: junction}
		if hasV {
			rec.VTag = field(row, vIdx)
		}
		if hasJ {
			rec.JTag = field(row, jCallIdx)
		}
		records = append(records, rec)
	}
	return records, nil
}

func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// BatchQuery is one row of a batch-query TSV file: the query string plus
// optional V/J equality filters, read from the first, second and third
// columns if present.
type BatchQuery struct {
	Query string
	VGene string
	JGene string
	HasV  bool
	HasJ  bool
}

// ParseQueries reads a batch-query TSV file; the first column of every row
// is the query string. A second and third column, if present, are treated
// as V-gene/J-gene filters for that query.
func ParseQueries(r io.Reader) ([]BatchQuery, error) {
	cr := newTabReader(r)
	var queries []BatchQuery
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.InputFormat, err, "reading batch query row")
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}
		q := BatchQuery{Query: row[0]}
		if len(row) > 1 && row[1] != "" {
			q.VGene, q.HasV = row[1], true
		}
		if len(row) > 2 && row[2] != "" {
			q.JGene, q.HasJ = row[2], true
		}
		queries = append(queries, q)
	}
	return queries, nil
}
