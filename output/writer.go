// Package output writes the TSV result file, committing it atomically so a
// crash mid-write never corrupts a previous result file.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/google/renameio/v2"

	"github.com/tcrtrie/tcrtrie/errs"
)

// Row is one (query, match) pair of the output file.
type Row struct {
	Query string
	Match string
	Dist  string // formatted distance or cost
	VGene string
	JGene string
}

// hasTags reports whether any row carries a non-empty V or J tag, which
// decides whether the optional v_gene/j_gene columns are present at all.
func hasTags(rows []Row) bool {
	for _, r := range rows {
		if r.VGene != "" || r.JGene != "" {
			return true
		}
	}
	return false
}

// Write renders rows as a TSV file at path, committed atomically.
func Write(path string, rows []Row) error {
	withTags := hasTags(rows)

	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return errs.Wrap(errs.IO, err, "opening output file")
	}
	defer pf.Cleanup()

	header := "query\tmatch\tdist"
	if withTags {
		header += "\tv_gene\tj_gene"
	}
	if _, err := io.WriteString(pf, header+"\n"); err != nil {
		return errs.Wrap(errs.IO, err, "writing output header")
	}

	for _, r := range rows {
		line := r.Query + "\t" + r.Match + "\t" + r.Dist
		if withTags {
			line += "\t" + r.VGene + "\t" + r.JGene
		}
		if _, err := io.WriteString(pf, line+"\n"); err != nil {
			return errs.Wrap(errs.IO, err, "writing output row")
		}
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return errs.Wrap(errs.IO, err, "committing output file")
	}
	return nil
}

// FormatInt formats an integer distance for a Row.
func FormatInt(n int) string { return strconv.Itoa(n) }

// FormatFloat formats a real-valued cost for a Row.
func FormatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// FormatOps formats the aggregate distance alongside its operation
// breakdown, for the dist column of a per-operation-bounded search result.
func FormatOps(distance, ins, del, sub int) string {
	return fmt.Sprintf("%d(sub=%d,ins=%d,del=%d)", distance, sub, ins, del)
}
