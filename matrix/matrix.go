// Package matrix loads a substitution/gap cost matrix and converts a
// similarity-score matrix to costs when needed.
package matrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/tcrtrie/tcrtrie/errs"
)

// Gap is the symbol denoting an insertion/deletion in matrix lookups.
const Gap = byte('-')

// size covers A-Z (26) plus the gap symbol.
const size = 27

func index(c byte) int {
	if c == Gap {
		return 26
	}
	return int(c - 'A')
}

// Matrix is a symmetric mapping from ordered pairs over {A...Z, '-'} to
// costs. Parse stores the values it reads (or their converted form) without
// checking that they are nonnegative.
type Matrix struct {
	cost [size][size]float64
}

// Cost returns the cost of substituting/aligning a with b (or a gap, if
// either is Gap).
func (m *Matrix) Cost(a, b byte) float64 {
	return m.cost[index(a)][index(b)]
}

// Parse reads a whitespace-delimited cost/similarity matrix file: the
// first line lists the alphabet letters, subsequent lines give a row label
// followed by one value per alphabet letter. If the file encodes
// similarity scores (any positive off-diagonal value is present), it is
// converted to costs via cost(a,b) = 1/2*(s(a,a)+s(b,b)) - s(a,b); otherwise
// the values are used as-is.
func Parse(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	var alphabet []byte
	if sc.Scan() {
		for _, f := range strings.Fields(sc.Text()) {
			if len(f) != 1 {
				return nil, errs.New(errs.InputFormat, "matrix alphabet tokens must be single characters")
			}
			alphabet = append(alphabet, f[0])
		}
	}
	if len(alphabet) == 0 {
		return nil, errs.New(errs.InputFormat, "matrix file has no alphabet header")
	}

	raw := make(map[[2]byte]float64)
	rowsSeen := map[byte]bool{}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != len(alphabet)+1 || len(fields[0]) != 1 {
			return nil, errs.New(errs.InputFormat, "matrix row has wrong field count")
		}
		label := fields[0][0]
		rowsSeen[label] = true
		for i, col := range alphabet {
			v, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, errs.Wrap(errs.InputFormat, err, "matrix value is not numeric")
			}
			raw[[2]byte{label, col}] = v
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.InputFormat, err, "reading matrix file")
	}
	for _, a := range alphabet {
		if !rowsSeen[a] {
			return nil, errs.New(errs.InputFormat, "matrix missing a row for an alphabet letter")
		}
	}

	isSimilarity := false
	for _, a := range alphabet {
		for _, b := range alphabet {
			if a == b {
				continue
			}
			if v, ok := raw[[2]byte{a, b}]; ok && v > 0 {
				isSimilarity = true
			}
		}
	}

	m := &Matrix{}
	letters := append(append([]byte(nil), alphabet...), Gap)
	for _, a := range letters {
		for _, b := range letters {
			av, aok := raw[[2]byte{a, a}]
			bv, bok := raw[[2]byte{b, b}]
			v, ok := raw[[2]byte{a, b}]
			if !ok {
				v, ok = raw[[2]byte{b, a}]
			}
			if !ok {
				continue
			}
			if isSimilarity && aok && bok {
				v = 0.5*(av+bv) - v
			}
			m.cost[index(a)][index(b)] = v
			m.cost[index(b)][index(a)] = v
		}
	}
	return m, nil
}

// Unit returns a matrix whose off-diagonal substitution cost and gap cost
// are both 1 and whose diagonal (self-substitution) cost is 0, making a
// matrix-driven search over it equivalent to plain unit-cost Levenshtein.
func Unit() *Matrix {
	m := &Matrix{}
	for a := 0; a < size; a++ {
		for b := 0; b < size; b++ {
			if a != b {
				m.cost[a][b] = 1
			}
		}
	}
	return m
}
