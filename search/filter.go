package search

// Filter restricts emitted candidates by exact V-tag/J-tag equality. A nil
// VGene/JGene pointer means "unfiltered" for that tag, satisfying the
// correctness law Search(q, E, v, j) = { r in Search(q, E, nil, nil) :
// r.vTag = v and r.jTag = j }.
type Filter struct {
	VGene *string
	JGene *string
}

// Allows reports whether a candidate with the given tags passes the filter.
func (f Filter) Allows(vTag, jTag string) bool {
	if f.VGene != nil && vTag != *f.VGene {
		return false
	}
	if f.JGene != nil && jTag != *f.JGene {
		return false
	}
	return true
}
