package search

// BudgetKind distinguishes the three mutually exclusive ways a caller can
// bound a search.
type BudgetKind int

const (
	// EditsKind bounds the unit-cost Levenshtein distance.
	EditsKind BudgetKind = iota
	// OpsKind bounds substitutions, insertions and deletions independently.
	OpsKind
	// CostKind bounds a real-valued cost computed from a loaded matrix.
	CostKind
)

// Budget is a sum type over the three ways a caller can bound a search.
// Build one with Edits, Ops or Cost; an Engine switches on Kind() rather
// than accepting three parallel optional fields, so a caller cannot supply
// two incompatible budgets in the same call.
type Budget struct {
	kind           BudgetKind
	edits          int
	sub, ins, del  int
	cost           float64
}

// Kind reports which of the three budget variants this is.
func (b Budget) Kind() BudgetKind { return b.kind }

// Edits returns an edit-count budget for the unit-cost Levenshtein walker.
func Edits(n int) Budget { return Budget{kind: EditsKind, edits: n} }

// Ops returns a per-operation substitution/insertion/deletion budget.
func Ops(sub, ins, del int) Budget {
	return Budget{kind: OpsKind, sub: sub, ins: ins, del: del}
}

// Cost returns a real-valued cost budget; requires a loaded cost matrix.
func Cost(c float64) Budget {
	return Budget{kind: CostKind, cost: c}
}

// EditCount returns the edit-count bound; only meaningful when Kind() ==
// EditsKind.
func (b Budget) EditCount() int { return b.edits }

// OpCounts returns the (substitution, insertion, deletion) bounds; only
// meaningful when Kind() == OpsKind.
func (b Budget) OpCounts() (sub, ins, del int) { return b.sub, b.ins, b.del }

// MaxCost returns the cost bound; only meaningful when Kind() == CostKind.
func (b Budget) MaxCost() float64 { return b.cost }

// TotalEdits returns sub+ins+del, the aggregate Levenshtein bound an Ops
// budget implies: no edit script can realize fewer operations than it has
// substitutions, insertions and deletions to spend.
func (b Budget) TotalEdits() int { return b.sub + b.ins + b.del }
