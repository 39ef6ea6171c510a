// Package engine wires the corpus store, trie index, cost matrix and the
// three search walkers into a single public API: a corpus and trie are
// built together and live for the engine's lifetime, a matrix can be loaded
// or replaced independently, and queries are stateless.
package engine

import (
	"io"
	"log"
	"sync"

	"github.com/tcrtrie/tcrtrie/corpus"
	"github.com/tcrtrie/tcrtrie/errs"
	"github.com/tcrtrie/tcrtrie/matrix"
	"github.com/tcrtrie/tcrtrie/search"
	"github.com/tcrtrie/tcrtrie/trie"
)

// OpsMatch is one candidate surviving a per-operation-bounded search: the
// corpus index, its aggregate Levenshtein distance, and the Pareto front of
// operation tuples whose distance is within the summed operation bounds
// (which can include tuples with a larger distance than Distance).
type OpsMatch struct {
	Index    int
	Distance int
	Ops      []search.OpTuple
}

// Result unifies the three match shapes into one type so the batch
// dispatcher can handle any budget kind without a type switch per query.
type Result struct {
	Index    int
	Distance int             // meaningful for EditsKind and OpsKind
	Cost     float64         // meaningful for CostKind
	Ops      []search.OpTuple // meaningful for OpsKind
}

// Engine owns a corpus, its trie, and an optional cost matrix. The corpus
// and trie are immutable after construction; the matrix can be swapped with
// LoadMatrix at any time the caller is not concurrently searching — the
// engine does not police that overlap itself.
type Engine struct {
	cfg    Config
	logger *log.Logger

	corpus *corpus.Corpus
	trie   *trie.Trie

	mu     sync.RWMutex
	matrix *matrix.Matrix
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a logger for load/search diagnostics. Nil-safe: an
// Engine without a logger is silent, since it must stay usable from
// concurrent tests without polluting stdout.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithConfig overrides the compiled-in default Config.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// New builds the corpus and its trie together and returns a ready-to-query
// Engine with no matrix loaded.
func New(records []corpus.Record, opts ...Option) *Engine {
	e := &Engine{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	e.corpus = corpus.New(records)
	e.trie = trie.Build(e.corpus)
	e.logf("indexed %d records into trie", e.corpus.Len())
	return e
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// LoadMatrix installs m as the engine's active cost matrix, replacing any
// previously loaded one. It can be called independently of corpus/trie
// construction.
func (e *Engine) LoadMatrix(m *matrix.Matrix) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.matrix = m
}

// LoadMatrixFrom parses and installs a cost matrix read from r.
func (e *Engine) LoadMatrixFrom(r io.Reader) error {
	m, err := matrix.Parse(r)
	if err != nil {
		return err
	}
	e.LoadMatrix(m)
	return nil
}

func (e *Engine) currentMatrix() *matrix.Matrix {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.matrix
}

func (e *Engine) tags(i int) (string, string) {
	return e.corpus.VTag(i), e.corpus.JTag(i)
}

// SearchEdits returns every indexed record within maxEdits unit-cost
// Levenshtein edits of query, subject to filter.
func (e *Engine) SearchEdits(query string, maxEdits int, filter search.Filter) ([]search.Match, error) {
	if err := search.ValidateQuery(query, e.cfg.MaxQueryLength); err != nil {
		return nil, err
	}
	if maxEdits < 0 {
		return nil, errs.New(errs.Configuration, "maxEdits must be >= 0")
	}
	return search.Levenshtein(e.trie.Root(), query, maxEdits, filter, e.tags), nil
}

// SearchAny reports whether any indexed record is within maxEdits of query.
func (e *Engine) SearchAny(query string, maxEdits int, filter search.Filter) (bool, error) {
	if err := search.ValidateQuery(query, e.cfg.MaxQueryLength); err != nil {
		return false, err
	}
	if maxEdits < 0 {
		return false, errs.New(errs.Configuration, "maxEdits must be >= 0")
	}
	return search.SearchAny(e.trie.Root(), query, maxEdits, filter, e.tags), nil
}

// SearchOps returns every indexed record with a Pareto-optimal edit script
// whose substitution/insertion/deletion counts each satisfy the given
// bound. The Levenshtein walker first narrows to candidates within the
// aggregate edit bound, then the decomposer classifies only the survivors.
func (e *Engine) SearchOps(query string, maxSub, maxIns, maxDel int, filter search.Filter) ([]OpsMatch, error) {
	if err := search.ValidateQuery(query, e.cfg.MaxQueryLength); err != nil {
		return nil, err
	}
	if maxSub < 0 || maxIns < 0 || maxDel < 0 {
		return nil, errs.New(errs.Configuration, "operation bounds must be >= 0")
	}
	budget := maxSub + maxIns + maxDel
	candidates := search.Levenshtein(e.trie.Root(), query, budget, filter, e.tags)

	results := make([]OpsMatch, 0, len(candidates))
	for _, c := range candidates {
		front := search.Decompose(query, e.corpus.Junction(c.Index), maxSub, maxIns, maxDel)
		if search.MatchesOps(front, maxSub, maxIns, maxDel) {
			results = append(results, OpsMatch{Index: c.Index, Distance: c.Distance, Ops: front})
		}
	}
	return results, nil
}

// SearchWeighted returns every indexed record whose matrix-driven cost from
// query is at most maxCost. Requires a previously loaded matrix; otherwise
// it fails with a Configuration error.
func (e *Engine) SearchWeighted(query string, maxCost float64, filter search.Filter) ([]search.WeightedMatch, error) {
	if err := search.ValidateQuery(query, e.cfg.MaxQueryLength); err != nil {
		return nil, err
	}
	m := e.currentMatrix()
	if m == nil {
		return nil, errs.New(errs.Configuration, "matrix search requested without a loaded cost matrix")
	}
	return search.Weighted(e.trie.Root(), query, maxCost, m, filter, e.tags), nil
}

// Search dispatches on budget.Kind() so batch callers can issue any of the
// three search variants through one signature.
func (e *Engine) Search(query string, budget search.Budget, filter search.Filter) ([]Result, error) {
	switch budget.Kind() {
	case search.EditsKind:
		matches, err := e.SearchEdits(query, budget.EditCount(), filter)
		if err != nil {
			return nil, err
		}
		out := make([]Result, len(matches))
		for i, m := range matches {
			out[i] = Result{Index: m.Index, Distance: m.Distance}
		}
		return out, nil
	case search.OpsKind:
		sub, ins, del := budget.OpCounts()
		matches, err := e.SearchOps(query, sub, ins, del, filter)
		if err != nil {
			return nil, err
		}
		out := make([]Result, len(matches))
		for i, m := range matches {
			out[i] = Result{Index: m.Index, Distance: m.Distance, Ops: m.Ops}
		}
		return out, nil
	case search.CostKind:
		matches, err := e.SearchWeighted(query, budget.MaxCost(), filter)
		if err != nil {
			return nil, err
		}
		out := make([]Result, len(matches))
		for i, m := range matches {
			out[i] = Result{Index: m.Index, Cost: m.Cost}
		}
		return out, nil
	default:
		return nil, errs.New(errs.Configuration, "unknown budget kind")
	}
}

// Corpus exposes the engine's underlying corpus store for callers (the
// output writer, primarily) that need to resolve a corpus index back to a
// junction/tags triple.
func (e *Engine) Corpus() *corpus.Corpus { return e.corpus }
