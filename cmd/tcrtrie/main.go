// Command tcrtrie is the CLI surface around the engine: argument parsing,
// tab-delimited I/O, output formatting and matrix-file loading live here,
// kept out of the engine/search/trie/corpus packages themselves.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/adrg/xdg"

	"github.com/tcrtrie/tcrtrie/airr"
	"github.com/tcrtrie/tcrtrie/batch"
	"github.com/tcrtrie/tcrtrie/engine"
	"github.com/tcrtrie/tcrtrie/matrix"
	"github.com/tcrtrie/tcrtrie/output"
	"github.com/tcrtrie/tcrtrie/search"
)

var usage = `
tcrtrie searches an indexed corpus of immune-receptor junction sequences
for approximate matches to a query, under a unit-cost edit distance, a
per-operation (substitution/insertion/deletion) bound, or a real-valued
cost from a substitution/gap matrix.

Flags:
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := log.New(os.Stderr, "tcrtrie: ", log.Ldate|log.Ltime)

	cfg, err := loadConfig()
	if err != nil {
		logger.Printf("loading config: %v", err)
		return 1
	}

	flags, err := parseFlags(args)
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	inFile, err := os.Open(flags.input)
	if err != nil {
		logger.Printf("opening input corpus: %v", err)
		return 1
	}
	defer inFile.Close()

	records, err := airr.ParseCorpus(inFile)
	if err != nil {
		logger.Printf("parsing input corpus: %v", err)
		return 1
	}

	eng := engine.New(records, engine.WithLogger(logger), engine.WithConfig(cfg))

	if flags.matrixSearch != "" {
		mf, err := os.Open(flags.matrixSearch)
		if err != nil {
			logger.Printf("opening matrix file: %v", err)
			return 1
		}
		defer mf.Close()
		m, err := matrix.Parse(mf)
		if err != nil {
			logger.Printf("parsing matrix file: %v", err)
			return 1
		}
		eng.LoadMatrix(m)
	}

	budget, err := flags.budget()
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	queries, err := flags.queries()
	if err != nil {
		logger.Printf("reading queries: %v", err)
		return 1
	}

	filter := flags.filter()
	batchQueries := make([]batch.Query, len(queries))
	for i, q := range queries {
		f := filter
		if q.HasV {
			v := q.VGene
			f.VGene = &v
		}
		if q.HasJ {
			j := q.JGene
			f.JGene = &j
		}
		batchQueries[i] = batch.Query{Query: q.Query, Budget: budget, Filter: f}
	}

	outcomes := batch.Run(context.Background(), eng, batchQueries, cfg.ConcurrencyMultiplier)

	var rows []output.Row
	for _, q := range queries {
		outcome := outcomes[q.Query]
		if outcome.Err != nil {
			logger.Printf("query %q: %v", q.Query, outcome.Err)
			continue
		}
		for _, m := range outcome.Matches {
			rows = append(rows, matchRow(eng, q.Query, m, budget))
		}
	}

	outPath := flags.output
	if err := os.MkdirAll(outPath, 0755); err != nil {
		logger.Printf("creating output directory: %v", err)
		return 1
	}
	resultPath := outPath + "/results.tsv"
	if err := output.Write(resultPath, rows); err != nil {
		logger.Printf("writing output: %v", err)
		return 1
	}

	return 0
}

func matchRow(eng *engine.Engine, query string, m engine.Result, budget search.Budget) output.Row {
	c := eng.Corpus()
	row := output.Row{
		Query: query,
		Match: c.Junction(m.Index),
		VGene: c.VTag(m.Index),
		JGene: c.JTag(m.Index),
	}
	switch {
	case budget.Kind() == search.CostKind:
		row.Dist = output.FormatFloat(m.Cost)
	case budget.Kind() == search.OpsKind && len(m.Ops) > 0:
		best := m.Ops[0]
		row.Dist = output.FormatOps(best.Distance, best.Insertions, best.Deletions, best.Substitutions)
	default:
		row.Dist = output.FormatInt(m.Distance)
	}
	return row
}

func loadConfig() (engine.Config, error) {
	path, err := xdg.ConfigFile("tcrtrie/config.yaml")
	if err != nil {
		return engine.DefaultConfig(), nil
	}
	cfg, err := engine.LoadConfig(path)
	if os.IsNotExist(err) {
		return engine.DefaultConfig(), nil
	}
	return cfg, err
}

type cliFlags struct {
	input        string
	output       string
	query        string
	inputQueries string
	nEdits       int
	nEditsSet    bool
	nSub         int
	nIns         int
	nDel         int
	opsSet       bool
	matrixSearch  string
	scoreRadius   float64
	scoreRadiusOK bool
	vGene         string
	jGene         string
	hasVGene      bool
	hasJGene      bool
}

func (f *cliFlags) budget() (search.Budget, error) {
	modes := 0
	if f.nEditsSet {
		modes++
	}
	if f.opsSet {
		modes++
	}
	if f.matrixSearch != "" {
		modes++
	}
	if modes == 0 {
		return search.Budget{}, fmt.Errorf("exactly one of --n-edits, --n-sub/--n-ins/--n-del, or --matrix-search/--score-radius is required")
	}
	if modes > 1 {
		return search.Budget{}, fmt.Errorf("--n-edits, per-operation bounds, and --matrix-search are mutually exclusive")
	}
	switch {
	case f.nEditsSet:
		return search.Edits(f.nEdits), nil
	case f.opsSet:
		return search.Ops(f.nSub, f.nIns, f.nDel), nil
	default:
		return search.Cost(f.scoreRadius), nil
	}
}

func (f *cliFlags) filter() search.Filter {
	var flt search.Filter
	if f.hasVGene {
		v := f.vGene
		flt.VGene = &v
	}
	if f.hasJGene {
		j := f.jGene
		flt.JGene = &j
	}
	return flt
}

func (f *cliFlags) queries() ([]airr.BatchQuery, error) {
	if f.query != "" && f.inputQueries != "" {
		return nil, fmt.Errorf("--query and --input-queries are mutually exclusive")
	}
	if f.query != "" {
		return []airr.BatchQuery{{Query: f.query}}, nil
	}
	qf, err := os.Open(f.inputQueries)
	if err != nil {
		return nil, err
	}
	defer qf.Close()
	return airr.ParseQueries(qf)
}

// parseFlags defines the CLI's flags. A short form like -i would be
// ambiguous between --input and an insertion bound, so this CLI names
// every flag with an unambiguous long form instead.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("tcrtrie", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	f := &cliFlags{}
	fs.StringVar(&f.input, "input", "", "path to corpus file (required)")
	fs.StringVar(&f.output, "output", "./", "output directory")
	fs.StringVar(&f.query, "query", "", "single query string")
	fs.StringVar(&f.inputQueries, "input-queries", "", "path to a TSV of batch queries")
	nEdits := fs.Int("n-edits", 0, "integer Levenshtein budget")
	nSub := fs.Int("n-sub", 0, "substitution bound (per-operation mode)")
	nIns := fs.Int("n-ins", 0, "insertion bound (per-operation mode)")
	nDel := fs.Int("n-del", 0, "deletion bound (per-operation mode)")
	fs.StringVar(&f.matrixSearch, "matrix-search", "", "path to cost matrix")
	fs.Float64Var(&f.scoreRadius, "score-radius", 0, "real budget for matrix search (required with --matrix-search)")
	fs.StringVar(&f.vGene, "v-gene", "", "V-gene equality filter")
	fs.StringVar(&f.jGene, "j-gene", "", "J-gene equality filter")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if f.input == "" {
		return nil, fmt.Errorf("--input is required")
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n-edits":
			f.nEdits, f.nEditsSet = *nEdits, true
		case "n-sub", "n-ins", "n-del":
			f.opsSet = true
		case "v-gene":
			f.hasVGene = true
		case "j-gene":
			f.hasJGene = true
		case "score-radius":
			f.scoreRadiusOK = true
		}
	})
	f.nSub, f.nIns, f.nDel = *nSub, *nIns, *nDel
	if f.matrixSearch != "" && !f.scoreRadiusOK {
		return nil, fmt.Errorf("--score-radius is required with --matrix-search")
	}
	return f, nil
}
