package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/viant/wordvec/config"
	"github.com/viant/wordvec/corpus"
	"github.com/viant/wordvec/engine"
	"github.com/viant/wordvec/loader"
	"github.com/viant/wordvec/neighbor"
	"github.com/viant/wordvec/table"
	"github.com/viant/wordvec/table/sqltable"
)

var errUsage = errors.New("usage")

type command func(ctx context.Context, env *env, args []string) error

var commands = map[string]struct {
	run      command
	minArgs  int
	argsHelp string
}{
	"vector":    {vectorCmd, 1, "WORD"},
	"members":   {membersCmd, 1, "SUBSTRING"},
	"neighbors": {neighborsCmd, 1, "WORD"},
	"pair":      {pairCmd, 2, "WORD WORD..."},
	"nearest":   {nearestCmd, 1, "WORD"},
	"chain":     {chainCmd, 1, "WORD"},
	"docvec":    {docvecCmd, 0, "WORD..."},
	"top":       {topCmd, 1, "WORD..."},
	"origin":    {originCmd, 1, "WORD..."},
	"position":  {positionCmd, 1, "WORD..."},
	"document":  {documentCmd, 1, "DOCUMENT_ID"},
	"import":    {importCmd, 0, ""},
}

// env carries the parsed flags, the effective configuration and the output.
type env struct {
	flags *flag.FlagSet
	cfg   *config.Config
	out   io.Writer

	configURL   *string
	tableURL    *string
	format      *string
	limit       *int
	dsn         *string
	corpusURL   *string
	threshold   *float64
	topN        *int
	chainLength *int
	exclude     *string
	candidates  *string
	pos         *int
	skip        *int
	verbose     *bool
}

func newEnv(name string, out io.Writer) *env {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	return &env{
		flags:       flags,
		out:         out,
		configURL:   flags.String("config", "", "config yaml URL (optional)"),
		tableURL:    flags.String("table", "", "embedding file URL (text, binary, optionally .gz)"),
		format:      flags.String("format", "", "embedding format: auto|text|binary"),
		limit:       flags.Int("limit", 0, "read only the first N embeddings"),
		dsn:         flags.String("db", "", "SQLite database holding an imported table"),
		corpusURL:   flags.String("corpus", "", "document folder URL"),
		threshold:   flags.Float64("threshold", 0, "minimum cosine similarity"),
		topN:        flags.Int("n", 0, "number of results (0 = all)"),
		chainLength: flags.Int("length", 0, "chain length"),
		exclude:     flags.String("exclude", "", "comma-separated words to exclude"),
		candidates:  flags.String("candidates", "", "comma-separated candidate document ids"),
		pos:         flags.Int("pos", 0, "vector coordinate"),
		skip:        flags.Int("skip", 0, "leading running-mean values to drop"),
		verbose:     flags.Bool("v", false, "log progress"),
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return errUsage
	}
	e := newEnv(args[0], out)
	if err := e.flags.Parse(args[1:]); err != nil {
		return err
	}
	if e.flags.NArg() < cmd.minArgs {
		return fmt.Errorf("expected arguments: %s", cmd.argsHelp)
	}
	if err := e.configure(ctx); err != nil {
		return err
	}
	return cmd.run(ctx, e, e.flags.Args())
}

// configure loads the optional config file and applies explicitly set flags
// over it.
func (e *env) configure(ctx context.Context) error {
	e.cfg = config.Default()
	if *e.configURL != "" {
		cfg, err := config.Load(ctx, *e.configURL)
		if err != nil {
			return err
		}
		e.cfg = cfg
	}
	e.flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "table":
			e.cfg.Table.URL = *e.tableURL
		case "format":
			e.cfg.Table.Format = *e.format
		case "limit":
			e.cfg.Table.Limit = *e.limit
		case "db":
			e.cfg.Table.DSN = *e.dsn
		case "corpus":
			e.cfg.Corpus.URL = *e.corpusURL
		case "threshold":
			e.cfg.Query.Threshold = *e.threshold
		case "n":
			e.cfg.Query.TopN = *e.topN
		case "length":
			e.cfg.Query.ChainLength = *e.chainLength
		}
	})
	return e.cfg.Validate()
}

func (e *env) logf(format string, args ...any) {
	if *e.verbose {
		log.Printf(format, args...)
	}
}

// loadFile reads the embedding file named by the table section.
func (e *env) loadFile(ctx context.Context) (table.Table, error) {
	if e.cfg.Table.URL == "" {
		return nil, fmt.Errorf("no embedding table: set --table or --db")
	}
	opts, err := e.cfg.LoaderOptions()
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, e.cfg.Table.URL, append(opts, loader.WithLogf(e.logf))...)
}

// table opens the SQLite table when a DSN is configured, otherwise loads the
// embedding file. The returned function releases the database.
func (e *env) table(ctx context.Context) (table.Table, func(), error) {
	if e.cfg.Table.DSN == "" {
		tbl, err := e.loadFile(ctx)
		return tbl, func() {}, err
	}
	db, err := engine.OpenWithFunctions(e.cfg.Table.DSN)
	if err != nil {
		return nil, nil, err
	}
	tbl, err := sqltable.Open(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	e.logf("opened %d words from %s", len(tbl.Vocabulary()), e.cfg.Table.DSN)
	return tbl, func() { _ = db.Close() }, nil
}

func withTable(ctx context.Context, e *env, fn func(t table.Table) error) error {
	tbl, release, err := e.table(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(tbl)
}

func vectorCmd(ctx context.Context, e *env, args []string) error {
	return withTable(ctx, e, func(t table.Table) error {
		fmt.Fprintf(e.out, "%s\t%s\n", table.Normalize(args[0]), formatVector(neighbor.VectorOf(t, args[0])))
		return nil
	})
}

func membersCmd(ctx context.Context, e *env, args []string) error {
	return withTable(ctx, e, func(t table.Table) error {
		for _, token := range neighbor.SubstringMembers(t, args[0]) {
			fmt.Fprintln(e.out, token)
		}
		return nil
	})
}

func neighborsCmd(ctx context.Context, e *env, args []string) error {
	return withTable(ctx, e, func(t table.Table) error {
		items, err := neighbor.NeighborsAboveThreshold(t, args[0], e.cfg.Query.Threshold)
		if err != nil {
			return err
		}
		printScored(e.out, items)
		return nil
	})
}

func pairCmd(ctx context.Context, e *env, args []string) error {
	return withTable(ctx, e, func(t table.Table) error {
		pair, err := neighbor.ClosestPair(t, args)
		if err != nil || pair == nil {
			return err
		}
		fmt.Fprintf(e.out, "%s\t%s\t%s\n", pair.A, pair.B, formatScore(pair.Score))
		return nil
	})
}

func nearestCmd(ctx context.Context, e *env, args []string) error {
	return withTable(ctx, e, func(t table.Table) error {
		item, err := neighbor.NearestExcluding(t, args[0], splitCSV(*e.exclude))
		if err != nil || item == nil {
			return err
		}
		printScored(e.out, []table.ScoredToken{*item})
		return nil
	})
}

func chainCmd(ctx context.Context, e *env, args []string) error {
	return withTable(ctx, e, func(t table.Table) error {
		items, err := neighbor.NeighborChain(t, args[0], e.cfg.Query.ChainLength)
		if err != nil {
			return err
		}
		printScored(e.out, items)
		return nil
	})
}

func docvecCmd(ctx context.Context, e *env, args []string) error {
	return withTable(ctx, e, func(t table.Table) error {
		fmt.Fprintln(e.out, formatVector(neighbor.DocumentVector(t, args)))
		return nil
	})
}

func topCmd(ctx context.Context, e *env, args []string) error {
	return withTable(ctx, e, func(t table.Table) error {
		printScored(e.out, neighbor.TopWords(t, args, e.cfg.Query.TopN))
		return nil
	})
}

func originCmd(ctx context.Context, e *env, args []string) error {
	return withTable(ctx, e, func(t table.Table) error {
		if item := neighbor.NearestToOrigin(t, args); item != nil {
			printScored(e.out, []table.ScoredToken{*item})
		}
		return nil
	})
}

func positionCmd(ctx context.Context, e *env, args []string) error {
	return withTable(ctx, e, func(t table.Table) error {
		values, err := neighbor.CumulativeMeanAt(t, args, *e.pos, *e.skip)
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Fprintln(e.out, formatScore(v))
		}
		return nil
	})
}

func documentCmd(ctx context.Context, e *env, args []string) error {
	if e.cfg.Corpus.URL == "" {
		return fmt.Errorf("no corpus: set --corpus")
	}
	docs, err := corpus.Load(ctx, e.cfg.Corpus.URL, e.cfg.Corpus.SkipExt...)
	if err != nil {
		return err
	}
	e.logf("loaded %d documents from %s", len(docs.DocumentIDs()), e.cfg.Corpus.URL)
	return withTable(ctx, e, func(t table.Table) error {
		match := neighbor.NearestDocument(t, docs, args[0], splitCSV(*e.candidates))
		if match != nil {
			fmt.Fprintf(e.out, "%s\t%s\n", match.ID, formatScore(match.Score))
		}
		return nil
	})
}

func importCmd(ctx context.Context, e *env, _ []string) error {
	if e.cfg.Table.DSN == "" {
		return fmt.Errorf("import requires --db")
	}
	src, err := e.loadFile(ctx)
	if err != nil {
		return err
	}
	db, err := engine.OpenWithFunctions(e.cfg.Table.DSN)
	if err != nil {
		return err
	}
	defer db.Close()
	count, err := sqltable.Import(ctx, db, src)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "imported %d words into %s\n", count, e.cfg.Table.DSN)
	return nil
}

func printScored(w io.Writer, items []table.ScoredToken) {
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\n", item.Token, formatScore(item.Score))
	}
}

func formatScore(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

func formatVector(vec []float32) string {
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strings.Join(parts, " ")
}

func splitCSV(s string) []string {
	var ret []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ret = append(ret, part)
		}
	}
	return ret
}
