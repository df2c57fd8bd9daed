package changelog

import (
	"fmt"

	"go.uber.org/zap"
)

// Options configures a pipeline run.
type Options struct {
	Paths            SourcePaths
	Output           string
	ExcludeComponent string
	NoteField        string
	// Logger receives per-stage diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Result describes a completed run.
type Result struct {
	Document *Document
	// Extracted holds every parsed record, including filtered ones.
	Extracted []Record
	// Blank counts metadata lines skipped as empty.
	Blank int
}

// Skipped returns the number of records removed by the filter.
func (r *Result) Skipped() int {
	return len(r.Extracted) - len(r.Document.Records)
}

// Build runs every stage except writing: load, correlate, extract, filter,
// and document assembly.
func Build(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	excluded := opts.ExcludeComponent
	if excluded == "" {
		excluded = DefaultExcludeComponent
	}

	sources, err := LoadSources(opts.Paths)
	if err != nil {
		return nil, fmt.Errorf("loading sources: %w", err)
	}
	log.Debug("loaded sources", zap.Stringer("sources", sources))

	rows, err := Correlate(sources)
	if err != nil {
		return nil, fmt.Errorf("correlating exports: %w", err)
	}
	blank := len(sources.PullRequests) - len(rows)
	log.Debug("correlated exports", zap.Int("rows", len(rows)), zap.Int("blank", blank))

	records, err := Extract(rows, ExtractOptions{NoteField: opts.NoteField, ExcludeComponent: excluded})
	if err != nil {
		return nil, fmt.Errorf("extracting fields: %w", err)
	}

	kept := Filter(records, excluded)
	if ce := log.Check(zap.DebugLevel, "filtered records"); ce != nil {
		for _, rec := range records {
			if !IsUserRelevant(rec, excluded) {
				log.Debug("dropping internal record", zap.String("key", rec.Key), zap.Int("line", rec.Line))
			}
		}
		ce.Write(zap.Int("kept", len(kept)), zap.Int("dropped", len(records)-len(kept)))
	}

	return &Result{
		Document:  &Document{Baseline: sources.Baseline, Records: kept},
		Extracted: records,
		Blank:     blank,
	}, nil
}

// Generate runs the whole pipeline and writes the change log to opts.Output.
// Nothing is written unless every earlier stage succeeds.
func Generate(opts Options) (*Result, error) {
	res, err := Build(opts)
	if err != nil {
		return nil, err
	}

	if err := WriteFile(opts.Output, res.Document); err != nil {
		return nil, err
	}

	if opts.Logger != nil {
		opts.Logger.Debug("wrote change log",
			zap.String("path", opts.Output),
			zap.Int("entries", len(res.Document.Records)))
	}
	return res, nil
}
