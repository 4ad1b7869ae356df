package docsift

import (
	"fmt"
	"runtime"

	"github.com/docsift/docsift/classify"
	"github.com/docsift/docsift/document"
	"github.com/docsift/docsift/pipeline"
	"github.com/docsift/docsift/sample"
)

// Analyzer provides a fluent interface for classifying documents and
// gathering content statistics. Each configuration method returns a new
// Analyzer instance, making chains safe to share and reuse.
type Analyzer struct {
	// Source
	path string
	data []byte

	// Document lifecycle
	doc       *document.Document
	ownsDoc   bool // true if we opened the document and should close it
	docOpened bool

	// Configuration
	options AnalyzeOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Analyzer with copied options.
// This ensures immutability: each chain method returns a new instance.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		path:      a.path,
		data:      a.data,
		doc:       a.doc,
		ownsDoc:   a.ownsDoc,
		docOpened: a.docOpened,
		options:   a.options.clone(),
		err:       a.err,
		warnings:  append([]Warning(nil), a.warnings...),
	}
}

// ============================================================================
// Configuration (chainable)
// ============================================================================

// SampleSize sets the number of pages classification samples.
// Values below 1 leave the default in place.
func (a *Analyzer) SampleSize(n int) *Analyzer {
	next := a.clone()
	if n >= 1 {
		next.options.sampleSize = n
	}
	return next
}

// CountStrategy selects the counting strategy for full-document
// statistics.
func (a *Analyzer) CountStrategy(s Strategy) *Analyzer {
	next := a.clone()
	next.options.strategy = s
	return next
}

// WithText requests concatenated document text in statistics results.
func (a *Analyzer) WithText() *Analyzer {
	next := a.clone()
	next.options.withText = true
	return next
}

// OnPage installs a progress callback invoked synchronously after each
// processed page. An error returned from the callback aborts the run.
func (a *Analyzer) OnPage(fn func(pipeline.Event) error) *Analyzer {
	next := a.clone()
	next.options.onPage = fn
	return next
}

// GCEvery sets the page interval for the garbage-collection hint used
// during full-document runs.
func (a *Analyzer) GCEvery(n int) *Analyzer {
	next := a.clone()
	if n >= 1 {
		next.options.gcEvery = n
	}
	return next
}

// RuntimeGC installs the Go runtime's garbage collector as the memory
// pressure release point. By default no hint is requested.
func (a *Analyzer) RuntimeGC() *Analyzer {
	next := a.clone()
	next.options.gcHint = runtime.GC
	return next
}

// Thresholds overrides the classifier's decision thresholds.
func (a *Analyzer) Thresholds(t classify.Thresholds) *Analyzer {
	next := a.clone()
	next.options.thresholds = t
	return next
}

// ============================================================================
// Lifecycle
// ============================================================================

// ensureDocument opens the underlying document if not already open.
func (a *Analyzer) ensureDocument() error {
	if a.docOpened {
		return nil
	}

	var (
		doc *document.Document
		err error
	)
	switch {
	case a.path != "":
		doc, err = document.Open(a.path)
	case a.data != nil:
		doc, err = document.FromBytes(a.data)
	default:
		err = document.ErrInvalidSource
	}
	if err != nil {
		return err
	}

	doc.LargeImageDim = a.options.thresholds.LargeImageDim
	a.doc = doc
	a.ownsDoc = true
	a.docOpened = true
	return nil
}

// Close releases the underlying document if this Analyzer owns it.
// Terminal operations call Close themselves; explicit calls are only
// needed when a chain is abandoned after ensureDocument has run.
func (a *Analyzer) Close() error {
	if a.doc == nil || !a.ownsDoc {
		return nil
	}
	return a.doc.Close()
}

func (a *Analyzer) warn(code, message string) {
	a.warnings = append(a.warnings, Warning{Code: code, Message: message})
}

// docSource adapts document.Document to the pipeline's Source interface.
type docSource struct {
	d *document.Document
}

func (s docSource) NumPages() (int, error) { return s.d.NumPages() }
func (s docSource) Close() error           { return s.d.Close() }

func (s docSource) Page(n int) (pipeline.Page, error) {
	p, err := s.d.Page(n)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ============================================================================
// Terminal Operations (execute analysis and return results)
// ============================================================================

// Stats holds full-document content statistics.
type Stats struct {
	TotalPages int                `json:"totalPages" yaml:"total_pages"`
	Aggregate  classify.Aggregate `json:"aggregate" yaml:"aggregate"`
	Text       string             `json:"text,omitempty" yaml:"text,omitempty"`
}

// Report combines a classification with full-document statistics.
type Report struct {
	Analysis classify.Analysis `json:"analysis" yaml:"analysis"`
	Stats    Stats             `json:"stats" yaml:"stats"`
}

// Classify samples a handful of pages with the streaming counter and
// returns the document's type label with a confidence score. This is a
// terminal operation that closes the underlying document.
//
// Example:
//
//	analysis, warnings, err := docsift.Open("document.pdf").Classify()
func (a *Analyzer) Classify() (classify.Analysis, []Warning, error) {
	if a.err != nil {
		return classify.Analysis{}, nil, a.err
	}
	if err := a.ensureDocument(); err != nil {
		return classify.Analysis{}, nil, err
	}
	defer a.Close()

	analysis, err := a.classify()
	return analysis, a.warnings, err
}

// Stats processes every page with the configured counting strategy and
// returns the accumulated totals, plus concatenated text if requested.
// This is a terminal operation that closes the underlying document.
func (a *Analyzer) Stats() (Stats, []Warning, error) {
	if a.err != nil {
		return Stats{}, nil, a.err
	}
	if err := a.ensureDocument(); err != nil {
		return Stats{}, nil, err
	}
	defer a.Close()

	stats, err := a.stats(a.options.strategy)
	return stats, a.warnings, err
}

// Analyze runs smart extraction: classification over a small streaming
// sample first, then a full-document pass with the cheap resource
// counting strategy regardless of the detected type. The classification
// is reported alongside the totals; trading a little counting precision
// uniformly buys a bounded memory ceiling on every document type.
// This is a terminal operation that closes the underlying document.
func (a *Analyzer) Analyze() (Report, []Warning, error) {
	if a.err != nil {
		return Report{}, nil, a.err
	}
	if err := a.ensureDocument(); err != nil {
		return Report{}, nil, err
	}
	defer a.Close()

	analysis, err := a.classify()
	if err != nil {
		return Report{}, a.warnings, err
	}

	stats, err := a.stats(StrategyResources)
	if err != nil {
		return Report{}, a.warnings, err
	}

	return Report{Analysis: analysis, Stats: stats}, a.warnings, nil
}

// classify runs the sampling path over the open document.
func (a *Analyzer) classify() (classify.Analysis, error) {
	total, err := a.doc.NumPages()
	if err != nil {
		return classify.Analysis{}, err
	}

	pages := sample.Pages(total, a.options.sampleSize)
	agg, err := pipeline.RunSample(docSource{a.doc}, pages)
	if err != nil {
		return classify.Analysis{}, fmt.Errorf("classifying: %w", err)
	}

	return classify.Classify(agg, total, a.options.thresholds), nil
}

// stats runs the full pipeline over the open document.
func (a *Analyzer) stats(strategy Strategy) (Stats, error) {
	res, err := pipeline.Run(docSource{a.doc}, pipeline.Options{
		Strategy: strategy,
		WithText: a.options.withText,
		OnPage:   a.options.onPage,
		GCEvery:  a.options.gcEvery,
		GCHint:   a.options.gcHint,
		Warn: func(msg string) {
			a.warn("resource-skip", msg)
		},
	})
	if err != nil {
		return Stats{}, fmt.Errorf("extracting statistics: %w", err)
	}

	return Stats{
		TotalPages: res.TotalPages,
		Aggregate:  res.Aggregate,
		Text:       res.Text,
	}, nil
}
