package pipeline

import (
	"fmt"
	"strings"

	"github.com/docsift/docsift/classify"
	"github.com/docsift/docsift/signal"
)

// Strategy selects how a page's counts are produced.
type Strategy int

const (
	// StrategyStream scans the page's content stream and counts painted
	// occurrences. Precise, but materializes and tokenizes the stream.
	StrategyStream Strategy = iota

	// StrategyResources reads only the page's resource dictionary and
	// counts declared objects. Cheap and approximate.
	StrategyResources
)

func (s Strategy) String() string {
	switch s {
	case StrategyStream:
		return "stream"
	case StrategyResources:
		return "resources"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Source is the document the pipeline pulls pages from.
type Source interface {
	NumPages() (int, error)
	Page(n int) (Page, error) // 1-based
	Close() error
}

// Page is one page's worth of counting capability. Implementations are
// handles; Release must drop any underlying per-page state.
type Page interface {
	// Scan counts painted objects from the content stream, optionally
	// collecting text in the same pass.
	Scan(withText bool) (signal.StreamResult, error)

	// Inspect counts declared resources. The second value is the number
	// of unreadable entries skipped.
	Inspect() (signal.PageSignal, int)

	// Text returns the page's decoded text without counting.
	Text() (string, error)

	Release()
}

// Event describes one processed page. Events are delivered synchronously
// and in page order.
type Event struct {
	Page       int
	TotalPages int
	Signal     signal.PageSignal
}

// Options configures a full-document run.
type Options struct {
	Strategy Strategy

	// WithText collects and concatenates page text into the result.
	WithText bool

	// OnPage, if set, is called after each page. An error aborts the
	// run and propagates to the caller.
	OnPage func(Event) error

	// Warn, if set, receives non-fatal degradation notices.
	Warn func(msg string)

	// GCEvery is the page interval for the garbage-collection hint.
	// Zero means the default of 5.
	GCEvery int

	// GCHint is the injected memory-pressure release point. Nil means
	// no hint is requested; the run is correct either way.
	GCHint func()
}

// DefaultGCEvery is the default page interval between GC hints.
const DefaultGCEvery = 5

// Result is the outcome of a full-document run.
type Result struct {
	TotalPages int
	Aggregate  classify.Aggregate
	Text       string
}

// Run processes every page of src in order. The source is not closed;
// callers must release it on all paths themselves.
func Run(src Source, opts Options) (Result, error) {
	var res Result

	total, err := src.NumPages()
	if err != nil {
		return res, err
	}
	res.TotalPages = total

	gcEvery := opts.GCEvery
	if gcEvery <= 0 {
		gcEvery = DefaultGCEvery
	}

	var text []string
	for n := 1; n <= total; n++ {
		sig, large, pageText, err := processPage(src, n, opts)
		if err != nil {
			return res, err
		}

		res.Aggregate.AddPage(sig, large)
		if opts.WithText && pageText != "" {
			text = append(text, pageText)
		}

		if opts.OnPage != nil {
			if err := opts.OnPage(Event{Page: n, TotalPages: total, Signal: sig}); err != nil {
				return res, fmt.Errorf("pipeline: page %d callback: %w", n, err)
			}
		}

		if opts.GCHint != nil && n%gcEvery == 0 {
			opts.GCHint()
		}
	}

	if opts.WithText {
		res.Text = joinPages(text)
	}
	return res, nil
}

// processPage applies exactly one counting strategy to page n and
// releases the handle before returning.
func processPage(src Source, n int, opts Options) (signal.PageSignal, bool, string, error) {
	page, err := src.Page(n)
	if err != nil {
		return signal.PageSignal{}, false, "", err
	}
	defer page.Release()

	switch opts.Strategy {
	case StrategyResources:
		sig, skipped := page.Inspect()
		if skipped > 0 && opts.Warn != nil {
			opts.Warn(fmt.Sprintf("page %d: %d unreadable resource entries skipped", n, skipped))
		}
		var text string
		if opts.WithText {
			text, err = page.Text()
			if err != nil {
				return signal.PageSignal{}, false, "", err
			}
		}
		return sig, false, text, nil

	default:
		res, err := page.Scan(opts.WithText)
		if err != nil {
			return signal.PageSignal{}, false, "", err
		}
		return res.Signal, res.LargeImage, res.Text, nil
	}
}

// RunSample visits the given pages with the streaming counter and
// returns the aggregate. Pages are visited in the order given; the
// source is not closed.
func RunSample(src Source, pages []int) (classify.Aggregate, error) {
	var agg classify.Aggregate
	for _, n := range pages {
		page, err := src.Page(n)
		if err != nil {
			return agg, err
		}
		res, err := page.Scan(false)
		page.Release()
		if err != nil {
			return agg, err
		}
		agg.AddPage(res.Signal, res.LargeImage)
	}
	return agg, nil
}

func joinPages(pages []string) string {
	return strings.Join(pages, "\n")
}
