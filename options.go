package docsift

import (
	"github.com/docsift/docsift/classify"
	"github.com/docsift/docsift/pipeline"
)

// Strategy selects the per-page counting strategy for full-document
// statistics. Classification always uses the streaming counter.
type Strategy = pipeline.Strategy

const (
	// StrategyStream counts painted occurrences from the content stream.
	StrategyStream = pipeline.StrategyStream

	// StrategyResources counts declared resources from the page's
	// resource dictionary. Cheaper, approximate.
	StrategyResources = pipeline.StrategyResources
)

// DefaultSampleSize is the number of pages classification samples.
const DefaultSampleSize = 5

// AnalyzeOptions holds configuration for analysis runs.
type AnalyzeOptions struct {
	sampleSize int
	strategy   Strategy
	withText   bool
	onPage     func(pipeline.Event) error
	gcEvery    int
	gcHint     func()
	thresholds classify.Thresholds
}

// defaultOptions returns the default analysis options.
func defaultOptions() AnalyzeOptions {
	return AnalyzeOptions{
		sampleSize: DefaultSampleSize,
		strategy:   StrategyStream,
		withText:   false,
		gcEvery:    pipeline.DefaultGCEvery,
		thresholds: classify.DefaultThresholds(),
	}
}

// clone creates a copy of AnalyzeOptions.
func (o AnalyzeOptions) clone() AnalyzeOptions {
	return o
}
