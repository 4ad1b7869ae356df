package classify

import (
	"math"

	"github.com/docsift/docsift/signal"
)

// Aggregate holds running totals over the pages visited so far. It is
// owned by a single driving loop and mutated strictly sequentially.
type Aggregate struct {
	PagesVisited        int `json:"pagesVisited" yaml:"pages_visited"`
	TotalImages         int `json:"totalImages" yaml:"total_images"`
	TotalVectors        int `json:"totalVectors" yaml:"total_vectors"`
	TotalTextItems      int `json:"totalTextItems" yaml:"total_text_items"`
	PagesWithLargeImage int `json:"pagesWithLargeImage" yaml:"pages_with_large_image"`
}

// AddPage folds one page's signal into the totals.
func (a *Aggregate) AddPage(sig signal.PageSignal, largeImage bool) {
	a.PagesVisited++
	a.TotalImages += sig.Images
	a.TotalVectors += sig.Vectors
	a.TotalTextItems += sig.TextItems
	if largeImage {
		a.PagesWithLargeImage++
	}
}

// Derived holds per-page averages and full-document estimates computed
// from an Aggregate. Averages and ratios are rounded to two decimals.
type Derived struct {
	TotalPages          int     `json:"totalPages" yaml:"total_pages"`
	SampledPages        int     `json:"sampledPages" yaml:"sampled_pages"`
	AvgImagesPerPage    float64 `json:"avgImagesPerPage" yaml:"avg_images_per_page"`
	AvgVectorsPerPage   float64 `json:"avgVectorsPerPage" yaml:"avg_vectors_per_page"`
	AvgTextItemsPerPage float64 `json:"avgTextItemsPerPage" yaml:"avg_text_items_per_page"`
	LargeImageRatio     float64 `json:"largeImageRatio" yaml:"large_image_ratio"`
	EstimatedImages     int     `json:"estimatedImages" yaml:"estimated_images"`
	EstimatedVectors    int     `json:"estimatedVectors" yaml:"estimated_vectors"`
}

// Type is the detected document kind.
type Type string

const (
	TypeScan   Type = "scan"
	TypeVector Type = "vector"
	TypeText   Type = "text"
)

// Analysis is the classifier's output: a type label, a confidence in
// [0, 1], and the derived statistics the decision was based on.
// An Analysis is immutable once produced.
type Analysis struct {
	Type       Type    `json:"type" yaml:"type"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Stats      Derived `json:"stats" yaml:"stats"`
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
