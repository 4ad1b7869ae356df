package classify

import "math"

// Thresholds carries the tunable constants of the decision rules.
type Thresholds struct {
	// MinTextItems is the per-page text item average below which a page
	// is considered text-poor.
	MinTextItems float64 `yaml:"min_text_items"`

	// MaxAvgImages is the per-page image average above which an image
	// count is treated as a counting anomaly rather than scan evidence.
	MaxAvgImages float64 `yaml:"max_avg_images"`

	// LargeImageDim is the size, in default user space units, that both
	// dimensions of an image must exceed for a page to be flagged as
	// carrying a large image.
	LargeImageDim int `yaml:"large_image_dim"`
}

// DefaultThresholds returns the stock decision thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinTextItems:  30,
		MaxAvgImages:  100,
		LargeImageDim: 1000,
	}
}

// AnomalousImageCount reports whether a per-page image average is high
// enough to be a probable counting error. The classifier refuses to call
// such documents scans and lets them fall through to the text default.
func (t Thresholds) AnomalousImageCount(avgImages float64) bool {
	return avgImages > t.MaxAvgImages
}

// Classify evaluates the decision rules over the sampled aggregate and
// the document's total page count.
//
// Rules are checked in order, first match wins:
//
//  1. scan: text-poor pages with images (but not anomalously many).
//  2. vector: text-poor pages with vector shapes and no images at all.
//  3. text: the default, which also absorbs anomalous image counts.
func Classify(agg Aggregate, totalPages int, t Thresholds) Analysis {
	var avgImages, avgVectors, avgText, largeRatio float64
	if agg.PagesVisited > 0 {
		visited := float64(agg.PagesVisited)
		avgImages = float64(agg.TotalImages) / visited
		avgVectors = float64(agg.TotalVectors) / visited
		avgText = float64(agg.TotalTextItems) / visited
		largeRatio = float64(agg.PagesWithLargeImage) / visited
	}

	stats := Derived{
		TotalPages:          totalPages,
		SampledPages:        agg.PagesVisited,
		AvgImagesPerPage:    round2(avgImages),
		AvgVectorsPerPage:   round2(avgVectors),
		AvgTextItemsPerPage: round2(avgText),
		LargeImageRatio:     round2(largeRatio),
		EstimatedImages:     int(math.Round(avgImages * float64(totalPages))),
		EstimatedVectors:    int(math.Round(avgVectors * float64(totalPages))),
	}

	textPoor := avgText < t.MinTextItems

	switch {
	case textPoor && avgImages > 0 && !t.AnomalousImageCount(avgImages):
		return Analysis{
			Type:       TypeScan,
			Confidence: math.Min(0.95, 0.7+(avgImages/t.MaxAvgImages)*0.25),
			Stats:      stats,
		}
	case textPoor && avgImages == 0 && avgVectors > 0:
		return Analysis{
			Type:       TypeVector,
			Confidence: math.Min(0.9, 0.7+(avgVectors/10)*0.2),
			Stats:      stats,
		}
	default:
		return Analysis{
			Type:       TypeText,
			Confidence: math.Min(0.9, 0.6+(avgText/100)*0.3),
			Stats:      stats,
		}
	}
}
