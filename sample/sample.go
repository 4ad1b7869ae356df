// Package sample selects which pages of a document to visit when a full
// scan is too expensive.
package sample

// Pages returns the 1-based page indices to visit for a document of
// totalPages pages under a budget of sampleSize pages.
//
// Indices are strictly increasing, spread evenly across the document,
// always start at page 1, and never exceed totalPages. The result has
// min(sampleSize, totalPages) entries; when totalPages >= sampleSize no
// index repeats.
func Pages(totalPages, sampleSize int) []int {
	if totalPages <= 0 || sampleSize <= 0 {
		return nil
	}

	n := min(sampleSize, totalPages)
	step := max(1, totalPages/n)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = min(1+i*step, totalPages)
	}
	return indices
}
