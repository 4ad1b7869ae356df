// Package docsift classifies PDF documents by content type and extracts
// bulk content statistics with a fixed memory ceiling.
//
// A document is labeled scanned-image, vector-graphic, or text-native
// from a small sample of pages, and full-document statistics (text
// volume, image count, vector object count) are gathered page by page
// without ever holding more than one page's working set.
//
// Basic usage:
//
//	analysis, warnings, err := docsift.Open("document.pdf").Classify()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(analysis.Type, analysis.Confidence)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docsift.FormatWarnings(warnings))
//	}
//
// With options:
//
//	report, _, err := docsift.Open("atlas.pdf").
//	    SampleSize(8).
//	    WithText().
//	    Analyze()
//
// For advanced use cases the lower-level document, signal, classify and
// pipeline packages are also available.
package docsift

import (
	"github.com/docsift/docsift/document"
)

// Open prepares an Analyzer for the PDF file at path. The file is not
// touched until a terminal operation runs.
//
// Example:
//
//	analysis, warnings, err := docsift.Open("document.pdf").Classify()
func Open(path string) *Analyzer {
	return &Analyzer{
		path:    path,
		options: defaultOptions(),
	}
}

// FromBytes prepares an Analyzer for a PDF document held in memory.
// The data is not copied; keep it alive until the terminal operation
// returns.
func FromBytes(data []byte) *Analyzer {
	return &Analyzer{
		data:    data,
		options: defaultOptions(),
	}
}

// FromDocument creates an Analyzer from an already-opened document.
// The caller keeps ownership and is responsible for closing it.
func FromDocument(d *document.Document) *Analyzer {
	return &Analyzer{
		doc:       d,
		docOpened: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning
// (T, []Warning, error) and panics if the error is non-nil. It is
// intended for scripts and tests where error handling would be
// cumbersome.
//
// Example:
//
//	analysis := docsift.Must(docsift.Open("document.pdf").Classify())
func Must[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
