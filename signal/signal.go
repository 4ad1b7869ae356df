package signal

// PageSignal holds the content counts extracted from a single page.
// All counts are non-negative. A PageSignal is immutable once produced;
// the aggregator that requested it owns the value.
type PageSignal struct {
	Images    int // raster images painted or declared on the page
	Vectors   int // logical vector shapes painted or declared on the page
	TextItems int // text-show operations on the page
}

// StreamResult is the outcome of a full content stream scan.
type StreamResult struct {
	Signal PageSignal

	// LargeImage is set when the page contains at least one image whose
	// declared width and height both exceed the configured dimension, or
	// when inline images were found on a page with no resource dictionary
	// to measure them against.
	LargeImage bool

	// Text is the concatenated page text, if collection was requested.
	Text string
}

// XObjectKind classifies an external object referenced by a paint operator.
type XObjectKind int

const (
	KindUnknown XObjectKind = iota // unresolvable or unrecognized subtype
	KindImage                      // raster image XObject
	KindForm                       // reusable vector/graphics group
)
