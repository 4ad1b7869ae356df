// Package signal extracts structural content signals from PDF pages.
//
// A page's signal is the number of raster images, logical vector shapes,
// and text items it contains. Two counting strategies are provided:
//
//   - [Counter] scans a page's content stream operator by operator and
//     counts rendered occurrences. Vector shapes are counted as logical
//     objects, not raw instructions: a shape may span many path segment
//     operators but is attributed exactly once, when it is painted or
//     when the stream ends with the path still open.
//
//   - [InspectResources] reads only the page's resource dictionary and
//     counts declared resources (XObjects, patterns, shadings). It is
//     cheaper because no content stream is materialized, but it counts
//     declarations rather than paint operations.
//
// # Streaming
//
// Counter is a push-style consumer: feed it one operator at a time via
// [Counter.Process] (raw content stream operators) or [Counter.Apply]
// (pre-classified instruction sets), then call [Counter.Finish]. It holds
// no reference to the stream, so peak memory stays bounded by the
// tokenizer's buffer regardless of page size.
package signal
