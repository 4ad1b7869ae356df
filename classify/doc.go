// Package classify turns sampled per-page content signals into a
// document type label with a confidence score.
//
// The classifier distinguishes three document kinds:
//
//   - scan: pages are dominated by raster images with little text,
//     typical of scanned paper.
//   - vector: pages carry vector graphics but neither images nor
//     meaningful text, typical of drawings and diagrams.
//   - text: everything else, including ordinary text-native documents.
//
// Decision rules are evaluated in order and the first match wins; the
// thresholds are carried in a [Thresholds] value so callers can override
// them from configuration. Classification is a pure function of its
// inputs: identical aggregates always produce identical results.
package classify
