// Package document adapts a parsed PDF file to the page-level access the
// counting and classification layers need.
//
// The heavy lifting (cross-reference tables, object resolution, stream
// decoding, page tree traversal, content stream tokenization) is done by
// seehuhn.de/go/pdf; this package narrows that surface to three
// per-page capabilities:
//
//   - a streaming operator scan of the page's content
//     ([Page.Scan], [Page.Text]),
//   - speculative resource dictionary inspection ([Page.Inspect]),
//   - declared image dimensions for large-image detection.
//
// Pages are cheap handles around the page dictionary. A page's working
// set lives only for the duration of one Scan/Inspect/Text call; call
// [Page.Release] before moving to the next page so a full-document run
// never retains more than one page at a time.
//
// Resource lookups are best effort: a malformed XObject, pattern, or
// shading entry contributes nothing, and only document-level failures
// (unreadable file, broken page tree, undecodable content stream)
// surface as errors.
package document
