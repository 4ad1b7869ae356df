// Package pipeline drives page-by-page document traversal with a chosen
// counting strategy and bounded memory.
//
// [Run] visits pages strictly in order 1..N, applies one strategy per
// page, folds the counts into a running aggregate, and emits a
// synchronous event after each page. A page's handle is released before
// the next page is requested, so the working set never exceeds one page.
// Every few pages the pipeline calls an injected garbage-collection
// hint; the hint is advisory and the pipeline behaves identically when
// it is absent.
//
// [RunSample] is the one-shot variant used for classification: it
// visits a pre-selected list of pages with the streaming counter and
// returns the aggregate without touching the rest of the document.
//
// Neither function closes the source; the caller owns the document's
// lifecycle.
package pipeline
