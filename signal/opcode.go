package signal

// OpClass is the counting class of a content stream instruction.
//
// Modeling the dispatch as a class enum rather than membership tests
// against operator name lists keeps the state machine in
// [Counter.Apply] exhaustive and lets pre-aggregated instruction sets
// (which carry classes like OpConstructPath directly) share it.
type OpClass int

const (
	// OpOther is any instruction that does not affect counting.
	OpOther OpClass = iota

	// OpImage paints a raster image: an image XObject, an image mask,
	// or an inline image. It interrupts any open vector sequence
	// without counting it.
	OpImage

	// OpConstructPath is a fully self-describing vector object. Raw PDF
	// content streams never emit it (paths arrive as segment runs);
	// pre-aggregated instruction sets use it for complete shapes.
	OpConstructPath

	// OpPathSegment starts or continues an open vector sequence.
	OpPathSegment

	// OpTerminator paints the current path (stroke, fill and their
	// variants), closing the open vector sequence if there is one.
	OpTerminator

	// OpTextShow draws a text item.
	OpTextShow
)

// ClassifyOp maps a raw content stream operator to its counting class.
//
// Context-dependent operators are not handled here: "Do" needs resource
// resolution to distinguish images from form XObjects, and the inline
// image triple BI/ID/EI needs suppression state. [Counter.Process]
// handles both before falling back to this mapping.
func ClassifyOp(op string) OpClass {
	switch op {
	case "m", "l", "c", "v", "y", "h", "re":
		return OpPathSegment
	case "S", "s", "f", "F", "f*", "B", "B*", "b", "b*":
		return OpTerminator
	case "Tj", "TJ", "'", "\"":
		return OpTextShow
	default:
		return OpOther
	}
}
