package signal

import (
	"seehuhn.de/go/pdf"
)

// seqState tracks whether a vector sequence is currently open.
// A sequence opens on the first path segment and closes when a
// terminator paints it or an image interrupts it.
type seqState int

const (
	seqIdle seqState = iota
	seqOpen
)

// Counter counts content objects in a single page's instruction stream.
//
// The zero value counts path and text operators only. Set ResolveXObject
// to classify "Do" operators and ImageSize/LargeDim to enable large-image
// detection. A Counter is single-use: feed operators, then call Finish.
type Counter struct {
	// ResolveXObject classifies the XObject named by a "Do" operator.
	// When nil, "Do" operators are ignored.
	ResolveXObject func(name pdf.Name) XObjectKind

	// ImageSize resolves the declared width and height of a named image
	// XObject. When nil, large-image detection falls back to treating
	// the presence of inline images as a large-image signal.
	ImageSize func(name pdf.Name) (w, h int, ok bool)

	// LargeDim is the dimension both sides of an image must exceed for
	// the page to be flagged. Zero disables size checks.
	LargeDim int

	// OnOp, if set, receives every operator that is not inline image
	// payload. Callers use it to piggyback text assembly on the same
	// stream pass.
	OnOp func(op string, args []pdf.Object)

	state      seqState
	sig        PageSignal
	large      bool
	sawInline  bool
	suppressed bool // between ID and EI, skipping inline image payload
}

// Process consumes one raw content stream operator.
//
// Bytes of inline image payload can tokenize as arbitrary operators, so
// everything between ID and EI is discarded. Unrecognized operators are
// ignored; Process never fails.
func (c *Counter) Process(op string, args []pdf.Object) {
	if c.suppressed {
		if op == "EI" {
			c.suppressed = false
		}
		return
	}

	switch op {
	case "BI":
		c.sawInline = true
		c.Apply(OpImage)
		return
	case "ID":
		c.suppressed = true
		return
	case "Do":
		if name, ok := firstName(args); ok && c.ResolveXObject != nil {
			if c.ResolveXObject(name) == KindImage {
				c.noteImageSize(name)
				c.Apply(OpImage)
			}
		}
		// Form XObjects and unresolvable names count nothing.
		if c.OnOp != nil {
			c.OnOp(op, args)
		}
		return
	}

	c.Apply(ClassifyOp(op))
	if c.OnOp != nil {
		c.OnOp(op, args)
	}
}

// Apply advances the counter by one pre-classified instruction.
func (c *Counter) Apply(class OpClass) {
	switch class {
	case OpImage:
		c.sig.Images++
		c.state = seqIdle
	case OpConstructPath:
		c.sig.Vectors++
		c.state = seqIdle
	case OpPathSegment:
		c.state = seqOpen
	case OpTerminator:
		// A terminator with no open sequence counts nothing.
		if c.state == seqOpen {
			c.sig.Vectors++
			c.state = seqIdle
		}
	case OpTextShow:
		c.sig.TextItems++
	case OpOther:
		// ignored
	}
}

// Finish applies the end-of-stream rule and returns the page's counts.
// A path left open at end of stream (a fill-less outline) is attributed
// exactly once.
func (c *Counter) Finish() PageSignal {
	if c.state == seqOpen {
		c.sig.Vectors++
		c.state = seqIdle
	}
	if !c.large && c.ImageSize == nil && c.sawInline {
		// No resource dictionary to measure against: inline images on
		// the page stand in for the large-image signal.
		c.large = true
	}
	return c.sig
}

// LargeImage reports whether the page was flagged for a large image.
// Only valid after Finish.
func (c *Counter) LargeImage() bool {
	return c.large
}

// noteImageSize checks a painted image against LargeDim. The first
// qualifying image flags the page; later images are not measured.
func (c *Counter) noteImageSize(name pdf.Name) {
	if c.large || c.ImageSize == nil || c.LargeDim <= 0 {
		return
	}
	if w, h, ok := c.ImageSize(name); ok && w > c.LargeDim && h > c.LargeDim {
		c.large = true
	}
}

func firstName(args []pdf.Object) (pdf.Name, bool) {
	if len(args) == 0 {
		return "", false
	}
	name, ok := args[0].(pdf.Name)
	return name, ok
}
