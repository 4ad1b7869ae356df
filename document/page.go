package document

import (
	"fmt"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
	"seehuhn.de/go/pdf/reader/scanner"

	"github.com/docsift/docsift/signal"
)

// Page is a handle on one page of an open document.
type Page struct {
	doc  *Document
	num  int
	dict pdf.Dict

	xobjects     pdf.Dict
	xobjectsOnce bool
}

// Number returns the 1-based page number.
func (p *Page) Number() int { return p.num }

// Release drops the page's working set. The handle must not be used
// afterwards; the driving loop calls this before advancing to the next
// page so only one page is ever live.
func (p *Page) Release() {
	p.dict = nil
	p.xobjects = nil
}

// Scan runs the streaming object counter over the page's content
// stream. When withText is set, text items are decoded and concatenated
// during the same pass.
func (p *Page) Scan(withText bool) (signal.StreamResult, error) {
	var res signal.StreamResult

	ctr := &signal.Counter{LargeDim: p.doc.LargeImageDim}
	if xobjects := p.xobjectDict(); xobjects != nil {
		ctr.ResolveXObject = p.classifyXObject
		ctr.ImageSize = p.imageSize
	}

	var text *textAssembler
	if withText {
		text = &textAssembler{}
		ctr.OnOp = text.op
	}

	if err := p.scanContent(ctr); err != nil {
		return res, err
	}

	res.Signal = ctr.Finish()
	res.LargeImage = ctr.LargeImage()
	if withText {
		res.Text = text.result()
	}
	return res, nil
}

// Inspect counts declared resources from the page's resource dictionary
// without materializing the content stream. The second return value is
// the number of unreadable entries that were skipped.
func (p *Page) Inspect() (signal.PageSignal, int) {
	return signal.InspectResources(p.doc.r, p.resources())
}

// Text streams the page's content and returns its decoded text. The
// counting side of the pass is discarded.
func (p *Page) Text() (string, error) {
	text := &textAssembler{}
	ctr := &signal.Counter{OnOp: text.op}
	if err := p.scanContent(ctr); err != nil {
		return "", err
	}
	ctr.Finish()
	return text.result(), nil
}

// scanContent tokenizes the page's content stream(s) and feeds every
// operator to the counter. The stream is consumed once and never
// retained.
func (p *Page) scanContent(ctr *signal.Counter) error {
	content, err := pagetree.ContentStream(p.doc.r, p.dict)
	if err != nil {
		return fmt.Errorf("document: page %d content: %w", p.num, err)
	}

	s := scanner.NewScanner()
	s.SetInput(content)
	for s.Scan() {
		op := s.Operator()
		ctr.Process(op.Name, op.Args)
	}
	if err := s.Error(); err != nil {
		return fmt.Errorf("document: page %d content: %w", p.num, err)
	}
	return nil
}

// resources returns the page's resource dictionary, or nil if it is
// absent or unreadable.
func (p *Page) resources() pdf.Dict {
	resources, err := pdf.GetDict(p.doc.r, p.dict["Resources"])
	if err != nil {
		return nil
	}
	return resources
}

// xobjectDict returns the page's XObject sub-dictionary, caching the
// lookup for the lifetime of the handle.
func (p *Page) xobjectDict() pdf.Dict {
	if !p.xobjectsOnce {
		p.xobjectsOnce = true
		if resources := p.resources(); resources != nil {
			if xobjects, err := pdf.GetDict(p.doc.r, resources["XObject"]); err == nil && len(xobjects) > 0 {
				p.xobjects = xobjects
			}
		}
	}
	return p.xobjects
}

// classifyXObject resolves a Do operand against the page's XObject
// dictionary. Unresolvable entries are reported as unknown.
func (p *Page) classifyXObject(name pdf.Name) signal.XObjectKind {
	stm, err := pdf.GetStream(p.doc.r, p.xobjectDict()[name])
	if err != nil || stm == nil {
		return signal.KindUnknown
	}
	subtype, err := pdf.GetName(p.doc.r, stm.Dict["Subtype"])
	if err != nil {
		return signal.KindUnknown
	}
	switch subtype {
	case "Image":
		return signal.KindImage
	case "Form":
		return signal.KindForm
	default:
		return signal.KindUnknown
	}
}

// imageSize resolves the declared dimensions of a named image XObject.
func (p *Page) imageSize(name pdf.Name) (int, int, bool) {
	stm, err := pdf.GetStream(p.doc.r, p.xobjectDict()[name])
	if err != nil || stm == nil {
		return 0, 0, false
	}
	w, err := pdf.GetInteger(p.doc.r, stm.Dict["Width"])
	if err != nil {
		return 0, 0, false
	}
	h, err := pdf.GetInteger(p.doc.r, stm.Dict["Height"])
	if err != nil {
		return 0, 0, false
	}
	return int(w), int(h), true
}

// textAssembler collects decoded text items during a content scan.
type textAssembler struct {
	b        strings.Builder
	lineOpen bool
}

func (t *textAssembler) op(op string, args []pdf.Object) {
	switch op {
	case "Tj":
		t.show(args, 0)
	case "'":
		t.newline()
		t.show(args, 0)
	case "\"":
		t.newline()
		t.show(args, 2)
	case "TJ":
		if len(args) == 1 {
			if arr, ok := args[0].(pdf.Array); ok {
				for _, el := range arr {
					if s, ok := el.(pdf.String); ok {
						t.write(decodeTextString(s))
					}
				}
			}
		}
	case "Td", "TD", "T*", "ET":
		t.newline()
	}
}

func (t *textAssembler) show(args []pdf.Object, idx int) {
	if len(args) > idx {
		if s, ok := args[idx].(pdf.String); ok {
			t.write(decodeTextString(s))
		}
	}
}

func (t *textAssembler) write(s string) {
	if s == "" {
		return
	}
	t.b.WriteString(s)
	t.lineOpen = true
}

func (t *textAssembler) newline() {
	if t.lineOpen {
		t.b.WriteByte('\n')
		t.lineOpen = false
	}
}
