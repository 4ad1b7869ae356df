package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"github.com/docsift/docsift/format"
)

// ErrInvalidSource is returned when a byte source cannot possibly be a
// document: empty data, a nil reader. It fails before any page work.
var ErrInvalidSource = errors.New("document: invalid byte source")

// DefaultLargeImageDim is the default size both dimensions of an image
// must exceed for a page to count as carrying a large image.
const DefaultLargeImageDim = 1000

// Document is an open PDF document. It owns the underlying reader;
// Close releases it and is safe to call more than once.
type Document struct {
	r      *pdf.Reader
	closed bool

	// LargeImageDim configures large-image detection for pages of this
	// document. Defaults to DefaultLargeImageDim.
	LargeImageDim int
}

// Open opens the PDF file at path.
func Open(path string) (*Document, error) {
	if f, err := format.SniffFile(path); err == nil && f != format.PDF {
		return nil, fmt.Errorf("document: %s: %w: not a PDF (looks like %s)",
			path, ErrInvalidSource, f)
	}
	r, err := pdf.Open(path, nil)
	if err != nil {
		return nil, fmt.Errorf("document: opening %s: %w", path, err)
	}
	return &Document{r: r, LargeImageDim: DefaultLargeImageDim}, nil
}

// FromBytes opens a PDF document held in memory. The document does not
// copy data; the caller must keep it alive until Close.
func FromBytes(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrInvalidSource
	}
	return FromReadSeeker(bytes.NewReader(data))
}

// FromReadSeeker opens a PDF document from an already-positioned reader.
func FromReadSeeker(rs io.ReadSeeker) (*Document, error) {
	if rs == nil {
		return nil, ErrInvalidSource
	}
	if f, err := format.SniffReader(rs); err == nil && f != format.PDF {
		return nil, fmt.Errorf("document: %w: not a PDF (looks like %s)", ErrInvalidSource, f)
	}
	r, err := pdf.NewReader(rs, nil)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return &Document{r: r, LargeImageDim: DefaultLargeImageDim}, nil
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() (int, error) {
	n, err := pagetree.NumPages(d.r)
	if err != nil {
		return 0, fmt.Errorf("document: page count: %w", err)
	}
	return n, nil
}

// Close releases all document-level resources. Calling Close again after
// the first call is a no-op.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.r.Close()
}

// Page returns a handle for the n-th page, 1-based. The handle holds the
// page dictionary only; content is read lazily by Scan/Inspect/Text.
func (d *Document) Page(n int) (*Page, error) {
	if n < 1 {
		return nil, fmt.Errorf("document: page %d out of range", n)
	}
	_, dict, err := pagetree.GetPage(d.r, n-1)
	if err != nil {
		return nil, fmt.Errorf("document: loading page %d: %w", n, err)
	}
	return &Page{doc: d, num: n, dict: dict}, nil
}
