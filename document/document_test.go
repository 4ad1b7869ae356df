package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/docsift/docsift/internal/testpdf"
	"github.com/docsift/docsift/signal"
)

func open(t *testing.T, pages ...testpdf.Page) *Document {
	t.Helper()
	doc, err := FromBytes(testpdf.Build(pages...))
	if err != nil {
		t.Fatalf("opening fixture: %v", err)
	}
	t.Cleanup(func() { doc.Close() })
	return doc
}

// An empty byte slice and a nil reader are rejected up front, before any
// parsing is attempted.
func TestInvalidSources(t *testing.T) {
	if _, err := FromBytes(nil); !errors.Is(err, ErrInvalidSource) {
		t.Errorf("FromBytes(nil): got %v, want ErrInvalidSource", err)
	}
	if _, err := FromReadSeeker(nil); !errors.Is(err, ErrInvalidSource) {
		t.Errorf("FromReadSeeker(nil): got %v, want ErrInvalidSource", err)
	}
}

// Sources that sniff as some other format are rejected with an error
// naming what they look like.
func TestNotAPDF(t *testing.T) {
	_, err := FromBytes([]byte("PK\x03\x04 this is a zip"))
	if !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("FromBytes(zip): got %v, want ErrInvalidSource", err)
	}
	if !strings.Contains(err.Error(), "ZIP archive") {
		t.Errorf("error %q does not name the detected format", err)
	}
}

func TestNumPages(t *testing.T) {
	doc := open(t, testpdf.TextPage(1), testpdf.TextPage(1), testpdf.TextPage(1))
	n, err := doc.NumPages()
	if err != nil {
		t.Fatalf("NumPages: %v", err)
	}
	if n != 3 {
		t.Errorf("NumPages = %d, want 3", n)
	}
}

func TestPageOutOfRange(t *testing.T) {
	doc := open(t, testpdf.TextPage(1))
	if _, err := doc.Page(0); err == nil {
		t.Error("Page(0) succeeded, want error")
	}
}

// Close is idempotent; the second call must not fail.
func TestCloseTwice(t *testing.T) {
	doc, err := FromBytes(testpdf.Build(testpdf.TextPage(1)))
	if err != nil {
		t.Fatalf("opening fixture: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

// A content stream with two complete path sequences counts two vector
// objects, regardless of how many segments each path has.
func TestScanVectors(t *testing.T) {
	doc := open(t, testpdf.Page{
		Content: "0 0 m 10 10 l 20 0 l S 5 5 30 30 re f",
	})
	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1): %v", err)
	}
	res, err := page.Scan(false)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := signal.PageSignal{Vectors: 2}
	if diff := cmp.Diff(want, res.Signal); diff != "" {
		t.Errorf("signal mismatch (-want +got):\n%s", diff)
	}
}

func TestScanTextItems(t *testing.T) {
	doc := open(t, testpdf.TextPage(4))
	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1): %v", err)
	}
	res, err := page.Scan(true)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.Signal.TextItems != 4 {
		t.Errorf("TextItems = %d, want 4", res.Signal.TextItems)
	}
	if res.Text == "" {
		t.Error("Scan(true) returned empty text")
	}
}

// A Do operator naming an image XObject counts as an image, and its
// declared dimensions drive large-image detection.
func TestScanImageXObject(t *testing.T) {
	doc := open(t, testpdf.Page{
		Content: "q /Im1 Do Q",
		Images:  []testpdf.Image{{Name: "Im1", Width: 2400, Height: 1800}},
	})
	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1): %v", err)
	}
	res, err := page.Scan(false)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.Signal.Images != 1 {
		t.Errorf("Images = %d, want 1", res.Signal.Images)
	}
	if !res.LargeImage {
		t.Error("LargeImage = false, want true for 2400x1800")
	}
}

// Images below the configured dimension never flag the page, even when
// several of them are painted.
func TestScanSmallImages(t *testing.T) {
	doc := open(t, testpdf.Page{
		Content: "/Im1 Do /Im2 Do",
		Images: []testpdf.Image{
			{Name: "Im1", Width: 200, Height: 150},
			{Name: "Im2", Width: 640, Height: 480},
		},
	})
	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1): %v", err)
	}
	res, err := page.Scan(false)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.Signal.Images != 2 {
		t.Errorf("Images = %d, want 2", res.Signal.Images)
	}
	if res.LargeImage {
		t.Error("LargeImage = true for small images")
	}
}

// A Do operand that does not resolve to any XObject entry is ignored.
func TestScanUnknownXObject(t *testing.T) {
	doc := open(t, testpdf.Page{
		Content: "/Missing Do",
		Images:  []testpdf.Image{{Name: "Im1", Width: 10, Height: 10}},
	})
	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1): %v", err)
	}
	res, err := page.Scan(false)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.Signal.Images != 0 {
		t.Errorf("Images = %d, want 0", res.Signal.Images)
	}
}

// Inspect reads declared resources only: each image XObject counts as an
// image, pattern and shading entries as vector objects.
func TestInspect(t *testing.T) {
	doc := open(t, testpdf.Page{
		Content: "BT (unused) Tj ET",
		Images: []testpdf.Image{
			{Name: "Im1", Width: 100, Height: 100},
			{Name: "Im2", Width: 200, Height: 200},
		},
		Patterns: 2,
		Shadings: 1,
	})
	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1): %v", err)
	}
	sig, skipped := page.Inspect()
	want := signal.PageSignal{Images: 2, Vectors: 3}
	if diff := cmp.Diff(want, sig); diff != "" {
		t.Errorf("signal mismatch (-want +got):\n%s", diff)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
}

func TestText(t *testing.T) {
	doc := open(t, testpdf.Page{
		Content: "BT (Hello) Tj 0 -14 Td (World) Tj ET",
	})
	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1): %v", err)
	}
	got, err := page.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "Hello\nWorld"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}
