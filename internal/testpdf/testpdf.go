// Package testpdf builds minimal but well-formed PDF files for tests.
//
// Documents are assembled programmatically so cross-reference offsets
// are always computed from the actual bytes, never hard-coded.
package testpdf

import (
	"bytes"
	"fmt"
	"strings"
)

// Image declares an image XObject available to a page's content.
type Image struct {
	Name   string
	Width  int
	Height int
}

// Page describes one page of a generated document.
type Page struct {
	// Content is the raw content stream, e.g. "BT (Hi) Tj ET".
	Content string

	// Images become XObject entries in the page's resource dictionary.
	Images []Image

	// Patterns and Shadings add that many trivial entries to the
	// corresponding resource categories.
	Patterns int
	Shadings int
}

// TextPage returns a page showing n separate text items.
func TextPage(n int) Page {
	var b strings.Builder
	b.WriteString("BT /F0 12 Tf ")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "(item %d) Tj ", i)
	}
	b.WriteString("ET")
	return Page{Content: b.String()}
}

// Build assembles a document from the given pages and returns its bytes.
func Build(pages ...Page) []byte {
	// Object numbers: 1 is the catalog, 2 the page tree root; pages,
	// content streams and images follow in encounter order.
	bodies := []string{"", ""}
	add := func(body string) int {
		bodies = append(bodies, body)
		return len(bodies)
	}

	var kids []string
	for _, p := range pages {
		contentNum := add(streamObject("", p.Content))

		var res []string
		if len(p.Images) > 0 {
			var entries []string
			for _, img := range p.Images {
				imgNum := add(streamObject(
					fmt.Sprintf("/Subtype /Image /Width %d /Height %d", img.Width, img.Height), ""))
				entries = append(entries, fmt.Sprintf("/%s %d 0 R", img.Name, imgNum))
			}
			res = append(res, fmt.Sprintf("/XObject << %s >>", strings.Join(entries, " ")))
		}
		if p.Patterns > 0 {
			res = append(res, categoryDict("Pattern", "/PatternType 2", p.Patterns))
		}
		if p.Shadings > 0 {
			res = append(res, categoryDict("Shading", "/ShadingType 2", p.Shadings))
		}

		page := fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R", contentNum)
		if len(res) > 0 {
			page += fmt.Sprintf(" /Resources << %s >>", strings.Join(res, " "))
		}
		page += " >>"
		pageNum := add(page)
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))
	}

	bodies[0] = "<< /Type /Catalog /Pages 2 0 R >>"
	bodies[1] = fmt.Sprintf("<< /Type /Pages /Kids [ %s ] /Count %d >>",
		strings.Join(kids, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")

	offsets := make([]int, len(bodies))
	for i, body := range bodies {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(bodies)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(bodies)+1, xrefPos)

	return buf.Bytes()
}

func streamObject(dictExtra, data string) string {
	dict := fmt.Sprintf("/Length %d", len(data))
	if dictExtra != "" {
		dict = dictExtra + " " + dict
	}
	return fmt.Sprintf("<< %s >>\nstream\n%s\nendstream", dict, data)
}

func categoryDict(name, body string, n int) string {
	var entries []string
	for i := 0; i < n; i++ {
		entries = append(entries, fmt.Sprintf("/%s%d << %s >>", name[:1], i, body))
	}
	return fmt.Sprintf("/%s << %s >>", name, strings.Join(entries, " "))
}
