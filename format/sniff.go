// Package format identifies what kind of file a byte source actually
// is. The analyzer only consumes PDF; sniffing first lets it reject
// other formats with a message naming what was handed in, instead of a
// parse error from deep inside the reader.
package format

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Format is a recognized source format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// Image indicates a raster image file (PNG, JPEG, GIF or TIFF).
	Image
	// ZIPArchive indicates a ZIP container, which covers the Office
	// document formats (DOCX, XLSX, PPTX, ODT, EPUB).
	ZIPArchive
	// HTML indicates an HTML page.
	HTML
	// PostScript indicates a PostScript file.
	PostScript
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case Image:
		return "raster image"
	case ZIPArchive:
		return "ZIP archive"
	case HTML:
		return "HTML"
	case PostScript:
		return "PostScript"
	default:
		return "unknown"
	}
}

// sniffLen is how many leading bytes Sniff needs at most.
const sniffLen = 512

var imageMagics = [][]byte{
	{0x89, 'P', 'N', 'G'},
	{0xFF, 0xD8, 0xFF},
	{'G', 'I', 'F', '8'},
	{'I', 'I', 0x2A, 0x00},
	{'M', 'M', 0x00, 0x2A},
}

// Sniff identifies the format from the leading bytes of a file. The
// prefix may be shorter than the file; 512 bytes are always enough.
func Sniff(prefix []byte) Format {
	switch {
	case bytes.HasPrefix(prefix, []byte("%PDF")):
		return PDF
	case bytes.HasPrefix(prefix, []byte("%!PS")):
		return PostScript
	case bytes.HasPrefix(prefix, []byte("PK\x03\x04")):
		return ZIPArchive
	}

	for _, magic := range imageMagics {
		if bytes.HasPrefix(prefix, magic) {
			return Image
		}
	}

	if sniffHTML(prefix) {
		return HTML
	}
	return Unknown
}

// SniffReader identifies the format of rs and restores its position to
// the start.
func SniffReader(rs io.ReadSeeker) (Format, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(rs, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Unknown, fmt.Errorf("format: reading prefix: %w", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return Unknown, fmt.Errorf("format: rewinding: %w", err)
	}
	return Sniff(buf[:n]), nil
}

// SniffFile identifies the format of the file at path.
func SniffFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("format: opening %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Unknown, fmt.Errorf("format: reading %s: %w", path, err)
	}
	return Sniff(buf[:n]), nil
}

// sniffHTML reports whether the prefix looks like the start of an HTML
// document, tolerating leading whitespace and an XML declaration.
func sniffHTML(prefix []byte) bool {
	p := bytes.TrimLeft(prefix, " \t\r\n")
	upper := bytes.ToUpper(p)
	if bytes.HasPrefix(upper, []byte("<!DOCTYPE HTML")) || bytes.HasPrefix(upper, []byte("<HTML")) {
		return true
	}
	return bytes.HasPrefix(upper, []byte("<?XML")) && bytes.Contains(upper, []byte("<HTML"))
}
