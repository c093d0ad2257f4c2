// Package pdfio is the document boundary of the pipeline: reading plain text
// out of source PDFs and rendering the extracted abstract into a new one.
package pdfio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText indicates the source opened fine but yielded no extractable text,
// e.g. a scanned document with image-only pages.
var ErrNoText = errors.New("no extractable text")

// ReadError reports a failure to open or extract text from a source document.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// Reader extracts plain text from PDF files. MaxPages bounds how many pages
// are scanned from the start of the document; the abstract conventionally
// sits on the first pages, so a small bound keeps large documents cheap.
// Zero or negative scans every page.
type Reader struct {
	MaxPages int
}

// ExtractText returns the concatenated text of the scanned pages, one page
// per line group. Pages that fail to decode are skipped; the whole call fails
// with a ReadError only when the file cannot be opened or no page produced
// any text.
func (r *Reader) ExtractText(path string) (string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	limit := doc.NumPage()
	if r.MaxPages > 0 && r.MaxPages < limit {
		limit = r.MaxPages
	}

	var sb strings.Builder
	for i := 1; i <= limit; i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", &ReadError{Path: path, Err: ErrNoText}
	}
	return text, nil
}
