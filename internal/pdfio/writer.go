package pdfio

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// WriteError reports a failure to create or render the output document.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// Layout holds the typographic constants of the output document. These are
// configuration, not logic; the defaults approximate a one-inch margin on A4.
type Layout struct {
	MarginMM    float64
	TitleSize   float64
	HeadingSize float64
	BodySize    float64
	BodyLineMM  float64
}

// DefaultLayout returns the standard output layout.
func DefaultLayout() Layout {
	return Layout{
		MarginMM:    25.4,
		TitleSize:   16,
		HeadingSize: 13,
		BodySize:    11,
		BodyLineMM:  5.5,
	}
}

// Writer renders a cleaned abstract into a fresh single-purpose PDF: a
// centered title block, an "Abstract" heading, and the body reflowed as one
// justified paragraph.
type Writer struct {
	Layout Layout
}

// Write produces the output document at outPath.
func (w *Writer) Write(abstract, title, outPath string) error {
	lay := w.Layout
	if lay == (Layout{}) {
		lay = DefaultLayout()
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(lay.MarginMM, lay.MarginMM, lay.MarginMM)
	doc.SetAutoPageBreak(true, lay.MarginMM)
	doc.AddPage()

	// Core fonts are cp1252; translate so accented names survive.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", lay.TitleSize)
	doc.MultiCell(0, 8, tr(title), "", "C", false)
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", lay.HeadingSize)
	doc.CellFormat(0, 8, "Abstract", "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", lay.BodySize)
	doc.MultiCell(0, lay.BodyLineMM, tr(abstract), "", "J", false)

	if err := doc.OutputFileAndClose(outPath); err != nil {
		return &WriteError{Path: outPath, Err: err}
	}
	return nil
}
