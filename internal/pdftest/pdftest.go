// Package pdftest builds small, well-formed PDF documents for tests.
package pdftest

import (
	"bytes"
	"fmt"
)

const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// Document returns a PDF with the given number of pages of size
// width x height points. Every page carries a filled black square in its
// lower left corner so rendered output is never blank.
func Document(pages int, width, height float64) []byte {
	var buf bytes.Buffer
	var offsets []int

	begin := func() int {
		offsets = append(offsets, buf.Len())
		return len(offsets)
	}

	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	begin()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	// Page i uses object 3+2i, its content stream 4+2i.
	kids := &bytes.Buffer{}
	for i := 0; i < pages; i++ {
		fmt.Fprintf(kids, "%d 0 R ", 3+2*i)
	}
	begin()
	fmt.Fprintf(&buf, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", bytes.TrimSpace(kids.Bytes()), pages)

	content := "0 0 0 rg 36 36 144 144 re f\n"
	for i := 0; i < pages; i++ {
		page := begin()
		fmt.Fprintf(&buf,
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << >> /Contents %d 0 R >>\nendobj\n",
			page, width, height, page+1)

		stream := begin()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n", stream, len(content), content)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

// Letter returns a PDF of US letter pages.
func Letter(pages int) []byte {
	return Document(pages, LetterWidth, LetterHeight)
}
