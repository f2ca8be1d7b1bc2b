// Package spool hands rendered print jobs to a destination: a CUPS
// queue through lp, or a PDF file.
package spool

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/kpauljoseph/printpdf/internal/printer"
)

var ErrEmptyJob = errors.New("spool job has no pages")

// pageRun is a stretch of consecutive pages sharing one sheet size.
type pageRun struct {
	width  float64
	height float64
	images []io.Reader
}

// ImportDescription is the pdfcpu import spec placing one rendered page
// on a width x height sheet. The image is scaled relative to the sheet,
// so the sheet keeps the format size whatever the render resolution.
func ImportDescription(width, height float64) string {
	return fmt.Sprintf("dimensions:%.2f %.2f, position:c, scalefactor:1.0 rel", width, height)
}

// Assemble writes job as a PDF with one image per rendered page. Each
// page is sized from its own page format.
func Assemble(w io.Writer, job *printer.SpoolJob) error {
	if job == nil || len(job.Pages) == 0 {
		return ErrEmptyJob
	}

	var runs []*pageRun
	for i, page := range job.Pages {
		var buf bytes.Buffer
		if err := png.Encode(&buf, page.Image); err != nil {
			return fmt.Errorf("failed to encode page %d: %w", i+1, err)
		}

		width, height := page.Format.Width(), page.Format.Height()
		if n := len(runs); n == 0 || runs[n-1].width != width || runs[n-1].height != height {
			runs = append(runs, &pageRun{width: width, height: height})
		}
		last := runs[len(runs)-1]
		last.images = append(last.images, &buf)
	}

	// Every run after the first is appended to the document built so far.
	var doc []byte
	for _, run := range runs {
		desc := ImportDescription(run.width, run.height)
		imp, err := api.Import(desc, types.POINTS)
		if err != nil {
			return fmt.Errorf("invalid import description %q: %w", desc, err)
		}

		var rs io.ReadSeeker
		if doc != nil {
			rs = bytes.NewReader(doc)
		}

		var out bytes.Buffer
		if err := api.ImportImages(rs, &out, run.images, imp, model.NewDefaultConfiguration()); err != nil {
			return fmt.Errorf("failed to assemble spool document: %w", err)
		}
		doc = out.Bytes()
	}

	if _, err := w.Write(doc); err != nil {
		return fmt.Errorf("failed to write spool document: %w", err)
	}
	return nil
}
