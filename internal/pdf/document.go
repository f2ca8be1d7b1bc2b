package pdf

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gen2brain/go-fitz"
)

var (
	ErrDecode     = errors.New("pdf decode failed")
	ErrNoSuchPage = errors.New("no such page")
)

type FitzDocument struct {
	doc      *fitz.Document
	numPages int
	// renders tracks rasterizations that outlived their caller's context.
	renders sync.WaitGroup
}

// Open decodes data with MuPDF. The bytes must not be modified while the
// document is open.
func Open(data []byte) (*FitzDocument, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrDecode)
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	numPages := doc.NumPage()
	if numPages < 1 {
		doc.Close()
		return nil, fmt.Errorf("%w: document has no pages", ErrDecode)
	}

	return &FitzDocument{
		doc:      doc,
		numPages: numPages,
	}, nil
}

func (d *FitzDocument) NumPage() int {
	return d.numPages
}

// PageBounds returns the page size in points at 72 dpi.
func (d *FitzDocument) PageBounds(pageNumber int) (image.Rectangle, error) {
	if pageNumber < 1 || pageNumber > d.numPages {
		return image.Rectangle{}, fmt.Errorf("page %d: %w", pageNumber, ErrNoSuchPage)
	}
	//Page numbers are zero indexed in the fitz package.
	return d.doc.Bound(pageNumber - 1)
}

type renderResult struct {
	img *image.RGBA
	err error
}

// RenderPage rasterizes a page at dpi and waits for MuPDF to finish.
// It stops waiting when ctx is done and returns ctx.Err(); the
// rasterization itself keeps running until MuPDF returns.
func (d *FitzDocument) RenderPage(ctx context.Context, pageNumber int, dpi float64) (*image.RGBA, error) {
	if pageNumber < 1 || pageNumber > d.numPages {
		return nil, fmt.Errorf("page %d: %w", pageNumber, ErrNoSuchPage)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan renderResult, 1)
	d.renders.Add(1)
	go func() {
		defer d.renders.Done()
		img, err := d.doc.ImageDPI(pageNumber-1, dpi)
		done <- renderResult{img: img, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", pageNumber, res.err)
		}
		return res.img, nil
	}
}

// Close waits for abandoned renders before releasing MuPDF resources.
func (d *FitzDocument) Close() error {
	d.renders.Wait()
	return d.doc.Close()
}
