package printjob

import (
	"context"
	"image"
	"math"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/kpauljoseph/printpdf/internal/pdf"
	"github.com/kpauljoseph/printpdf/internal/printer"
	"github.com/kpauljoseph/printpdf/pkg/logger"
)

// PageAdapter exposes the pages of a Document as a printer.Printable.
// Print indices are 0-based, document pages 1-based.
type PageAdapter struct {
	doc           pdf.Document
	decodeTimeout time.Duration
	logger        *logger.Logger
}

func NewPageAdapter(doc pdf.Document, decodeTimeout time.Duration, log *logger.Logger) *PageAdapter {
	if log == nil {
		log = logger.Discard()
	}
	return &PageAdapter{
		doc:           doc,
		decodeTimeout: decodeTimeout,
		logger:        log,
	}
}

// Print renders page index+1 into the imageable area of format. Indices
// outside the document yield NoSuchPage without drawing. A page that
// cannot be decoded in time yields a *printer.PageError.
func (a *PageAdapter) Print(ctx context.Context, surface *printer.Surface, format printer.PageFormat, index int) (printer.PageStatus, error) {
	pageNumber := index + 1
	if pageNumber < 1 || pageNumber > a.doc.NumPage() {
		return printer.NoSuchPage, nil
	}

	renderCtx := ctx
	if a.decodeTimeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, a.decodeTimeout)
		defer cancel()
	}

	start := time.Now()
	img, err := a.doc.RenderPage(renderCtx, pageNumber, surface.DPI)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return printer.PageExists, ctxErr
		}
		return printer.PageExists, &printer.PageError{Index: index, Err: err}
	}

	area := surface.ImageableRect(format)
	dst := FitRect(img.Bounds(), area)
	xdraw.CatmullRom.Scale(surface.RGBA, dst, img, img.Bounds(), xdraw.Over, nil)

	a.logger.Trace("Rendered page %d (%dx%d px) into %v in %v", pageNumber, img.Bounds().Dx(), img.Bounds().Dy(), dst, time.Since(start))
	return printer.PageExists, nil
}

// FitRect scales src to the largest rectangle with the same aspect ratio
// that fits in dst, centered in dst.
func FitRect(src, dst image.Rectangle) image.Rectangle {
	if src.Empty() || dst.Empty() {
		return image.Rectangle{}
	}

	sw, sh := float64(src.Dx()), float64(src.Dy())
	scale := math.Min(float64(dst.Dx())/sw, float64(dst.Dy())/sh)

	w := int(math.Round(sw * scale))
	h := int(math.Round(sh * scale))
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2

	return image.Rect(x, y, x+w, y+h).Intersect(dst)
}
