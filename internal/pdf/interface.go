package pdf

import (
	"context"
	"image"
)

// Document is a decoded PDF. Page numbers are 1-based.
type Document interface {
	NumPage() int
	RenderPage(ctx context.Context, pageNumber int, dpi float64) (*image.RGBA, error)
	Close() error
}
