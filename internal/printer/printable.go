package printer

import (
	"context"
	"fmt"
	"image"
)

type PageStatus int

const (
	// PageExists reports that the page was drawn and pagination continues.
	PageExists PageStatus = iota
	// NoSuchPage ends pagination for the job.
	NoSuchPage
)

func (s PageStatus) String() string {
	if s == NoSuchPage {
		return "no such page"
	}
	return "page exists"
}

// Printable draws the page at a 0-based index onto surface.
type Printable interface {
	Print(ctx context.Context, surface *Surface, format PageFormat, index int) (PageStatus, error)
}

// PrintableFunc adapts a function to Printable.
type PrintableFunc func(ctx context.Context, surface *Surface, format PageFormat, index int) (PageStatus, error)

func (f PrintableFunc) Print(ctx context.Context, surface *Surface, format PageFormat, index int) (PageStatus, error) {
	return f(ctx, surface, format, index)
}

// PageError is a recoverable failure to draw one page. The job may retry
// the page or leave it blank instead of failing.
type PageError struct {
	Index int
	Err   error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page index %d: %v", e.Index, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// SpoolPage is one rendered page and the format it was rendered for.
type SpoolPage struct {
	Image  image.Image
	Format PageFormat
}

// SpoolJob is a fully rendered job ready for a printer.
type SpoolJob struct {
	ID    string
	Name  string
	DPI   float64
	Pages []SpoolPage
}

// Spooler is a print destination.
type Spooler interface {
	DefaultPaper() Paper
	Submit(ctx context.Context, job *SpoolJob) error
}
