package printer

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultMargin is one inch, in points.
	DefaultMargin = 72.0

	// PaperAuto asks the destination for its default paper.
	PaperAuto = "auto"
	// FallbackPaper is used when the destination's default cannot be read.
	FallbackPaper = "letter"
)

// Paper is a physical sheet and the area a printer can mark on it.
// All lengths are in points.
type Paper struct {
	Width  float64
	Height float64

	ImageableX      float64
	ImageableY      float64
	ImageableWidth  float64
	ImageableHeight float64
}

var paperSizes = map[string]struct{ width, height float64 }{
	"letter": {612, 792},
	"legal":  {612, 1008},
	"a4":     {595.28, 841.89},
	"a5":     {419.53, 595.28},
}

// NewPaper returns a sheet of the given size with one inch margins.
func NewPaper(width, height float64) Paper {
	p := Paper{Width: width, Height: height}
	margin := DefaultMargin
	if width <= 2*margin || height <= 2*margin {
		margin = 0
	}
	p.ImageableX = margin
	p.ImageableY = margin
	p.ImageableWidth = width - 2*margin
	p.ImageableHeight = height - 2*margin
	return p
}

// PaperBySize looks up a named sheet size such as "letter" or "a4".
func PaperBySize(name string) (Paper, error) {
	size, ok := paperSizes[strings.ToLower(name)]
	if !ok {
		return Paper{}, fmt.Errorf("unknown paper size %q (known: %s)", name, strings.Join(PaperSizeNames(), ", "))
	}
	return NewPaper(size.width, size.height), nil
}

// CUPS media keywords (PWG self-describing names) for the known sizes.
var mediaNames = map[string]string{
	"na_letter_8.5x11in": "letter",
	"na_legal_8.5x14in":  "legal",
	"iso_a4_210x297mm":   "a4",
	"iso_a5_148x210mm":   "a5",
}

// PaperByMediaName maps a CUPS PageSize choice ("A4", "Letter.Fullbleed")
// or media keyword ("iso_a4_210x297mm") to a known sheet size.
func PaperByMediaName(media string) (Paper, error) {
	name := strings.ToLower(strings.TrimSpace(media))
	if size, ok := mediaNames[name]; ok {
		name = size
	} else if base, _, found := strings.Cut(name, "."); found {
		name = base
	}
	paper, err := PaperBySize(name)
	if err != nil {
		return Paper{}, fmt.Errorf("unsupported media %q: %w", media, err)
	}
	return paper, nil
}

func PaperSizeNames() []string {
	names := make([]string, 0, len(paperSizes))
	for name := range paperSizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FullBleed returns a copy whose imageable area is the whole sheet.
func (p Paper) FullBleed() Paper {
	p.ImageableX = 0
	p.ImageableY = 0
	p.ImageableWidth = p.Width
	p.ImageableHeight = p.Height
	return p
}

func (p Paper) IsFullBleed() bool {
	return p.ImageableX == 0 && p.ImageableY == 0 &&
		p.ImageableWidth == p.Width && p.ImageableHeight == p.Height
}
