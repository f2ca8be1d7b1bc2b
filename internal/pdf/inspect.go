package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/kpauljoseph/printpdf/pkg/models"
)

func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Validate runs pdfcpu's structural validation over data.
func Validate(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: document is empty", ErrDecode)
	}
	if err := api.Validate(bytes.NewReader(data), newConfiguration()); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// PageDims returns the media box size of every page in points.
func PageDims(data []byte) ([]models.PageDimensions, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrDecode)
	}

	dims, err := api.PageDims(bytes.NewReader(data), newConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	pages := make([]models.PageDimensions, 0, len(dims))
	for _, dim := range dims {
		pages = append(pages, models.PageDimensions{
			Width:  dim.Width,
			Height: dim.Height,
		})
	}
	return pages, nil
}
