package printer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/kpauljoseph/printpdf/pkg/utils"
)

// Surface is a white raster of one page at a fixed resolution.
type Surface struct {
	*image.RGBA
	DPI float64
}

func NewSurface(format PageFormat, dpi float64) *Surface {
	w := int(math.Round(utils.PointsToPixels(format.Width(), dpi)))
	h := int(math.Round(utils.PointsToPixels(format.Height(), dpi)))
	s := &Surface{
		RGBA: image.NewRGBA(image.Rect(0, 0, w, h)),
		DPI:  dpi,
	}
	s.Clear()
	return s
}

// Clear paints the whole surface white.
func (s *Surface) Clear() {
	draw.Draw(s.RGBA, s.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
}

// Rect converts a rectangle in points to pixels, clipped to the surface.
func (s *Surface) Rect(x, y, width, height float64) image.Rectangle {
	px := func(v float64) int {
		return int(math.Round(utils.PointsToPixels(v, s.DPI)))
	}
	return image.Rect(px(x), px(y), px(x+width), px(y+height)).Intersect(s.Bounds())
}

// ImageableRect is the printable area of format in pixels.
func (s *Surface) ImageableRect(format PageFormat) image.Rectangle {
	return s.Rect(format.ImageableX(), format.ImageableY(), format.ImageableWidth(), format.ImageableHeight())
}
