package printjob_test

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"sync"

	. "github.com/onsi/ginkgo/v2"

	"github.com/kpauljoseph/printpdf/internal/printer"
	"github.com/kpauljoseph/printpdf/pkg/logger"
)

func printjobTestLogger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[printjob-test] "),
		logger.WithFlags(0),
	)
	log.SetLevel(logger.LevelTrace)
	return log
}

// fakeDocument renders every page as a solid black page of the given
// size in points. Pages listed in stall block until the context ends.
type fakeDocument struct {
	mu       sync.Mutex
	pages    int
	width    float64
	height   float64
	stall    map[int]int
	rendered []int
	closed   bool
}

func newFakeDocument(pages int) *fakeDocument {
	return &fakeDocument{pages: pages, width: 612, height: 792, stall: map[int]int{}}
}

func (d *fakeDocument) NumPage() int {
	return d.pages
}

func (d *fakeDocument) RenderPage(ctx context.Context, pageNumber int, dpi float64) (*image.RGBA, error) {
	d.mu.Lock()
	d.rendered = append(d.rendered, pageNumber)
	stall := d.stall[pageNumber] > 0
	if stall {
		d.stall[pageNumber]--
	}
	d.mu.Unlock()

	if stall {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	img := image.NewRGBA(image.Rect(0, 0, int(d.width*dpi/72), int(d.height*dpi/72)))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return img, nil
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

type recordingSpooler struct {
	paper     printer.Paper
	submitted []*printer.SpoolJob
	err       error
}

func (s *recordingSpooler) DefaultPaper() printer.Paper {
	return s.paper
}

func (s *recordingSpooler) Submit(_ context.Context, job *printer.SpoolJob) error {
	s.submitted = append(s.submitted, job)
	return s.err
}
