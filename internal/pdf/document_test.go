package pdf_test

import (
	"context"
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/printpdf/internal/pdf"
	"github.com/kpauljoseph/printpdf/internal/pdftest"
)

var _ = Describe("FitzDocument", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("when decoding fails", func() {
		It("should return a decode error for empty input", func() {
			doc, err := pdf.Open(nil)
			Expect(err).To(MatchError(pdf.ErrDecode))
			Expect(doc).To(BeNil())
		})

		It("should return a decode error for garbage", func() {
			_, err := pdf.Open([]byte("this is not a pdf at all"))
			Expect(err).To(MatchError(pdf.ErrDecode))
		})
	})

	Context("with a three page document", func() {
		var doc *pdf.FitzDocument

		BeforeEach(func() {
			var err error
			doc, err = pdf.Open(pdftest.Letter(3))
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			Expect(doc.Close()).To(Succeed())
		})

		It("should report the page count", func() {
			Expect(doc.NumPage()).To(Equal(3))
		})

		It("should report page bounds in points", func() {
			bounds, err := doc.PageBounds(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(bounds.Dx()).To(Equal(612))
			Expect(bounds.Dy()).To(Equal(792))
		})

		It("should render a 1-based page at the requested dpi", func() {
			img, err := doc.RenderPage(ctx, 1, 72)
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds().Dx()).To(Equal(612))
			Expect(img.Bounds().Dy()).To(Equal(792))

			// The fixture fills a square 36pt in from the lower left corner.
			r, g, b, _ := img.At(100, 792-100).RGBA()
			Expect([]uint32{r, g, b}).To(HaveEach(BeNumerically("<", 0x1000)))
			Expect(img.At(400, 100)).To(Equal(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
		})

		DescribeTable("rejects page numbers outside the document",
			func(pageNumber int) {
				_, err := doc.RenderPage(ctx, pageNumber, 72)
				Expect(err).To(MatchError(pdf.ErrNoSuchPage))
			},
			Entry("zero", 0),
			Entry("negative", -1),
			Entry("past the end", 4),
		)

		It("should stop waiting when the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := doc.RenderPage(cancelled, 2, 72)
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
