package acceptance_test

import (
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/printpdf/internal/loader"
	"github.com/kpauljoseph/printpdf/internal/pdf"
	"github.com/kpauljoseph/printpdf/internal/printer"
	"github.com/kpauljoseph/printpdf/internal/printjob"
	"github.com/kpauljoseph/printpdf/internal/spool"
	"github.com/kpauljoseph/printpdf/pkg/logger"

	"github.com/kpauljoseph/printpdf/tests/acceptance"
)

func acceptanceTestLogger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[acceptance] "),
		logger.WithFlags(0),
	)
	log.SetVerbose(true)
	return log
}

var _ = Describe("PrintPDF End-to-End", Ordered, func() {
	var (
		ctx      context.Context
		inputDir string
		fixtures map[string]string
		testLog  *logger.Logger
	)

	BeforeAll(func() {
		var err error
		inputDir, err = os.MkdirTemp("", "printpdf-acceptance-input-*")
		Expect(err).NotTo(HaveOccurred())

		fixtures, err = acceptance.WriteFixtures(inputDir)
		Expect(err).NotTo(HaveOccurred())
		testLog = acceptanceTestLogger()
	})

	AfterAll(func() {
		os.RemoveAll(inputDir)
	})

	BeforeEach(func() {
		ctx = context.Background()
	})

	printToFile := func(fixture string, paper printer.Paper, dpi float64) (string, *printjob.Orchestrator) {
		outputDir, err := os.MkdirTemp("", "printpdf-acceptance-output-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, outputDir)

		output := filepath.Join(outputDir, fixture)
		spooler := spool.NewFileSpooler(output, paper, testLog)
		return output, printjob.NewOrchestrator(spooler, printjob.Options{
			DPI:           dpi,
			DecodeTimeout: 30 * time.Second,
			DecodeRetries: 1,
			ValidatePDF:   true,
		}, testLog)
	}

	DescribeTable("prints every page of the document onto full bleed paper",
		Label("happy-path"),
		func(name string, dpi float64) {
			fixture, ok := acceptance.FixtureByName(name)
			Expect(ok).To(BeTrue())

			letter, err := printer.PaperBySize("letter")
			Expect(err).NotTo(HaveOccurred())
			output, orchestrator := printToFile(name, letter, dpi)

			By("Submitting the document")
			report, err := orchestrator.PrintFile(ctx, fixtures[name], "")
			Expect(err).NotTo(HaveOccurred())
			Expect(report.PageCount).To(Equal(fixture.Pages))
			Expect(report.PagesPrinted).To(Equal(fixture.Pages))
			Expect(report.BlankPages).To(BeEmpty())

			By("Checking the spooled document")
			dims, err := pdf.PageDims(mustLoad(output))
			Expect(err).NotTo(HaveOccurred())
			Expect(dims).To(HaveLen(fixture.Pages))
			for _, dim := range dims {
				Expect(dim.Width).To(BeNumerically("~", 612, 0.5))
				Expect(dim.Height).To(BeNumerically("~", 792, 0.5))
			}
		},
		Entry("one page", "single_letter.pdf", 72.0),
		Entry("three pages", "three_letter.pdf", 72.0),
		Entry("landscape pages on portrait paper", "landscape_a4.pdf", 72.0),
		Entry("one page rendered at 150 dpi", "single_letter.pdf", 150.0),
		Entry("three pages rendered at 36 dpi", "three_letter.pdf", 36.0),
	)

	It("should keep page content in place on matching paper", func() {
		letter, err := printer.PaperBySize("letter")
		Expect(err).NotTo(HaveOccurred())
		output, orchestrator := printToFile("single_letter.pdf", letter, 72)

		_, err = orchestrator.PrintFile(ctx, fixtures["single_letter.pdf"], "")
		Expect(err).NotTo(HaveOccurred())

		printed, err := pdf.Open(mustLoad(output))
		Expect(err).NotTo(HaveOccurred())
		defer printed.Close()

		img, err := printed.RenderPage(ctx, 1, 72)
		Expect(err).NotTo(HaveOccurred())

		By("Finding the fixture's square in the lower left corner")
		r, g, b, _ := img.At(100, img.Bounds().Dy()-100).RGBA()
		Expect([]uint32{r, g, b}).To(HaveEach(BeNumerically("<", 0x2000)))

		By("Finding white paper elsewhere")
		r, g, b, _ = img.At(img.Bounds().Dx()-100, 100).RGBA()
		Expect([]uint32{r, g, b}).To(HaveEach(BeNumerically(">", 0xe000)))
	})

	It("should refuse a file that is not a PDF", func() {
		letter, err := printer.PaperBySize("letter")
		Expect(err).NotTo(HaveOccurred())
		output, orchestrator := printToFile("not_a_pdf.pdf", letter, 72)

		bogus := filepath.Join(inputDir, "not_a_pdf.pdf")
		Expect(os.WriteFile(bogus, []byte("plain text, no structure"), 0644)).To(Succeed())

		_, err = orchestrator.PrintFile(ctx, bogus, "")
		Expect(err).To(MatchError(pdf.ErrDecode))
		Expect(output).NotTo(BeAnExistingFile())
	})
})

func mustLoad(path string) []byte {
	data, err := loader.Load(path)
	Expect(err).NotTo(HaveOccurred())
	return data
}
