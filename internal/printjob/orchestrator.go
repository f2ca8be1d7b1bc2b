// Package printjob turns a PDF into a single print job: it adapts the
// document's pages to the printer's page callbacks and submits the job.
package printjob

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/kpauljoseph/printpdf/internal/loader"
	"github.com/kpauljoseph/printpdf/internal/pdf"
	"github.com/kpauljoseph/printpdf/internal/printer"
	"github.com/kpauljoseph/printpdf/pkg/logger"
	"github.com/kpauljoseph/printpdf/pkg/models"
	"github.com/kpauljoseph/printpdf/pkg/utils"
)

type Options struct {
	DPI float64
	// DecodeTimeout bounds the wait for one page to render. Zero waits
	// as long as the caller's context allows.
	DecodeTimeout time.Duration
	// DecodeRetries is how often a failed page is rendered again before
	// it is left blank.
	DecodeRetries int
	// ValidatePDF runs pdfcpu validation before decoding.
	ValidatePDF bool
}

type Orchestrator struct {
	spooler printer.Spooler
	options Options
	logger  *logger.Logger
}

func NewOrchestrator(spooler printer.Spooler, options Options, log *logger.Logger) *Orchestrator {
	if options.DPI <= 0 {
		options.DPI = utils.DEFAULT_DPI
	}
	if options.DecodeRetries < 0 {
		options.DecodeRetries = 0
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Orchestrator{
		spooler: spooler,
		options: options,
		logger:  log,
	}
}

// PrintFile loads, decodes and prints the PDF at path. An empty jobName
// uses the file name.
func (o *Orchestrator) PrintFile(ctx context.Context, path, jobName string) (*models.JobReport, error) {
	data, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("Loaded %d bytes from %s", len(data), path)

	if o.options.ValidatePDF {
		if err := pdf.Validate(data); err != nil {
			return nil, fmt.Errorf("invalid PDF %s: %w", path, err)
		}
		o.logger.Debug("Validated %s", path)
	}

	doc, err := pdf.Open(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer doc.Close()

	if jobName == "" {
		jobName = filepath.Base(path)
	}

	report, err := o.BuildAndSubmit(ctx, doc, jobName)
	if err != nil {
		return nil, err
	}
	report.Source = path
	report.DocumentHash = utils.GenerateDocumentHash(data)
	return report, nil
}

// BuildAndSubmit prints every page of doc as one job named jobName on
// the spooler's default paper with the margins removed. It blocks until
// the spooler accepted or rejected the job.
func (o *Orchestrator) BuildAndSubmit(ctx context.Context, doc pdf.Document, jobName string) (*models.JobReport, error) {
	report := &models.JobReport{
		JobName:   jobName,
		StartTime: time.Now(),
	}

	numPages := doc.NumPage()
	if numPages < 1 {
		return nil, fmt.Errorf("%w: document has no pages", pdf.ErrDecode)
	}
	report.PageCount = numPages

	job := printer.NewJob(o.spooler,
		printer.WithDPI(o.options.DPI),
		printer.WithPageErrorPolicy(printer.RetryThenBlank(o.options.DecodeRetries)),
		printer.WithLogger(o.logger),
	)

	format := job.DefaultPage()
	format = format.WithPaper(format.Paper.FullBleed())
	o.logger.Debug("Page format: %.2f x %.2f pt, %s, imageable %.2f x %.2f at (%.2f, %.2f)",
		format.Width(), format.Height(), format.Orientation,
		format.ImageableWidth(), format.ImageableHeight(), format.ImageableX(), format.ImageableY())

	book := printer.NewBook()
	book.Append(NewPageAdapter(doc, o.options.DecodeTimeout, o.logger), format, numPages)

	job.SetJobName(jobName)
	job.SetPageable(book)

	result, err := job.Print(ctx)
	if err != nil {
		return nil, err
	}

	report.JobID = result.JobID
	report.PagesPrinted = result.Pages
	report.BlankPages = result.BlankPages
	report.Retries = result.Retries
	report.EndTime = time.Now()

	return report, nil
}
