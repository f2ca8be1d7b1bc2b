package printer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kpauljoseph/printpdf/pkg/logger"
	"github.com/kpauljoseph/printpdf/pkg/utils"
)

var ErrNoPageable = errors.New("print job has no pages")

type PageAction int

const (
	RetryPage PageAction = iota
	BlankPage
	AbortJob
)

// PageErrorPolicy decides what to do after a page failed. attempt counts
// from zero.
type PageErrorPolicy func(err *PageError, attempt int) PageAction

// RetryThenBlank retries a failed page up to retries times and then
// leaves it blank.
func RetryThenBlank(retries int) PageErrorPolicy {
	return func(_ *PageError, attempt int) PageAction {
		if attempt < retries {
			return RetryPage
		}
		return BlankPage
	}
}

// Result describes what a job handed to its spooler.
type Result struct {
	JobID string
	Name  string
	Pages int
	// BlankPages holds 1-based page numbers left blank after errors.
	BlankPages []int
	Retries    int
}

// Job renders a Pageable through its Printables and submits it once.
type Job struct {
	id       string
	name     string
	pageable Pageable
	spooler  Spooler
	dpi      float64
	policy   PageErrorPolicy
	logger   *logger.Logger
}

type JobOption func(*Job)

func WithDPI(dpi float64) JobOption {
	return func(j *Job) {
		j.dpi = dpi
	}
}

func WithPageErrorPolicy(policy PageErrorPolicy) JobOption {
	return func(j *Job) {
		j.policy = policy
	}
}

func WithLogger(log *logger.Logger) JobOption {
	return func(j *Job) {
		j.logger = log
	}
}

func NewJob(spooler Spooler, opts ...JobOption) *Job {
	j := &Job{
		id:      uuid.NewString(),
		spooler: spooler,
		dpi:     utils.DEFAULT_DPI,
		policy:  RetryThenBlank(1),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *Job) ID() string {
	return j.id
}

func (j *Job) JobName() string {
	return j.name
}

func (j *Job) SetJobName(name string) {
	j.name = name
}

func (j *Job) SetPageable(p Pageable) {
	j.pageable = p
}

// DefaultPage is the spooler's default paper in portrait.
func (j *Job) DefaultPage() PageFormat {
	return NewPageFormat(j.spooler.DefaultPaper())
}

// Print calls each page's Printable in order, synchronously, and then
// submits the rendered pages. It blocks until the spooler returns.
func (j *Job) Print(ctx context.Context) (*Result, error) {
	if j.pageable == nil || j.pageable.NumberOfPages() == 0 {
		return nil, ErrNoPageable
	}

	result := &Result{JobID: j.id, Name: j.name}
	spoolJob := &SpoolJob{
		ID:   j.id,
		Name: j.name,
		DPI:  j.dpi,
	}

	numPages := j.pageable.NumberOfPages()
	for index := 0; index < numPages; index++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		format, err := j.pageable.PageFormat(index)
		if err != nil {
			return nil, err
		}
		printable, err := j.pageable.Printable(index)
		if err != nil {
			return nil, err
		}

		surface := NewSurface(format, j.dpi)
		status, err := j.printPage(ctx, printable, surface, format, index, result)
		if err != nil {
			return nil, err
		}
		if status == NoSuchPage {
			j.logger.Trace("Pagination ended at index %d", index)
			break
		}

		spoolJob.Pages = append(spoolJob.Pages, SpoolPage{Image: surface.RGBA, Format: format})
	}

	if len(spoolJob.Pages) == 0 {
		return nil, ErrNoPageable
	}
	result.Pages = len(spoolJob.Pages)

	j.logger.Debug("Submitting job %s (%q) with %d pages", j.id, j.name, result.Pages)
	if err := j.spooler.Submit(ctx, spoolJob); err != nil {
		return nil, fmt.Errorf("failed to submit print job %q: %w", j.name, err)
	}

	return result, nil
}

func (j *Job) printPage(ctx context.Context, printable Printable, surface *Surface, format PageFormat, index int, result *Result) (PageStatus, error) {
	for attempt := 0; ; attempt++ {
		status, err := printable.Print(ctx, surface, format, index)
		if err == nil {
			return status, nil
		}

		var pageErr *PageError
		if !errors.As(err, &pageErr) || ctx.Err() != nil {
			return status, err
		}

		switch j.policy(pageErr, attempt) {
		case RetryPage:
			j.logger.Warn("Retrying page %d after error: %v", index+1, pageErr.Err)
			result.Retries++
			surface.Clear()
		case BlankPage:
			j.logger.Warn("Leaving page %d blank after error: %v", index+1, pageErr.Err)
			result.BlankPages = append(result.BlankPages, index+1)
			surface.Clear()
			return PageExists, nil
		default:
			return status, err
		}
	}
}
