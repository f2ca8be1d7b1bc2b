package models

import (
	"time"

	"github.com/kpauljoseph/printpdf/pkg/logger"
)

type PageDimensions struct {
	Width  float64
	Height float64
}

// JobReport summarizes one submitted print job.
type JobReport struct {
	JobID        string
	JobName      string
	Source       string
	DocumentHash string
	PageCount    int
	PagesPrinted int
	BlankPages   []int
	Retries      int
	StartTime    time.Time
	EndTime      time.Time
}

func (r *JobReport) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}

func (r *JobReport) Print(log *logger.Logger) {
	log.Info("Print job %q submitted:", r.JobName)
	log.Info("- Job ID: %s", r.JobID)
	if r.Source != "" {
		log.Info("- Source: %s", r.Source)
	}
	log.Info("- Pages submitted: %d of %d", r.PagesPrinted, r.PageCount)
	if len(r.BlankPages) > 0 {
		log.Warn("- Pages left blank after render failures: %v", r.BlankPages)
	}
	if r.Retries > 0 {
		log.Info("- Page render retries: %d", r.Retries)
	}
	log.Info("- Time taken: %v", r.Duration().Round(time.Millisecond))
	log.Debug("- Document SHA-256: %s", r.DocumentHash)
}
