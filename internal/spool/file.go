package spool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/printpdf/internal/printer"
	"github.com/kpauljoseph/printpdf/pkg/logger"
)

// FileSpooler prints to a PDF file instead of a printer.
type FileSpooler struct {
	path   string
	paper  printer.Paper
	logger *logger.Logger
}

func NewFileSpooler(path string, paper printer.Paper, log *logger.Logger) *FileSpooler {
	if log == nil {
		log = logger.Discard()
	}
	return &FileSpooler{
		path:   path,
		paper:  paper,
		logger: log,
	}
}

func (s *FileSpooler) DefaultPaper() printer.Paper {
	return s.paper
}

func (s *FileSpooler) Path() string {
	return s.path
}

func (s *FileSpooler) Submit(ctx context.Context, job *printer.SpoolJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Write next to the target and rename so a failed job never leaves a
	// truncated file behind.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".printpdf-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := Assemble(tmp, job); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	s.logger.Info("Wrote %d pages of %q to %s", len(job.Pages), job.Name, s.path)
	return nil
}
