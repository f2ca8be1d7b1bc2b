package spool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kpauljoseph/printpdf/internal/printer"
	"github.com/kpauljoseph/printpdf/pkg/logger"
)

var requestIDPattern = regexp.MustCompile(`request id is (\S+)`)

type LPConfig struct {
	// Command is the lp binary, looked up in PATH unless absolute.
	Command string
	// OptionsCommand is the lpoptions binary used by DetectPaper.
	OptionsCommand string
	// Destination is the CUPS queue. Empty means the default destination.
	Destination string
	SpoolDir    string
	Paper       printer.Paper
	Logger      *logger.Logger
}

// LPSpooler submits jobs to CUPS with the lp command.
type LPSpooler struct {
	command        string
	optionsCommand string
	destination    string
	spoolDir       string
	paper          printer.Paper
	logger         *logger.Logger
}

func NewLPSpooler(config LPConfig) (*LPSpooler, error) {
	command := config.Command
	if command == "" {
		command = "lp"
	}
	resolved, err := resolveBinaryPath(command)
	if err != nil {
		return nil, fmt.Errorf("print command %q not available: %w", command, err)
	}

	log := config.Logger
	if log == nil {
		log = logger.Discard()
	}

	optionsCommand := config.OptionsCommand
	if optionsCommand == "" {
		optionsCommand = "lpoptions"
	}

	return &LPSpooler{
		command:        resolved,
		optionsCommand: optionsCommand,
		destination:    config.Destination,
		spoolDir:       config.SpoolDir,
		paper:          config.Paper,
		logger:         log,
	}, nil
}

func resolveBinaryPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return exec.LookPath(path)
}

func (s *LPSpooler) DefaultPaper() printer.Paper {
	return s.paper
}

// DetectPaper replaces the spooler's paper with the destination's default
// PageSize as reported by lpoptions. When that cannot be read the
// fallback size is used and a warning is logged.
func (s *LPSpooler) DetectPaper(ctx context.Context) printer.Paper {
	paper, err := s.queryPaper(ctx)
	if err != nil {
		s.logger.Warn("Could not read the default paper of the destination, using %s: %v", printer.FallbackPaper, err)
		paper, _ = printer.PaperBySize(printer.FallbackPaper)
	} else {
		s.logger.Debug("Destination paper is %.2f x %.2f points", paper.Width, paper.Height)
	}
	s.paper = paper
	return paper
}

func (s *LPSpooler) queryPaper(ctx context.Context) (printer.Paper, error) {
	command, err := resolveBinaryPath(s.optionsCommand)
	if err != nil {
		return printer.Paper{}, fmt.Errorf("options command %q not available: %w", s.optionsCommand, err)
	}

	var args []string
	if s.destination != "" {
		args = append(args, "-p", s.destination)
	}
	args = append(args, "-l")

	cmd := exec.CommandContext(ctx, command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return printer.Paper{}, fmt.Errorf("lpoptions failed: %s: %w", strings.TrimSpace(stderr.String()), err)
	}

	media, ok := DefaultMedia(stdout.String())
	if !ok {
		return printer.Paper{}, errors.New("lpoptions reported no default PageSize")
	}
	return printer.PaperByMediaName(media)
}

// DefaultMedia returns the starred choice of the PageSize (or media)
// option in `lpoptions -l` output, e.g. "A4" from
// "PageSize/Media Size: Letter *A4 Legal".
func DefaultMedia(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		key, choices, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(strings.TrimSpace(key), "/")
		if !strings.EqualFold(name, "PageSize") && !strings.EqualFold(name, "media") {
			continue
		}
		for _, choice := range strings.Fields(choices) {
			if strings.HasPrefix(choice, "*") {
				return strings.TrimPrefix(choice, "*"), true
			}
		}
	}
	return "", false
}

// Args returns the lp arguments used to print file.
func (s *LPSpooler) Args(job *printer.SpoolJob, file string) []string {
	var args []string
	if s.destination != "" {
		args = append(args, "-d", s.destination)
	}
	if job.Name != "" {
		args = append(args, "-t", job.Name)
	}
	return append(args, "--", file)
}

// Submit blocks until lp has queued the job.
func (s *LPSpooler) Submit(ctx context.Context, job *printer.SpoolJob) error {
	f, err := os.CreateTemp(s.spoolDir, "printpdf-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create spool file: %w", err)
	}
	spoolPath := f.Name()
	defer os.Remove(spoolPath)

	if err := Assemble(f, job); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write spool file: %w", err)
	}

	args := s.Args(job, spoolPath)
	s.logger.Debug("Executing %s %s", s.command, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, s.command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); errors.Is(ctxErr, context.Canceled) || errors.Is(ctxErr, context.DeadlineExceeded) {
			return fmt.Errorf("lp was interrupted: %w", ctxErr)
		}
		return fmt.Errorf("lp failed: %s: %w", strings.TrimSpace(stderr.String()), err)
	}

	if m := requestIDPattern.FindStringSubmatch(stdout.String()); m != nil {
		s.logger.Info("Queued %q as %s", job.Name, m[1])
	} else {
		s.logger.Info("Queued %q", job.Name)
	}
	return nil
}
