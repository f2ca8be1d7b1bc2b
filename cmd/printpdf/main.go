package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kpauljoseph/printpdf/internal/config"
	"github.com/kpauljoseph/printpdf/internal/printer"
	"github.com/kpauljoseph/printpdf/internal/printjob"
	"github.com/kpauljoseph/printpdf/internal/spool"
	"github.com/kpauljoseph/printpdf/pkg/logger"
	"github.com/kpauljoseph/printpdf/pkg/utils"
	"github.com/kpauljoseph/printpdf/pkg/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("printpdf", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: printpdf [flags] <file.pdf>\n\nSends a PDF file to the default printer.\n\nFlags:\n")
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "path to config file")
	printerName := flags.String("printer", "", "printer destination (overrides config, default: system default)")
	outputFile := flags.String("output", "", "print to this PDF file instead of a printer")
	jobName := flags.String("job-name", "", "print job name (default: file name)")
	dpi := flags.Float64("dpi", 0, "render resolution in dots per inch (overrides config)")
	paper := flags.String("paper", "", "default paper size, auto or one of "+fmt.Sprint(printer.PaperSizeNames()))
	validate := flags.Bool("validate", false, "validate the PDF structure before printing")
	verbose := flags.Bool("verbose", false, "enable verbose logging")
	debug := flags.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flags.Bool("version", false, "print version information and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *showVersion {
		fmt.Fprint(stdout, version.GetDetailedVersionInfo())
		return exitOK
	}

	if flags.NArg() != 1 {
		fmt.Fprintln(stderr, "The first parameter must have the location of the PDF file to be printed")
		flags.Usage()
		return exitUsage
	}
	pdfPath := flags.Arg(0)

	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithPrefix("[printpdf] "),
	)
	log.SetVerbose(*verbose)
	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("Error loading config: %v", err)
		return exitError
	}

	if *printerName != "" {
		cfg.Printer = *printerName
	}
	if *outputFile != "" {
		cfg.OutputFile = *outputFile
	}
	if *jobName != "" {
		cfg.JobName = *jobName
	}
	if *dpi != 0 {
		cfg.DPI = *dpi
	}
	if *paper != "" {
		cfg.Paper = *paper
	}
	if *validate {
		cfg.ValidatePDF = true
	}

	if err := cfg.Validate(); err != nil {
		log.Error("Invalid configuration: %v", err)
		return exitUsage
	}

	spooler, err := newSpooler(ctx, cfg, log)
	if err != nil {
		log.Error("Error initializing printer: %v", err)
		return exitError
	}

	fmt.Fprintf(stdout, "Printing: %s\n", pdfPath)

	orchestrator := printjob.NewOrchestrator(spooler, printjob.Options{
		DPI:           cfg.DPI,
		DecodeTimeout: cfg.DecodeTimeout,
		DecodeRetries: cfg.Retries(),
		ValidatePDF:   cfg.ValidatePDF,
	}, log)

	report, err := orchestrator.PrintFile(ctx, pdfPath, cfg.JobName)
	if err != nil {
		log.Error("Error printing %s: %v", pdfPath, err)
		return exitError
	}

	report.Print(log)
	return exitOK
}

func newSpooler(ctx context.Context, cfg *config.Config, log *logger.Logger) (printer.Spooler, error) {
	auto := cfg.Paper == printer.PaperAuto
	paperName := cfg.Paper
	if auto {
		paperName = printer.FallbackPaper
	}
	paper, err := printer.PaperBySize(paperName)
	if err != nil {
		return nil, err
	}

	if cfg.OutputFile != "" {
		log.Debug("Printing to file %s", cfg.OutputFile)
		return spool.NewFileSpooler(cfg.OutputFile, paper, log), nil
	}

	spoolDir := cfg.SpoolDir
	if spoolDir == "" {
		spoolDir = utils.GetDefaultSpoolDir()
	}

	destination := cfg.Printer
	if destination == "" {
		destination = "default destination"
	}
	log.Debug("Printing to %s with %s", destination, cfg.LPCommand)

	lp, err := spool.NewLPSpooler(spool.LPConfig{
		Command:        cfg.LPCommand,
		OptionsCommand: cfg.LPOptionsCommand,
		Destination:    cfg.Printer,
		SpoolDir:       spoolDir,
		Paper:          paper,
		Logger:         log,
	})
	if err != nil {
		return nil, err
	}
	if auto {
		lp.DetectPaper(ctx)
	}
	return lp, nil
}
