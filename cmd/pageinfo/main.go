package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kpauljoseph/printpdf/internal/loader"
	"github.com/kpauljoseph/printpdf/internal/pdf"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("pageinfo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pdfPath := flags.String("file", "", "Path to PDF file")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	if *pdfPath == "" {
		fmt.Fprintln(stderr, "Please provide a PDF file path using -file flag")
		return exitUsage
	}

	data, err := loader.Load(*pdfPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading PDF: %v\n", err)
		return exitError
	}

	dims, err := pdf.PageDims(data)
	if err != nil {
		fmt.Fprintf(stderr, "Error getting page dimensions: %v\n", err)
		return exitError
	}

	fmt.Fprintf(stdout, "Analyzing PDF: %s\n", *pdfPath)
	fmt.Fprintf(stdout, "Pages: %d\n", len(dims))
	for i, dim := range dims {
		fmt.Fprintf(stdout, "\nPage %d:\n", i+1)
		fmt.Fprintf(stdout, "Dimensions (Width x Height): %.3f x %.3f points\n", dim.Width, dim.Height)
	}
	return exitOK
}
