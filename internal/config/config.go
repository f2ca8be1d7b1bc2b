// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/printpdf/internal/printer"
)

const (
	DefaultLPCommand        = "lp"
	DefaultLPOptionsCommand = "lpoptions"
	DefaultPaper            = printer.PaperAuto
	DefaultDPI              = 150.0
	DefaultDecodeTimeout    = 30 * time.Second
	DefaultDecodeRetries    = 1
)

type Config struct {
	// JobName is the title given to the print job. Empty means the file name.
	JobName string `yaml:"job_name"`
	// Printer is the CUPS destination. Empty means the system default.
	Printer string `yaml:"printer"`
	// OutputFile sends the job to a PDF file instead of a printer.
	OutputFile       string `yaml:"output_file"`
	LPCommand        string `yaml:"lp_command"`
	LPOptionsCommand string `yaml:"lpoptions_command"`
	SpoolDir         string `yaml:"spool_dir"`
	// Paper is a sheet size name, or "auto" for the destination's default.
	Paper         string        `yaml:"paper"`
	DPI           float64       `yaml:"dpi"`
	DecodeTimeout time.Duration `yaml:"decode_timeout"`
	DecodeRetries *int          `yaml:"decode_retries"`
	ValidatePDF   bool          `yaml:"validate"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LPCommand == "" {
		c.LPCommand = DefaultLPCommand
	}
	if c.LPOptionsCommand == "" {
		c.LPOptionsCommand = DefaultLPOptionsCommand
	}
	if c.Paper == "" {
		c.Paper = DefaultPaper
	}
	c.Paper = strings.ToLower(c.Paper)
	if c.DPI == 0 {
		c.DPI = DefaultDPI
	}
	if c.DecodeTimeout == 0 {
		c.DecodeTimeout = DefaultDecodeTimeout
	}
	if c.DecodeRetries == nil {
		retries := DefaultDecodeRetries
		c.DecodeRetries = &retries
	}
}

// Retries returns the number of extra render attempts for a failed page.
func (c *Config) Retries() int {
	if c.DecodeRetries == nil {
		return DefaultDecodeRetries
	}
	return *c.DecodeRetries
}

func (c *Config) Validate() error {
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %v", c.DPI)
	}
	if c.Paper != printer.PaperAuto {
		if _, err := printer.PaperBySize(c.Paper); err != nil {
			return err
		}
	}
	if c.DecodeTimeout < 0 {
		return fmt.Errorf("decode_timeout must not be negative, got %v", c.DecodeTimeout)
	}
	if c.Retries() < 0 {
		return fmt.Errorf("decode_retries must not be negative, got %d", c.Retries())
	}
	return nil
}
