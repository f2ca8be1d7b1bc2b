package acceptance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/printpdf/internal/pdftest"
)

// Fixture describes a generated input document.
type Fixture struct {
	Name   string
	Pages  int
	Width  float64
	Height float64
}

var Fixtures = []Fixture{
	{Name: "single_letter.pdf", Pages: 1, Width: pdftest.LetterWidth, Height: pdftest.LetterHeight},
	{Name: "three_letter.pdf", Pages: 3, Width: pdftest.LetterWidth, Height: pdftest.LetterHeight},
	{Name: "landscape_a4.pdf", Pages: 2, Width: 841.89, Height: 595.28},
}

// WriteFixtures writes every fixture into dir and returns their paths by name.
func WriteFixtures(dir string) (map[string]string, error) {
	paths := make(map[string]string, len(Fixtures))
	for _, f := range Fixtures {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, pdftest.Document(f.Pages, f.Width, f.Height), 0644); err != nil {
			return nil, fmt.Errorf("failed to write fixture %s: %w", f.Name, err)
		}
		paths[f.Name] = path
	}
	return paths, nil
}

func FixtureByName(name string) (Fixture, bool) {
	for _, f := range Fixtures {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}
