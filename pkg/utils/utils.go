package utils

import (
	"os"
	"path/filepath"
)

const (
	POINTS_PER_INCH = 72.0
	DEFAULT_DPI     = 150.0
)

func GetDefaultSpoolDir() string {
	dir := filepath.Join(os.TempDir(), "printpdf-spool")
	if err := os.MkdirAll(dir, 0755); err != nil {
		// If we can't create it, let the caller fall back to the system temp dir
		return os.TempDir()
	}
	return dir
}

// PointsToPixels converts a length in PDF points to device pixels at dpi.
func PointsToPixels(points, dpi float64) float64 {
	return points * dpi / POINTS_PER_INCH
}
