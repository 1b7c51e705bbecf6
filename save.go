package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SaveScreenshot writes img to filename as PNG.
func SaveScreenshot(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return f.Close()
}
