// Package sysinfo reports facts about the local display.
package sysinfo

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// Display probes, swapped in tests.
var (
	numDisplays   = screenshot.NumActiveDisplays
	displayBounds = func(i int) (int, int) {
		b := screenshot.GetDisplayBounds(i)
		return b.Dx(), b.Dy()
	}
)

// GetScreenDimensions returns the primary desktop dimension (width and height) in pixels.
func GetScreenDimensions() (int, int, error) {
	if numDisplays() < 1 {
		return 0, 0, fmt.Errorf("no active display found")
	}
	w, h := displayBounds(0)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("primary display reports invalid size %dx%d", w, h)
	}
	return w, h, nil
}

// Resolution returns the primary display size in wallhaven's "WxH" form.
func Resolution() (string, error) {
	w, h, err := GetScreenDimensions()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%dx%d", w, h), nil
}
