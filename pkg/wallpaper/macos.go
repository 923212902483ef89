//go:build darwin

package wallpaper

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// macOSOS implements the OS interface for macOS.
type macOSOS struct{}

// SetWallpaper sets the picture of every desktop through System Events.
func (m *macOSOS) SetWallpaper(imagePath string) error {
	script := `tell application "System Events" to tell every desktop to set picture to ` + strconv.Quote(imagePath)

	out, err := exec.Command("osascript", "-e", script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to set wallpaper: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// getOS returns a new instance of the macOSOS struct.
func getOS() OS {
	return &macOSOS{}
}
