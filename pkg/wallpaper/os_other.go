//go:build !linux && !windows && !darwin

package wallpaper

import (
	"fmt"
	"runtime"
)

type unsupportedOS struct{}

func (unsupportedOS) SetWallpaper(string) error {
	return fmt.Errorf("setting the wallpaper is not supported on %s", runtime.GOOS)
}

func getOS() OS {
	return unsupportedOS{}
}
