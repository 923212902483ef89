package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/Wallfetch/util/log"
)

// OS is the platform primitive that changes the desktop background.
type OS interface {
	SetWallpaper(path string) error
}

// Installer applies a local image as the desktop background.
type Installer struct {
	os OS
}

// NewInstaller returns an Installer for the running platform.
func NewInstaller() *Installer {
	return &Installer{os: getOS()}
}

// NewInstallerWithOS returns an Installer using o.
func NewInstallerWithOS(o OS) *Installer {
	return &Installer{os: o}
}

// Platform returns the underlying platform primitive.
func (i *Installer) Platform() OS {
	return i.os
}

// SetWallpaper installs the image at path. Platform failures are logged and
// reported as false rather than returned.
func (i *Installer) SetWallpaper(path string) bool {
	if err := i.apply(path); err != nil {
		log.Printf("Failed to set wallpaper %s: %v", path, err)
		return false
	}
	log.Printf("Wallpaper set to %s", path)
	return true
}

func (i *Installer) apply(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", abs)
	}
	return i.os.SetWallpaper(abs)
}
