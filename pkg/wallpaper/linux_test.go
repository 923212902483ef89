//go:build linux

package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinuxSetWallpaper_UnsupportedDesktop(t *testing.T) {
	l := &linuxOS{}

	t.Run("X11", func(t *testing.T) {
		t.Setenv("WAYLAND_DISPLAY", "")
		t.Setenv("XDG_CURRENT_DESKTOP", "twm")
		err := l.SetWallpaper("/tmp/x.jpg")
		assert.ErrorContains(t, err, "unsupported X11 desktop environment")
	})

	t.Run("Wayland", func(t *testing.T) {
		t.Setenv("WAYLAND_DISPLAY", "wayland-0")
		t.Setenv("XDG_CURRENT_DESKTOP", "hyprland")
		err := l.SetWallpaper("/tmp/x.jpg")
		assert.ErrorContains(t, err, "unsupported Wayland compositor")
	})

	t.Run("Falls back to DESKTOP_SESSION", func(t *testing.T) {
		t.Setenv("WAYLAND_DISPLAY", "")
		t.Setenv("XDG_CURRENT_DESKTOP", "")
		t.Setenv("DESKTOP_SESSION", "ratpoison")
		err := l.SetWallpaper("/tmp/x.jpg")
		assert.ErrorContains(t, err, `"ratpoison"`)
	})
}

func TestKDEScript_QuotesPath(t *testing.T) {
	script := kdeScript(`/home/me/Pictures/say "hi".jpg`)
	assert.Contains(t, script, `d.writeConfig("Image", "file:///home/me/Pictures/say \"hi\".jpg");`)
}
