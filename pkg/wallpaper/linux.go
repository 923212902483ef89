//go:build linux

package wallpaper

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// linuxOS implements the OS interface for Linux desktops.
type linuxOS struct{}

// getOS returns the Linux implementation, or the ChromeOS bridge when running
// inside Crostini.
func getOS() OS {
	if _, err := os.Stat("/dev/.cros_milestone"); err == nil {
		return &ChromeOS{}
	}
	return &linuxOS{}
}

// SetWallpaper sets the desktop wallpaper on Linux, supporting X11 and some Wayland compositors.
func (l *linuxOS) SetWallpaper(imagePath string) error {
	desktopEnv := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktopEnv == "" {
		desktopEnv = os.Getenv("DESKTOP_SESSION")
	}
	desktopEnv = strings.ToLower(desktopEnv)

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		switch {
		case strings.Contains(desktopEnv, "gnome") || strings.Contains(desktopEnv, "mutter"):
			return l.setWallpaperGNOME(imagePath)
		case strings.Contains(desktopEnv, "kde"):
			return l.setWallpaperKDE(imagePath)
		case strings.Contains(desktopEnv, "sway"):
			return l.setWallpaperSway(imagePath)
		default:
			return fmt.Errorf("unsupported Wayland compositor: %q", desktopEnv)
		}
	}

	switch {
	case strings.Contains(desktopEnv, "gnome") || strings.Contains(desktopEnv, "unity") || strings.Contains(desktopEnv, "cinnamon"):
		return l.setWallpaperGNOME(imagePath)
	case strings.Contains(desktopEnv, "kde"):
		return l.setWallpaperKDE(imagePath)
	case strings.Contains(desktopEnv, "xfce"):
		return l.setWallpaperXFCE(imagePath)
	default:
		return fmt.Errorf("unsupported X11 desktop environment: %q", desktopEnv)
	}
}

// setWallpaperGNOME sets both the light and dark background keys; newer GNOME
// releases pick one depending on the color scheme.
func (l *linuxOS) setWallpaperGNOME(imagePath string) error {
	uri := "file://" + imagePath
	for _, key := range []string{"picture-uri", "picture-uri-dark"} {
		out, err := exec.Command("gsettings", "set", "org.gnome.desktop.background", key, uri).CombinedOutput()
		if err != nil {
			// Older GNOME has no dark key.
			if key == "picture-uri-dark" {
				continue
			}
			return fmt.Errorf("gsettings %s: %w: %s", key, err, strings.TrimSpace(string(out)))
		}
	}
	return nil
}

// kdeScript builds the Plasma shell script that points every desktop at
// imagePath. The path is emitted as a quoted string literal.
func kdeScript(imagePath string) string {
	return fmt.Sprintf(`var allDesktops = desktops();
for (var i = 0; i < allDesktops.length; i++) {
    var d = allDesktops[i];
    d.wallpaperPlugin = "org.kde.image";
    d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
    d.writeConfig("Image", %s);
}`, strconv.Quote("file://"+imagePath))
}

// setWallpaperKDE sets the wallpaper on every Plasma desktop.
func (l *linuxOS) setWallpaperKDE(imagePath string) error {
	script := kdeScript(imagePath)

	out, err := exec.Command("dbus-send", "--session", "--type=method_call",
		"--dest=org.kde.plasmashell", "/PlasmaShell",
		"org.kde.PlasmaShell.evaluateScript", "string:"+script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("dbus-send: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// setWallpaperXFCE sets the wallpaper for XFCE.
func (l *linuxOS) setWallpaperXFCE(imagePath string) error {
	if _, err := l.getXFCEDesktopConfigFile(); err != nil {
		return err
	}

	cmd := exec.Command("xfconf-query",
		"--channel", "xfce4-desktop",
		"--property", "/backdrop/screen0/monitor0/workspace0/last-image",
		"--set", imagePath)
	return cmd.Run()
}

// getXFCEDesktopConfigFile retrieves the path to the XFCE desktop configuration file.
func (l *linuxOS) getXFCEDesktopConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	defaultConfigFile := filepath.Join(home, ".config", "xfce4", "xfconf", "xfce-perchannel-xml", "xfce4-desktop.xml")
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("could not find XFCE desktop configuration file")
}

// setWallpaperSway asks the running compositor to change the background.
// Spawning swaybg directly would block until the session ends.
func (l *linuxOS) setWallpaperSway(imagePath string) error {
	return exec.Command("swaymsg", "output", "*", "bg", imagePath, "fill").Run()
}
