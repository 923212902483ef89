package wallpaper

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// extractFilenameFromURL returns the last path segment of rawURL, ignoring any
// query or fragment. Segments that would escape the target directory are
// rejected.
func extractFilenameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidImageURL, rawURL, err)
	}
	if u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return "", fmt.Errorf("%w %q: no file name", ErrInvalidImageURL, rawURL)
	}

	name := path.Base(u.Path)
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w %q: bad file name %q", ErrInvalidImageURL, rawURL, name)
	}
	return name, nil
}

// isImageFile checks if a file name has a common image extension.
func isImageFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp":
		return true
	}
	return false
}
