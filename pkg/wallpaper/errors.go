package wallpaper

import "errors"

var (
	// ErrEmptyCatalog is returned when sampling a search that found nothing.
	ErrEmptyCatalog = errors.New("wallpaper: catalog is empty")

	// ErrNotConfigured is returned when no download directory has been set.
	ErrNotConfigured = errors.New("wallpaper: download directory not configured")

	// ErrInvalidImageURL is returned when a URL has no usable file name.
	ErrInvalidImageURL = errors.New("wallpaper: invalid image url")
)
