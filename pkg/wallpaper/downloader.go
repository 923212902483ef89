package wallpaper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/Wallfetch/util/log"
	"github.com/h2non/filetype"
	"golang.org/x/sync/singleflight"
)

// Fetcher retrieves raw bytes over the network.
type Fetcher interface {
	FetchBytes(ctx context.Context, rawURL string) ([]byte, error)
}

// Downloader saves remote images into the configured directory.
type Downloader struct {
	fetcher Fetcher
	dirs    *DirectoryStore
	group   singleflight.Group
}

// NewDownloader creates a new Downloader.
func NewDownloader(fetcher Fetcher, dirs *DirectoryStore) *Downloader {
	return &Downloader{fetcher: fetcher, dirs: dirs}
}

// Download fetches rawURL and writes it to <directory>/<last path segment>,
// creating or truncating the file, and returns that path. Concurrent calls for
// the same URL share one fetch and one write. The shared fetch outlives any
// single caller's cancellation; each caller stops waiting when its own ctx is
// done.
func (d *Downloader) Download(ctx context.Context, rawURL string) (string, error) {
	ch := d.group.DoChan(rawURL, func() (interface{}, error) {
		return d.download(context.WithoutCancel(ctx), rawURL)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			log.Debugf("Download of %s shared with a concurrent caller", rawURL)
		}
		return res.Val.(string), nil
	}
}

func (d *Downloader) download(ctx context.Context, rawURL string) (string, error) {
	dir, err := d.dirs.Get()
	if err != nil {
		return "", err
	}

	name, err := extractFilenameFromURL(rawURL)
	if err != nil {
		return "", err
	}

	data, err := d.fetcher.FetchBytes(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", rawURL, err)
	}

	// wallhaven paths always carry an extension; other hosts may not.
	if filepath.Ext(name) == "" {
		if kind, _ := filetype.Match(data); kind != filetype.Unknown {
			name += "." + kind.Extension
		}
	} else if !isImageFile(name) {
		log.Printf("Warning: %s does not look like an image file", name)
	}

	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, data, 0644); err != nil {
		return "", fmt.Errorf("saving %s: %w", target, err)
	}

	log.Printf("Downloaded %s (%d bytes) to %s", rawURL, len(data), target)
	return target, nil
}
