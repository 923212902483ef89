package wallpaper

import (
	"context"
	"fmt"
	"strings"

	"github.com/dixieflatline76/Wallfetch/pkg/history"
	"github.com/dixieflatline76/Wallfetch/pkg/wallhaven"
	"github.com/dixieflatline76/Wallfetch/util/log"
)

// AutoResolution asks GetData to use the primary display size as the minimum.
const AutoResolution = "auto"

// Client is the network collaborator used by the Service.
type Client interface {
	Fetcher
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// History records installed wallpapers.
type History interface {
	Record(ctx context.Context, sourceURL, path string) error
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// ServiceOptions wires a Service. Client, Directories and Installer are
// required; the rest are optional.
type ServiceOptions struct {
	Client      Client
	Directories *DirectoryStore
	Installer   *Installer

	SearchURL string                     // defaults to wallhaven.DefaultSearchURL
	Search    *wallhaven.SearchParameters // defaults to wallhaven.DefaultSearchParameters()
	History   History
	Rand      Rand
	Screen    func() (string, error) // resolves AutoResolution
}

// Service owns everything one invocation needs: the search policy, the
// directory store, the downloader and the installer. Every method is
// synchronous and safe for concurrent use.
type Service struct {
	client     Client
	searchURL  string
	search     wallhaven.SearchParameters
	dirs       *DirectoryStore
	downloader *Downloader
	installer  *Installer
	history    History
	rng        Rand
	screen     func() (string, error)
	onSet      []func(path string)
}

// NewService creates a new Service.
func NewService(opts ServiceOptions) (*Service, error) {
	if opts.Client == nil || opts.Directories == nil || opts.Installer == nil {
		return nil, fmt.Errorf("wallpaper: client, directories and installer are required")
	}

	s := &Service{
		client:     opts.Client,
		searchURL:  opts.SearchURL,
		search:     wallhaven.DefaultSearchParameters(),
		dirs:       opts.Directories,
		downloader: NewDownloader(opts.Client, opts.Directories),
		installer:  opts.Installer,
		history:    opts.History,
		rng:        opts.Rand,
		screen:     opts.Screen,
	}
	if s.searchURL == "" {
		s.searchURL = wallhaven.DefaultSearchURL
	}
	if opts.Search != nil {
		s.search = *opts.Search
	}
	return s, nil
}

// OnWallpaperSet registers fn to be called after every successful install.
// It must be called before the Service is shared between goroutines.
func (s *Service) OnWallpaperSet(fn func(path string)) {
	s.onSet = append(s.onSet, fn)
}

// GetData searches wallhaven and returns SampleSize records drawn with
// replacement. Empty arguments fall back to the configured policy.
func (s *Service) GetData(ctx context.Context, minResolution, apiKey string) ([]wallhaven.ImageRecord, error) {
	if strings.EqualFold(minResolution, AutoResolution) {
		minResolution = s.detectResolution()
	}

	params := s.search.WithAtLeast(minResolution)
	if apiKey != "" {
		params = params.WithAPIKey(apiKey)
	}

	body, err := s.client.Fetch(ctx, params.URL(s.searchURL))
	if err != nil {
		return nil, fmt.Errorf("searching wallhaven: %w", err)
	}

	catalog, err := wallhaven.ParseCatalog(body)
	if err != nil {
		return nil, err
	}
	log.Debugf("Search returned %d images", len(catalog))

	return Sample(catalog, SampleSize, s.rng)
}

// DownloadImage saves url into the configured directory and returns the path.
func (s *Service) DownloadImage(ctx context.Context, url string) (string, error) {
	return s.downloader.Download(ctx, url)
}

// LoadAndSetWallpaper downloads url and installs it. Download failures are
// errors; a platform refusal is false with a nil error.
func (s *Service) LoadAndSetWallpaper(ctx context.Context, url string) (string, bool, error) {
	path, err := s.DownloadImage(ctx, url)
	if err != nil {
		return "", false, err
	}
	ok := s.install(ctx, url, path)
	return path, ok, nil
}

// SetWallpaper installs a local image.
func (s *Service) SetWallpaper(path string) bool {
	return s.install(context.Background(), "", path)
}

// SetDirectory changes and persists the download directory.
func (s *Service) SetDirectory(path string) error {
	return s.dirs.Set(path)
}

// GetDirectory returns the download directory or ErrNotConfigured.
func (s *Service) GetDirectory() (string, error) {
	return s.dirs.Get()
}

// History returns the most recently installed wallpapers, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]history.Entry, error) {
	if s.history == nil {
		return []history.Entry{}, nil
	}
	return s.history.Recent(ctx, limit)
}

func (s *Service) install(ctx context.Context, sourceURL, path string) bool {
	if !s.installer.SetWallpaper(path) {
		return false
	}

	if s.history != nil {
		if err := s.history.Record(ctx, sourceURL, path); err != nil {
			log.Printf("Failed to record wallpaper history: %v", err)
		}
	}
	for _, fn := range s.onSet {
		fn(path)
	}
	return true
}

func (s *Service) detectResolution() string {
	if s.screen == nil {
		return ""
	}
	res, err := s.screen()
	if err != nil {
		log.Printf("Could not detect screen resolution, using default: %v", err)
		return ""
	}
	return res
}
