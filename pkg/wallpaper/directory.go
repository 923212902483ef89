package wallpaper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dixieflatline76/Wallfetch/util/log"
	"github.com/gofrs/flock"
)

// DirectoryStore holds the configured download directory. The backing file is
// read at most once, on the first Get or Set; after that the in-memory value is
// authoritative for this process. Set writes through to disk.
type DirectoryStore struct {
	mu     sync.Mutex
	file   string
	dir    string
	loaded bool
}

// NewDirectoryStore returns a store persisted in file.
func NewDirectoryStore(file string) *DirectoryStore {
	return &DirectoryStore{file: file}
}

// File returns the path of the backing file.
func (s *DirectoryStore) File() string {
	return s.file
}

// Get returns the configured directory. It returns ErrNotConfigured if nothing
// was ever set, and a wrapped I/O error if the file exists but cannot be read.
func (s *DirectoryStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		data, err := os.ReadFile(s.file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			s.loaded = true
		case err != nil:
			return "", fmt.Errorf("reading download directory from %s: %w", s.file, err)
		default:
			s.dir = string(data)
			s.loaded = true
			log.Debugf("Loaded download directory %q from %s", s.dir, s.file)
		}
	}

	if s.dir == "" {
		return "", ErrNotConfigured
	}
	return s.dir, nil
}

// Set replaces the directory and persists it. Memory is only updated once the
// file write succeeded, so both always agree.
func (s *DirectoryStore) Set(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(dir); err != nil {
		return err
	}
	s.dir = dir
	s.loaded = true
	log.Printf("Download directory set to %q", dir)
	return nil
}

// persist writes dir as raw bytes. An advisory lock on a sibling file keeps
// writers in other processes from interleaving with this one.
func (s *DirectoryStore) persist(dir string) error {
	if parent := filepath.Dir(s.file); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", s.file, err)
		}
	}

	fileLock := flock.New(s.file + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", s.file, err)
	}
	defer func() {
		if err := fileLock.Unlock(); err != nil {
			log.Printf("Failed to unlock %s: %v", fileLock.Path(), err)
		}
	}()

	if err := os.WriteFile(s.file, []byte(dir), 0644); err != nil {
		return fmt.Errorf("writing download directory to %s: %w", s.file, err)
	}
	return nil
}
