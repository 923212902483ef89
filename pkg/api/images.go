package api

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// LocalImage is one downloaded wallpaper as served under /images.
type LocalImage struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ImageURL returns the address under which the server exposes a file from
// the download directory.
func (s *Server) ImageURL(path string) string {
	return fmt.Sprintf("http://%s/images/%s", s.addr, url.PathEscape(filepath.Base(path)))
}

// resolveImagePath joins filename onto the download directory and enforces
// that the result stays inside it.
func resolveImagePath(dir, filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." || strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("invalid file name %q", filename)
	}

	absRoot, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid download directory: %w", err)
	}
	absRoot = filepath.Clean(absRoot)

	full := filepath.Clean(filepath.Join(absRoot, filename))
	if !strings.HasPrefix(full, absRoot+string(os.PathSeparator)) {
		return "", fmt.Errorf("path traversal detected")
	}
	return full, nil
}

// handleImageListing lists downloaded images, paged.
// GET /images?page=1&per_page=24
func (s *Server) handleImageListing(w http.ResponseWriter, r *http.Request) {
	dir, err := s.svc.GetDirectory()
	if err != nil {
		writeError(w, r, err)
		return
	}

	page := 1
	perPage := 24
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if pp, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && pp > 0 {
		perPage = pp
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, http.StatusOK, []LocalImage{})
			return
		}
		writeError(w, r, err)
		return
	}

	var images []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".jpg", ".jpeg", ".png", ".webp", ".gif", ".bmp":
			images = append(images, e.Name())
		}
	}
	sort.Strings(images)

	start := min((page-1)*perPage, len(images))
	end := min(start+perPage, len(images))

	result := make([]LocalImage, 0, end-start)
	for _, name := range images[start:end] {
		result = append(result, LocalImage{
			Name: name,
			URL:  fmt.Sprintf("http://%s/images/%s", r.Host, url.PathEscape(name)),
		})
	}
	writeJSON(w, http.StatusOK, result)
}

// handleImage serves one file from the download directory.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	dir, err := s.svc.GetDirectory()
	if err != nil {
		writeError(w, r, err)
		return
	}

	full, err := resolveImagePath(dir, r.PathValue("name"))
	if err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}
	if _, err := os.Stat(full); err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: KindIO, Message: "image not found"})
		return
	}
	http.ServeFile(w, r, full)
}
